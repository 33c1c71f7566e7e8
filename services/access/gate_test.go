package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	snap SessionSnapshot
	err  error
}

func (f *fakeProfiles) FetchProfile(ctx context.Context, token string) (SessionSnapshot, error) {
	return f.snap, f.err
}

type fakeStatuses struct {
	status string
	err    error
	delay  time.Duration
}

func (f *fakeStatuses) FetchStatus(ctx context.Context, userID string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.status, f.err
}

func newTestGate(profiles ProfileFetcher, statuses ApplicationStatusFetcher) *SessionGate {
	g := NewSessionGate(profiles, statuses)
	g.StatusTimeout = 50 * time.Millisecond
	return g
}

func TestGateAllowsAdminOnAdminPath(t *testing.T) {
	gate := newTestGate(&fakeProfiles{snap: SessionSnapshot{UserID: "a1", Role: models.RoleAdmin}}, nil)

	d := gate.Evaluate(context.Background(), "token", "/admin")
	assert.Equal(t, StateAllowed, d.State)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Redirect)
}

func TestGateDeniesUserOnLawyerPath(t *testing.T) {
	gate := newTestGate(&fakeProfiles{snap: SessionSnapshot{UserID: "u1", Role: models.RoleUser}}, nil)

	d := gate.Evaluate(context.Background(), "token", "/lawyer")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.False(t, d.Allowed)
	assert.Equal(t, PathHome, d.Redirect, "denied users go to their role home, not an error page")
	assert.True(t, d.Replace, "redirect must replace history, not push")
}

func TestGateMissingTokenIsGuest(t *testing.T) {
	gate := newTestGate(&fakeProfiles{snap: SessionSnapshot{Role: models.RoleAdmin}}, nil)

	d := gate.Evaluate(context.Background(), "", "/home")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.Equal(t, PathLogin, d.Redirect)
}

func TestGateFailsOpenToGuestOnProfileError(t *testing.T) {
	gate := newTestGate(&fakeProfiles{err: errors.New("backend down")}, nil)

	d := gate.Evaluate(context.Background(), "token", "/home")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.Equal(t, PathLogin, d.Redirect, "profile failure must fall back to the login redirect, not block")
}

func TestGateFetchesApplicationStatusForPendingLawyers(t *testing.T) {
	profiles := &fakeProfiles{snap: SessionSnapshot{
		UserID:        "u1",
		Role:          models.RoleUser,
		PendingLawyer: true,
	}}
	statuses := &fakeStatuses{status: models.ApplicationAccepted}
	gate := newTestGate(profiles, statuses)

	d := gate.Evaluate(context.Background(), "token", "/lawyer")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.Equal(t, PathLawyerAcceptance, d.Redirect)
}

func TestGateStatusTimeoutFallsBackToPending(t *testing.T) {
	profiles := &fakeProfiles{snap: SessionSnapshot{
		UserID:        "u1",
		Role:          models.RoleUser,
		PendingLawyer: true,
	}}
	statuses := &fakeStatuses{status: models.ApplicationAccepted, delay: time.Second}
	gate := newTestGate(profiles, statuses)

	d := gate.Evaluate(context.Background(), "token", "/lawyer")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.Equal(t, PathApplicationStatus, d.Redirect,
		"a slow status fetch must fall back to pending, not hang")
}

func TestGateStatusErrorFallsBackToPending(t *testing.T) {
	profiles := &fakeProfiles{snap: SessionSnapshot{
		UserID:        "u1",
		Role:          models.RoleUser,
		PendingLawyer: true,
	}}
	statuses := &fakeStatuses{err: errors.New("status endpoint down")}
	gate := newTestGate(profiles, statuses)

	d := gate.Evaluate(context.Background(), "token", "/lawyer")
	require.Equal(t, StateDeniedRedirecting, d.State)
	assert.Equal(t, PathApplicationStatus, d.Redirect)
}

func TestGateDecisionIsDeterministic(t *testing.T) {
	gate := newTestGate(&fakeProfiles{snap: SessionSnapshot{UserID: "u1", Role: models.RoleUser}}, nil)

	first := gate.Evaluate(context.Background(), "token", "/lawyer")
	second := gate.Evaluate(context.Background(), "token", "/lawyer")
	assert.Equal(t, first, second)
}
