package access

import (
	"context"
	"time"

	"haki/models"
	"haki/utils"

	"go.uber.org/zap"
)

// Gate states. A gate evaluation is terminal per navigation event; the next
// path or auth change simply triggers a fresh evaluation that supersedes it.
const (
	StateChecking          = "checking"
	StateAllowed           = "allowed"
	StateDeniedRedirecting = "denied-redirecting"
)

// Decision is the outcome of one navigation evaluation. Redirect is set only
// when denied; Replace tells the client to replace the history entry rather
// than push, so the back button cannot loop.
type Decision struct {
	State    string `json:"state"`
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	Replace  bool   `json:"replace"`
}

// ProfileFetcher loads the session snapshot for a bearer token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (SessionSnapshot, error)
}

// ApplicationStatusFetcher loads the current lawyer-application status for a user.
type ApplicationStatusFetcher interface {
	FetchStatus(ctx context.Context, userID string) (string, error)
}

// DefaultStatusTimeout bounds the optional application-status round trip.
const DefaultStatusTimeout = 3 * time.Second

// SessionGate orchestrates the resolver and redirect policy against the live
// session state.
type SessionGate struct {
	Table         *RouteTable
	Profiles      ProfileFetcher
	Applications  ApplicationStatusFetcher
	StatusTimeout time.Duration
}

// NewSessionGate constructs a gate over the default route table.
func NewSessionGate(profiles ProfileFetcher, applications ApplicationStatusFetcher) *SessionGate {
	return &SessionGate{
		Table:         DefaultRouteTable(),
		Profiles:      profiles,
		Applications:  applications,
		StatusTimeout: DefaultStatusTimeout,
	}
}

// Evaluate runs one navigation decision for the given bearer token and path.
// A failed profile fetch fails open to the guest branch, never blocks the
// navigation. The application-status fetch is raced against StatusTimeout
// and falls back to "pending" so the decision is always total.
func (g *SessionGate) Evaluate(ctx context.Context, token, path string) Decision {
	snap := g.snapshot(ctx, token)

	if Allowed(g.Table, path, snap.Role) {
		return Decision{State: StateAllowed, Allowed: true}
	}

	return Decision{
		State:    StateDeniedRedirecting,
		Allowed:  false,
		Redirect: ResolveLanding(snap),
		Replace:  true,
	}
}

// snapshot loads an immutable session view for this evaluation.
func (g *SessionGate) snapshot(ctx context.Context, token string) SessionSnapshot {
	if token == "" {
		return Guest()
	}

	snap, err := g.Profiles.FetchProfile(ctx, token)
	if err != nil {
		utils.GetLogger().Warn("session gate: profile fetch failed, treating as guest", zap.Error(err))
		return Guest()
	}

	if snap.PendingLawyer && snap.ApplicationStatus == "" {
		snap.ApplicationStatus = g.fetchStatusWithFallback(ctx, snap.UserID)
	}
	return snap
}

// fetchStatusWithFallback races the application-status lookup against the
// configured timeout and defaults to pending on timeout or error.
func (g *SessionGate) fetchStatusWithFallback(ctx context.Context, userID string) string {
	if g.Applications == nil {
		return models.ApplicationPending
	}

	timeout := g.StatusTimeout
	if timeout <= 0 {
		timeout = DefaultStatusTimeout
	}
	statusCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		status string
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		status, err := g.Applications.FetchStatus(statusCtx, userID)
		ch <- result{status, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil || res.status == "" {
			if res.err != nil {
				utils.GetLogger().Warn("session gate: application status fetch failed, assuming pending",
					zap.String("userID", userID), zap.Error(res.err))
			}
			return models.ApplicationPending
		}
		return res.status
	case <-statusCtx.Done():
		utils.GetLogger().Warn("session gate: application status fetch timed out, assuming pending",
			zap.String("userID", userID))
		return models.ApplicationPending
	}
}
