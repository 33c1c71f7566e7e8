package lawyer

import "errors"

var (
	// ErrApplicationExists is returned when the user already has an application under review.
	ErrApplicationExists = errors.New("an application is already under review")
	// ErrNoApplication is returned when no application exists for the user.
	ErrNoApplication = errors.New("no application found")
	// ErrInvalidDecision is returned for decisions outside accepted/rejected/resubmission.
	ErrInvalidDecision = errors.New("invalid application decision")
	// ErrNotRejected is returned when appealing an application that was not rejected.
	ErrNotRejected = errors.New("only rejected applications can be appealed")
	// ErrNotResubmission is returned when resubmitting an application not flagged for resubmission.
	ErrNotResubmission = errors.New("application is not flagged for resubmission")
	// ErrNotSuspended is returned when lifting or appealing a suspension that does not exist.
	ErrNotSuspended = errors.New("lawyer is not suspended")
	// ErrAppealPending is returned when a suspension appeal is already awaiting review.
	ErrAppealPending = errors.New("a suspension appeal is already pending")
	// ErrProfileNotFound is returned when no directory profile matches.
	ErrProfileNotFound = errors.New("lawyer profile not found")
)
