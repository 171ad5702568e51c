package model

import "time"

type VerificationEvent string

const (
	// EventGranted is recorded when a user passed the check and gained access.
	EventGranted VerificationEvent = "granted"
	// EventDenied is recorded when a user asked for access but misses channels.
	EventDenied VerificationEvent = "denied"
	// EventRevoked is recorded when the background sweep took access away.
	EventRevoked VerificationEvent = "revoked"
)

type (
	// VerificationService keeps a history of access decisions. It is an audit
	// trail only, the set of verified users always starts empty.
	VerificationService interface {
		Record(userID int64, event VerificationEvent, missing int) error
		CountSince(event VerificationEvent, since time.Time) (int64, error)
	}
)
