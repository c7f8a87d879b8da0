package subscription

import "errors"

var (
	// ErrNotFound is returned when a subscription does not exist.
	ErrNotFound = errors.New("subscription not found")

	// ErrAlreadyCancelled is returned when cancelling a cancelled subscription.
	ErrAlreadyCancelled = errors.New("subscription is already cancelled")
)
