package usecase

import "fmt"

// ValidationError means the caller's input was rejected before any external
// call was made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SubscriptionError means the subscribe call for the newly requested topic
// failed. Nothing was persisted.
type SubscriptionError struct {
	Topic string
	Err   error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("failed to subscribe to topic %s: %v", e.Topic, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// PersistenceError means the store write failed after the subscription was
// already established. Topic membership and the stored record may diverge
// until the next successful registration.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist subscription record: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
