package dashboard

// FetchError wraps a remote data failure with the fixed user-facing
// message for the operation that failed. The underlying cause is logged
// at the aggregation boundary before wrapping and stays reachable
// through Unwrap for classification.
type FetchError struct {
	Op      string
	Message string
	Err     error
}

// Error returns the user-facing message
func (e *FetchError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(op, message string, err error) *FetchError {
	return &FetchError{Op: op, Message: message, Err: err}
}
