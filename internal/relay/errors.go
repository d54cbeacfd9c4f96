package relay

// FetchError is returned when the games provider cannot be read.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "fetch games: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PublishError is returned when the notification could not be delivered.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string {
	return "publish notification: " + e.Err.Error()
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
