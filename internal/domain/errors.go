package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// RateLimitedErr is returned when the hosting provider reports quota exhaustion.
// Its message is meant to be shown to the end user as is.
type RateLimitedErr struct {
	domainErr
}

// NewRateLimitedErr creates a new RateLimitedErr with the given message.
func NewRateLimitedErr(message string) *RateLimitedErr {
	return &RateLimitedErr{
		domainErr: domainErr{message: message},
	}
}

// ContentFetchErr wraps a transport failure while listing repository contents.
type ContentFetchErr struct {
	domainErr
	cause error
}

// NewContentFetchErr creates a new ContentFetchErr wrapping cause.
func NewContentFetchErr(cause error) *ContentFetchErr {
	return &ContentFetchErr{
		domainErr: domainErr{message: "failed to fetch repository contents"},
		cause:     cause,
	}
}

// Unwrap returns the underlying transport error.
func (e *ContentFetchErr) Unwrap() error {
	return e.cause
}

// EmptyContentErr is raised when there is nothing to summarize, either because the
// document is blank or because the model answered with a blank summary.
// Retrying cannot fix it, so it is terminal for the retry executor.
type EmptyContentErr struct {
	domainErr
	Path string
}

// NewEmptyContentErr creates a new EmptyContentErr for the document at path.
func NewEmptyContentErr(path, message string) *EmptyContentErr {
	return &EmptyContentErr{
		domainErr: domainErr{message: message},
		Path:      path,
	}
}

// Terminal reports that the error must not be retried.
func (e *EmptyContentErr) Terminal() bool {
	return true
}
