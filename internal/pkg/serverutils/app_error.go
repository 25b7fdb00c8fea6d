package serverutils

// AppError is a domain error carrying the HTTP status it should map to.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message}
}
