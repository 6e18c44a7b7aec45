package domain

import "errors"

type ErrorCode string

const (
	ErrorCodeNetwork      ErrorCode = "NETWORK_ERROR"
	ErrorCodeAPI          ErrorCode = "API_ERROR"
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrorCodeBusy         ErrorCode = "BUSY"
)

// DomainError несёт код ошибки, по которому HTTP-слой выбирает статус.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

// WrapDomainError keeps the cause reachable through errors.Is / errors.As.
func WrapDomainError(code ErrorCode, msg string, err error) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsCode(err error, code ErrorCode) bool {
	var derr *DomainError
	return errors.As(err, &derr) && derr.Code == code
}
