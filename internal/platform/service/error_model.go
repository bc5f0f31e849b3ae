package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeForbidden    ErrorCode = "forbidden"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeRateLimited  ErrorCode = "rate_limited"
	ErrorCodeInternal     ErrorCode = "internal"
)

// ServiceError 业务层错误。Reason 为可选的机器可读原因，Fields 为字段级校验信息。
type ServiceError struct {
	Code    ErrorCode
	Message string
	Reason  string
	Fields  map[string]string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

// NewFieldValidationError 返回带字段明细的校验错误。
func NewFieldValidationError(message string, fields map[string]string) error {
	return &ServiceError{Code: ErrorCodeValidation, Message: message, Fields: fields}
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewRateLimitedError(message, reason string) error {
	return &ServiceError{Code: ErrorCodeRateLimited, Message: message, Reason: reason}
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

// WithReason 返回附带原因的同类错误。
func WithReason(err error, reason string) error {
	serviceErr, ok := AsServiceError(err)
	if !ok {
		return err
	}
	cp := *serviceErr
	cp.Reason = reason
	return &cp
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsCode 判断 err 是否为指定错误码的 ServiceError。
func IsCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}

// FieldErrors 收集字段级校验错误。
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// Check 在 ok 为 false 时记录字段错误，方便串联 utils 校验函数。
func (f FieldErrors) Check(field string, ok bool, message string) {
	if !ok {
		f.Add(field, message)
	}
}

// Err 没有字段错误时返回 nil，否则返回带字段明细的校验错误。
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewFieldValidationError("参数校验失败", map[string]string(f))
}
