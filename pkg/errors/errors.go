package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidProposal           = errors.New("invalid proposal")
	ErrDivisionByZero            = errors.New("division by zero")
	ErrValidation                = errors.New("validation failed")
	ErrAgreementNotFound         = errors.New("agreement not found")
	ErrExceptionProposalNotFound = errors.New("exception proposal not found")
	ErrInstallmentsAboveProduct  = errors.New("installments above product maximum")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError is raised when a field fails its format or range rule.
// Message is shown to the agent as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error codes
const (
	ErrCodeInvalidProposal           = "INVALID_PROPOSAL"
	ErrCodeDivisionByZero            = "DIVISION_BY_ZERO"
	ErrCodeValidation                = "VALIDATION_ERROR"
	ErrCodeAgreementNotFound         = "AGREEMENT_NOT_FOUND"
	ErrCodeExceptionProposalNotFound = "EXCEPTION_PROPOSAL_NOT_FOUND"
	ErrCodeInstallmentsAboveProduct  = "INSTALLMENTS_ABOVE_PRODUCT"
	ErrCodeDatabaseError             = "DATABASE_ERROR"
	ErrCodeCacheError                = "CACHE_ERROR"
)

func WrapInvalidProposal(reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidProposal,
		reason,
		ErrInvalidProposal,
	)
}

func WrapDivisionByZero() *BusinessError {
	return NewBusinessError(
		ErrCodeDivisionByZero,
		"cannot compute a discount against a proposal with zero total",
		ErrDivisionByZero,
	)
}

func WrapAgreementNotFound(id int64) *BusinessError {
	return NewBusinessError(
		ErrCodeAgreementNotFound,
		fmt.Sprintf("Agreement with ID %d not found", id),
		ErrAgreementNotFound,
	)
}

func WrapExceptionProposalNotFound(id int64) *BusinessError {
	return NewBusinessError(
		ErrCodeExceptionProposalNotFound,
		fmt.Sprintf("Exception proposal with ID %d not found", id),
		ErrExceptionProposalNotFound,
	)
}

func WrapInstallmentsAboveProduct(product string, max, got int) *BusinessError {
	return NewBusinessError(
		ErrCodeInstallmentsAboveProduct,
		fmt.Sprintf("Product %s accepts at most %d installments, got %d", product, max, got),
		ErrInstallmentsAboveProduct,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
