package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	Retryable     bool   `json:"retryable,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeLookupFailed       = "LOOKUP_FAILED"
	ErrCodeInvalidProductID   = "INVALID_PRODUCT_ID"
	ErrCodeCartLocked         = "CART_LOCKED"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeCheckoutInProgress = "CHECKOUT_IN_PROGRESS"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeSignupRejected     = "SIGNUP_REJECTED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrLookupFailed       = NewDomainError(ErrCodeLookupFailed, "Product could not be retrieved, please scan again")
	ErrMissingBarcode     = NewDomainError(ErrCodeMissingField, "Barcode is required")
	ErrInvalidProductID   = NewDomainError(ErrCodeInvalidProductID, "Product ID must be a positive integer")
	ErrCartLocked         = NewDomainError(ErrCodeCartLocked, "Cart cannot be modified while a payment is in progress")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrCheckoutInProgress = NewDomainError(ErrCodeCheckoutInProgress, "A checkout is already in progress")
	ErrInvalidTransition  = NewDomainError(ErrCodeInvalidTransition, "Checkout is not in a state that allows this action")
	ErrMissingCredentials = NewDomainError(ErrCodeMissingField, "Email and password are required")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid credentials")
	ErrNotLoggedIn        = NewDomainError(ErrCodeUnauthorised, "Login required")
	ErrSignupRejected     = NewDomainError(ErrCodeSignupRejected, "Unable to create the account.")
)
