package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeRestaurantNotFound = "RESTAURANT_NOT_FOUND"
	ErrCodeDishNotFound       = "DISH_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeEmptyOrder         = "EMPTY_ORDER"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
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
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrRestaurantNotFound = NewDomainError(ErrCodeRestaurantNotFound, "Restaurant not found")
	ErrDishNotFound       = NewDomainError(ErrCodeDishNotFound, "Dish not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrEmptyOrder         = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one resolvable item")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidAmount      = NewDomainError(ErrCodeInvalidAmount, "Amount must not be zero")
)
