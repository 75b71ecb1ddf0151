package response

import (
	"errors"
	"net/http"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/auth"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/user"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Role errors
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Staff management access required")
	case errors.Is(err, user.ErrSalesAccessRequired):
		Forbidden(w, "Sales access required")
	case errors.Is(err, user.ErrInventoryAccessRequired):
		Forbidden(w, "Inventory access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidPosition):
		BadRequest(w, "Unrecognized position", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrInvalidInterval):
		BadRequest(w, "Shift end must be after its start", nil)

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrProductNameExists):
		Conflict(w, "Product name already exists")
	case errors.Is(err, product.ErrInvalidCategory):
		BadRequest(w, "Unrecognized category", nil)
	case errors.Is(err, product.ErrInsufficientStock):
		BadRequest(w, "Insufficient stock for requested quantity", nil)

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, sale.ErrEmptySale):
		BadRequest(w, "Sale requires at least one item", nil)
	case errors.Is(err, sale.ErrInvalidPaymentMethod):
		BadRequest(w, "Unrecognized payment method", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
