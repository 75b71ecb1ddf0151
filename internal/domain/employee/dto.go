package employee

import (
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	} else if !IsValidPosition(Position(r.Position)) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the recognized positions",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SearchEmployeeRequest filters the directory. Query matches name, email and
// position display name case-insensitively; an empty query matches everyone.
type SearchEmployeeRequest struct {
	Query    string  `json:"query"`
	Position *string `json:"position,omitempty"`
}

func (r *SearchEmployeeRequest) Validate() error {
	if r.Position != nil && !IsValidPosition(Position(*r.Position)) {
		return ErrInvalidPosition
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	PositionName string  `json:"position_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	ShiftCount   int     `json:"shift_count"`
	NextShiftAt  *string `json:"next_shift_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewEmployeeResponse maps an entity to its response representation.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Position:     string(e.Position),
		PositionName: e.Position.DisplayName(),
		Email:        e.Email,
		Phone:        e.Phone,
		AvatarURL:    e.AvatarURL,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
