package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrStaffAccessRequired     = errors.New("staff management access required")
	ErrSalesAccessRequired     = errors.New("sales access required")
	ErrInventoryAccessRequired = errors.New("inventory access required")
)
