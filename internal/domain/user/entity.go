package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"     // Full access
	RoleManager   Role = "manager"   // Staff, schedules, sales and inventory
	RoleCashier   Role = "cashier"   // Can record sales
	RoleInventory Role = "inventory" // Can manage products and stock
	RoleStaff     Role = "staff"     // Read-only access
)

// Roles lists every recognized role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleCashier, RoleInventory, RoleStaff}
}

func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleInventory, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	AvatarURL       *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanManageStaff checks if user can create employees and schedules
func (u *User) CanManageStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// CanRecordSales checks if user can register sales
func (u *User) CanRecordSales() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleCashier
}

// CanManageInventory checks if user can create products and adjust stock
func (u *User) CanManageInventory() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleInventory
}
