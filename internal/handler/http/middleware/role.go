package middleware

import (
	"net/http"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/user"
	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	return user.Role(roleStr), true
}

// RequireStaffManagement requires a role that can create employees and
// schedules (admin or manager)
func RequireStaffManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		u := user.User{Role: role}
		if !u.CanManageStaff() {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSales requires a role that can record sales (admin, manager or
// cashier)
func RequireSales(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, user.ErrSalesAccessRequired)
			return
		}

		u := user.User{Role: role}
		if !u.CanRecordSales() {
			response.HandleError(w, user.ErrSalesAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireInventory requires a role that can manage products and stock
// (admin, manager or inventory)
func RequireInventory(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, user.ErrInventoryAccessRequired)
			return
		}

		u := user.User{Role: role}
		if !u.CanManageInventory() {
			response.HandleError(w, user.ErrInventoryAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
