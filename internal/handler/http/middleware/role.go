package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/handler/http/response"
)

// SupervisorOnly requires the supervisor role
func SupervisorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Supervisor access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || employee.Role(role) != employee.RoleSupervisor {
			response.Forbidden(w, "Supervisor access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
