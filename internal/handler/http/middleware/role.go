package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

// RequireRoles lets the listed roles through. Admins always pass.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role := user.Role(roleStr)
			if role == user.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions for role '%s'", role))
		})
	}
}
