package transport

import (
	"context"
	"net/http"
	"strings"

	adminpanelapp "github.com/bekzodm/minibazar/application/adminpanel"
	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/gorilla/mux"
)

// AdminMiddleware guards /admin/* routes with a Bearer session token issued
// by AdminPanelApp.Login. Everything outside /admin/ is the public
// storefront; /admin/login itself is how a session starts.
func AdminMiddleware(adminApp adminpanelapp.AdminPanelApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !strings.HasPrefix(path, "/admin/") || path == "/admin/login" {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			if adminApp == nil {
				writeError(w, errors.SetCustomError(constant.ErrInternal))
				return
			}

			sessionID, err := adminApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.AdminSessionKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
