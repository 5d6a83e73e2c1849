package context

import (
	"context"

	"github.com/bekzodm/minibazar/constant"
)

// GetAdminSession returns the admin session id embedded by the admin
// middleware, if any.
func GetAdminSession(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AdminSessionKey)
	if v == nil {
		return "", false
	}
	sid, ok := v.(string)
	return sid, ok
}
