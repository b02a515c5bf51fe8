package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/muhu-travel/backoffice-api/internal/access"
	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
)

// RequireAccess lets the request through only when the authenticated role may
// perform action on resource. It must run after VerifyJWT.
func RequireAccess(action access.Action, resource access.Resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := IdentityFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthenticated(errNoIdentity))
			return
		}

		if !access.Decide(identity.Role, action, resource).Allowed() {
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("role %s cannot %s %s", identity.Role, action, resource)))
			return
		}

		ctx.Next()
	}
}
