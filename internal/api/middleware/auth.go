package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/pkg/jwthelper"
)

const identityKey = "identity"

var (
	errMissingToken = errors.New("missing or malformed authorization header")
	errNoIdentity   = errors.New("request is not authenticated")
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

// VerifyJWT requires a valid "Authorization: Bearer <token>" header and stores
// the caller's identity in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			token = ctx.Query("token") // browsers cannot set headers on websocket upgrades
		}
		if strings.TrimSpace(token) == "" {
			response.RenderErr(ctx, response.ErrUnauthenticated(errMissingToken))
			return
		}

		identity, err := jwthelper.ParseToken(a.key, strings.TrimSpace(token))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthenticated(err))
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

func IdentityFromContext(ctx *gin.Context) (domain.Identity, bool) {
	value, ok := ctx.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}

	identity, ok := value.(domain.Identity)
	return identity, ok
}
