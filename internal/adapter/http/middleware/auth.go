package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/core/domain"
	"staffhub/pkg/apierrors"
	"staffhub/pkg/token"
)

// SessionCookie is the HTTP-only cookie carrying the signed session token.
const SessionCookie = "staffhub_session"

const identityKey = "identity"

// AuthMiddleware verifies the session cookie and attaches the decoded
// identity to the request context. Absent cookie is 401, a token that does
// not verify is 403.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		identity, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgSessionInvalid, lang),
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. Allowing "developer" also
// admits developer specialisations like "frontend_developer".
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if ok {
			for _, allowed := range roles {
				if identity.Role == allowed ||
					(allowed == domain.RoleDeveloper && domain.IsDeveloperRole(identity.Role)) {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, GetLang(c)),
		)
	}
}

func GetIdentity(c *gin.Context) (token.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return token.Identity{}, false
	}
	identity, ok := value.(token.Identity)
	return identity, ok
}
