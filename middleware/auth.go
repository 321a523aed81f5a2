package middleware

import (
	"strings"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key holding the verified token claims.
const ClaimsKey = "claims"

// TokenValidator verifies a raw token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

// VerifyJWT rejects requests without an Authorization header (402) or with a
// token that fails verification (403). The token is the second
// whitespace-separated field of the header.
func VerifyJWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.RequestLogger(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			_ = c.Error(utils.ErrMissingToken)
			c.Abort()
			return
		}

		var tokenString string
		if fields := strings.Fields(authHeader); len(fields) > 1 {
			tokenString = fields[1]
		}

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("token verification failed", zap.Error(err))
			_ = c.Error(utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Claims returns the claims stored by VerifyJWT.
func Claims(c *gin.Context) (jwt.MapClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(jwt.MapClaims)
	return claims, ok
}
