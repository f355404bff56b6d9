package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"

// WebhookDigest is the value the gateway sends in the Authorization header:
// the lowercase hex SHA-256 of "username:password".
func WebhookDigest(username, password string) string {
	sum := sha256.Sum256([]byte(username + ":" + password))
	return hex.EncodeToString(sum[:])
}

// webhookAuth rejects push notifications whose Authorization header does not
// match the precomputed digest. Runs before any request parsing or store
// access.
func webhookAuth(expectedDigest string, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(expectedDigest)) != 1 {
			h.handleAbort(ctx, domain.ErrUnauthorizedWebhook)
			return
		}

		ctx.Next()
	}
}

func adminAuthCheck(tokenService port.TokenService, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 || words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		_, err := tokenService.VerifyToken(words[1])
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Next()
	}
}
