package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"careplus/config"
	"careplus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminPasskeyMiddleware gates staff endpoints behind the configured admin
// passkey. Failed attempts are counted server-side in Redis and repeated
// failures lock the client IP out for a while; the lockout therefore survives
// page reloads and cleared browser state.
func AdminPasskeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		ctx := c.Request.Context()

		if remaining, err := utils.AdminLockoutRemaining(ctx, ip); err != nil {
			logger.Error("Failed to read admin lockout state", zap.Error(err))
		} else if remaining > 0 {
			c.Header("Retry-After", remaining.Round(time.Second).String())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many failed passkey attempts. Try again later.",
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		passkey := strings.TrimPrefix(authHeader, "Bearer ")

		configured := config.AppConfig.AdminPasskey
		if configured == "" {
			logger.Error("Admin passkey not configured; refusing admin access")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(passkey), []byte(configured)) != 1 {
			attempts, err := utils.RegisterAdminFailure(ctx, ip)
			if err != nil {
				logger.Error("Failed to record admin passkey failure", zap.Error(err))
			} else {
				logger.Warn("Admin passkey rejected",
					zap.String("ip", ip), zap.Int("attempts", attempts))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		utils.ClearAdminFailures(ctx, ip)
		c.Set("isAdmin", true)
		c.Next()
	}
}
