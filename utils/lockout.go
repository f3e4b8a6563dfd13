package utils

import (
	"context"
	"fmt"
	"time"

	"careplus/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Admin passkey failures are tracked server-side in Redis so a lockout cannot
// be bypassed by clearing client state. Attempt counters live in a rolling
// window; once the configured maximum is reached a lockout key with its own
// TTL takes over.

const attemptWindow = 15 * time.Minute

func adminAttemptsKey(clientIP string) string {
	return fmt.Sprintf("admin:attempts:%s", clientIP)
}

func adminLockoutKey(clientIP string) string {
	return fmt.Sprintf("admin:lockout:%s", clientIP)
}

// AdminLockoutRemaining returns how long the given client remains locked out,
// or zero if it is not locked out.
func AdminLockoutRemaining(ctx context.Context, clientIP string) (time.Duration, error) {
	client := GetAuthCacheClient()
	ttl, err := client.TTL(ctx, adminLockoutKey(clientIP)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read admin lockout state: %w", err)
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

// RegisterAdminFailure records a failed passkey attempt and returns the
// current attempt count. When the count reaches the configured maximum the
// client is locked out for ADMIN_LOCKOUT_MINUTES.
func RegisterAdminFailure(ctx context.Context, clientIP string) (int, error) {
	client := GetAuthCacheClient()
	key := adminAttemptsKey(clientIP)

	attempts, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record admin passkey failure: %w", err)
	}
	if attempts == 1 {
		if err := client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			GetLogger().Warn("Failed to set expiry on admin attempt counter", zap.Error(err))
		}
	}

	maxAttempts := config.AppConfig.AdminMaxAttempts
	if maxAttempts > 0 && int(attempts) >= maxAttempts {
		lockout := time.Duration(config.AppConfig.AdminLockoutMinutes) * time.Minute
		if err := client.Set(ctx, adminLockoutKey(clientIP), "locked", lockout).Err(); err != nil {
			return int(attempts), fmt.Errorf("failed to set admin lockout: %w", err)
		}
		GetLogger().Warn("Admin passkey lockout engaged",
			zap.String("ip", clientIP), zap.Duration("duration", lockout))
	}
	return int(attempts), nil
}

// ClearAdminFailures resets the attempt counter after a successful passkey
// verification.
func ClearAdminFailures(ctx context.Context, clientIP string) {
	client := GetAuthCacheClient()
	if err := client.Del(ctx, adminAttemptsKey(clientIP)).Err(); err != nil && err != redis.Nil {
		GetLogger().Warn("Failed to clear admin attempt counter", zap.Error(err))
	}
}
