package middleware

import "context"

// contextKey is an unexported type for keys placed in request contexts by
// this package. Using a distinct type prevents collisions with keys set by
// other packages.
type contextKey string

const (
	// loggerCtxKey is the context key for the request-scoped logger.
	loggerCtxKey contextKey = "logger"
	// userIDKey is the context key for the authenticated user ID.
	userIDKey contextKey = "userID"
)

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. The second return value reports whether a user ID was
// present.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
