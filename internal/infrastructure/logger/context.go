package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey       contextKey = "logger"
	requestIDKey    contextKey = "request_id"
	enterpriseIDKey contextKey = "enterprise_id"
	userIDKey       contextKey = "user_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request ID and returns a logger tagged with it
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// WithEnterpriseID stores the enterprise ID and returns a logger tagged with it
func WithEnterpriseID(ctx context.Context, logger *zap.Logger, enterpriseID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, enterpriseIDKey, enterpriseID)
	enriched := logger.With(zap.String("enterprise_id", enterpriseID))
	return WithContext(ctx, enriched), enriched
}

// WithUserID stores the acting user ID and returns a logger tagged with it
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, userIDKey, userID)
	enriched := logger.With(zap.String("user_id", userID))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetEnterpriseID retrieves the enterprise ID from context
func GetEnterpriseID(ctx context.Context) string {
	if enterpriseID, ok := ctx.Value(enterpriseIDKey).(string); ok {
		return enterpriseID
	}
	return ""
}

// GetUserID retrieves the acting user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
