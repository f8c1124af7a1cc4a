package services

import (
	"context"
	"log/slog"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID stores the request id picked up by ImportLogger events
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// ImportLogger provides structured logging for import and detector events.
// Row values are never logged because they carry transaction descriptions.
type ImportLogger struct {
	logger *slog.Logger
}

// NewImportLogger creates a new import logger
func NewImportLogger(logger *slog.Logger) ImportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportLogger{
		logger: logger,
	}
}

// LogImportStarted logs the start of an import
func (l *ImportLogger) LogImportStarted(ctx context.Context, userID uuid.UUID, fileName string, sizeBytes int) {
	l.logger.InfoContext(ctx, "import started",
		slog.String("event_type", "import_started"),
		slog.String("user_id", userID.String()),
		slog.String("file_name", fileName),
		slog.Int("size_bytes", sizeBytes),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogImportCompleted logs the row accounting of a finished import
func (l *ImportLogger) LogImportCompleted(ctx context.Context, userID uuid.UUID, result *models.ImportResult) {
	l.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("user_id", userID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("malformed", result.Malformed),
		slog.Int("total", result.Total),
		slog.Int64("duration_ms", result.Duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogImportRejected logs an import aborted before any row was processed
func (l *ImportLogger) LogImportRejected(ctx context.Context, userID uuid.UUID, reason string) {
	l.logger.WarnContext(ctx, "import rejected",
		slog.String("event_type", "import_rejected"),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *ImportLogger) LogRowRejected(ctx context.Context, userID uuid.UUID, rowErr models.RowError) {
	l.logger.DebugContext(ctx, "import row rejected",
		slog.String("event_type", "import_row_rejected"),
		slog.String("user_id", userID.String()),
		slog.Int("row", rowErr.Row),
		slog.String("field", rowErr.Field),
		slog.String("error", rowErr.Message),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogDetectorCompleted logs one detector pass
func (l *ImportLogger) LogDetectorCompleted(ctx context.Context, userID uuid.UUID, detector string, findings int, durationMs int64) {
	l.logger.InfoContext(ctx, "detector completed",
		slog.String("event_type", "detector_completed"),
		slog.String("user_id", userID.String()),
		slog.String("detector", detector),
		slog.Int("findings", findings),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (l *ImportLogger) LogCategoryAssigned(ctx context.Context, userID, transactionID uuid.UUID, category string) {
	l.logger.InfoContext(ctx, "transaction category assigned",
		slog.String("event_type", "category_assigned"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("category", category),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
