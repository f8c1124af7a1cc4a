package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fre-insights/internal/config"
	"fre-insights/internal/importer"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
)

var ErrFileTooLarge = errors.New("file exceeds the upload limit")

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Row outcomes reported to metrics
const (
	outcomeImported  = "imported"
	outcomeSkipped   = "skipped"
	outcomeMalformed = "malformed"
)

// ValidationError rejects a whole import before any row is processed
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid import request: %v", e.Err)
	}
	return fmt.Sprintf("invalid import request: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	importBatchRepo repositories.ImportBatchRepositoryInterface
	categoryService CategoryServiceInterface
	insights        InsightsServiceInterface
	lock            *ImportLock
	metrics         MetricsRecorderInterface
	logger          ImportLoggerInterface
	cfg             config.ImportConfig
	now             func() time.Time
}

// NewImportService wires the import pipeline. insights may be nil when no cache needs invalidating.
func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	importBatchRepo repositories.ImportBatchRepositoryInterface,
	categoryService CategoryServiceInterface,
	insights InsightsServiceInterface,
	metrics MetricsRecorderInterface,
	logger ImportLoggerInterface,
	cfg config.ImportConfig,
) ImportServiceInterface {
	return &importService{
		transactionRepo: transactionRepo,
		importBatchRepo: importBatchRepo,
		categoryService: categoryService,
		insights:        insights,
		lock:            NewImportLock(),
		metrics:         metrics,
		logger:          logger,
		cfg:             cfg,
		now:             time.Now,
	}
}

// ImportTransactions normalizes, deduplicates and stores every row of file.
// Row problems are reported in the result; only request-level problems return an error.
func (s *importService) ImportTransactions(ctx context.Context, userID uuid.UUID, file []byte, req models.ImportRequest) (*models.ImportResult, error) {
	start := s.now()
	req.UserID = userID

	normalizer, records, err := s.prepare(userID, file, req)
	if err != nil {
		s.logger.LogImportRejected(ctx, userID, err.Error())
		return nil, err
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	s.logger.LogImportStarted(ctx, userID, req.FileName, len(file))

	unlock := s.lock.Lock(userID)
	defer unlock()

	rows, failures := normalizer.Normalize(records)
	result := &models.ImportResult{
		Total:  len(normalizer.DataRows(records)),
		Errors: make([]models.RowError, 0, len(failures)),
	}
	for _, failure := range failures {
		s.recordMalformed(ctx, result, userID, failure.RowError())
	}

	dedup := NewDeduplicator(s.transactionRepo, userID)
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("import interrupted after %d rows: %w", result.Imported+result.Skipped, err)
			s.abort(ctx, req, result, start, err)
			return nil, err
		}

		if err := s.importRow(ctx, dedup, req, row, result); err != nil {
			s.abort(ctx, req, result, start, err)
			return nil, err
		}
	}

	result.Duration = s.now().Sub(start)

	batch := models.NewImportBatch(req, result)
	s.recordBatch(ctx, batch)
	s.invalidateInsights(userID, result)
	s.recordMetrics(result, batch.Status)
	s.logger.LogImportCompleted(ctx, userID, result)

	return result, nil
}

// abort settles an import that stopped early. Rows stored before the failure stay stored,
// so the history entry and the insights cache must still reflect them.
func (s *importService) abort(ctx context.Context, req models.ImportRequest, result *models.ImportResult, start time.Time, cause error) {
	result.Duration = s.now().Sub(start)

	batch := models.NewImportBatch(req, result)
	batch.Status = models.ImportStatusFailed
	s.recordBatch(context.WithoutCancel(ctx), batch)
	s.invalidateInsights(req.UserID, result)
	s.recordMetrics(result, batch.Status)
	s.logger.LogImportRejected(ctx, req.UserID, cause.Error())
}

func (s *importService) invalidateInsights(userID uuid.UUID, result *models.ImportResult) {
	if s.insights != nil && result.Imported > 0 {
		s.insights.InvalidateUser(userID)
	}
}

// prepare validates the request and decodes the payload
func (s *importService) prepare(userID uuid.UUID, file []byte, req models.ImportRequest) (*importer.Normalizer, [][]string, error) {
	if userID == uuid.Nil {
		return nil, nil, &ValidationError{Field: "user_id", Err: models.ErrMissingUserID}
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(file)) > s.cfg.MaxUploadBytes {
		return nil, nil, &ValidationError{Field: "file", Err: ErrFileTooLarge}
	}

	normalizer, err := importer.NewNormalizer(req.Mapping, req.Currency, req.DateFormat)
	if err != nil {
		return nil, nil, &ValidationError{Field: validationField(err), Err: err}
	}

	records, err := importer.Decode(file)
	if err != nil {
		return nil, nil, &ValidationError{Field: "file", Err: err}
	}
	return normalizer, records, nil
}

func validationField(err error) string {
	switch {
	case errors.Is(err, importer.ErrInvalidMapping):
		return "mapping"
	case errors.Is(err, importer.ErrMissingCurrency), errors.Is(err, models.ErrInvalidCurrency):
		return "currency"
	case errors.Is(err, importer.ErrUnsupportedDateFormat):
		return "date_format"
	default:
		return ""
	}
}

func (s *importService) importRow(ctx context.Context, dedup *Deduplicator, req models.ImportRequest, row importer.Row, result *models.ImportResult) error {
	fingerprint := Fingerprint(req.UserID, row)

	duplicate, err := dedup.IsDuplicate(ctx, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to import row %d: %w", row.Line, err)
	}
	if duplicate {
		result.Skipped++
		return nil
	}

	txn := &models.Transaction{
		UserID:      req.UserID,
		Date:        row.Date,
		Description: row.Description,
		Merchant:    models.NormalizeMerchant(row.Description),
		Amount:      row.Amount,
		Direction:   row.Direction,
		Currency:    row.Currency,
		SourceRef:   row.SourceRef,
		Fingerprint: fingerprint,
	}
	if err := txn.Validate(); err != nil {
		s.recordMalformed(ctx, result, req.UserID, models.RowError{Row: row.Line, Message: err.Error()})
		return nil
	}

	if req.AutoCategorize {
		s.assignCategory(ctx, req.UserID, txn)
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		if errors.Is(err, repositories.ErrTransactionConflict) {
			dedup.Accept(fingerprint)
			result.Skipped++
			return nil
		}
		return fmt.Errorf("failed to import row %d: %w", row.Line, err)
	}

	dedup.Accept(fingerprint)
	result.Imported++
	return nil
}

// assignCategory never fails the row; the transaction is stored uncategorized instead
func (s *importService) assignCategory(ctx context.Context, userID uuid.UUID, txn *models.Transaction) {
	category, err := s.categoryService.ResolveCategory(ctx, userID, txn)
	if err != nil {
		slog.Warn("auto-categorization failed",
			"user_id", userID,
			"error", err,
		)
		return
	}
	if category == nil {
		return
	}

	txn.CategoryID = &category.ID
	s.metrics.IncrementCounter(MetricCategoryAssigned, map[string]string{"source": "auto"})
}

func (s *importService) recordMalformed(ctx context.Context, result *models.ImportResult, userID uuid.UUID, rowErr models.RowError) {
	result.Malformed++
	result.Errors = append(result.Errors, rowErr)
	s.logger.LogRowRejected(ctx, userID, rowErr)
}

// recordBatch stores the import history entry; a failure here does not undo the import
func (s *importService) recordBatch(ctx context.Context, batch *models.ImportBatch) {
	if s.importBatchRepo == nil {
		return
	}
	if err := s.importBatchRepo.Create(ctx, batch); err != nil {
		slog.Error("failed to record import batch",
			"user_id", batch.UserID,
			"error", err,
		)
	}
}

func (s *importService) recordMetrics(result *models.ImportResult, status string) {
	s.metrics.RecordGauge(MetricImportRows, float64(result.Imported), map[string]string{"outcome": outcomeImported})
	s.metrics.RecordGauge(MetricImportRows, float64(result.Skipped), map[string]string{"outcome": outcomeSkipped})
	s.metrics.RecordGauge(MetricImportRows, float64(result.Malformed), map[string]string{"outcome": outcomeMalformed})
	s.metrics.RecordGauge(MetricLastImportedCount, float64(result.Imported), nil)
	s.metrics.RecordProcessingTime(MetricImportDuration, result.Duration)

	s.metrics.IncrementCounter(MetricImportsTotal, map[string]string{"status": status})
}

// Preview returns the first row as headers and up to limit data rows
func (s *importService) Preview(file []byte, limit int) (*models.CSVPreview, error) {
	if s.cfg.MaxUploadBytes > 0 && int64(len(file)) > s.cfg.MaxUploadBytes {
		return nil, &ValidationError{Field: "file", Err: ErrFileTooLarge}
	}

	records, err := importer.Decode(file)
	if err != nil {
		return nil, &ValidationError{Field: "file", Err: err}
	}

	if limit <= 0 {
		limit = s.cfg.PreviewRows
	}
	if limit <= 0 {
		limit = models.DefaultPreviewRows
	}

	data := records[1:]
	preview := &models.CSVPreview{
		Headers:   records[0],
		TotalRows: len(data),
	}
	if len(data) > limit {
		data = data[:limit]
	}
	preview.Rows = data
	return preview, nil
}

func (s *importService) GetImportHistory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.ImportBatch, int64, error) {
	offset, limit = HistoryPage(offset, limit)

	batches, total, err := s.importBatchRepo.GetByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get import history: %w", err)
	}
	return batches, total, nil
}

// HistoryPage clamps an import history page to the served bounds
func HistoryPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return offset, limit
}
