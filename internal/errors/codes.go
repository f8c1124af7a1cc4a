package errors

import "net/http"

// ErrorCode is the stable machine-readable code returned in API error bodies
type ErrorCode string

// User context error codes (USER_*)
const (
	UserMissingID ErrorCode = "USER_001"
	UserInvalidID ErrorCode = "USER_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidUUID   ErrorCode = "VALIDATION_006"
)

// Import error codes (IMPORT_*)
const (
	ImportInvalidFile           ErrorCode = "IMPORT_001"
	ImportFileTooLarge          ErrorCode = "IMPORT_002"
	ImportInvalidMapping        ErrorCode = "IMPORT_003"
	ImportUnsupportedDateFormat ErrorCode = "IMPORT_004"
	ImportInvalidCurrency       ErrorCode = "IMPORT_005"
	ImportCanceled              ErrorCode = "IMPORT_006"
)

// Insights error codes (INSIGHTS_*)
const (
	InsightsInvalidPeriod   ErrorCode = "INSIGHTS_001"
	InsightsInvalidLookback ErrorCode = "INSIGHTS_002"
	InsightsDetectionFailed ErrorCode = "INSIGHTS_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidFilter ErrorCode = "TRANSACTION_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryInvalidName ErrorCode = "CATEGORY_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	status  int
	message string
}

var codeTable = map[ErrorCode]codeInfo{
	UserMissingID: {http.StatusUnauthorized, "User identity is required (X-User-ID header)"},
	UserInvalidID: {http.StatusBadRequest, "User identity must be a valid UUID"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Value is out of acceptable range"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or value"},
	ValidationInvalidUUID:   {http.StatusBadRequest, "Identifier must be a valid UUID"},

	ImportInvalidFile:           {http.StatusBadRequest, "The uploaded file could not be read as CSV"},
	ImportFileTooLarge:          {http.StatusRequestEntityTooLarge, "The uploaded file exceeds the size limit"},
	ImportInvalidMapping:        {http.StatusBadRequest, "Column mapping is invalid"},
	ImportUnsupportedDateFormat: {http.StatusBadRequest, "Date format is not supported"},
	ImportInvalidCurrency:       {http.StatusBadRequest, "Currency must be a 3-letter code"},
	// client went away; nginx convention
	ImportCanceled: {499, "Import was canceled before it finished"},

	InsightsInvalidPeriod:   {http.StatusBadRequest, "Month must be 1-12 with a valid year"},
	InsightsInvalidLookback: {http.StatusBadRequest, "Lookback must be between 1 and 36 months"},
	InsightsDetectionFailed: {http.StatusInternalServerError, "Insights could not be computed"},

	TransactionNotFound:      {http.StatusNotFound, "Transaction not found"},
	TransactionInvalidFilter: {http.StatusBadRequest, "Transaction filter is invalid"},

	CategoryNotFound:    {http.StatusNotFound, "Category not found"},
	CategoryInvalidName: {http.StatusBadRequest, "Category name is invalid"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Resource not found"},
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if info, ok := codeTable[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := codeTable[code]
	return ok
}

// GetHTTPStatus returns the HTTP status for an error code; unknown codes map to 500
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := codeTable[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}
