package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		UserMissingID, UserInvalidID,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, ValidationInvalidUUID,
		ImportInvalidFile, ImportFileTooLarge, ImportInvalidMapping,
		ImportUnsupportedDateFormat, ImportInvalidCurrency, ImportCanceled,
		InsightsInvalidPeriod, InsightsInvalidLookback, InsightsDetectionFailed,
		TransactionNotFound, TransactionInvalidFilter,
		CategoryNotFound, CategoryInvalidName,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded,
		SystemRouteNotFound,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"missing user", UserMissingID, "User identity is required (X-User-ID header)"},
		{"validation general", ValidationGeneral, "Validation failed"},
		{"file too large", ImportFileTooLarge, "The uploaded file exceeds the size limit"},
		{"invalid mapping", ImportInvalidMapping, "Column mapping is invalid"},
		{"invalid lookback", InsightsInvalidLookback, "Lookback must be between 1 and 36 months"},
		{"transaction not found", TransactionNotFound, "Transaction not found"},
		{"internal", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}
	s.False(IsValidErrorCode(ErrorCode("")))
	s.False(IsValidErrorCode(ErrorCode("IMPORT_999")))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^[A-Z]+_\d{3}$`)
	for _, code := range allCodes() {
		s.Regexp(pattern, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	s.Len(codeTable, len(allCodes()))
	for code, info := range codeTable {
		s.NotEmpty(info.message, "code %s has an empty message", code)
		s.GreaterOrEqual(info.status, 400, "code %s must map to an error status", code)
	}
}
