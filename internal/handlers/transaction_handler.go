package handlers

import (
	"net/http"

	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles listing and recategorizing imported transactions
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions retrieves a filtered page of the user's transactions
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param start query string false "First date (YYYY-MM-DD)"
// @Param end query string false "Last date, inclusive (YYYY-MM-DD)"
// @Param direction query string false "Direction" Enums(income, expense)
// @Param category query string false "Category ID (UUID)"
// @Param merchant query string false "Normalized merchant name"
// @Param currency query string false "Currency code"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 500)" default(50)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / TRANSACTION_002"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.ListTransactionsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	filters := q.Filters(userID)
	transactions, total, err := h.transactionService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	offset, limit := services.TransactionPage(filters.Offset, filters.Limit)
	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions, total, offset, limit))
}

// GetTransaction retrieves one of the user's transactions
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("id: must be a valid UUID"))
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateCategory assigns or clears a transaction's category
// @Summary Recategorize transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "Category to assign, null to clear"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 / CATEGORY_001"
// @Router /transactions/{id}/category [patch]
func (h *TransactionHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("id: must be a valid UUID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateCategory(c.Request().Context(), userID, transactionID, req.CategoryID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}
