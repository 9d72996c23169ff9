package controller

import (
	"net/http"
	"time"

	"mywallet/internal/core"
	"mywallet/internal/middlewareinternal"
	"mywallet/internal/service"
	"mywallet/internal/validation"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type TransactionController struct {
	transactionService core.TransactionService
	validator          *validation.Validator
	logger             *zap.Logger
}

func NewTransactionController(transactionService core.TransactionService, validator *validation.Validator, logger *zap.Logger) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		validator:          validator,
		logger:             logger,
	}
}

func (c *TransactionController) NewIncome(w http.ResponseWriter, r *http.Request) {
	c.record(w, r, core.KindIncome)
}

func (c *TransactionController) NewOutgoing(w http.ResponseWriter, r *http.Request) {
	c.record(w, r, core.KindOutgoing)
}

func (c *TransactionController) record(w http.ResponseWriter, r *http.Request, kind core.TransactionKind) {
	token, ok := middlewareinternal.GetTokenFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request validation.TransactionPayload
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		c.logger.Debug("Invalid request format", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := c.validator.Struct(request); err != nil {
		c.logger.Debug("Transaction payload rejected", zap.Error(err))
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// An omitted date means "today"; the service fills in the clock.
	var date time.Time
	if request.Date != "" {
		parsed, err := time.Parse(dateLayout, request.Date)
		if err != nil {
			http.Error(w, "Invalid input", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	err := c.transactionService.Record(r.Context(), token, request.UserID, request.Description, request.Value, date, kind)
	if err != nil {
		switch err {
		case service.ErrSessionNotFound:
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			c.logger.Error("Failed to record transaction",
				zap.Int64("user_id", request.UserID),
				zap.String("kind", string(kind)),
				zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Homepage responds with the two-element array [transactions, balance], or a
// bare empty array when the user has no transactions yet.
func (c *TransactionController) Homepage(w http.ResponseWriter, r *http.Request) {
	token, ok := middlewareinternal.GetTokenFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, balance, err := c.transactionService.ListWithBalance(r.Context(), token)
	if err != nil {
		switch err {
		case service.ErrSessionNotFound:
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			c.logger.Error("Failed to list transactions", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if len(transactions) == 0 {
		render.JSON(w, r, []interface{}{})
		return
	}

	render.JSON(w, r, []interface{}{transactions, balance})
}
