package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"creditledger/internal/usecase/ledger"
	"creditledger/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
)

// CallerHeader carries the authenticated identity of the caller.
const CallerHeader = "Ax-Caller-Id"

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type requestLoanReq struct {
	Amount          string `json:"amount" validate:"required,wei"`
	DurationUnits   uint64 `json:"duration_units"`
	InterestRateBps uint64 `json:"interest_rate_bps"`
}

type valueReq struct {
	Value string `json:"value" validate:"required,wei"`
}

func (h *LedgerHandler) RequestLoan(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	amount, err := wei.Parse(req.Amount)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "amount", Message: err.Error()}},
		})
	}
	dto, err := h.uc.RequestLoan(c.Request().Context(), caller, ledger.RequestLoanInput{
		Amount:          amount,
		DurationUnits:   req.DurationUnits,
		InterestRateBps: req.InterestRateBps,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) FundLoan(c echo.Context) error {
	return h.withValue(c, h.uc.FundLoan)
}

func (h *LedgerHandler) RepayLoan(c echo.Context) error {
	return h.withValue(c, h.uc.RepayLoan)
}

type valueOp func(ctx context.Context, caller common.Address, loanID uint64, value wei.Amount) (*ledger.LoanDTO, error)

func (h *LedgerHandler) withValue(c echo.Context, op valueOp) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	var req valueReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	value, err := wei.Parse(req.Value)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "value", Message: err.Error()}},
		})
	}
	dto, err := op(c.Request().Context(), caller, loanID, value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) CancelLoan(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	dto, err := h.uc.CancelLoan(c.Request().Context(), caller, loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) GetLoan(c echo.Context) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	dto, err := h.uc.GetLoanDetails(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) GetInterest(c echo.Context) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	interest, err := h.uc.CalculateLoanInterest(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": loanID, "interest": interest})
}

func (h *LedgerHandler) GetRepayment(c echo.Context) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	owed, err := h.uc.CalculateRepaymentAmount(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": loanID, "repayment_amount": owed})
}

func (h *LedgerHandler) GetTransfers(c echo.Context) error {
	loanID, ok := loanIDParam(c)
	if !ok {
		return badRequest(c, "invalid loan_id")
	}
	transfers, err := h.uc.GetLoanTransfers(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": loanID, "transfers": transfers})
}

func (h *LedgerHandler) ListActive(c echo.Context) error {
	ids, err := h.uc.GetActiveLoanRequests(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_ids": ids})
}

func (h *LedgerHandler) Count(c echo.Context) error {
	n, err := h.uc.LoanCount(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

func (h *LedgerHandler) UserLoans(c echo.Context) error {
	addr, ok := addressParam(c)
	if !ok {
		return badRequest(c, "invalid address")
	}
	ids, err := h.uc.GetUserLoans(c.Request().Context(), addr)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addr, "loan_ids": ids})
}

func (h *LedgerHandler) UserLendings(c echo.Context) error {
	addr, ok := addressParam(c)
	if !ok {
		return badRequest(c, "invalid address")
	}
	ids, err := h.uc.GetUserLendings(c.Request().Context(), addr)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addr, "loan_ids": ids})
}

func (h *LedgerHandler) UserScore(c echo.Context) error {
	addr, ok := addressParam(c)
	if !ok {
		return badRequest(c, "invalid address")
	}
	score, err := h.uc.CreditScore(c.Request().Context(), addr)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"address": addr, "score": score})
}

// callerFrom fails with a 401 HTTPError, rendered by echo's error handler.
func callerFrom(c echo.Context) (common.Address, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(CallerHeader))
	if raw == "" || !common.IsHexAddress(raw) {
		return common.Address{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+CallerHeader)
	}
	return common.HexToAddress(raw), nil
}

func loanIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	return id, err == nil
}

func addressParam(c echo.Context) (common.Address, bool) {
	raw := c.Param("address")
	if !common.IsHexAddress(raw) {
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}
