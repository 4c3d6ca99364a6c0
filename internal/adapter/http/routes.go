package http

import "github.com/labstack/echo/v4"

// Register mounts the ledger API. Mutating routes run behind mw
// (idempotency in production); reads do not.
func Register(e *echo.Echo, h *Handler, lh *LedgerHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	loans := e.Group("/loans")
	loans.GET("/active", lh.ListActive)
	loans.GET("/count", lh.Count)
	loans.GET("/:loan_id", lh.GetLoan)
	loans.GET("/:loan_id/interest", lh.GetInterest)
	loans.GET("/:loan_id/repayment", lh.GetRepayment)
	loans.GET("/:loan_id/transfers", lh.GetTransfers)

	loans.POST("", lh.RequestLoan, mw...)
	loans.POST("/:loan_id/fund", lh.FundLoan, mw...)
	loans.POST("/:loan_id/repay", lh.RepayLoan, mw...)
	loans.POST("/:loan_id/cancel", lh.CancelLoan, mw...)

	users := e.Group("/users/:address")
	users.GET("/loans", lh.UserLoans)
	users.GET("/lendings", lh.UserLendings)
	users.GET("/score", lh.UserScore)
}
