package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
)

type LoanViewer interface {
	ViewLoan(ctx context.Context, loanID int) (*creditapi.LoanDetail, error)
}

type LoanHandler struct {
	api LoanViewer
}

func NewLoanHandler(api LoanViewer) *LoanHandler {
	return &LoanHandler{api: api}
}

// Show renders a loan with its embedded customer snapshot. The page renders
// only from a fully decoded record; any failure renders the error page, never
// partial loan data.
func (h *LoanHandler) Show(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("loanId")))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error", gin.H{
			"Title":   "Loan Details",
			"Message": "Loan ID must be a whole number.",
		})
		return
	}

	loan, err := h.api.ViewLoan(c.Request.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if re, ok := creditapi.AsRemote(err); ok && re.StatusCode == http.StatusNotFound {
			status = http.StatusNotFound
		}
		c.HTML(status, "error", gin.H{
			"Title":   "Loan Details",
			"Message": "Failed to load loan details: " + errorMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "loan", gin.H{"Loan": loan})
}
