package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
)

type LoanLister interface {
	ViewCustomerLoans(ctx context.Context, customerID int) ([]creditapi.CustomerLoan, error)
}

type DashboardHandler struct {
	api LoanLister
}

func NewDashboardHandler(api LoanLister) *DashboardHandler {
	return &DashboardHandler{api: api}
}

type dashboardView struct {
	CustomerID string
	// Searched distinguishes "no loans found" from "nothing searched yet".
	Searched bool
	Loans    []creditapi.CustomerLoan
	Error    string
}

// Show renders the customer loan search. A customer with zero loans renders
// the explicit empty state; a failed lookup renders the error banner. The two
// never collapse into each other.
func (h *DashboardHandler) Show(c *gin.Context) {
	view := dashboardView{CustomerID: strings.TrimSpace(c.Query("customer_id"))}
	if view.CustomerID == "" {
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	id, err := strconv.Atoi(view.CustomerID)
	if err != nil {
		view.Error = "Customer ID must be a whole number."
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	loans, err := h.api.ViewCustomerLoans(c.Request.Context(), id)
	if err != nil {
		view.Error = errorMessage(err)
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	view.Searched = true
	view.Loans = loans
	c.HTML(http.StatusOK, "dashboard", view)
}
