package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
	"github.com/ArchitSaxena349/credit-approval-system/internal/eligibility"
)

type EligibilityHandler struct {
	svc eligibility.Service
}

func NewEligibilityHandler(svc eligibility.Service) *EligibilityHandler {
	return &EligibilityHandler{svc: svc}
}

type eligibilityForm struct {
	CustomerID   string
	LoanAmount   string
	InterestRate string
	Tenure       string
}

func (f eligibilityForm) toRequest() (creditapi.LoanRequest, error) {
	customerID, err := strconv.Atoi(f.CustomerID)
	if err != nil {
		return creditapi.LoanRequest{}, fmt.Errorf("customer ID must be a whole number")
	}
	amount, err := strconv.ParseFloat(f.LoanAmount, 64)
	if err != nil {
		return creditapi.LoanRequest{}, fmt.Errorf("loan amount must be a number")
	}
	rate, err := strconv.ParseFloat(f.InterestRate, 64)
	if err != nil {
		return creditapi.LoanRequest{}, fmt.Errorf("interest rate must be a number")
	}
	tenure, err := strconv.Atoi(f.Tenure)
	if err != nil {
		return creditapi.LoanRequest{}, fmt.Errorf("tenure must be a whole number of months")
	}
	return creditapi.LoanRequest{
		CustomerID:   customerID,
		LoanAmount:   amount,
		InterestRate: rate,
		Tenure:       tenure,
	}, nil
}

type eligibilityView struct {
	Form      eligibilityForm
	Quote     *creditapi.EligibilityQuote
	Rejection string
	Error     string
}

func (h *EligibilityHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "eligibility", eligibilityView{})
}

// Check runs the first phase of the flow. On success the quote is rendered
// and, only when approved, the apply form carrying the original inputs as
// hidden fields. A failed call re-renders the form with the error banner.
func (h *EligibilityHandler) Check(c *gin.Context) {
	form := readEligibilityForm(c)
	req, err := form.toRequest()
	if err != nil {
		c.HTML(http.StatusOK, "eligibility", eligibilityView{Form: form, Error: err.Error()})
		return
	}

	flow := eligibility.NewFlow(h.svc)
	quote, err := flow.Check(c.Request.Context(), req)
	if err != nil {
		c.HTML(http.StatusOK, "eligibility", eligibilityView{Form: form, Error: errorMessage(err)})
		return
	}

	c.HTML(http.StatusOK, "eligibility", eligibilityView{Form: form, Quote: quote})
}

// Apply runs the second phase, reissuing the exact parameters that produced
// the quote. Approval redirects to the created loan; rejection renders the
// server's message verbatim with no navigation.
func (h *EligibilityHandler) Apply(c *gin.Context) {
	form := readEligibilityForm(c)
	req, err := form.toRequest()
	if err != nil {
		c.HTML(http.StatusOK, "eligibility", eligibilityView{Form: form, Error: err.Error()})
		return
	}

	quote := quoteFromForm(c, req)
	flow := eligibility.Resume(h.svc, req, quote)
	decision, err := flow.Apply(c.Request.Context())
	if err != nil {
		view := eligibilityView{Form: form}
		if err == eligibility.ErrNotApproved || err == eligibility.ErrNoQuote {
			view.Error = "Check eligibility before applying."
		} else {
			view.Quote = &quote
			view.Error = errorMessage(err)
		}
		c.HTML(http.StatusOK, "eligibility", view)
		return
	}

	if decision.LoanApproved && decision.LoanID != nil {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/loan/%d", *decision.LoanID))
		return
	}

	c.HTML(http.StatusOK, "eligibility", eligibilityView{
		Form:      form,
		Quote:     &quote,
		Rejection: decision.Message,
	})
}

func readEligibilityForm(c *gin.Context) eligibilityForm {
	return eligibilityForm{
		CustomerID:   strings.TrimSpace(c.PostForm("customer_id")),
		LoanAmount:   strings.TrimSpace(c.PostForm("loan_amount")),
		InterestRate: strings.TrimSpace(c.PostForm("interest_rate")),
		Tenure:       strings.TrimSpace(c.PostForm("tenure")),
	}
}

// quoteFromForm rebuilds the quote the apply submission carries in hidden
// fields. The verdict is what gates the transition; the price fields are
// display-only on re-render.
func quoteFromForm(c *gin.Context, req creditapi.LoanRequest) creditapi.EligibilityQuote {
	corrected, _ := decimal.NewFromString(strings.TrimSpace(c.PostForm("quote_corrected_rate")))
	installment, _ := decimal.NewFromString(strings.TrimSpace(c.PostForm("quote_monthly_installment")))
	return creditapi.EligibilityQuote{
		CustomerID:            req.CustomerID,
		Approval:              c.PostForm("quote_approval") == "true",
		CorrectedInterestRate: corrected,
		Tenure:                req.Tenure,
		MonthlyInstallment:    installment,
	}
}
