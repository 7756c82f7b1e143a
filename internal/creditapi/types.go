package creditapi

import "github.com/shopspring/decimal"

// RegisterRequest is the payload for POST /register/.
type RegisterRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Age           int    `json:"age"`
	MonthlyIncome int64  `json:"monthly_income"`
	PhoneNumber   string `json:"phone_number"`
}

// RegisterResponse is the customer snapshot returned by POST /register/.
// approved_limit is computed server-side at registration time.
type RegisterResponse struct {
	CustomerID    int             `json:"customer_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
	PhoneNumber   string          `json:"phone_number"`
}

// LoanRequest carries the four parameters shared by check-eligibility and
// create-loan. The apply phase must reuse the exact value that produced the
// quote, so both operations accept the same type.
type LoanRequest struct {
	CustomerID   int     `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

// EligibilityQuote is the advisory pricing result of POST /check-eligibility/.
// It never implies a loan exists; creation is a separate explicit call.
type EligibilityQuote struct {
	CustomerID            int             `json:"customer_id"`
	Approval              bool            `json:"approval"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	CorrectedInterestRate decimal.Decimal `json:"corrected_interest_rate"`
	Tenure                int             `json:"tenure"`
	MonthlyInstallment    decimal.Decimal `json:"monthly_installment"`
}

// LoanDecision is the outcome of POST /create-loan/. LoanID is nil when the
// application was rejected; Message carries the server's reason verbatim.
type LoanDecision struct {
	LoanID             *int            `json:"loan_id"`
	CustomerID         int             `json:"customer_id"`
	LoanApproved       bool            `json:"loan_approved"`
	Message            string          `json:"message"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

// CustomerSnapshot is the customer record embedded in a loan detail response.
type CustomerSnapshot struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

// LoanDetail is the full record returned by GET /view-loan/{loan_id}/.
// The upstream serializes decimal columns as JSON strings and computed values
// as numbers; decimal.Decimal accepts both encodings.
type LoanDetail struct {
	LoanID           int              `json:"loan_id"`
	Customer         CustomerSnapshot `json:"customer"`
	LoanAmount       decimal.Decimal  `json:"loan_amount"`
	InterestRate     decimal.Decimal  `json:"interest_rate"`
	MonthlyRepayment decimal.Decimal  `json:"monthly_repayment"`
	Tenure           int              `json:"tenure"`
}

// CustomerLoan is one element of the GET /view-loans/{customer_id}/ listing.
type CustomerLoan struct {
	LoanID             int             `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}
