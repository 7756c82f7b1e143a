// Package cli is an interactive terminal client for the credit service. It
// drives the same transport client and eligibility flow as the web frontend.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
	"github.com/ArchitSaxena349/credit-approval-system/internal/eligibility"
)

// CreditService is everything the console needs from the transport client.
type CreditService interface {
	RegisterCustomer(ctx context.Context, req creditapi.RegisterRequest) (*creditapi.RegisterResponse, error)
	CheckEligibility(ctx context.Context, req creditapi.LoanRequest) (*creditapi.EligibilityQuote, error)
	CreateLoan(ctx context.Context, req creditapi.LoanRequest) (*creditapi.LoanDecision, error)
	ViewLoan(ctx context.Context, loanID int) (*creditapi.LoanDetail, error)
	ViewCustomerLoans(ctx context.Context, customerID int) ([]creditapi.CustomerLoan, error)
}

type UI struct {
	api CreditService
	in  *bufio.Reader
	out io.Writer
}

func NewUI(api CreditService, in *bufio.Reader, out io.Writer) *UI {
	return &UI{api: api, in: in, out: out}
}

// Run loops over the main menu until the user exits or input ends.
func (ui *UI) Run(ctx context.Context) {
	for {
		fmt.Fprintln(ui.out, "\n=== Credit Approval System ===")
		fmt.Fprintln(ui.out, "1) Search customer loans")
		fmt.Fprintln(ui.out, "2) Register customer")
		fmt.Fprintln(ui.out, "3) Check eligibility / apply")
		fmt.Fprintln(ui.out, "4) View loan details")
		fmt.Fprintln(ui.out, "0) Exit")
		fmt.Fprint(ui.out, "> ")
		choice, ok := ui.readLine()
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			ui.searchLoans(ctx)
		case "2":
			ui.register(ctx)
		case "3":
			ui.checkAndApply(ctx)
		case "4":
			ui.viewLoan(ctx)
		default:
			return
		}
	}
}

func (ui *UI) searchLoans(ctx context.Context) {
	id, ok := ui.readInt("Customer ID: ")
	if !ok {
		return
	}
	loans, err := ui.api.ViewCustomerLoans(ctx, id)
	if err != nil {
		ui.printError(err)
		return
	}
	if len(loans) == 0 {
		fmt.Fprintln(ui.out, "No active loans for this customer.")
		return
	}
	fmt.Fprintln(ui.out, "Loans:")
	for _, l := range loans {
		fmt.Fprintf(ui.out, "- #%d  amount %s  rate %s%%  repayments left %d\n",
			l.LoanID, l.LoanAmount, l.InterestRate, l.RepaymentsLeft)
	}
}

func (ui *UI) register(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Register Customer ===")
	first, ok := ui.readString("First name: ")
	if !ok {
		return
	}
	last, ok := ui.readString("Last name: ")
	if !ok {
		return
	}
	age, ok := ui.readInt("Age: ")
	if !ok {
		return
	}
	income, ok := ui.readInt("Monthly income: ")
	if !ok {
		return
	}
	phone, ok := ui.readString("Phone number: ")
	if !ok {
		return
	}

	result, err := ui.api.RegisterCustomer(ctx, creditapi.RegisterRequest{
		FirstName:     first,
		LastName:      last,
		Age:           age,
		MonthlyIncome: int64(income),
		PhoneNumber:   phone,
	})
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Registered %s with customer ID %d, approved limit %s.\n",
		result.Name, result.CustomerID, result.ApprovedLimit)
}

func (ui *UI) checkAndApply(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Check Eligibility ===")
	customerID, ok := ui.readInt("Customer ID: ")
	if !ok {
		return
	}
	amount, ok := ui.readFloat("Loan amount: ")
	if !ok {
		return
	}
	rate, ok := ui.readFloat("Interest rate (%): ")
	if !ok {
		return
	}
	tenure, ok := ui.readInt("Tenure (months): ")
	if !ok {
		return
	}

	flow := eligibility.NewFlow(ui.api)
	quote, err := flow.Check(ctx, creditapi.LoanRequest{
		CustomerID:   customerID,
		LoanAmount:   amount,
		InterestRate: rate,
		Tenure:       tenure,
	})
	if err != nil {
		ui.printError(err)
		return
	}

	fmt.Fprintf(ui.out, "Interest rate: %s%%\n", quote.CorrectedInterestRate)
	fmt.Fprintf(ui.out, "Monthly EMI:   %s\n", quote.MonthlyInstallment)
	fmt.Fprintf(ui.out, "Tenure:        %d months\n", quote.Tenure)
	if !quote.Approval {
		fmt.Fprintln(ui.out, "Not eligible for this loan.")
		return
	}

	fmt.Fprint(ui.out, "Eligible. Apply for this loan? (y/N): ")
	answer, ok := ui.readLine()
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return
	}

	decision, err := flow.Apply(ctx)
	if err != nil {
		ui.printError(err)
		return
	}
	if decision.LoanApproved && decision.LoanID != nil {
		fmt.Fprintf(ui.out, "Loan approved. Loan ID: %d\n", *decision.LoanID)
		return
	}
	fmt.Fprintf(ui.out, "Loan application rejected: %s\n", decision.Message)
}

func (ui *UI) viewLoan(ctx context.Context) {
	id, ok := ui.readInt("Loan ID: ")
	if !ok {
		return
	}
	loan, err := ui.api.ViewLoan(ctx, id)
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Loan #%d\n", loan.LoanID)
	fmt.Fprintf(ui.out, "  Customer: %s %s (age %d, %s)\n",
		loan.Customer.FirstName, loan.Customer.LastName, loan.Customer.Age, loan.Customer.PhoneNumber)
	fmt.Fprintf(ui.out, "  Amount:   %s\n", loan.LoanAmount)
	fmt.Fprintf(ui.out, "  Rate:     %s%%\n", loan.InterestRate)
	fmt.Fprintf(ui.out, "  Tenure:   %d months\n", loan.Tenure)
	fmt.Fprintf(ui.out, "  EMI:      %s\n", loan.MonthlyRepayment)
}

func (ui *UI) printError(err error) {
	if re, ok := creditapi.AsRemote(err); ok {
		fmt.Fprintf(ui.out, "Error from credit service: %s\n", re.Detail())
		return
	}
	fmt.Fprintln(ui.out, "Could not reach the credit service:", err)
}

func (ui *UI) readLine() (string, bool) {
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (ui *UI) readString(prompt string) (string, bool) {
	fmt.Fprint(ui.out, prompt)
	line, ok := ui.readLine()
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(line)
	if v == "" {
		fmt.Fprintln(ui.out, "A value is required.")
		return "", false
	}
	return v, true
}

func (ui *UI) readInt(prompt string) (int, bool) {
	line, ok := ui.readString(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(ui.out, "Expected a whole number.")
		return 0, false
	}
	return n, true
}

func (ui *UI) readFloat(prompt string) (float64, bool) {
	line, ok := ui.readString(prompt)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintln(ui.out, "Expected a number.")
		return 0, false
	}
	return f, true
}
