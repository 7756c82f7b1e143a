package creditapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, srvURL string) *Client {
	t.Helper()
	c, err := NewClient(srvURL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	if _, err := NewClient("", time.Second); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := NewClient("not-a-url", time.Second); err == nil {
		t.Fatal("expected error for url without scheme")
	}
	if _, err := NewClient("http://", time.Second); err == nil {
		t.Fatal("expected error for url without host")
	}
}

func TestRegisterCustomerRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/register/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("missing X-Request-ID")
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["first_name"] != "John" || body["last_name"] != "Doe" {
			t.Fatalf("unexpected name fields: %v", body)
		}
		if body["age"] != float64(30) || body["monthly_income"] != float64(50000) {
			t.Fatalf("unexpected numeric fields: %v", body)
		}
		if body["phone_number"] != "9876543210" {
			t.Fatalf("unexpected phone: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"customer_id":7,"name":"John Doe","age":30,"monthly_income":"50000.00","approved_limit":"1800000.00","phone_number":"9876543210"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := c.RegisterCustomer(context.Background(), RegisterRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Age:           30,
		MonthlyIncome: 50000,
		PhoneNumber:   "9876543210",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.CustomerID != 7 || out.Name != "John Doe" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if !out.ApprovedLimit.Equal(decimal.RequireFromString("1800000")) {
		t.Fatalf("unexpected approved limit: %s", out.ApprovedLimit)
	}
}

func TestCheckEligibilityDecodesQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/check-eligibility/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["customer_id"] != float64(7) || body["loan_amount"] != float64(100000) ||
			body["interest_rate"] != 10.5 || body["tenure"] != float64(12) {
			t.Fatalf("unexpected request body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"customer_id":7,"approval":true,"interest_rate":10.5,"corrected_interest_rate":12,"tenure":12,"monthly_installment":8884.88}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	quote, err := c.CheckEligibility(context.Background(), LoanRequest{
		CustomerID:   7,
		LoanAmount:   100000,
		InterestRate: 10.5,
		Tenure:       12,
	})
	if err != nil {
		t.Fatalf("check eligibility: %v", err)
	}
	if !quote.Approval {
		t.Fatal("expected approval")
	}
	if !quote.CorrectedInterestRate.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("unexpected corrected rate: %s", quote.CorrectedInterestRate)
	}
	if !quote.MonthlyInstallment.Equal(decimal.RequireFromString("8884.88")) {
		t.Fatalf("unexpected installment: %s", quote.MonthlyInstallment)
	}
}

func TestCreateLoanApproved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"loan_id":42,"customer_id":7,"loan_approved":true,"message":"Loan approved successfully","monthly_installment":8884.88}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	decision, err := c.CreateLoan(context.Background(), LoanRequest{CustomerID: 7, LoanAmount: 100000, InterestRate: 10.5, Tenure: 12})
	if err != nil {
		t.Fatalf("create loan: %v", err)
	}
	if !decision.LoanApproved || decision.LoanID == nil || *decision.LoanID != 42 {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestCreateLoanRejectionTravelsInBand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"loan_id":null,"customer_id":999,"loan_approved":false,"message":"Customer not found","monthly_installment":0}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	decision, err := c.CreateLoan(context.Background(), LoanRequest{CustomerID: 999, LoanAmount: 100000, InterestRate: 10.5, Tenure: 12})
	if err != nil {
		t.Fatalf("expected in-band rejection, got error: %v", err)
	}
	if decision.LoanApproved || decision.LoanID != nil {
		t.Fatalf("unexpected decision: %+v", decision)
	}
	if decision.Message != "Customer not found" {
		t.Fatalf("unexpected message: %q", decision.Message)
	}
}

func TestRemoteErrorCarriesStructuredBody(t *testing.T) {
	body := `{"loan_amount":["A valid number is required."]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CheckEligibility(context.Background(), LoanRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	re, ok := AsRemote(err)
	if !ok {
		t.Fatalf("expected RemoteError, got %T: %v", err, err)
	}
	if re.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", re.StatusCode)
	}
	if re.Detail() != body {
		t.Fatalf("unexpected detail: %s", re.Detail())
	}
}

func TestRemoteErrorPlainTextUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("stack trace here"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ViewLoan(context.Background(), 1)
	re, ok := AsRemote(err)
	if !ok {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if len(re.Body) != 0 {
		t.Fatalf("plain text body should not be carried as structured detail: %s", re.Body)
	}
	if re.Detail() != "Internal Server Error" {
		t.Fatalf("unexpected detail: %s", re.Detail())
	}
}

func TestTransportFailureIsNotRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ViewCustomerLoans(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := AsRemote(err); ok {
		t.Fatalf("transport failure must not be a RemoteError: %v", err)
	}
}

func TestViewLoanDecodesEmbeddedCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/view-loan/42/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"loan_id":42,"customer":{"id":7,"first_name":"John","last_name":"Doe","phone_number":"9876543210","age":30},"loan_amount":"100000.00","interest_rate":"12.00","monthly_repayment":"8884.88","tenure":12}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	loan, err := c.ViewLoan(context.Background(), 42)
	if err != nil {
		t.Fatalf("view loan: %v", err)
	}
	if loan.LoanID != 42 || loan.Customer.FirstName != "John" || loan.Customer.Age != 30 {
		t.Fatalf("unexpected loan: %+v", loan)
	}
	if !loan.MonthlyRepayment.Equal(decimal.RequireFromString("8884.88")) {
		t.Fatalf("unexpected repayment: %s", loan.MonthlyRepayment)
	}
}

func TestViewCustomerLoansEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/view-loans/7/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	loans, err := c.ViewCustomerLoans(context.Background(), 7)
	if err != nil {
		t.Fatalf("view loans: %v", err)
	}
	if loans == nil || len(loans) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", loans)
	}
}

func TestExactlyOneRequestPerCall(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.CheckEligibility(context.Background(), LoanRequest{}); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}

func TestPingToleratesNonJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Fatalf("double slash in path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/")
	if _, err := c.ViewCustomerLoans(context.Background(), 1); err != nil {
		t.Fatalf("view loans: %v", err)
	}
}
