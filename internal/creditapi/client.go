package creditapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

// Client performs the five remote credit service operations. Each call issues
// exactly one outbound request; there are no retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("missing CREDIT_API_BASE_URL")
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid credit api base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// RegisterCustomer registers a new customer; the approved credit limit is
// assigned server-side.
func (c *Client) RegisterCustomer(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEligibility asks the service to price a prospective loan. The returned
// quote is advisory only.
func (c *Client) CheckEligibility(ctx context.Context, req LoanRequest) (*EligibilityQuote, error) {
	var out EligibilityQuote
	if err := c.do(ctx, http.MethodPost, "/check-eligibility/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLoan commits a loan application. The service re-evaluates eligibility
// at commit time, so the decision may diverge from an earlier quote. A 404
// whose body decodes as a decision (unknown customer) is returned as a
// rejected decision rather than a RemoteError, matching the upstream contract
// where rejection travels in-band.
func (c *Client) CreateLoan(ctx context.Context, req LoanRequest) (*LoanDecision, error) {
	var out LoanDecision
	err := c.do(ctx, http.MethodPost, "/create-loan/", req, &out)
	if err != nil {
		if re, ok := AsRemote(err); ok && re.StatusCode == http.StatusNotFound && len(re.Body) > 0 {
			var decision LoanDecision
			if jsonErr := json.Unmarshal(re.Body, &decision); jsonErr == nil && decision.Message != "" {
				return &decision, nil
			}
		}
		return nil, err
	}
	return &out, nil
}

// ViewLoan fetches a single loan with its embedded customer snapshot.
func (c *Client) ViewLoan(ctx context.Context, loanID int) (*LoanDetail, error) {
	var out LoanDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/view-loan/%d/", loanID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ViewCustomerLoans lists all loans held by a customer. An empty slice means
// the customer exists but has no loans; an unknown customer is a RemoteError.
func (c *Client) ViewCustomerLoans(ctx context.Context, customerID int) ([]CustomerLoan, error) {
	out := []CustomerLoan{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/view-loans/%d/", customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping hits the service root, used by readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("credit service unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if isJSON(resp.Header.Get("Content-Type")) {
		if !ok {
			return &RemoteError{StatusCode: resp.StatusCode, Body: raw}
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	if !ok {
		return &RemoteError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if s, ok := out.(*string); ok {
		*s = string(raw)
		return nil
	}
	if out == nil {
		return nil
	}
	return fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
