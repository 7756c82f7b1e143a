// Package eligibility models the two-phase quote-then-apply interaction
// against the credit service. The service re-checks eligibility at commit
// time, so the two phases stay separate network calls and the apply outcome
// may diverge from the quote.
package eligibility

import (
	"context"
	"errors"

	"github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"
)

type State int

const (
	StateIdle State = iota
	StateQuoted
	StateApplying
	StateApproved
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateQuoted:
		return "quoted"
	case StateApplying:
		return "applying"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

var (
	// ErrNoQuote means Apply was invoked without a quote in hand.
	ErrNoQuote = errors.New("no eligibility quote held")
	// ErrNotApproved means Apply was invoked on a quote the service declined.
	ErrNotApproved = errors.New("quote was not approved")
	// ErrBusy means a phase was invoked while a call is already in flight.
	ErrBusy = errors.New("a request is already in flight")
)

// Service is the slice of the transport client the flow needs.
type Service interface {
	CheckEligibility(ctx context.Context, req creditapi.LoanRequest) (*creditapi.EligibilityQuote, error)
	CreateLoan(ctx context.Context, req creditapi.LoanRequest) (*creditapi.LoanDecision, error)
}

// Flow is a single eligibility-check-then-apply interaction. It is owned by
// one user interaction at a time and is not safe for concurrent use.
type Flow struct {
	svc   Service
	state State

	// request is the exact input that produced quote. Apply reissues it
	// unchanged rather than re-reading form state.
	request creditapi.LoanRequest
	quote   *creditapi.EligibilityQuote

	decision *creditapi.LoanDecision
}

func NewFlow(svc Service) *Flow {
	return &Flow{svc: svc, state: StateIdle}
}

// Resume reconstructs a flow already in the Quoted state from a previously
// obtained quote and the request that produced it. Stateless front ends use
// this to carry the quote across the check and apply submissions.
func Resume(svc Service, req creditapi.LoanRequest, quote creditapi.EligibilityQuote) *Flow {
	return &Flow{svc: svc, state: StateQuoted, request: req, quote: &quote}
}

func (f *Flow) State() State { return f.state }

// Quote returns the held quote, or nil outside Quoted and later states.
func (f *Flow) Quote() *creditapi.EligibilityQuote { return f.quote }

// Request returns the input that produced the current quote.
func (f *Flow) Request() creditapi.LoanRequest { return f.request }

// Decision returns the apply outcome, or nil before Apply has settled.
func (f *Flow) Decision() *creditapi.LoanDecision { return f.decision }

// Check submits the eligibility request. It is legal from Idle and from any
// settled state; re-submission discards the previous quote and decision. On
// failure the flow keeps whatever state it had before the call.
func (f *Flow) Check(ctx context.Context, req creditapi.LoanRequest) (*creditapi.EligibilityQuote, error) {
	if f.state == StateApplying {
		return nil, ErrBusy
	}
	quote, err := f.svc.CheckEligibility(ctx, req)
	if err != nil {
		return nil, err
	}
	f.state = StateQuoted
	f.request = req
	f.quote = quote
	f.decision = nil
	return quote, nil
}

// Apply commits the loan application using the exact request that produced
// the held quote. Legal only from Quoted with an approved quote. A transport
// or remote failure returns the flow to Quoted; a settled decision moves it
// to Approved or Rejected.
func (f *Flow) Apply(ctx context.Context) (*creditapi.LoanDecision, error) {
	switch f.state {
	case StateApplying:
		return nil, ErrBusy
	case StateQuoted:
	default:
		return nil, ErrNoQuote
	}
	if f.quote == nil {
		return nil, ErrNoQuote
	}
	if !f.quote.Approval {
		return nil, ErrNotApproved
	}

	f.state = StateApplying
	decision, err := f.svc.CreateLoan(ctx, f.request)
	if err != nil {
		f.state = StateQuoted
		return nil, err
	}

	f.decision = decision
	if decision.LoanApproved {
		f.state = StateApproved
	} else {
		f.state = StateRejected
	}
	return decision, nil
}
