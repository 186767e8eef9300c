package inference

import "medcoder/internal/domain"

// OutcomeKind classifies the result of a remote endpoint attempt. Every
// failure mode of an invocation maps to exactly one kind; the client never
// lets an unclassified fault escape its boundary.
type OutcomeKind int

const (
	// OutcomeSuccess carries a well-formed, validated prediction list.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeTimeout means no response arrived within the configured budget.
	OutcomeTimeout
	// OutcomeTransportError covers connection failures and non-2xx statuses.
	OutcomeTransportError
	// OutcomeMalformedResponse means a response arrived but failed schema
	// validation.
	OutcomeMalformedResponse
	// OutcomeNotConfigured means no endpoint is configured; no network
	// attempt was made. This is a first-class state, not a fault.
	OutcomeNotConfigured
)

// String returns the kind's label, used in logs and metrics.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeMalformedResponse:
		return "malformed_response"
	case OutcomeNotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a remote attempt.
type Outcome struct {
	Kind OutcomeKind
	// Predictions is set only when Kind is OutcomeSuccess.
	Predictions domain.PredictionResult
	// Err is the underlying cause for failure kinds; nil for success and
	// for the not-configured state.
	Err error
}
