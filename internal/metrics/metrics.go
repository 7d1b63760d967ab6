package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by the service
const (
	ResultEligible      = "eligible"
	ResultRegistered    = "registered"
	ResultNotEligible   = "not_eligible"
	ResultError         = "error"
	OutcomeSuccess      = "success"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
	OperationLoadElig   = "load_eligibility"
	OperationLoadRegs   = "load_registrations"
	OperationAppendRegs = "append_registration"
)

var (
	// EligibilityChecks counts eligibility lookups by chain and result
	EligibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_eligibility_checks_total",
			Help: "Total number of eligibility checks",
		},
		[]string{"chain", "result"},
	)

	// Registrations counts registration attempts by outcome and rejection type
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_registrations_total",
			Help: "Total number of registration attempts",
		},
		[]string{"outcome", "type"},
	)

	// RegisteredTokens accumulates the tokens of successful registrations
	RegisteredTokens = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_registered_tokens_total",
			Help: "Total tokens allocated by successful registrations",
		},
	)

	// RegistrationDuration tracks registration processing time
	RegistrationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "airdrop_registration_duration_seconds",
			Help:    "Registration processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// StoreErrors counts storage failures by operation
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_store_errors_total",
			Help: "Total number of storage errors",
		},
		[]string{"operation"},
	)
)
