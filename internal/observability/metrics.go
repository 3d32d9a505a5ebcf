package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedMutations counts feed store mutations by operation.
	FeedMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventwall_feed_mutations_total",
		Help: "Total number of feed store mutations by operation",
	}, []string{"operation"})

	// SimulatorTicks counts executed simulator ticks.
	SimulatorTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventwall_simulator_ticks_total",
		Help: "Total number of simulator ticks executed",
	})

	// SyntheticLikes counts synthetic like increments applied by the simulator.
	SyntheticLikes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventwall_synthetic_likes_total",
		Help: "Total number of synthetic like increments",
	})

	// NotificationsPushed counts notifications pushed by kind.
	NotificationsPushed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventwall_notifications_pushed_total",
		Help: "Total number of notifications pushed by kind",
	}, []string{"kind"})

	// SessionTransitions counts session state machine transitions by target state.
	SessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventwall_session_transitions_total",
		Help: "Total number of session state transitions by target state",
	}, []string{"state"})

	// AuthRequests counts auth server requests by endpoint and outcome.
	AuthRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventwall_auth_requests_total",
		Help: "Total number of auth requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
)
