package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request authentication outcomes.
const (
	OutcomeAnonymous     = "anonymous"
	OutcomeAuthenticated = "authenticated"
	OutcomeInvalid       = "invalid"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	RequestAuthentications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepthoughts_request_authentications_total",
			Help: "Total number of requests seen by the authenticator by outcome.",
		},
		[]string{"outcome"},
	)

	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepthoughts_signups_total",
			Help: "Total number of signup attempts by status.",
		},
		[]string{"status"},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepthoughts_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	GraphQLRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepthoughts_graphql_requests_total",
			Help: "Total number of executed GraphQL requests by status.",
		},
		[]string{"status"},
	)
)

// Status maps an error to the status label.
func Status(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

func Handler() http.Handler {
	return promhttp.Handler()
}
