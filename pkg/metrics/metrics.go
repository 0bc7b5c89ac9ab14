package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Signups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tours", Name: "signup_total", Help: "Number of signup attempts by result."},
		[]string{"result"},
	)
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tours", Name: "login_total", Help: "Number of login attempts by result."},
		[]string{"result"},
	)
	SessionDenials = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "tours", Name: "session_denied_total", Help: "Number of protected requests denied for a missing or expired session."},
	)
	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tours", Name: "records_created_total", Help: "Number of persisted records by kind."},
		[]string{"kind"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Signups)
	reg.MustRegister(Logins)
	reg.MustRegister(SessionDenials)
	reg.MustRegister(RecordsCreated)
}
