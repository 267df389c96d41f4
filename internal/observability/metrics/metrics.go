package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters for lead intake and the pricing calculator.
type SiteMetrics struct {
	leadsTotal   *prometheus.CounterVec
	sinkFailures prometheus.Counter
	quotesTotal  *prometheus.CounterVec
	emiTotal     prometheus.Counter
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aether",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome", "reason"}),
		sinkFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aether",
			Subsystem: "leads",
			Name:      "sink_failures_total",
			Help:      "Total lead sink write failures",
		}),
		quotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aether",
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Total price quotes by unit code",
		}, []string{"unit_code"}),
		emiTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aether",
			Subsystem: "pricing",
			Name:      "emi_requests_total",
			Help:      "Total EMI computations served",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.sinkFailures, m.quotesTotal, m.emiTotal)
	return m
}

func (m *SiteMetrics) ObserveLead(outcome, reason string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(outcome, reason).Inc()
}

func (m *SiteMetrics) ObserveSinkFailure() {
	if m == nil {
		return
	}
	m.sinkFailures.Inc()
}

func (m *SiteMetrics) ObserveQuote(unitCode string) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(unitCode).Inc()
}

func (m *SiteMetrics) ObserveEMI() {
	if m == nil {
		return
	}
	m.emiTotal.Inc()
}
