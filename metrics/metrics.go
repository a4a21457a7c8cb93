package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "avaxtracker"

// Fetch and lookup outcomes used as the "result" label.
const (
	ResultSuccess = "success"
	ResultNetwork = "network_error"
	ResultParse   = "parse_error"
	ResultPartial = "partial"
	ResultFailure = "failure"
)

// Metrics holds the tracker collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	upstreamFetches *prometheus.CounterVec
	geoLookups      *prometheus.CounterVec
	uptime          *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		upstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_fetches_total",
			Help:      "Validator status fetches by result",
		}, []string{"result"}),
		geoLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geolocation_lookups_total",
			Help:      "Secondary geolocation lookups by result",
		}, []string{"result"}),
		uptime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validator_uptime_percent",
			Help:      "Last observed uptime percentage per validator",
		}, []string{"node_id"}),
	}

	for _, c := range []prometheus.Collector{m.upstreamFetches, m.geoLookups, m.uptime} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "could not register collector")
		}
	}
	return m, nil
}

func (m *Metrics) UpstreamFetch(result string) {
	if m == nil {
		return
	}
	m.upstreamFetches.WithLabelValues(result).Inc()
}

func (m *Metrics) GeoLookup(result string) {
	if m == nil {
		return
	}
	m.geoLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) Uptime(nodeID string, percent float64) {
	if m == nil {
		return
	}
	m.uptime.WithLabelValues(nodeID).Set(percent)
}
