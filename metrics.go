package launchplan

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the planner. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ephemerisQueries *prometheus.CounterVec
	epochsScanned    prometheus.Counter
	windowsFound     prometheus.Counter
	scanDuration     prometheus.Histogram
	transfers        prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ephemerisQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchplan_ephemeris_queries_total",
				Help: "Total number of body positions requested from the ephemeris, per source.",
			},
			[]string{"source"},
		),
		epochsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "launchplan_epochs_scanned_total",
			Help: "Total number of days evaluated by the launch window scanner.",
		}),
		windowsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "launchplan_windows_found_total",
			Help: "Total number of launch window candidates found.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "launchplan_scan_duration_seconds",
			Help:    "Duration of launch window scans in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "launchplan_transfers_planned_total",
			Help: "Total number of Hohmann transfers planned.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ephemerisQueries, m.epochsScanned, m.windowsFound, m.scanDuration, m.transfers} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ephemerisQuery(source string) {
	if m == nil {
		return
	}
	m.ephemerisQueries.WithLabelValues(source).Inc()
}

func (m *Metrics) scanned(epochs, found int, took time.Duration) {
	if m == nil {
		return
	}
	m.epochsScanned.Add(float64(epochs))
	m.windowsFound.Add(float64(found))
	m.scanDuration.Observe(took.Seconds())
}

func (m *Metrics) transferPlanned() {
	if m == nil {
		return
	}
	m.transfers.Inc()
}
