package mcwire

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gstoney/mcwire/packet"
)

// Metrics counts packets and connections. A nil *Metrics records nothing.
type Metrics struct {
	packetsDecoded    *prometheus.CounterVec
	packetsEncoded    *prometheus.CounterVec
	decodeErrors      *prometheus.CounterVec
	connectionsActive prometheus.Gauge
}

// NewMetrics registers the collectors with reg under the "mcwire"
// namespace.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		packetsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcwire",
			Name:      "packets_decoded_total",
			Help:      "Packets decoded, by direction and phase",
		}, []string{"direction", "phase"}),

		packetsEncoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcwire",
			Name:      "packets_encoded_total",
			Help:      "Packets encoded, by direction and phase",
		}, []string{"direction", "phase"}),

		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcwire",
			Name:      "decode_errors_total",
			Help:      "Frames that failed to decode, by error kind",
		}, []string{"kind"}),

		connectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mcwire",
			Name:      "connections_active",
			Help:      "Connections currently open",
		}),
	}
}

func (m *Metrics) decoded(dir packet.Direction, phase packet.Phase) {
	if m == nil {
		return
	}
	m.packetsDecoded.WithLabelValues(dir.String(), phase.String()).Inc()
}

func (m *Metrics) encoded(dir packet.Direction, phase packet.Phase) {
	if m == nil {
		return
	}
	m.packetsEncoded.WithLabelValues(dir.String(), phase.String()).Inc()
}

func (m *Metrics) decodeFailed(err error) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(packet.ErrorKind(err)).Inc()
}

func (m *Metrics) connOpened() {
	if m == nil {
		return
	}
	m.connectionsActive.Inc()
}

func (m *Metrics) connClosed() {
	if m == nil {
		return
	}
	m.connectionsActive.Dec()
}
