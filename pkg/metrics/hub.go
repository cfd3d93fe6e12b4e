package metrics

import "github.com/prometheus/client_golang/prometheus"

// HubMetrics tracks live room membership and fan-out volume.
type HubMetrics struct {
	rooms       prometheus.Gauge
	connections prometheus.Gauge
	broadcasts  *prometheus.CounterVec
}

// NewHubMetrics registers the hub metrics on the provided registerer.
func NewHubMetrics(reg prometheus.Registerer) *HubMetrics {
	if reg == nil {
		return &HubMetrics{}
	}
	rooms := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hub_active_rooms",
		Help: "Rooms with at least one connected client.",
	})
	connections := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hub_active_connections",
		Help: "Live client connections across all rooms.",
	})
	broadcasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hub_broadcasts_total",
		Help: "Broadcast deliveries by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(rooms, connections, broadcasts)
	return &HubMetrics{
		rooms:       rooms,
		connections: connections,
		broadcasts:  broadcasts,
	}
}

// SetRooms records the current number of non-empty rooms.
func (h *HubMetrics) SetRooms(count int) {
	if h == nil || h.rooms == nil {
		return
	}
	h.rooms.Set(float64(count))
}

// SetConnections records the current number of live connections.
func (h *HubMetrics) SetConnections(count int) {
	if h == nil || h.connections == nil {
		return
	}
	h.connections.Set(float64(count))
}

// IncDelivered counts a successful send to one member.
func (h *HubMetrics) IncDelivered() {
	if h == nil || h.broadcasts == nil {
		return
	}
	h.broadcasts.WithLabelValues("delivered").Inc()
}

// IncFailed counts a failed send that pruned a member.
func (h *HubMetrics) IncFailed() {
	if h == nil || h.broadcasts == nil {
		return
	}
	h.broadcasts.WithLabelValues("failed").Inc()
}
