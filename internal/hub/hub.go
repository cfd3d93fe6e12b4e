package hub

import (
	"context"
	"sync"

	"github.com/arguehive/debatehub-backend/pkg/logger"
	"github.com/arguehive/debatehub-backend/pkg/metrics"
)

// Client is one live connection. Send must be safe for concurrent use; a
// non-nil error marks the client dead and gets it pruned from its room.
type Client interface {
	Send(payload []byte) error
}

// Hub tracks room membership keyed by debate id and fans messages out to
// every member. Rooms exist only while non-empty.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[Client]struct{}

	logg *logger.Logger
	hm   *metrics.HubMetrics
}

// New builds an empty hub. Logger and metrics may be nil.
func New(logg *logger.Logger, hm *metrics.HubMetrics) *Hub {
	return &Hub{
		rooms: map[string]map[Client]struct{}{},
		logg:  logg,
		hm:    hm,
	}
}

// Join adds the client to the room, creating the room if needed.
func (h *Hub) Join(roomID string, client Client) {
	if client == nil {
		return
	}
	h.mu.Lock()
	room, ok := h.rooms[roomID]
	if !ok {
		room = map[Client]struct{}{}
		h.rooms[roomID] = room
	}
	room[client] = struct{}{}
	h.updateGaugesLocked()
	h.mu.Unlock()
}

// Leave removes the client from the room and tears the room down when it
// becomes empty. Leaving a room the client is not in is a no-op.
func (h *Hub) Leave(roomID string, client Client) {
	h.mu.Lock()
	h.leaveLocked(roomID, client)
	h.mu.Unlock()
}

func (h *Hub) leaveLocked(roomID string, client Client) {
	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	if _, member := room[client]; !member {
		return
	}
	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
	h.updateGaugesLocked()
}

// ActiveCount returns the number of clients currently in the room.
func (h *Hub) ActiveCount(roomID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}

// Broadcast sends the payload to every member of the room. Sends happen
// outside the lock against a membership snapshot; a failed send prunes that
// member and never fails the broadcast. Broadcasting to an absent room is a
// no-op.
func (h *Hub) Broadcast(ctx context.Context, roomID string, payload []byte) {
	h.mu.Lock()
	room, ok := h.rooms[roomID]
	if !ok {
		h.mu.Unlock()
		return
	}
	members := make([]Client, 0, len(room))
	for client := range room {
		members = append(members, client)
	}
	h.mu.Unlock()

	var failed []Client
	for _, client := range members {
		if err := client.Send(payload); err != nil {
			failed = append(failed, client)
			h.hm.IncFailed()
			if h.logg != nil {
				h.logg.Warn(h.logg.WithDebateID(ctx, roomID), "dropping unresponsive room member")
			}
			continue
		}
		h.hm.IncDelivered()
	}

	if len(failed) == 0 {
		return
	}
	h.mu.Lock()
	for _, client := range failed {
		h.leaveLocked(roomID, client)
	}
	h.mu.Unlock()
}

func (h *Hub) updateGaugesLocked() {
	if h.hm == nil {
		return
	}
	connections := 0
	for _, room := range h.rooms {
		connections += len(room)
	}
	h.hm.SetRooms(len(h.rooms))
	h.hm.SetConnections(connections)
}
