package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/arguehive/debatehub-backend/api/responses"
	"github.com/arguehive/debatehub-backend/internal/debates"
	"github.com/arguehive/debatehub-backend/internal/hub"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

const maxWSMessageBytes = 16 * 1024

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the room protocol carries no credentials, so origin gating adds nothing
		return true
	},
}

// roomEvent is the wire format for room broadcasts.
type roomEvent struct {
	Type        string `json:"type"`
	Data        string `json:"data,omitempty"`
	ActiveUsers int    `json:"active_users"`
}

// wsClient adapts a websocket connection to the hub. Gorilla connections
// allow one concurrent writer, hence the mutex.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSClient(conn *websocket.Conn) *wsClient {
	return &wsClient{conn: conn}
}

func (c *wsClient) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// DebateRoomWS upgrades the connection and runs the room presence protocol:
// a join broadcast with the post-join member count, verbatim relay of client
// payloads, and a leave broadcast with the post-leave count.
func DebateRoomWS(roomHub *hub.Hub, svc debates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		debateID := chi.URLParam(r, "debateId")
		if _, err := svc.Get(r.Context(), debateID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		conn, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the handshake error
			if logg != nil {
				logg.Warn(logg.WithDebateID(r.Context(), debateID), "websocket upgrade failed")
			}
			return
		}
		conn.SetReadLimit(maxWSMessageBytes)

		ctx := context.WithoutCancel(r.Context())
		if logg != nil {
			ctx = logg.WithDebateID(ctx, debateID)
			logg.Info(ctx, "room member connected")
		}

		client := newWSClient(conn)
		roomHub.Join(debateID, client)
		broadcastEvent(ctx, roomHub, logg, debateID, roomEvent{
			Type:        "user_joined",
			ActiveUsers: roomHub.ActiveCount(debateID),
		})

		defer func() {
			roomHub.Leave(debateID, client)
			conn.Close()
			broadcastEvent(ctx, roomHub, logg, debateID, roomEvent{
				Type:        "user_left",
				ActiveUsers: roomHub.ActiveCount(debateID),
			})
			if logg != nil {
				logg.Info(ctx, "room member disconnected")
			}
		}()

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			broadcastEvent(ctx, roomHub, logg, debateID, roomEvent{
				Type:        "message",
				Data:        string(payload),
				ActiveUsers: roomHub.ActiveCount(debateID),
			})
		}
	}
}

func broadcastEvent(ctx context.Context, roomHub *hub.Hub, logg *logger.Logger, debateID string, event roomEvent) {
	raw, err := json.Marshal(event)
	if err != nil {
		if logg != nil {
			logg.Error(ctx, "marshal room event", err)
		}
		return
	}
	roomHub.Broadcast(ctx, debateID, raw)
}
