package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/internal/debates"
	"github.com/arguehive/debatehub-backend/internal/hub"
	"github.com/arguehive/debatehub-backend/internal/store"
	"github.com/arguehive/debatehub-backend/pkg/genai"
)

type noopGenerator struct{}

func (noopGenerator) GenerateDebate(_ context.Context, _ string) genai.GeneratedDebate {
	return genai.GeneratedDebate{}
}

func (noopGenerator) Summarize(_ context.Context, _ []string) string { return "" }

func newRoomServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	s := store.New()
	debate := s.CreateDebate("live topic", "creator", nil)

	svc, err := debates.NewService(debates.ServiceParams{Debates: s, Generator: noopGenerator{}})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/ws/debates/{debateId}", DebateRoomWS(hub.New(nil, nil), svc, nil))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, debate.ID
}

func dialRoom(t *testing.T, server *httptest.Server, debateID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/debates/" + debateID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) roomEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var event roomEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestRoomRejectsUnknownDebate(t *testing.T) {
	server, _ := newRoomServer(t)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/debates/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRoomPresenceProtocol(t *testing.T) {
	server, debateID := newRoomServer(t)

	first := dialRoom(t, server, debateID)
	event := readEvent(t, first)
	assert.Equal(t, "user_joined", event.Type)
	assert.Equal(t, 1, event.ActiveUsers)

	second := dialRoom(t, server, debateID)
	// both members see the second join with the post-join count
	event = readEvent(t, first)
	assert.Equal(t, "user_joined", event.Type)
	assert.Equal(t, 2, event.ActiveUsers)
	event = readEvent(t, second)
	assert.Equal(t, "user_joined", event.Type)
	assert.Equal(t, 2, event.ActiveUsers)

	// payloads are relayed verbatim to every member
	require.NoError(t, second.WriteMessage(websocket.TextMessage, []byte("hello room")))
	event = readEvent(t, first)
	assert.Equal(t, "message", event.Type)
	assert.Equal(t, "hello room", event.Data)
	assert.Equal(t, 2, event.ActiveUsers)
	event = readEvent(t, second)
	assert.Equal(t, "message", event.Type)

	// the survivor sees the leave with the post-leave count
	require.NoError(t, second.Close())
	event = readEvent(t, first)
	assert.Equal(t, "user_left", event.Type)
	assert.Equal(t, 1, event.ActiveUsers)
}
