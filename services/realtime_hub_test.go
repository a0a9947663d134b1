package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHub_BroadcastReachesOnlyOwner(t *testing.T) {
	hub := NewRealtimeHub()
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{PartnerID: "p1", Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	var cl *WSClient
	select {
	case cl = <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("server never registered the connection")
	}
	assert.Equal(t, 1, hub.Connections("p1"))

	hub.Broadcast("p2", map[string]any{"kind": "food.created"})
	hub.Broadcast("p1", map[string]any{"kind": "food.created", "food": map[string]string{"name": "Dosa"}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "food.created", got["kind"])
	assert.Equal(t, "Dosa", got["food"].(map[string]any)["name"])

	hub.Unregister(cl)
	hub.Unregister(cl)
	assert.Equal(t, 0, hub.Connections("p1"))
}
