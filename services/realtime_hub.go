package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	PartnerID string
	Conn      *websocket.Conn
	writeMu   sync.Mutex
}

// Write serializes writers on one connection; gorilla allows a single concurrent writer.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub tracks live websocket connections per food partner.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.PartnerID] == nil {
		h.clients[c.PartnerID] = make(map[*WSClient]struct{})
	}
	h.clients[c.PartnerID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister is safe to call more than once for the same client.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.PartnerID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.PartnerID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Connections(partnerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[partnerID])
}

func (h *RealtimeHub) Broadcast(partnerID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: marshal event: %v", err)
		return
	}
	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[partnerID]))
	for c := range h.clients[partnerID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.Write(websocket.TextMessage, msg); err != nil {
			h.Unregister(c)
		}
	}
}
