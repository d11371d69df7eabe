// Package chat holds the realtime side of direct messaging: a registry of
// open websocket connections keyed by user id, and the per-connection read
// and write pumps. Delivery is at-most-once while a connection is open;
// there is no queueing or replay for offline users.
package chat

import (
	"sync"

	"go.uber.org/zap"

	"github.com/d60-Lab/lazybook/pkg/logger"
)

// Hub maps a user id to the set of that user's currently open connections.
// A user with two browser tabs has two entries in the same set.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.conns[c.userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.userID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, c.userID)
	}
}

// SendToUser pushes the payload to every open connection of the given user.
// Fire and forget: a full or stalled connection drops its copy without
// affecting delivery to the others.
func (h *Hub) SendToUser(userID string, payload []byte) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	for _, c := range targets {
		if !c.Enqueue(payload) {
			logger.Warn("chat send buffer full, dropping event",
				zap.String("user", userID))
		}
	}
}

// ConnectionCount reports how many connections a user currently has open.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}
