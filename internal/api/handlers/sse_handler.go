package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/providers"
)

// SSEHandler handles Server-Sent Events for real-time voucher updates
type SSEHandler struct {
	eventBus providers.EventBus
	clients  int
	mu       sync.RWMutex
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{eventBus: eventBus}
}

// StreamVoucherUpdates handles SSE connections for voucher lifecycle events.
// An optional health_id query parameter narrows the stream to one patient.
// GET /api/stream/vouchers?health_id=X
func (h *SSEHandler) StreamVoucherUpdates(w http.ResponseWriter, r *http.Request) {
	healthIDID := strings.TrimSpace(r.URL.Query().Get("health_id"))

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	eventChan, err := h.eventBus.Subscribe(r.Context(), services.VoucherEventsChannel)
	if err != nil {
		log.Printf("Failed to subscribe to channel %s: %v", services.VoucherEventsChannel, err)
		return
	}
	defer func() {
		// The request context is already canceled on disconnect
		if err := h.eventBus.Unsubscribe(context.Background(), services.VoucherEventsChannel, eventChan); err != nil {
			log.Printf("Warning: failed to unsubscribe from channel %s: %v", services.VoucherEventsChannel, err)
		}
	}()

	h.addClient()
	defer h.removeClient()

	// Send initial connection event
	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   services.VoucherEventsChannel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	// Keep connection alive and send events
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("Client disconnected from voucher stream")
			return
		case <-ticker.C:
			// Send heartbeat
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, open := <-eventChan:
			if !open {
				return
			}
			if event == nil {
				continue
			}
			if healthIDID != "" && event.HealthIDID != healthIDID {
				continue
			}
			h.sendEvent(w, string(event.EventType), event)
			flusher.Flush()
		}
	}
}

// sendEvent sends an SSE event to the client
func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal event data: %v", err)
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

func (h *SSEHandler) addClient() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients++
	log.Printf("Client connected to voucher stream (total: %d)", h.clients)
}

func (h *SSEHandler) removeClient() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients--
	log.Printf("Client disconnected from voucher stream (remaining: %d)", h.clients)
}

// GetClientCount returns the number of connected clients for debugging
func (h *SSEHandler) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}
