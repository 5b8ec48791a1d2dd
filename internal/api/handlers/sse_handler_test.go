package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/medilinkx/benefits-backend/internal/api/handlers"
	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// MockEventBus for testing
type MockEventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan *entities.VoucherEvent
	published   []*entities.VoucherEvent
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{
		subscribers: make(map[string][]chan *entities.VoucherEvent),
		published:   make([]*entities.VoucherEvent, 0),
	}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.VoucherEvent) error {
	m.mu.Lock()
	m.published = append(m.published, event)
	channels := append([]chan *entities.VoucherEvent(nil), m.subscribers[channel]...)
	m.mu.Unlock()

	for _, ch := range channels {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.VoucherEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan *entities.VoucherEvent, 10)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string, ch <-chan *entities.VoucherEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	remaining := m.subscribers[channel][:0]
	for _, sub := range m.subscribers[channel] {
		if (<-chan *entities.VoucherEvent)(sub) != ch {
			remaining = append(remaining, sub)
		}
	}
	m.subscribers[channel] = remaining
	return nil
}

func (m *MockEventBus) Close() error {
	m.mu.Lock()
	subs := m.subscribers
	m.subscribers = make(map[string][]chan *entities.VoucherEvent)
	m.mu.Unlock()
	for _, channels := range subs {
		for _, ch := range channels {
			close(ch)
		}
	}
	return nil
}

func (m *MockEventBus) PublishedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.published)
}

func TestSSEHandler_StreamVoucherUpdates(t *testing.T) {
	t.Run("should establish SSE connection", func(t *testing.T) {
		eventBus := NewMockEventBus()
		handler := handlers.NewSSEHandler(eventBus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req := httptest.NewRequest("GET", "/api/stream/vouchers", nil)
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.StreamVoucherUpdates(w, req)
			close(done)
		}()

		// Wait a bit for connection to establish
		time.Sleep(100 * time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not exit after cancel")
		}

		result := w.Result()
		if result.Header.Get("Content-Type") != "text/event-stream" {
			t.Errorf("Expected Content-Type text/event-stream, got %s", result.Header.Get("Content-Type"))
		}
		if result.Header.Get("Cache-Control") != "no-cache" {
			t.Errorf("Expected Cache-Control no-cache, got %s", result.Header.Get("Cache-Control"))
		}
		if !strings.Contains(w.Body.String(), "event: connected") {
			t.Error("Expected initial connected event in stream")
		}
	})

	t.Run("should receive voucher events", func(t *testing.T) {
		eventBus := NewMockEventBus()
		handler := handlers.NewSSEHandler(eventBus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req := httptest.NewRequest("GET", "/api/stream/vouchers", nil)
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.StreamVoucherUpdates(w, req)
			close(done)
		}()

		// Wait for connection
		time.Sleep(100 * time.Millisecond)

		event := entities.NewVoucherEvent(
			"voucher-001",
			"hid-001",
			entities.VoucherEventTypeClaimed,
			map[string]interface{}{"status": "claimed"},
		)
		eventBus.Publish(context.Background(), services.VoucherEventsChannel, event)

		// Wait for event to be sent
		time.Sleep(200 * time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not exit after cancel")
		}

		if eventBus.PublishedCount() == 0 {
			t.Error("Expected event to be published")
		}
		if !strings.Contains(w.Body.String(), "event: voucher_claimed") {
			t.Error("Expected voucher_claimed event in stream")
		}
	})

	t.Run("should filter events by health id", func(t *testing.T) {
		eventBus := NewMockEventBus()
		handler := handlers.NewSSEHandler(eventBus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req := httptest.NewRequest("GET", "/api/stream/vouchers?health_id=hid-mine", nil)
		req = req.WithContext(ctx)
		w := httptest.NewRecorder()

		done := make(chan struct{})
		go func() {
			handler.StreamVoucherUpdates(w, req)
			close(done)
		}()
		time.Sleep(100 * time.Millisecond)

		mine := entities.NewVoucherEvent(
			"voucher-mine",
			"hid-mine",
			entities.VoucherEventTypeCreated,
			nil,
		)
		other := entities.NewVoucherEvent(
			"voucher-other",
			"hid-other",
			entities.VoucherEventTypeCreated,
			nil,
		)
		eventBus.Publish(context.Background(), services.VoucherEventsChannel, mine)
		eventBus.Publish(context.Background(), services.VoucherEventsChannel, other)

		time.Sleep(200 * time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not exit after cancel")
		}

		body := w.Body.String()
		if !strings.Contains(body, "voucher-mine") {
			t.Error("Expected event for subscribed health ID in stream")
		}
		if strings.Contains(body, "voucher-other") {
			t.Error("Did not expect event for other health ID in stream")
		}
	})
}

func TestSSEHandler_ClientCount(t *testing.T) {
	eventBus := NewMockEventBus()
	handler := handlers.NewSSEHandler(eventBus)

	// Initial count should be 0
	if count := handler.GetClientCount(); count != 0 {
		t.Errorf("Expected 0 clients, got %d", count)
	}

	req := httptest.NewRequest("GET", "/api/stream/vouchers", nil)
	w := httptest.NewRecorder()

	ctx, cancel := context.WithCancel(context.Background())
	req = req.WithContext(ctx)

	go handler.StreamVoucherUpdates(w, req)
	time.Sleep(100 * time.Millisecond)

	if count := handler.GetClientCount(); count != 1 {
		t.Errorf("Expected 1 client, got %d", count)
	}

	cancel()
	time.Sleep(100 * time.Millisecond)

	if count := handler.GetClientCount(); count != 0 {
		t.Errorf("Expected 0 clients after disconnect, got %d", count)
	}
}
