package seating

import (
	"errors"
	"sync"
	"testing"
	"time"

	"lokanta-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	mu          sync.Mutex
	messages    []UpdateMessage
	failWrites  bool
	closed      bool
	hadDeadline bool
}

func (f *fakeViewer) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("bağlantı koptu")
	}
	if msg, ok := v.(UpdateMessage); ok {
		f.messages = append(f.messages, msg)
	}
	return nil
}

func (f *fakeViewer) SetWriteDeadline(t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hadDeadline = true
	return nil
}

func (f *fakeViewer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeViewer) snapshot() (int, bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages), f.closed, f.hadDeadline
}

func TestHubBroadcastsToAllViewers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	v1 := &fakeViewer{}
	v2 := &fakeViewer{}
	hub.register <- v1
	hub.register <- v2

	tables := []TableView{{ID: 1, Number: "M1", Status: models.TableAvailable}}
	hub.Broadcast(tables)

	require.Eventually(t, func() bool {
		n1, _, _ := v1.snapshot()
		n2, _, _ := v2.snapshot()
		return n1 == 1 && n2 == 1
	}, time.Second, 5*time.Millisecond)

	v1.mu.Lock()
	assert.Equal(t, "seating:update", v1.messages[0].Event)
	assert.Equal(t, "M1", v1.messages[0].Tables[0].Number)
	v1.mu.Unlock()
}

func TestHubDropsFailingViewerWithoutBlockingOthers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	broken := &fakeViewer{failWrites: true}
	healthy := &fakeViewer{}
	hub.register <- broken
	hub.register <- healthy

	hub.Broadcast([]TableView{{ID: 1, Number: "M1"}})

	// Sağlam izleyici mesajı alır, bozuk olan kapatılıp listeden düşer
	require.Eventually(t, func() bool {
		n, _, _ := healthy.snapshot()
		_, closed, _ := broken.snapshot()
		return n == 1 && closed
	}, time.Second, 5*time.Millisecond)

	hub.Broadcast([]TableView{{ID: 1, Number: "M1"}})
	require.Eventually(t, func() bool {
		n, _, _ := healthy.snapshot()
		return n == 2
	}, time.Second, 5*time.Millisecond)

	hub.mu.Lock()
	_, stillThere := hub.clients[broken]
	hub.mu.Unlock()
	assert.False(t, stillThere)
}

func TestHubSetsWriteDeadlineBeforeEachWrite(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	v := &fakeViewer{}
	hub.register <- v

	hub.Broadcast([]TableView{{ID: 1, Number: "M1"}})

	require.Eventually(t, func() bool {
		n, _, hadDeadline := v.snapshot()
		return n == 1 && hadDeadline
	}, time.Second, 5*time.Millisecond)
}

func TestHubUnregisterClosesConnection(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	v := &fakeViewer{}
	hub.register <- v
	hub.unregister <- v

	require.Eventually(t, func() bool {
		_, closed, _ := v.snapshot()
		return closed
	}, time.Second, 5*time.Millisecond)

	hub.mu.Lock()
	assert.Empty(t, hub.clients)
	hub.mu.Unlock()
}
