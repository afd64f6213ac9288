package telematics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"LogiPulse/internal/domain/models"
)

func TestClientReadsTypedEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// consume the subscribe frame, then emit one event batch
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		frame := `{"type":"event","data":[{"tenant":"t1","shipment":"SHIP-9","status":"delivered","t":1718000000000}]}`
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	stream := New("test-key", url, []string{"t1"}, time.Second, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := stream.Connect(ctx); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer stream.Close()
	if !stream.IsConnected() {
		t.Fatalf("expected connected stream")
	}
	if err := stream.Subscribe(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	evCh, errCh := stream.Read(ctx)
	select {
	case ev := <-evCh:
		if ev.TenantID != "t1" || ev.ShipmentID != "SHIP-9" {
			t.Fatalf("unexpected event identity: %+v", ev)
		}
		if ev.Status != models.ShipmentDelivered {
			t.Fatalf("expected status %q, got %q", models.ShipmentDelivered, ev.Status)
		}
		if ev.Timestamp != 1718000000 {
			t.Fatalf("expected ms timestamp scaled to seconds, got %d", ev.Timestamp)
		}
	case err := <-errCh:
		t.Fatalf("stream error: %v", err)
	case <-ctx.Done():
		t.Fatalf("timed out waiting for event")
	}
}
