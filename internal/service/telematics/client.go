package telematics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"LogiPulse/internal/domain/models"
	drepo "LogiPulse/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Client implements an EventStream backed by the telematics provider's
// WebSocket feed.
type Client struct {
	apiKey         string
	websocketURL   string
	tenants        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	conn      *websocket.Conn
	connected bool
}

// New creates a new telematics EventStream.
func New(apiKey, websocketURL string, tenants []string, reconnectDelay, pingInterval time.Duration) drepo.EventStream {
	return &Client{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		tenants:        tenants,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", c.websocketURL, c.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("telematics connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	log.Printf("telematics: connected")
	return nil
}

// Subscribe subscribes to configured tenants.
func (c *Client) Subscribe(ctx context.Context) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("telematics not connected")
	}
	for _, t := range c.tenants {
		msg := map[string]string{"type": "subscribe", "tenant": t}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", t, err)
		}
		log.Printf("telematics: subscribed %s", t)
	}
	return nil
}

type wsEvent struct {
	Tenant   string `json:"tenant"`
	Shipment string `json:"shipment"`
	Status   string `json:"status"`
	T        int64  `json:"t"` // ms
}

type wsMessage struct {
	Type string    `json:"type"`
	Data []wsEvent `json:"data"`
}

// Read streams TrackingEvents and errors.
func (c *Client) Read(ctx context.Context) (<-chan *models.TrackingEvent, <-chan error) {
	events := make(chan *models.TrackingEvent, 1024)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(events)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("telematics conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("telematics read: %w", err)
					return
				}
				var m wsMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-event frames
					continue
				}
				if m.Type != "event" {
					continue
				}
				for _, d := range m.Data {
					sec := d.T / 1000
					ev := &models.TrackingEvent{
						TenantID:   d.Tenant,
						ShipmentID: d.Shipment,
						Status:     models.ShipmentStatus(d.Status),
						Timestamp:  sec,
					}
					select {
					case events <- ev:
					default:
						// drop on backpressure
					}
				}
			}
		}
	}()

	return events, errs
}

// Reconnect closes and reconnects.
func (c *Client) Reconnect(ctx context.Context) error {
	_ = c.Close()
	time.Sleep(c.reconnectDelay)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	return c.Subscribe(ctx)
}

// Close closes the WS connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
