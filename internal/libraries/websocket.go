package libraries

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WebSocketMessage represents the standard structure for all websocket messages
type WebSocketMessageType string

const (
	WebSocketMessageTypePing       WebSocketMessageType = "ping"
	WebSocketMessageTypePong       WebSocketMessageType = "pong"
	WebSocketMessageTypeError      WebSocketMessageType = "error"
	WebSocketMessageTypeSubscribe  WebSocketMessageType = "subscribe"
	WebSocketMessageTypeSubscribed WebSocketMessageType = "subscribed"
	WebSocketMessageTypeThemeSaved WebSocketMessageType = "theme_saved"
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	// themeID is owned by Hub.Run; connection goroutines change it only by
	// sending a subscribeRequest.
	themeID string

	mu     sync.Mutex
	closed bool
	once   sync.Once
}

// send delivers a message unless the client has already been unregistered.
// A slow client with a full buffer drops the message rather than blocking
// the hub.
func (c *Client) send(message []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- message:
	default:
	}
}

func (c *Client) closeSend() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.Send)
		c.mu.Unlock()
	})
}

type themeEvent struct {
	ThemeID string
	Payload []byte
}

type subscribeRequest struct {
	Client  *Client
	ThemeID string
}

type Hub struct {
	Clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	Subscribe  chan subscribeRequest
	Broadcast  chan themeEvent
}

type WebSocketMessage struct {
	Type WebSocketMessageType `json:"type"`
	Data interface{}          `json:"data,omitempty"`
}

type SubscribePayload struct {
	ThemeID string `json:"theme_id"`
}

type ThemeSavedPayload struct {
	ThemeID string `json:"theme_id"`
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Subscribe:  make(chan subscribeRequest),
		Broadcast:  make(chan themeEvent),
	}
}

// Run serializes all hub state: the client map and each client's theme
// subscription are touched only from this loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client.ID] = client
		case client := <-h.Unregister:
			if _, exists := h.Clients[client.ID]; exists {
				delete(h.Clients, client.ID)
				client.closeSend()
			}
		case req := <-h.Subscribe:
			if _, exists := h.Clients[req.Client.ID]; exists {
				req.Client.themeID = req.ThemeID
				req.Client.send(eventPayload(WebSocketMessageTypeSubscribed))
			}
		case event := <-h.Broadcast:
			for _, client := range h.Clients {
				// a client with no subscription hears every theme
				if client.themeID == "" || client.themeID == event.ThemeID {
					client.send(event.Payload)
				}
			}
		}
	}
}

// SubscribeClient routes a theme subscription through the hub loop.
func (h *Hub) SubscribeClient(client *Client, themeId string) {
	h.Subscribe <- subscribeRequest{Client: client, ThemeID: themeId}
}

// BroadcastThemeSaved tells open live/preview pages for a theme to re-fetch.
// Editor and live page only ever synchronize via re-fetch after save, so this
// is the sole push the hub carries.
func (h *Hub) BroadcastThemeSaved(themeId string) {
	msg := WebSocketMessage{
		Type: WebSocketMessageTypeThemeSaved,
		Data: &ThemeSavedPayload{ThemeID: themeId},
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("failed to marshal theme saved event:", err)
		return
	}
	h.Broadcast <- themeEvent{ThemeID: themeId, Payload: payload}
}

func (h *Hub) SendMessage(client *Client, message []byte) {
	client.send(message)
}

// SendErrorMessage sends a standardized error message to a client
func SendErrorMessage(hub *Hub, client *Client, errorMsg string) {
	errorResp := WebSocketMessage{
		Type: WebSocketMessageTypeError,
		Data: fiber.Map{"message": errorMsg},
	}
	errorBytes, err := json.Marshal(errorResp)
	if err != nil {
		log.Println("failed to marshal error response:", err)
		return
	}
	hub.SendMessage(client, errorBytes)
}

func eventPayload(eventType WebSocketMessageType) []byte {
	payload, err := json.Marshal(WebSocketMessage{Type: eventType})
	if err != nil {
		log.Println("failed to marshal event type response:", err)
		return nil
	}
	return payload
}

func sendEventType(hub *Hub, client *Client, eventType WebSocketMessageType) {
	if payload := eventPayload(eventType); payload != nil {
		hub.SendMessage(client, payload)
	}
}

// parseWebSocketMessage parses incoming websocket message and returns the message structure
func parseWebSocketMessage(msg []byte) (*WebSocketMessage, error) {
	var rawMessage struct {
		Type WebSocketMessageType `json:"type"`
		Data json.RawMessage      `json:"data,omitempty"`
	}
	if err := json.Unmarshal(msg, &rawMessage); err != nil {
		return nil, err
	}

	message := &WebSocketMessage{
		Type: rawMessage.Type,
	}

	if len(rawMessage.Data) > 0 {
		switch rawMessage.Type {
		case WebSocketMessageTypeSubscribe:
			var payload SubscribePayload
			if err := json.Unmarshal(rawMessage.Data, &payload); err != nil {
				return nil, err
			}
			message.Data = &payload
		default:
			var data interface{}
			if err := json.Unmarshal(rawMessage.Data, &data); err != nil {
				return nil, err
			}
			message.Data = data
		}
	}

	return message, nil
}

func WebSocketHandler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			ID:   uuid.NewString(),
			Conn: conn,
			Send: make(chan []byte, 256),
		}

		hub.Register <- client

		// Write loop
		go func() {
			defer func() {
				hub.Unregister <- client
				conn.Close()
			}()
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Println("write error:", err)
					return
				}
			}
		}()

		// Read loop
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Println("read error:", err)
				break
			}

			message, err := parseWebSocketMessage(msg)
			if err != nil {
				log.Println("failed to parse JSON:", err)
				SendErrorMessage(hub, client, "Invalid JSON format")
				continue
			}

			switch message.Type {
			case WebSocketMessageTypePing:
				sendEventType(hub, client, WebSocketMessageTypePong)
			case WebSocketMessageTypeSubscribe:
				payload, ok := message.Data.(*SubscribePayload)
				if !ok || payload.ThemeID == "" {
					SendErrorMessage(hub, client, "Theme ID is required")
					continue
				}
				hub.SubscribeClient(client, payload.ThemeID)
			default:
				SendErrorMessage(hub, client, "Type is invalid or not provided")
				continue
			}
		}

		hub.Unregister <- client
		conn.Close()
	})
}
