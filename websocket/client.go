package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/twinj/uuid"
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Pool *Pool

	mu sync.Mutex
}

func NewClient(conn *websocket.Conn, pool *Pool) *Client {
	return &Client{
		ID:   uuid.NewV4().String(),
		Conn: conn,
		Pool: pool,
	}
}

// Send writes one frame. The mutex keeps the pool loop and the read
// loop from writing to the connection at the same time.
func (c *Client) Send(message Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(message)
}

// Read pumps inbound frames until the connection drops, then
// unregisters the client from the pool.
func (c *Client) Read() {
	defer func() {
		c.Pool.Unregister <- c
		c.Conn.Close()
	}()

	for {
		var msg Message
		if err := c.Conn.ReadJSON(&msg); err != nil {
			return
		}

		if msg.Event == "join-room" {
			c.Send(Message{
				Event: "joined",
				Data:  map[string]string{"message": "You have joined the pokemon room"},
			})
		}
	}
}
