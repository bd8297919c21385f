package websocket

// Message is the JSON frame exchanged with subscribers.
//
// Server-sent events: connected, joined, pokemon-created,
// pokemon-updated, pokemon-deleted. Clients may send join-room.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
