// Package websocket fans catalog mutations out to every connected
// subscriber. Delivery is best-effort: there is no acknowledgement and
// no replay, a client that connects after an event simply misses it.
package websocket

import (
	"log"

	"github.com/edgardchm/pokedex-backend/models"
)

type Pool struct {
	Register   chan *Client
	Unregister chan *Client
	Clients    map[*Client]bool
	Broadcast  chan Message
}

func NewPool() *Pool {
	return &Pool{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    map[*Client]bool{},
		Broadcast:  make(chan Message),
	}
}

// Start runs the pool loop. Broadcasts are fanned out in the order they
// arrive on the channel, which is the order the write path committed.
func (p *Pool) Start() {
	for {
		select {
		case client := <-p.Register:
			p.Clients[client] = true
			log.Println("websocket client connected:", client.ID)
			client.Send(Message{
				Event: "connected",
				Data:  map[string]string{"clientId": client.ID},
			})
		case client := <-p.Unregister:
			if _, ok := p.Clients[client]; ok {
				delete(p.Clients, client)
				log.Println("websocket client disconnected:", client.ID)
			}
		case message := <-p.Broadcast:
			for client := range p.Clients {
				if err := client.Send(message); err != nil {
					log.Println("websocket write failed:", err)
				}
			}
		}
	}
}

// The pool is the service.Notifier of the running server.

func (p *Pool) PokemonCreated(pokemon models.Pokemon) {
	p.Broadcast <- Message{Event: "pokemon-created", Data: pokemon}
}

func (p *Pool) PokemonUpdated(pokemon models.Pokemon) {
	p.Broadcast <- Message{Event: "pokemon-updated", Data: pokemon}
}

func (p *Pool) PokemonDeleted(id int) {
	p.Broadcast <- Message{Event: "pokemon-deleted", Data: map[string]int{"id": id}}
}
