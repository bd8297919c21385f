package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	pokesocket "github.com/edgardchm/pokedex-backend/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS for the realtime channel is wide open, same as the REST side.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebsocketHandler struct {
	Pool *pokesocket.Pool
}

func NewWebsocketHandler(pool *pokesocket.Pool) *WebsocketHandler {
	return &WebsocketHandler{Pool: pool}
}

// ServeWS upgrades the request and hands the connection to the pool.
func (h *WebsocketHandler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}

	client := pokesocket.NewClient(conn, h.Pool)
	h.Pool.Register <- client
	go client.Read()
}
