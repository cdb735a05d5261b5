package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Subscribe upgrades the request and streams the events of one runout to
// it until either side closes. A failed upgrade has already been answered.
func (h *Hub) Subscribe(c *gin.Context, runout string) error {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return err
	}

	client := &Client{
		Runout: runout,
		Conn:   conn,
		Send:   make(chan OutgoingMessage, sendBuffer),
		Hub:    h,
	}
	if err := h.join(client); err != nil {
		_ = conn.Close()
		return err
	}

	go client.writePump()
	go client.readPump()
	return nil
}
