// websocket/write_pump.go
package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// writePump отвечает за отправку сообщений клиенту
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Socket.Close()
	}()

	for {
		select {
		case <-c.done:
			// Клиент отключен менеджером
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			c.Socket.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case message := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			// Каждое событие - отдельное сообщение, чтобы клиент разбирал JSON целиком
			if err := c.Socket.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
