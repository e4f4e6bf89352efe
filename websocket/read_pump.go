// websocket/read_pump.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// readPump читает входящие сообщения клиента.
// Клиенты только слушают события, поэтому отвечаем лишь на "ping".
func (c *Client) readPump(manager *Manager) {
	defer func() {
		// Отправляем сигнал отключения
		select {
		case manager.unregister <- c:
		case <-manager.done:
		}
		c.stop()
		c.Socket.Close()
	}()

	// Устанавливаем параметры подключения
	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				manager.logger.Error("Ошибка чтения клиента %s: %v", c.ID, err)
			}
			return
		}

		var msg Event
		if err := json.Unmarshal(message, &msg); err != nil || msg.Type != "ping" {
			continue
		}
		if pong, err := json.Marshal(Event{Type: EventPong}); err == nil {
			c.enqueue(pong)
		}
	}
}
