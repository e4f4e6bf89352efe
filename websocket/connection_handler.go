// websocket/connection_handler.go
package websocket

import (
	"net/http"

	"github.com/google/uuid"
)

// HandleConnections подключает клиента к рассылке событий.
// Сразу после подключения клиент получает текущий снимок, если он есть.
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		manager.logger.Error("Ошибка при установке WebSocket-соединения: %v", err)
		return
	}

	client := newClient(uuid.New().String(), conn)

	if snapshot := manager.current(); snapshot != nil {
		if message, err := snapshotEvent(snapshot); err == nil {
			client.enqueue(message)
		}
	}

	select {
	case manager.register <- client:
	case <-manager.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(manager)
}
