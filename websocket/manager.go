// websocket/manager.go
package websocket

import (
	"context"
	"encoding/json"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// NewManager создает новый менеджер WebSocket-соединений
func NewManager(current SnapshotProvider, logger *utils.ETLLogger) *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, sendBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		current:    current,
		logger:     logger,
	}
}

// Run обслуживает подключения и рассылку до отмены контекста
func (manager *Manager) Run(ctx context.Context) {
	defer close(manager.done)

	for {
		select {
		case client := <-manager.register:
			manager.clientsMu.Lock()
			manager.clients[client.ID] = client
			manager.clientsMu.Unlock()
			manager.logger.Debug("Клиент %s подключился", client.ID)

		case client := <-manager.unregister:
			manager.remove(client)

		case message := <-manager.broadcast:
			// Рассылаем сообщение всем подключенным клиентам
			manager.send(message)

		case <-ctx.Done():
			manager.clientsMu.Lock()
			for id, client := range manager.clients {
				delete(manager.clients, id)
				client.stop()
			}
			manager.clientsMu.Unlock()
			return
		}
	}
}

// ClientCount возвращает число подключенных клиентов
func (manager *Manager) ClientCount() int {
	manager.clientsMu.RLock()
	defer manager.clientsMu.RUnlock()
	return len(manager.clients)
}

// NotifySnapshot рассылает клиентам сведения о новом снимке
func (manager *Manager) NotifySnapshot(snapshot *models.Snapshot) {
	message, err := snapshotEvent(snapshot)
	if err != nil {
		manager.logger.Error("Ошибка кодирования события: %v", err)
		return
	}

	select {
	case manager.broadcast <- message:
	default:
		manager.logger.Error("Очередь рассылки переполнена, событие снимка %s пропущено", snapshot.ID)
	}
}

func (manager *Manager) remove(client *Client) {
	manager.clientsMu.Lock()
	defer manager.clientsMu.Unlock()
	if _, ok := manager.clients[client.ID]; ok {
		delete(manager.clients, client.ID)
		client.stop()
		manager.logger.Debug("Клиент %s отключился", client.ID)
	}
}

// send отправляет сообщение всем клиентам; медленные клиенты отключаются
func (manager *Manager) send(message []byte) {
	manager.clientsMu.Lock()
	defer manager.clientsMu.Unlock()
	for id, client := range manager.clients {
		if !client.enqueue(message) {
			client.stop()
			delete(manager.clients, id)
			manager.logger.Debug("Клиент %s не успевает читать события и отключен", id)
		}
	}
}

func snapshotEvent(snapshot *models.Snapshot) ([]byte, error) {
	status := snapshot.Status()
	return json.Marshal(Event{Type: EventSnapshot, Status: &status})
}
