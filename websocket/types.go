// websocket/types.go
package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/bikeshare_dashboard/ETL/models"
	"github.com/LilVoxy/bikeshare_dashboard/ETL/utils"
)

// Event - сообщение, которое сервер отправляет клиентам
type Event struct {
	Type   string                 `json:"type"`
	Status *models.SnapshotStatus `json:"status,omitempty"`
}

// Client - подключенный слушатель событий.
// Канал Send никогда не закрывается: об отключении сообщает закрытие done.
type Client struct {
	ID     string
	Socket *websocket.Conn
	Send   chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     id,
		Socket: conn,
		Send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// enqueue ставит сообщение в очередь клиента.
// Возвращает false, если клиент отключен или его очередь переполнена.
func (c *Client) enqueue(message []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// stop сообщает насосам клиента об отключении; повторные вызовы безопасны
func (c *Client) stop() {
	c.closeOnce.Do(func() { close(c.done) })
}

// SnapshotProvider возвращает текущий снимок или nil
type SnapshotProvider func() *models.Snapshot

// Manager рассылает подключенным клиентам уведомления о новых снимках
type Manager struct {
	clients    map[string]*Client
	clientsMu  sync.RWMutex
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Закрывается при остановке Run
	current    SnapshotProvider
	logger     *utils.ETLLogger
}

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // API дашборда открыт для любого источника, как и CORS
	},
}
