package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"rogue-server/internal/engine"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и игровой сессией. Все команды
// обрабатываются в readPump последовательно: мир сессии видит ровно
// одного мутатора.
type Client struct {
	Game *engine.Game
	Conn *websocket.Conn
	Send chan *api.ServerResponse

	// done закрывается при выходе writePump: отправка в Send после этого
	// никогда не разблокируется, и deliver обязан сдаться.
	done chan struct{}
}

func NewClient(game *engine.Game, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan *api.ServerResponse, 16),
		done: make(chan struct{}),
	}
}

// deliver передает снимок writePump'у. Возвращает false, если писатель
// уже умер - читателю пора завершаться, а не висеть на полном канале.
func (c *Client) deliver(resp *api.ServerResponse) bool {
	select {
	case c.Send <- resp:
		return true
	case <-c.done:
		return false
	}
}

// readPump читает команды от клиента и прогоняет их через сессию.
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.Info("Client disconnected, session dropped.")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Первый снимок - сразу, не дожидаясь команды
	if !c.deliver(c.Game.ProcessCommand(api.ClientCommand{Action: "INIT"})) {
		return
	}

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS error: %v", err)
			}
			break
		}
		if !c.deliver(c.Game.ProcessCommand(cmd)) {
			break
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(c.done)
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
