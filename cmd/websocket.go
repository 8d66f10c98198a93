package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadLimit          = 1 << 20
	wsReadDeadline       = 120 * time.Second
	wsWriteDeadline      = 5 * time.Second
	wsPingInterval       = 15 * time.Second
	wsFirstHelloDeadline = 30 * time.Second
)

type wsClient struct {
	userID string
	conn   *websocket.Conn
}

type wsDirect struct {
	userID  string
	payload interface{}
}

// WebSocketHub delivers chat messages to connected users. All access to
// clients happens on the Run goroutine.
type WebSocketHub struct {
	clients    map[string]*websocket.Conn
	register   chan wsClient
	unregister chan wsClient
	direct     chan wsDirect
}

func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan wsClient),
		unregister: make(chan wsClient),
		direct:     make(chan wsDirect),
	}
}

// Send implements services.Broadcaster. Offline users are skipped.
func (hub *WebSocketHub) Send(userID string, payload interface{}) {
	hub.direct <- wsDirect{userID: userID, payload: payload}
}

func (hub *WebSocketHub) Run(app *application) {
	for {
		select {
		case client := <-hub.register:
			// a newer socket replaces the old one
			if old, ok := hub.clients[client.userID]; ok && old != client.conn {
				old.Close()
			}
			hub.clients[client.userID] = client.conn
			app.infoLog.Printf("ws register user=%s", client.userID)

		case client := <-hub.unregister:
			if cur, ok := hub.clients[client.userID]; ok && cur == client.conn {
				cur.Close()
				delete(hub.clients, client.userID)
				app.infoLog.Printf("ws unregister user=%s", client.userID)
			}

		case dm := <-hub.direct:
			conn, ok := hub.clients[dm.userID]
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := conn.WriteJSON(dm.payload); err != nil {
				app.errorLog.Printf("ws send to %s: %v", dm.userID, err)
				conn.Close()
				delete(hub.clients, dm.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketHandler upgrades the connection. The first frame must be
// {"userId": "<uid>"}; after that the socket is receive-only and kept
// alive with pings.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("ws upgrade: %v", err)
		return
	}
	conn.SetReadLimit(wsReadLimit)

	var hello struct {
		UserID string `json:"userId"`
	}
	conn.SetReadDeadline(time.Now().Add(wsFirstHelloDeadline))
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == "" {
		conn.Close()
		return
	}

	client := wsClient{userID: hello.UserID, conn: conn}
	app.wsHub.register <- client

	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)
	app.wsHub.unregister <- client
}
