package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"societyWeb/internal/models"
	"societyWeb/internal/session"
)

const (
	wsReadLimit     = 32 << 10
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type directMsg struct {
	sid string
	n   models.Notification
}

type wsClient struct {
	sid  string
	conn *websocket.Conn
}

type wsUnreg struct {
	sid  string
	conn *websocket.Conn
}

// NotificationManager pushes notifications to connected browsers. Connections
// are keyed by session id; a new connection for the same session replaces the
// old one.
type NotificationManager struct {
	clients    map[string]*websocket.Conn
	broadcast  chan models.Notification
	direct     chan directMsg
	register   chan wsClient
	unregister chan wsUnreg
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		clients:    make(map[string]*websocket.Conn),
		broadcast:  make(chan models.Notification),
		direct:     make(chan directMsg),
		register:   make(chan wsClient),
		unregister: make(chan wsUnreg),
	}
}

// Notify delivers one notification to the browser behind the session, if it
// is connected. Offline sessions are skipped silently.
func (ws *NotificationManager) Notify(sid string, n models.Notification) {
	ws.direct <- directMsg{sid: sid, n: n}
}

// Broadcast sends a notification to every connected browser.
func (ws *NotificationManager) Broadcast(n models.Notification) {
	ws.broadcast <- n
}

// All access to clients happens here.
func (ws *NotificationManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.sid]; ok && old != nil && old != client.conn {
				_ = old.Close()
			}
			ws.clients[client.sid] = client.conn

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.sid]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.sid)
			}

		case n := <-ws.broadcast:
			for sid, conn := range ws.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws broadcast to %s: %v", sid, err)
					_ = conn.Close()
					delete(ws.clients, sid)
				}
			}

		case dm := <-ws.direct:
			if conn, ok := ws.clients[dm.sid]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(dm.n); err != nil {
					log.Printf("ws direct to %s: %v", dm.sid, err)
					_ = conn.Close()
					delete(ws.clients, dm.sid)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// notificationSocket upgrades an authenticated request. The session cookie
// already identified the browser, so no hello frame is needed; the client is
// not expected to send anything but pongs.
func (app *application) notificationSocket(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.SIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	app.wsManager.register <- wsClient{sid: sid, conn: conn}

	go app.wsManager.pingLoop(conn, sid)
	go app.wsManager.drain(conn, sid)
}

func (ws *NotificationManager) pingLoop(conn *websocket.Conn, sid string) {
	t := time.NewTicker(wsPingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			ws.unregister <- wsUnreg{sid: sid, conn: conn}
			return
		}
	}
}

// drain keeps the read side alive for control frames and drops the
// connection when the browser goes away.
func (ws *NotificationManager) drain(conn *websocket.Conn, sid string) {
	defer func() {
		ws.unregister <- wsUnreg{sid: sid, conn: conn}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
