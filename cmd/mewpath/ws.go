package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mastercactapus/mewpath/coord"
)

// hub pushes converted paths to preview clients: the most recent path
// on connect, then every new one, each as a single JSON text message.
type hub struct {
	up websocket.Upgrader

	mx    sync.Mutex
	conns map[*websocket.Conn]bool
	last  []byte
}

func newHub() *hub {
	return &hub{
		up:    websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		conns: make(map[*websocket.Conn]bool),
	}
}

func (h *hub) serve(w http.ResponseWriter, req *http.Request) {
	ws, err := h.up.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}

	h.mx.Lock()
	if h.last != nil {
		err = ws.WriteMessage(websocket.TextMessage, h.last)
	}
	if err == nil {
		h.conns[ws] = true
	}
	h.mx.Unlock()
	if err != nil {
		log.Println("ERROR: send:", err)
		ws.Close()
		return
	}

	go h.readLoop(ws)
}

// readLoop discards client messages so control frames get handled.
func (h *hub) readLoop(ws *websocket.Conn) {
	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	h.mx.Lock()
	delete(h.conns, ws)
	h.mx.Unlock()
	ws.Close()
}

func (h *hub) broadcastPath(pts []coord.Point) {
	if pts == nil {
		pts = []coord.Point{}
	}
	data, err := json.Marshal(pts)
	if err != nil {
		// shouldn't happen since points are plain floats
		log.Panicln("ERROR: broadcast (marshal):", err)
		return
	}

	h.mx.Lock()
	defer h.mx.Unlock()
	h.last = data
	for ws := range h.conns {
		err = ws.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			log.Println("ERROR: send:", err)
			ws.Close()
			delete(h.conns, ws)
		}
	}
}
