package mux

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"idlepoker-server/pkg/room"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// response is the format sent to the websocket client
type response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

func okResponse(ctx string) *response {
	return &response{
		Key:     "status",
		Value:   "OK",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *response {
	return &response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		sub := m.runner.Subscribe()
		replies := make(chan *response, 16)
		done := make(chan bool)
		defer func() {
			m.runner.Unsubscribe(sub)
			close(done)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(conn, sub, replies, done)

		// the initial state reaches the new subscriber through the broadcast
		if _, err := m.runner.View(); err != nil {
			return
		}

		m.webSocketReadLoop(conn, replies)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, sub *room.Subscriber, replies <-chan *response, done <-chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	write := func(msg *response) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			logrus.WithError(err).Debug("could not write message")
			return false
		}

		return true
	}

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case view := <-sub.SendChan():
			if !write(&response{Key: "state", Data: view}) {
				return
			}
		case msg := <-replies:
			if !write(msg) {
				return
			}
		case <-done:
			return
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, replies chan<- *response) {
	for {
		var msg payloadIn
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Error("could not read message")
			}

			return
		}

		var err error
		if msg.Action == actionReset {
			_, err = m.runner.Reset(context.Background())
		} else {
			_, err = m.exec(&msg)
		}

		reply := okResponse(msg.Context)
		if err != nil {
			reply = newErrorResponse(msg.Context, err)
		}

		select {
		case replies <- reply:
		default:
			logrus.Debug("client is not keeping up, dropping reply")
		}
	}
}
