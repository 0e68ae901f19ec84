package server

import (
	"log/slog"
	"net/http"

	"golang.org/x/net/websocket"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
)

// WatchHandler serves GET /watch?session=<id>. The connection receives
// the session's current snapshot followed by one snapshot per placement
// until the session is closed or the peer goes away. Frames are
// protojson text; a rejected watch gets a single google.rpc.Status frame.
func (s *Server) WatchHandler() http.Handler {
	return websocket.Handler(s.watch)
}

func send(ws *websocket.Conn, m protobuf.Message) error {
	b, err := protojson.Marshal(m)
	if err != nil {
		return err
	}
	return websocket.Message.Send(ws, string(b))
}

func (s *Server) watch(ws *websocket.Conn) {
	defer ws.Close() //nolint: errcheck

	id := ws.Request().URL.Query().Get("session")
	sess, ch, snap, err := s.subscribe(id)
	if err != nil {
		s.logger.Debug("watch rejected", slog.String("session", id), slog.String("error", err.Error()))
		send(ws, status.Convert(err).Proto()) //nolint: errcheck
		return
	}
	defer sess.unwatch(ch)
	s.logger.Debug("watcher joined", slog.String("session", id))

	if err := send(ws, snap); err != nil {
		s.logger.Error("unable to send snapshot", slog.String("error", err.Error()))
		return
	}

	// watchers don't talk; a failed read means the peer hung up.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		var discard []byte
		for {
			if err := websocket.Message.Receive(ws, &discard); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if err := send(ws, snap); err != nil {
				s.logger.Error("unable to send snapshot", slog.String("error", err.Error()))
				return
			}
		case <-gone:
			s.logger.Debug("watcher left", slog.String("session", id))
			return
		}
	}
}
