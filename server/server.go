package server

import (
	"blockdrop/config"
	"blockdrop/proto"
	"blockdrop/tetris"
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const watchBuffer = 8

type session struct {
	id       string
	game     *tetris.Game
	last     *proto.Placement
	watchers map[chan *proto.Snapshot]struct{}
	closed   bool
	mu       sync.Mutex
}

func (s *session) errClosed() error {
	return status.Errorf(codes.NotFound, "session %q not found", s.id)
}

func (s *session) snapshot() *proto.Snapshot {
	snap := proto.FromState(s.id, s.game.State())
	snap.Last = s.last
	return snap
}

// notify hands the snapshot to every watcher that has room for it.
// Slow watchers miss intermediate states.
func (s *session) notify(snap *proto.Snapshot) {
	for ch := range s.watchers {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *session) place(column int, r tetris.Rotation) (tetris.Result, *proto.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return tetris.Result{}, nil, s.errClosed()
	}
	res, err := s.game.Place(column, r)
	if err != nil {
		if errors.Is(err, tetris.ErrBlockedOut) {
			s.notify(s.snapshot())
		}
		return tetris.Result{}, nil, err
	}
	s.last = proto.FromResult(res)
	snap := s.snapshot()
	s.notify(snap)
	return res, snap, nil
}

func (s *session) get() (*proto.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, s.errClosed()
	}
	return s.snapshot(), nil
}

// watch registers a watcher and returns the session's current state.
func (s *session) watch() (chan *proto.Snapshot, *proto.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, s.errClosed()
	}
	ch := make(chan *proto.Snapshot, watchBuffer)
	s.watchers[ch] = struct{}{}
	return ch, s.snapshot(), nil
}

func (s *session) unwatch(ch chan *proto.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watchers, ch)
}

// close ends every watch feed. Later calls on the session fail.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for ch := range s.watchers {
		close(ch)
		delete(s.watchers, ch)
	}
}

// Server runs game sessions for remote clients. Each session is used by
// one game at a time; calls on the same session are serialised.
type Server struct {
	proto.UnimplementedEngineServer
	logger   *slog.Logger
	defaults config.Config
	sessions map[string]*session
	mu       sync.Mutex
}

func New(l *slog.Logger, defaults config.Config) *Server {
	return &Server{
		logger:   l,
		defaults: defaults,
		sessions: make(map[string]*session),
	}
}

func (s *Server) NewSession(_ context.Context, req *proto.NewSessionRequest) (*proto.Snapshot, error) {
	cfg := s.defaults
	if req.Width != 0 {
		cfg.Width = int(req.Width)
	}
	if req.Height != 0 {
		cfg.Height = int(req.Height)
	}
	if req.Preview != 0 {
		cfg.Preview = int(req.Preview)
	}
	if req.Generator != "" {
		cfg.Generator = req.Generator
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid session parameters: %v", err)
	}
	opts, err := cfg.GameOptions()
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid session parameters: %v", err)
	}
	game, err := tetris.NewGame(opts)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "unable to create game: %v", err)
	}

	sess := &session{
		id:       uuid.New().String(),
		game:     game,
		watchers: make(map[chan *proto.Snapshot]struct{}),
	}
	snap := sess.snapshot()
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("session created",
		slog.String("session", sess.id),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("generator", cfg.Generator),
		slog.Uint64("seed", opts.Seed),
	)
	return snap, nil
}

func (s *Server) session(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %q not found", id)
	}
	return sess, nil
}

func (s *Server) Place(_ context.Context, req *proto.PlaceRequest) (*proto.Snapshot, error) {
	sess, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	r, err := tetris.ParseRotation(req.GetRotation())
	if err != nil {
		return nil, toStatus(err)
	}

	res, snap, err := sess.place(int(req.Column), r)
	if err != nil {
		if errors.Is(err, tetris.ErrBlockedOut) {
			s.logger.Info("session topped out", slog.String("session", sess.id))
		}
		return nil, toStatus(err)
	}
	s.logger.Debug("piece placed",
		slog.String("session", sess.id),
		slog.String("shape", res.Shape.String()),
		slog.Int("column", res.Column),
		slog.Int("row", res.Row),
		slog.Int("cleared", res.Cleared),
	)
	return snap, nil
}

func (s *Server) Get(_ context.Context, req *proto.SessionRequest) (*proto.Snapshot, error) {
	sess, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	return sess.get()
}

func (s *Server) Close(_ context.Context, req *proto.SessionRequest) (*emptypb.Empty, error) {
	s.mu.Lock()
	sess, ok := s.sessions[req.GetSessionId()]
	delete(s.sessions, req.GetSessionId())
	s.mu.Unlock()
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %q not found", req.GetSessionId())
	}
	sess.close()

	s.logger.Info("session closed", slog.String("session", sess.id))
	return &emptypb.Empty{}, nil
}

// subscribe registers a watcher on the session.
func (s *Server) subscribe(id string) (*session, chan *proto.Snapshot, *proto.Snapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, nil, nil, err
	}
	ch, snap, err := sess.watch()
	if err != nil {
		return nil, nil, nil, err
	}
	return sess, ch, snap, nil
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, tetris.ErrGameOver), errors.Is(err, tetris.ErrBlockedOut):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, tetris.ErrOutOfBounds),
		errors.Is(err, tetris.ErrInvalidRotation),
		errors.Is(err, tetris.ErrUnknownShape),
		errors.Is(err, tetris.ErrPieceTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
