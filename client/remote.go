package client

import (
	"blockdrop/proto"
	"blockdrop/tetris"
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const rpcTimeout = 5 * time.Second

// remoteEngine plays a session hosted by the engine server. The last
// snapshot received is cached so redraws don't need a round trip.
type remoteEngine struct {
	conn   *grpc.ClientConn
	client proto.EngineClient
	req    *proto.NewSessionRequest
	logger *slog.Logger
	last   *proto.Snapshot
}

func dialRemote(addr string, req *proto.NewSessionRequest, l *slog.Logger) (*remoteEngine, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("unable to create gRPC client: %w", err)
	}
	r := newRemoteEngine(proto.NewEngineClient(conn), req, l)
	r.conn = conn
	if err := r.start(); err != nil {
		conn.Close() //nolint: errcheck
		return nil, err
	}
	return r, nil
}

func newRemoteEngine(c proto.EngineClient, req *proto.NewSessionRequest, l *slog.Logger) *remoteEngine {
	return &remoteEngine{client: c, req: req, logger: l}
}

func (r *remoteEngine) start() error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	snap, err := r.client.NewSession(ctx, r.req)
	if err != nil {
		return fmt.Errorf("unable to start session: %w", err)
	}
	r.logger.Info("session started", slog.String("session", snap.GetSessionId()))
	r.last = snap
	return nil
}

func (r *remoteEngine) State() (*tetris.State, error) {
	if r.last == nil {
		return nil, errNoState
	}
	return r.last.ToState()
}

func (r *remoteEngine) Place(column int, rot tetris.Rotation) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	snap, err := r.client.Place(ctx, &proto.PlaceRequest{
		SessionId: r.last.GetSessionId(),
		Column:    int32(column), //nolint:gosec
		Rotation:  rot.String(),
	})
	if err != nil {
		// a top out changes the session even though the call failed.
		if status.Code(err) == codes.FailedPrecondition {
			if snap, gerr := r.client.Get(ctx, &proto.SessionRequest{SessionId: r.last.GetSessionId()}); gerr == nil {
				r.last = snap
			}
			return fmt.Errorf("%w: %s", tetris.ErrGameOver, status.Convert(err).Message())
		}
		return err
	}
	r.last = snap
	return nil
}

// Reset replaces the session with a fresh one.
func (r *remoteEngine) Reset() error {
	if err := r.closeSession(); err != nil {
		r.logger.Error("unable to close session", slog.String("error", err.Error()))
	}
	return r.start()
}

func (r *remoteEngine) closeSession() error {
	if r.last == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	_, err := r.client.Close(ctx, &proto.SessionRequest{SessionId: r.last.GetSessionId()})
	r.last = nil
	return err
}

func (r *remoteEngine) Close() error {
	err := r.closeSession()
	if r.conn != nil {
		if cerr := r.conn.Close(); cerr != nil {
			r.logger.Error("unable to close gRPC client", slog.String("error", cerr.Error()))
		}
	}
	return err
}
