package client

import (
	"blockdrop/config"
	"blockdrop/proto"
	"blockdrop/server"
	"blockdrop/tetris"
	"context"
	"log"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func testRemote(t *testing.T, req *proto.NewSessionRequest) *remoteEngine {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	proto.RegisterEngineServer(s, server.New(testLogger(), config.Default()))
	go func() {
		if err := s.Serve(lis); err != nil {
			log.Printf("unable to serve: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	r := newRemoteEngine(proto.NewEngineClient(conn), req, testLogger())
	r.conn = conn
	require.NoError(t, r.start())
	t.Cleanup(func() {
		s.Stop()
		lis.Close() //nolint: errcheck
	})
	return r
}

func TestRemoteEngine(t *testing.T) {
	r := testRemote(t, &proto.NewSessionRequest{Seed: 11})

	st, err := r.State()
	require.NoError(t, err)
	assert.Equal(t, 10, st.Width)
	assert.Len(t, st.Preview, tetris.DefaultPreview)
	first := st.Current

	require.NoError(t, r.Place(0, tetris.Normal))
	st, err = r.State()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Stats.Placed)

	last := r.last.GetLast()
	require.NotNil(t, last)
	assert.Equal(t, first.String(), last.Shape)

	err = r.Place(-1, tetris.Normal)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.NotErrorIs(t, err, tetris.ErrGameOver)

	id := r.last.GetSessionId()
	require.NoError(t, r.Reset())
	assert.NotEqual(t, id, r.last.GetSessionId())
	st, err = r.State()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Stats.Placed)

	require.NoError(t, r.Close())
	_, err = r.State()
	assert.ErrorIs(t, err, errNoState)
}

func TestRemoteGhost(t *testing.T) {
	r := testRemote(t, &proto.NewSessionRequest{Seed: 3})
	for range 3 {
		st, err := r.State()
		require.NoError(t, err)
		want, err := ghost(st, 4, tetris.Clockwise)
		require.NoError(t, err)

		require.NoError(t, r.Place(4, tetris.Clockwise))
		got := r.last.GetLast()
		assert.Equal(t, want.Shape.String(), got.Shape)
		assert.EqualValues(t, want.Column, got.Column)
		assert.EqualValues(t, want.Row, got.Row)
	}
}

func TestRemoteTopOut(t *testing.T) {
	r := testRemote(t, &proto.NewSessionRequest{Width: 4, Height: 4, Seed: 9})

	var err error
	for range 100 {
		if err = r.Place(0, tetris.Normal); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, tetris.ErrGameOver)
	st, serr := r.State()
	require.NoError(t, serr)
	assert.True(t, st.GameOver)
}
