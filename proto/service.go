package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "blockdrop.Engine"

const (
	Engine_NewSession_FullMethodName = "/" + ServiceName + "/NewSession"
	Engine_Place_FullMethodName      = "/" + ServiceName + "/Place"
	Engine_Get_FullMethodName        = "/" + ServiceName + "/Get"
	Engine_Close_FullMethodName      = "/" + ServiceName + "/Close"
)

// EngineServer is the server API for the Engine service.
type EngineServer interface {
	// NewSession starts a game and returns its first snapshot.
	NewSession(context.Context, *NewSessionRequest) (*Snapshot, error)
	// Place drops the session's current piece.
	Place(context.Context, *PlaceRequest) (*Snapshot, error)
	Get(context.Context, *SessionRequest) (*Snapshot, error)
	Close(context.Context, *SessionRequest) (*emptypb.Empty, error)
}

// UnimplementedEngineServer must be embedded to have forward compatible implementations.
type UnimplementedEngineServer struct{}

func (UnimplementedEngineServer) NewSession(context.Context, *NewSessionRequest) (*Snapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NewSession not implemented")
}

func (UnimplementedEngineServer) Place(context.Context, *PlaceRequest) (*Snapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Place not implemented")
}

func (UnimplementedEngineServer) Get(context.Context, *SessionRequest) (*Snapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}

func (UnimplementedEngineServer) Close(context.Context, *SessionRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Close not implemented")
}

func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&Engine_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(EngineServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EngineServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EngineServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Engine_ServiceDesc is the grpc.ServiceDesc for the Engine service.
var Engine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "NewSession",
			Handler:    unaryHandler(Engine_NewSession_FullMethodName, EngineServer.NewSession),
		},
		{
			MethodName: "Place",
			Handler:    unaryHandler(Engine_Place_FullMethodName, EngineServer.Place),
		},
		{
			MethodName: "Get",
			Handler:    unaryHandler(Engine_Get_FullMethodName, EngineServer.Get),
		},
		{
			MethodName: "Close",
			Handler:    unaryHandler(Engine_Close_FullMethodName, EngineServer.Close),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

// EngineClient is the client API for the Engine service.
type EngineClient interface {
	NewSession(ctx context.Context, in *NewSessionRequest, opts ...grpc.CallOption) (*Snapshot, error)
	Place(ctx context.Context, in *PlaceRequest, opts ...grpc.CallOption) (*Snapshot, error)
	Get(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Snapshot, error)
	Close(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type engineClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineClient(cc grpc.ClientConnInterface) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *engineClient) NewSession(ctx context.Context, in *NewSessionRequest, opts ...grpc.CallOption) (*Snapshot, error) {
	out := new(Snapshot)
	if err := c.invoke(ctx, Engine_NewSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) Place(ctx context.Context, in *PlaceRequest, opts ...grpc.CallOption) (*Snapshot, error) {
	out := new(Snapshot)
	if err := c.invoke(ctx, Engine_Place_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) Get(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Snapshot, error) {
	out := new(Snapshot)
	if err := c.invoke(ctx, Engine_Get_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineClient) Close(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.invoke(ctx, Engine_Close_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
