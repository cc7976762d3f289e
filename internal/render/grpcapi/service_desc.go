package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mathemascii.v1.Renderer"

const (
	renderMethod = "/" + ServiceName + "/Render"
	parseMethod  = "/" + ServiceName + "/Parse"
)

// Metadata keys
const (
	DisplayKey  = "x-mathemascii-display"
	WarningsKey = "x-mathemascii-warnings-bin"
)

// RendererServer is the server API of mathemascii.v1.Renderer. The
// messages are well-known types so no generated code is needed.
type RendererServer interface {
	// Render converts AsciiMath to MathML
	Render(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// Parse returns the expression trees as a JSON-shaped struct
	Parse(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// ServiceDesc describes mathemascii.v1.Renderer
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RendererServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Render", Handler: renderHandler},
		{MethodName: "Parse", Handler: parseHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mathemascii/v1/renderer.proto",
}

// RegisterRendererServer registers srv on s
func RegisterRendererServer(s grpc.ServiceRegistrar, srv RendererServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func renderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RendererServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: renderMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RendererServer).Render(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func parseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RendererServer).Parse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: parseMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RendererServer).Parse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
