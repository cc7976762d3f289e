package grpcapi

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/service"
	coregrpc "github.com/mathemascii/mathemascii/pkg/core/grpc"
)

// Server implements RendererServer on top of the render service
type Server struct {
	service *service.Service
}

// NewServer creates a gRPC renderer
func NewServer(svc *service.Service) *Server {
	return &Server{service: svc}
}

// Render converts the input. The display mode is read from the
// x-mathemascii-display metadata; warnings are returned in the response
// header.
func (s *Server) Render(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	req := &service.RenderRequest{Input: in.GetValue(), Source: "grpc"}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(DisplayKey); len(v) > 0 {
			req.Display = v[0]
		}
	}

	resp, err := s.service.Render(ctx, req)
	if err != nil {
		return nil, coregrpc.ToStatus(err)
	}

	if len(resp.Warnings) > 0 {
		md := metadata.MD{}
		for _, w := range resp.Warnings {
			md.Append(WarningsKey, w.String())
		}
		_ = grpc.SetHeader(ctx, md)
	}
	return wrapperspb.String(resp.MathML), nil
}

// Parse returns the expression trees and warnings of the input
func (s *Server) Parse(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	tree, err := s.service.Tree(ctx, in.GetValue())
	if err != nil {
		return nil, coregrpc.ToStatus(err)
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return nil, coregrpc.ToStatus(mmerror.Wrap(err, "failed to encode tree").WithCode(mmerror.CodeInternal))
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, coregrpc.ToStatus(mmerror.Wrap(err, "failed to convert tree").WithCode(mmerror.CodeInternal))
	}
	return out, nil
}
