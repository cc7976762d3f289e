package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls a remote mathemascii.v1.Renderer
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Render converts input remotely. display may be empty for the server
// default. The warnings come back as formatted strings.
func (c *Client) Render(ctx context.Context, input, display string, opts ...grpc.CallOption) (string, []string, error) {
	if display != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, DisplayKey, display)
	}

	var header metadata.MD
	out := new(wrapperspb.StringValue)
	opts = append(opts, grpc.Header(&header))
	if err := c.cc.Invoke(ctx, renderMethod, wrapperspb.String(input), out, opts...); err != nil {
		return "", nil, err
	}
	return out.GetValue(), header.Get(WarningsKey), nil
}

// Parse returns the remote expression trees
func (c *Client) Parse(ctx context.Context, input string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, parseMethod, wrapperspb.String(input), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
