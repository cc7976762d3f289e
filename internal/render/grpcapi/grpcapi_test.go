package grpcapi

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
	"github.com/mathemascii/mathemascii/internal/render/service"
	coregrpc "github.com/mathemascii/mathemascii/pkg/core/grpc"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	logger := logging.Wrap(mmlog.Discard(), "test")

	svc, err := service.NewWithStore(service.DefaultConfig(), nil, logger)
	if err != nil {
		t.Fatalf("NewWithStore() error = %v", err)
	}

	cfg := coregrpc.DefaultServerConfig()
	cfg.EnableReflection = false
	srv := coregrpc.NewServer(cfg, logger)
	RegisterRendererServer(srv.GRPCServer(), NewServer(svc))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := coregrpc.Dial(coregrpc.DefaultClientConfig("passthrough:///bufnet"), logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewClient(conn)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRender(t *testing.T) {
	client := newTestClient(t)
	ctx := testContext(t)

	out, warnings, err := client.Render(ctx, "a/b", "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "<mfrac>") || !strings.Contains(out, `display="inline"`) {
		t.Errorf("Render() = %s", out)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}

	out, warnings, err = client.Render(ctx, "sqrt", "block")
	if err != nil {
		t.Fatalf("Render(block) error = %v", err)
	}
	if !strings.Contains(out, `display="block"`) {
		t.Errorf("Render(block) = %s", out)
	}
	if len(warnings) != 1 || !strings.HasPrefix(warnings[0], "missing-operand") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestRenderErrors(t *testing.T) {
	client := newTestClient(t)
	ctx := testContext(t)

	_, _, err := client.Render(ctx, "x", "wide")
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad display code = %v, want InvalidArgument", status.Code(err))
	}

	_, _, err = client.Render(ctx, strings.Repeat("x", 20000), "")
	if status.Code(err) != codes.ResourceExhausted {
		t.Errorf("long input code = %v, want ResourceExhausted", status.Code(err))
	}
}

func TestParse(t *testing.T) {
	client := newTestClient(t)

	out, err := client.Parse(testContext(t), "x_1 y")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	exprs := out.GetFields()["expressions"].GetListValue().GetValues()
	if len(exprs) != 2 {
		t.Fatalf("Parse() returned %d expressions, want 2", len(exprs))
	}
	first := exprs[0].GetStructValue().GetFields()
	if first["type"].GetStringValue() != "expression" || first["sub"] == nil {
		t.Errorf("first expression = %v", first)
	}
	if got := out.GetFields()["input"].GetStringValue(); got != "x_1 y" {
		t.Errorf("input = %q", got)
	}
}
