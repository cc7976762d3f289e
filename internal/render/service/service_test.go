package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
	"github.com/mathemascii/mathemascii/internal/render/store"
	"github.com/mathemascii/mathemascii/pkg/core/config"
	"github.com/mathemascii/mathemascii/pkg/core/health"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

func quietLogger() *logging.Logger {
	return logging.Wrap(mmlog.Discard(), "render")
}

func newTestService(t *testing.T, history bool) *Service {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EnableHistory = history
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")

	svc, err := NewService(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestRender(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	resp, err := svc.Render(ctx, &RenderRequest{Input: "a/b"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(resp.MathML, "<mfrac><mi>a</mi><mi>b</mi></mfrac>") {
		t.Errorf("MathML = %s", resp.MathML)
	}
	if resp.ID == "" || resp.Display != "inline" || resp.Cached {
		t.Errorf("response = %+v", resp)
	}
	if resp.Warnings == nil || len(resp.Warnings) != 0 {
		t.Errorf("Warnings = %v, want empty slice", resp.Warnings)
	}

	again, err := svc.Render(ctx, &RenderRequest{Input: "a/b"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !again.Cached || again.MathML != resp.MathML || again.ID == resp.ID {
		t.Errorf("second render should hit the cache with a new id: %+v", again)
	}

	block, err := svc.Render(ctx, &RenderRequest{Input: "a/b", Display: "block"})
	if err != nil {
		t.Fatalf("Render(block) error = %v", err)
	}
	if block.Cached || !strings.Contains(block.MathML, `display="block"`) {
		t.Errorf("block render = %+v", block)
	}

	if st := svc.CacheStats(); st.Hits != 1 || st.Misses != 2 {
		t.Errorf("CacheStats() = %+v, want 1 hit and 2 misses", st)
	}
}

func TestRenderWarningsAndErrors(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	resp, err := svc.Render(ctx, &RenderRequest{Input: "sqrt"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != diag.CodeMissingOperand {
		t.Errorf("Warnings = %v", resp.Warnings)
	}

	_, err = svc.Render(ctx, &RenderRequest{Input: "x", Display: "sideways"})
	if !mmerror.HasCode(err, mmerror.CodeInvalidInput) {
		t.Errorf("bad display error = %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Render(canceled, &RenderRequest{Input: "y"})
	if !mmerror.HasCode(err, mmerror.CodeCanceled) {
		t.Errorf("canceled error = %v", err)
	}
}

func TestTokensAndTree(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	toks, err := svc.Tokens(ctx, "sin x")
	if err != nil {
		t.Fatalf("Tokens() error = %v", err)
	}
	if len(toks.Tokens) != 2 {
		t.Fatalf("Tokens() = %v", toks.Tokens)
	}
	if toks.Tokens[0].Kind != "Function" || toks.Tokens[1].Kind != "Variable" || toks.Tokens[1].Text != "x" {
		t.Errorf("Tokens() = %+v", toks.Tokens)
	}

	tree, err := svc.Tree(ctx, "x^2 y")
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if len(tree.Expressions) != 2 {
		t.Fatalf("Tree() has %d expressions, want 2", len(tree.Expressions))
	}
	if tree.Expressions[0].Sup == nil {
		t.Errorf("first expression should carry a superscript: %+v", tree.Expressions[0])
	}
	if tree.Dump() == "" {
		t.Error("Dump() is empty")
	}
}

func TestHistory(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	for _, in := range []string{"a", "b", "c"} {
		if _, err := svc.Render(ctx, &RenderRequest{Input: in, Source: "test"}); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := svc.History(ctx, store.Query{})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(recs) != 3 || recs[0].Input != "c" || recs[0].Source != "test" {
		t.Fatalf("History() = %v", recs)
	}

	rec, err := svc.HistoryRecord(ctx, recs[1].ID)
	if err != nil || rec.Input != "b" {
		t.Errorf("HistoryRecord() = %v, %v", rec, err)
	}

	st, err := svc.HistoryStats(ctx)
	if err != nil || st.Records != 3 {
		t.Errorf("HistoryStats() = %+v, %v", st, err)
	}

	svc.config.MaxRecords = 1
	n, err := svc.PruneHistory(ctx)
	if err != nil || n != 2 {
		t.Errorf("PruneHistory() = %d, %v; want 2", n, err)
	}
}

func TestHistoryDisabled(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.History(context.Background(), store.Query{})
	if !mmerror.HasCode(err, mmerror.CodeServiceUnavailable) {
		t.Errorf("History() error = %v, want SERVICE_UNAVAILABLE", err)
	}
	if svc.HistoryEnabled() {
		t.Error("HistoryEnabled() = true")
	}
}

func TestRegisterHealth(t *testing.T) {
	svc := newTestService(t, true)
	reg := health.NewRegistry("mathemascii", "test")
	svc.RegisterHealth(reg)

	report := reg.Check(context.Background())
	if !report.Healthy() || len(report.Checks) != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Display = "block"
	cfg.History.Enabled = false

	got := FromConfig(cfg)
	if got.Display != "block" || got.EnableHistory || !got.EnableCache || got.CacheSize != 1024 {
		t.Errorf("FromConfig() = %+v", got)
	}

	if _, err := NewWithStore(Config{Display: "wide"}, nil, quietLogger()); !mmerror.HasCode(err, mmerror.CodeInvalidConfig) {
		t.Errorf("NewWithStore(bad display) error = %v", err)
	}
}
