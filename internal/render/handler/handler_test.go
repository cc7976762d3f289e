package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/health"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logging.Wrap(mmlog.Discard(), "test")

	cfg := service.DefaultConfig()
	cfg.EnableHistory = true
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")
	svc, err := service.NewService(cfg, logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	reg := health.NewRegistry("mathemascii", "test")
	svc.RegisterHealth(reg)

	h := NewHandler(svc, reg, []string{"http://localhost:3000"}, logger)
	mux := http.NewServeMux()
	mux.Handle("/api/v1/preview/ws", NewWebSocketHandler(svc, h.AllowOrigin, logger))
	mux.Handle("/api/v1/", h)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/render", service.RenderRequest{Input: "sqrt x", Display: "block"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out service.RenderResponse
	decode(t, resp, &out)
	if !strings.Contains(out.MathML, "<msqrt><mi>x</mi></msqrt>") || out.Display != "block" {
		t.Errorf("response = %+v", out)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
		code   string
	}{
		{"bad json", http.MethodPost, "{", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad display", http.MethodPost, `{"input":"x","display":"wide"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"too long", http.MethodPost, `{"input":"` + strings.Repeat("x", 20000) + `"}`, http.StatusRequestEntityTooLarge, "INPUT_TOO_LONG"},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+"/api/v1/render", strings.NewReader(tt.body))
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var out ErrorResponse
			decode(t, resp, &out)
			if out.Code != tt.code {
				t.Errorf("code = %q, want %q", out.Code, tt.code)
			}
		})
	}
}

func TestTokensAndTreeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var toks service.TokensResponse
	decode(t, postJSON(t, srv.URL+"/api/v1/tokens", InputRequest{Input: "a <= b"}), &toks)
	if len(toks.Tokens) != 3 || toks.Tokens[1].Kind != "Relation" {
		t.Errorf("tokens = %+v", toks.Tokens)
	}

	var tree map[string]interface{}
	decode(t, postJSON(t, srv.URL+"/api/v1/tree", InputRequest{Input: "(a)"}), &tree)
	exprs, ok := tree["expressions"].([]interface{})
	if !ok || len(exprs) != 1 {
		t.Errorf("tree = %v", tree)
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var all KeywordsResponse
	decode(t, get(t, srv.URL+"/api/v1/keywords?category=arrow"), &all)
	if all.Total == 0 || all.Total != len(all.Keywords) {
		t.Errorf("arrow keywords = %+v", all)
	}
	for _, e := range all.Keywords {
		if e.Category.String() != "arrow" {
			t.Errorf("entry %s has category %s", e.Name, e.Category)
		}
	}

	var found KeywordsResponse
	decode(t, get(t, srv.URL+"/api/v1/keywords?search=alpha"), &found)
	if len(found.Matches) == 0 || found.Matches[0].Literal != "alpha" {
		t.Errorf("search = %+v", found)
	}

	if resp := get(t, srv.URL+"/api/v1/keywords?category=nope"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown category status = %d", resp.StatusCode)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var rendered service.RenderResponse
	decode(t, postJSON(t, srv.URL+"/api/v1/render", service.RenderRequest{Input: "x+1"}), &rendered)
	postJSON(t, srv.URL+"/api/v1/render", service.RenderRequest{Input: "y"})

	var list HistoryResponse
	decode(t, get(t, srv.URL+"/api/v1/history?limit=1"), &list)
	if list.Total != 1 || list.Records[0].Input != "y" || list.Records[0].Source != "http" {
		t.Errorf("history = %+v", list)
	}

	resp := get(t, srv.URL+"/api/v1/history/"+rendered.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history record status = %d", resp.StatusCode)
	}

	if resp := get(t, srv.URL+"/api/v1/history/missing"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing record status = %d", resp.StatusCode)
	}
	if resp := get(t, srv.URL+"/api/v1/history?limit=x"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", resp.StatusCode)
	}

	var stats map[string]interface{}
	decode(t, get(t, srv.URL+"/api/v1/history/stats"), &stats)
	if stats["records"] != float64(2) {
		t.Errorf("stats = %v", stats)
	}
}

func TestHealthAndRoot(t *testing.T) {
	srv := newTestServer(t)

	var report health.Report
	resp := get(t, srv.URL+"/api/v1/health")
	decode(t, resp, &report)
	if resp.StatusCode != http.StatusOK || report.Status != health.StatusHealthy {
		t.Errorf("health = %d %+v", resp.StatusCode, report)
	}

	var info InfoResponse
	decode(t, get(t, srv.URL+"/api/v1"), &info)
	if info.Service != "mathemascii" || len(info.Endpoints) == 0 {
		t.Errorf("info = %+v", info)
	}

	if resp := get(t, srv.URL+"/api/v1/nope"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route status = %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	for origin, want := range map[string]string{
		"http://localhost:3000": "http://localhost:3000",
		"http://evil.example":   "",
	} {
		req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/render", nil)
		req.Header.Set("Origin", origin)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != want {
			t.Errorf("origin %s: allow-origin = %q, want %q", origin, got, want)
		}
	}
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/preview/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

type wsReply struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

func TestWebSocketPreview(t *testing.T) {
	srv := newTestServer(t)
	conn := dialWS(t, srv)

	exchange := func(msg WSMessage) wsReply {
		t.Helper()
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("WriteJSON() error = %v", err)
		}
		var reply wsReply
		if err := conn.ReadJSON(&reply); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return reply
	}

	reply := exchange(WSMessage{Type: "ping", ID: "1"})
	if reply.Type != "pong" || reply.ID != "1" {
		t.Errorf("ping reply = %+v", reply)
	}

	reply = exchange(WSMessage{Type: "render", ID: "2", Payload: json.RawMessage(`{"input":"x^2"}`)})
	if reply.Type != "result" || reply.ID != "2" {
		t.Fatalf("render reply = %+v", reply)
	}
	var rendered service.RenderResponse
	if err := json.Unmarshal(reply.Payload, &rendered); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rendered.MathML, "<msup><mi>x</mi><mn>2</mn></msup>") {
		t.Errorf("MathML = %s", rendered.MathML)
	}

	reply = exchange(WSMessage{Type: "tokens", ID: "3", Payload: json.RawMessage(`{"input":"a b"}`)})
	if reply.Type != "tokens" {
		t.Errorf("tokens reply = %+v", reply)
	}

	reply = exchange(WSMessage{Type: "render", ID: "4", Payload: json.RawMessage(`{"input":"x","display":"wide"}`)})
	if reply.Type != "error" || !strings.Contains(string(reply.Payload), "INVALID_INPUT") {
		t.Errorf("bad render reply = %+v", reply)
	}

	reply = exchange(WSMessage{Type: "shout"})
	if reply.Type != "error" || !strings.Contains(string(reply.Payload), "UNKNOWN_TYPE") {
		t.Errorf("unknown type reply = %+v", reply)
	}
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	srv := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/preview/ws"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		t.Fatal("Dial() with a foreign origin succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v", resp)
	}
}
