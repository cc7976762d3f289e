package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WSMessage is a client message. ID is echoed in the response so a live
// preview can drop results of stale inputs.
type WSMessage struct {
	Type    string          `json:"type"` // "render", "tokens", "ping"
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"` // "result", "tokens", "pong", "error"
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// WSErrorPayload describes a failed request
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketHandler renders as the client types
type WebSocketHandler struct {
	service  *service.Service
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

// NewWebSocketHandler creates a WebSocket handler. Browser origins are
// checked with allowOrigin; requests without an Origin header pass.
func NewWebSocketHandler(svc *service.Service, allowOrigin func(string) bool, logger *logging.Logger) *WebSocketHandler {
	if logger == nil {
		logger = logging.New("websocket")
	}
	return &WebSocketHandler{
		service: svc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || (allowOrigin != nil && allowOrigin(origin))
			},
		},
	}
}

// ServeHTTP handles the upgrade and the connection
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(r.Context(), conn)
}

type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(resp WSResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(resp)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
}

func (h *WebSocketHandler) handleConnection(parent context.Context, conn *websocket.Conn) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	defer cancel()

	c := &wsConn{conn: conn}
	h.logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	conn.SetReadLimit(MaxBodyBytes)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", "error", err)
			} else {
				h.logger.Info("WebSocket connection closed")
			}
			return
		}

		if err := h.dispatch(ctx, c, msg); err != nil {
			h.logger.Warn("WebSocket send error", "error", err)
			return
		}
	}
}

func (h *WebSocketHandler) dispatch(ctx context.Context, c *wsConn, msg WSMessage) error {
	switch msg.Type {
	case "ping":
		return c.send(WSResponse{Type: "pong", ID: msg.ID})

	case "render":
		var req service.RenderRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return c.send(errorResponse(msg.ID, "INVALID_INPUT", "Invalid render payload"))
		}
		req.Source = "ws"
		resp, err := h.service.Render(ctx, &req)
		if err != nil {
			return c.send(serviceErrorResponse(msg.ID, err))
		}
		return c.send(WSResponse{Type: "result", ID: msg.ID, Payload: resp})

	case "tokens":
		var req InputRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return c.send(errorResponse(msg.ID, "INVALID_INPUT", "Invalid tokens payload"))
		}
		resp, err := h.service.Tokens(ctx, req.Input)
		if err != nil {
			return c.send(serviceErrorResponse(msg.ID, err))
		}
		return c.send(WSResponse{Type: "tokens", ID: msg.ID, Payload: resp})

	default:
		return c.send(errorResponse(msg.ID, "UNKNOWN_TYPE", "Unknown message type: "+msg.Type))
	}
}

func errorResponse(id, code, message string) WSResponse {
	return WSResponse{Type: "error", ID: id, Payload: WSErrorPayload{Code: code, Message: message}}
}

func serviceErrorResponse(id string, err error) WSResponse {
	if e, ok := mmerror.As(err); ok {
		return errorResponse(id, e.Code().String(), e.Message())
	}
	return errorResponse(id, string(mmerror.CodeInternal), "Internal error")
}
