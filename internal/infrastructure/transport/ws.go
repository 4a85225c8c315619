package transport

import (
	"net/http"

	"github.com/gorilla/websocket"

	"lakenine-studio/internal/domain/entity"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The studio UI is served from another origin in development.
	CheckOrigin: func(*http.Request) bool { return true },
}

type wsEvent struct {
	Type   string                   `json:"type"`
	Stage  string                   `json:"stage,omitempty"`
	Error  string                   `json:"error,omitempty"`
	Result *entity.GenerateResponse `json:"result,omitempty"`
}

// handleGenerateWS runs the same pipeline as the POST endpoint but
// pushes stage events as they happen. The client sends one
// GenerateRequest and receives progress events followed by a final
// result or error event.
func (h *StudioHandler) handleGenerateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var req entity.GenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(wsEvent{Type: "error", Error: "invalid request"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = conn.WriteJSON(wsEvent{Type: "error", Error: err.Error()})
		return
	}

	progress := func(stage string) {
		_ = conn.WriteJSON(wsEvent{Type: "progress", Stage: stage})
	}
	resp, err := h.generator.GenerateStream(r.Context(), req, progress)
	if err != nil {
		h.logger.Error("websocket generation failed", "error", err)
		_ = conn.WriteJSON(wsEvent{Type: "error", Error: "generation failed"})
		return
	}
	_ = conn.WriteJSON(wsEvent{Type: "result", Result: resp})
}
