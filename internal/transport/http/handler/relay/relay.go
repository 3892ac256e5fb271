// Package relay serves the Friday command endpoint.
package relay

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mandalnilabja/friday/internal/provider"
	"github.com/mandalnilabja/friday/internal/transport/http/middleware"
	"github.com/mandalnilabja/friday/internal/types"
)

// Path is where the relay is mounted.
const Path = "/api/friday"

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

// Handlers holds the dependencies for the relay endpoint.
type Handlers struct {
	Client provider.ChatClient
	Logger *slog.Logger
	Now    func() time.Time
}

// New creates relay handlers backed by client.
func New(client provider.ChatClient, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		Client: client,
		Logger: logger,
		Now:    time.Now,
	}
}

// ServeHTTP dispatches on method. CORS headers are set on every response.
func (h *Handlers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.SetCORSHeaders(w.Header())

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		h.Status(w, r)
	case http.MethodPost:
		h.Command(w, r)
	default:
		types.WriteError(w, http.StatusMethodNotAllowed, types.NewErrorResponse(types.ErrMethodNotAllowed, ""))
	}
}

// Status describes the service.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, types.ServiceStatus{
		Success:   true,
		Message:   "🎀 Friday AI Cloud API",
		Status:    "online",
		Timestamp: h.Now().UnixMilli(),
		Endpoints: types.Endpoints{
			Main: "POST " + Path,
			Test: "GET " + Path,
		},
		Usage: `Send POST request with { "command": "your question" }`,
	})
}

// Command relays one command to the upstream model.
func (h *Handlers) Command(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, err := decodeCommand(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.Logger.DebugContext(ctx, "undecodable command body", "error", err, "request_id", requestID)
	}

	if !req.HasCommand() {
		types.WriteError(w, http.StatusBadRequest, types.NewErrorResponse(types.ErrMissingCommand, ""))
		return
	}
	req.Normalize()

	h.Logger.InfoContext(ctx, "processing command",
		"command", req.Command,
		"user_id", req.UserID,
		"request_id", requestID,
	)

	reply, err := h.Client.Complete(ctx, req.Command)
	if err != nil {
		h.Logger.ErrorContext(ctx, "command failed",
			"error", err,
			"kind", provider.KindOf(err),
			"request_id", requestID,
		)
		types.WriteError(w, http.StatusInternalServerError, types.NewErrorResponse(types.ErrInternal, err.Error()))
		return
	}

	types.WriteJSON(w, http.StatusOK, types.CommandResponse{
		Success:   true,
		Response:  reply,
		UserID:    req.UserID,
		Timestamp: h.Now().UnixMilli(),
		Model:     h.Client.Model(),
	})
}

// decodeCommand reads a CommandRequest from body. A userId of the wrong type
// falls back to the default user; any other decode error yields an empty request.
func decodeCommand(body io.Reader) (types.CommandRequest, error) {
	var req types.CommandRequest
	err := json.NewDecoder(body).Decode(&req)
	if err == nil {
		return req, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "userId" {
		req.UserID = ""
		return req, err
	}
	return types.CommandRequest{}, err
}
