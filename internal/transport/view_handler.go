// Package transport exposes the view-model over JSON HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/compose"
	"github.com/goodnatureofminers/ledgerview/internal/ledger"
	"github.com/goodnatureofminers/ledgerview/internal/model"
	"github.com/goodnatureofminers/ledgerview/internal/view"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

type balanceResponse struct {
	Address model.Address   `json:"address"`
	Balance json.RawMessage `json:"balance"`
	Source  string          `json:"source"`
}

type registerRequest struct {
	Node string `json:"node"`
}

// ViewHandler serves the view, balance, node and compose endpoints.
type ViewHandler struct {
	view      View
	workflows map[model.Kind]Workflow
	logger    *zap.Logger
}

// NewViewHandler returns a ViewHandler instance.
func NewViewHandler(v View, workflows map[model.Kind]Workflow, logger *zap.Logger) (*ViewHandler, error) {
	if v == nil {
		return nil, errors.New("view is required")
	}
	for _, kind := range []model.Kind{model.KindTransaction, model.KindInvestment} {
		if workflows[kind] == nil {
			return nil, errors.New("workflow for " + string(kind) + " is required")
		}
	}
	return &ViewHandler{view: v, workflows: workflows, logger: logger}, nil
}

// Register mounts the handler routes on mux.
func (h *ViewHandler) Register(mux *http.ServeMux) {
	// Selecting a view bumps the generation and may start enrichment.
	mux.HandleFunc("POST /api/view", h.selectView)
	mux.HandleFunc("GET /api/view/current", h.currentView)
	mux.HandleFunc("POST /api/chain/refresh", h.refresh)
	mux.HandleFunc("GET /api/balance", h.balance)

	mux.HandleFunc("GET /api/nodes", h.nodes)
	mux.HandleFunc("POST /api/nodes/register", h.registerNode)
	mux.HandleFunc("GET /api/nodes/resolve", h.resolveNodes)
	mux.HandleFunc("GET /api/mine", h.mine)
	mux.HandleFunc("GET /api/wallet/new", h.newWallet)

	mux.HandleFunc("GET /api/{kind}", h.composeStatus)
	mux.HandleFunc("POST /api/{kind}/generate", h.generate)
	mux.HandleFunc("POST /api/{kind}/submit", h.submit)
	mux.HandleFunc("POST /api/{kind}/abandon", h.abandon)
}

func (h *ViewHandler) selectView(w http.ResponseWriter, r *http.Request) {
	mode, ok := view.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown view mode"})
		return
	}
	task, err := h.view.Select(r.Context(), mode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if wantWait(r) {
		select {
		case <-task.Done:
		case <-r.Context().Done():
			return
		}
	}
	h.writeJSON(w, http.StatusOK, h.view.Current())
}

func (h *ViewHandler) currentView(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.view.Current())
}

func (h *ViewHandler) refresh(w http.ResponseWriter, r *http.Request) {
	task, err := h.view.Refresh(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if wantWait(r) {
		select {
		case <-task.Done:
		case <-r.Context().Done():
			return
		}
	}
	h.writeJSON(w, http.StatusOK, h.view.Current())
}

func (h *ViewHandler) balance(w http.ResponseWriter, r *http.Request) {
	address := model.Address(strings.TrimSpace(r.URL.Query().Get("address")))
	if address == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "address is required", Field: "address"})
		return
	}
	if r.URL.Query().Get("source") == "remote" {
		remote, err := h.view.RemoteBalance(r.Context(), address)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, balanceResponse{Address: address, Balance: remote.Balance, Source: "remote"})
		return
	}
	amount := h.view.Balance(address)
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Address: address,
		Balance: json.RawMessage(amount.String()),
		Source:  "chain",
	})
}

func (h *ViewHandler) nodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.view.Nodes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nodes)
}

func (h *ViewHandler) registerNode(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	node := strings.TrimSpace(req.Node)
	if node == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "node is required", Field: "node"})
		return
	}
	h.writeRaw(w, r, http.StatusCreated)(h.view.RegisterNode(r.Context(), node))
}

func (h *ViewHandler) resolveNodes(w http.ResponseWriter, r *http.Request) {
	h.writeRaw(w, r, http.StatusOK)(h.view.ResolveNodes(r.Context()))
}

func (h *ViewHandler) mine(w http.ResponseWriter, r *http.Request) {
	h.writeRaw(w, r, http.StatusOK)(h.view.Mine(r.Context()))
}

func (h *ViewHandler) newWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.view.NewWallet(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wallet)
}

func (h *ViewHandler) composeStatus(w http.ResponseWriter, r *http.Request) {
	wf, ok := h.workflow(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, wf.Status())
}

func (h *ViewHandler) generate(w http.ResponseWriter, r *http.Request) {
	wf, ok := h.workflow(w, r)
	if !ok {
		return
	}
	var draft compose.Draft
	if err := decodeBody(w, r, &draft); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	confirmation, err := wf.Generate(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, confirmation)
}

func (h *ViewHandler) submit(w http.ResponseWriter, r *http.Request) {
	wf, ok := h.workflow(w, r)
	if !ok {
		return
	}
	status, err := wf.Submit(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, status)
}

func (h *ViewHandler) abandon(w http.ResponseWriter, r *http.Request) {
	wf, ok := h.workflow(w, r)
	if !ok {
		return
	}
	wf.Abandon()
	h.writeJSON(w, http.StatusOK, wf.Status())
}

func (h *ViewHandler) workflow(w http.ResponseWriter, r *http.Request) (Workflow, bool) {
	kind, ok := model.ParseKind(r.PathValue("kind"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown entry kind"})
		return nil, false
	}
	return h.workflows[kind], true
}

func (h *ViewHandler) writeRaw(w http.ResponseWriter, r *http.Request, code int) func(json.RawMessage, error) {
	return func(body json.RawMessage, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, code, body)
	}
}

// writeError maps domain errors onto HTTP status codes.
func (h *ViewHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *compose.ValidationError
		remote     *ledger.RemoteError
	)
	switch {
	case errors.As(err, &validation):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error(), Field: validation.Field})
	case errors.Is(err, compose.ErrNotConfirmed), errors.Is(err, compose.ErrBusy), errors.Is(err, compose.ErrAbandoned):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &remote):
		h.logger.Warn("ledger request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), StatusCode: remote.StatusCode})
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func (h *ViewHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}

func wantWait(r *http.Request) bool {
	switch r.URL.Query().Get("wait") {
	case "1", "true":
		return true
	}
	return false
}
