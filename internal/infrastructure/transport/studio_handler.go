package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lakenine-studio/app/usecase"
	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/llm"
	"lakenine-studio/internal/infrastructure/store/mongodb"
)

// StudioHandler exposes the generation pipeline and its supporting
// surfaces over HTTP.
type StudioHandler struct {
	generator usecase.GeneratorUsecase
	chats     usecase.ChatUsecase
	deployer  usecase.DeployUsecase
	validate  *validator.Validate
	logger    *slog.Logger

	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec
	errorCount      *prometheus.CounterVec
}

func NewStudioHandler(
	generator usecase.GeneratorUsecase,
	chats usecase.ChatUsecase,
	deployer usecase.DeployUsecase,
	logger *slog.Logger,
) *StudioHandler {
	h := &StudioHandler{
		generator: generator,
		chats:     chats,
		deployer:  deployer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "studio_http_request_duration_seconds",
				Help:    "HTTP request latency by route and method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studio_http_requests_total",
				Help: "HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		errorCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studio_http_errors_total",
				Help: "HTTP 5xx responses by route.",
			},
			[]string{"route"},
		),
	}
	prometheus.MustRegister(h.requestDuration, h.requestCount, h.errorCount)
	return h
}

func (h *StudioHandler) RegisterRoutes(router *mux.Router) {
	router.Handle("/metrics", promhttp.Handler())

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(h.withMetrics)

	api.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/generate", h.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/generate/ws", h.handleGenerateWS).Methods(http.MethodGet)
	api.HandleFunc("/chats", h.handleSaveChat).Methods(http.MethodPost)
	api.HandleFunc("/chats", h.handleListChats).Methods(http.MethodGet)
	api.HandleFunc("/chats/{id}", h.handleGetChat).Methods(http.MethodGet)
	api.HandleFunc("/chats/{id}", h.handleDeleteChat).Methods(http.MethodDelete)
	api.HandleFunc("/deploy", h.handleDeploy).Methods(http.MethodPost)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *StudioHandler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		h.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		h.requestCount.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		if rec.status >= 500 {
			h.errorCount.WithLabelValues(route).Inc()
		}
	})
}

func (h *StudioHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StudioHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req entity.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			h.writeError(w, http.StatusBadGateway, "model provider unavailable, try again later")
			return
		}
		h.logger.Error("generation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *StudioHandler) handleSaveChat(w http.ResponseWriter, r *http.Request) {
	var chat entity.Chat
	if err := json.NewDecoder(r.Body).Decode(&chat); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	saved, err := h.chats.SaveChat(r.Context(), &chat)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *StudioHandler) handleGetChat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	chat, err := h.chats.GetChat(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "chat not found")
			return
		}
		h.logger.Error("chat lookup failed", "chat_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "chat lookup failed")
		return
	}
	h.writeJSON(w, http.StatusOK, chat)
}

func (h *StudioHandler) handleListChats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	chats, err := h.chats.ListChats(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("chat list failed", "user_id", userID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "chat list failed")
		return
	}
	if chats == nil {
		chats = []*entity.Chat{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"chats": chats})
}

func (h *StudioHandler) handleDeleteChat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.chats.DeleteChat(r.Context(), id); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "chat not found")
			return
		}
		h.logger.Error("chat delete failed", "chat_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "chat delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudioHandler) handleDeploy(w http.ResponseWriter, r *http.Request) {
	var req entity.DeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dep, err := h.deployer.DeployProject(r.Context(), req)
	if err != nil {
		h.logger.Error("deployment failed", "project", req.ProjectName, "error", err)
		h.writeError(w, http.StatusBadGateway, "deployment failed")
		return
	}
	h.writeJSON(w, http.StatusOK, dep)
}

func (h *StudioHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response encode failed", "error", err)
	}
}

func (h *StudioHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
