package trigger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/relay"
)

// Runner runs one relay invocation.
type Runner interface {
	Run(ctx context.Context) relay.Response
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Server exposes the relay over HTTP for manual or external triggering.
type Server struct {
	runner Runner
}

func NewServer(runner Runner) *Server {
	return &Server{runner: runner}
}

// Router wires the trigger endpoints.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	r.HandleFunc("/invoke", s.invokeHandler).Methods("POST")
	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) invokeHandler(w http.ResponseWriter, r *http.Request) {
	log.Info("Invocation requested over HTTP", zap.String("remote_addr", r.RemoteAddr))
	resp := s.runner.Run(r.Context())
	writeJSON(w, resp.StatusCode, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", zap.Error(err))
	}
}
