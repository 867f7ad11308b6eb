package api

import (
	"log/slog"
	"net/http"
)

// Server is the HTTP collaborator around the packing core: it owns no
// packing state of its own, only the process-wide Config every request
// starts from. One Pack call is made per request; there is no shared state
// between requests besides Config.
type Server struct {
	cfg Config
	log *slog.Logger
	mux *http.ServeMux
}

// NewServer builds a Server ready to be used as an http.Handler. log may be
// nil, in which case slog.Default() is used.
func NewServer(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, log: log, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/pack", s.handlePack)
	s.mux.HandleFunc("POST /v1/pack/stream", s.handlePackStream)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
