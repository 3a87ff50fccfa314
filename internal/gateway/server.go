package gateway

import (
	"net/http"

	"healthpilot/internal/agent"
	"healthpilot/internal/channels"
	"healthpilot/internal/eval"
	"healthpilot/internal/history"
)

type Server struct {
	runner agent.Runner
	store  *history.Store
	eval   *eval.Runner
	mux    *http.ServeMux
}

func NewServer(runner agent.Runner, store *history.Store, evalRunner *eval.Runner, chs ...channels.Channel) *Server {
	s := &Server{
		runner: runner,
		store:  store,
		eval:   evalRunner,
		mux:    http.NewServeMux(),
	}
	s.routes()
	for _, ch := range chs {
		ch.RegisterRoutes(s.mux)
	}
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/chat", s.handleChat)
	s.mux.HandleFunc("GET /v1/tips/{condition}", s.handleTips)
	s.mux.HandleFunc("POST /v1/reminders", s.handleScheduleReminder)
	s.mux.HandleFunc("POST /v1/eval", s.handleEval)
	s.mux.HandleFunc("GET /v1/sessions", s.handleListSessions)
	s.mux.HandleFunc("GET /v1/sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
