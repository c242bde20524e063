// Package api exposes a loaded road graph over HTTP.
//
// Routes:
//
//	GET /health                                       liveness
//	GET /stats                                        node, edge and component counts
//	GET /nodes/{id}                                   one node with its outgoing edges
//	GET /route?from=&to=[&heuristic=&scale=]          least-cost path
//	GET /components/{id}                              strongly connected component of a node
//
// Errors are JSON objects {"error": "..."}.
package api

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Server answers routing queries against one immutable graph. Handlers are
// safe for concurrent use.
type Server struct {
	graph      *core.Graph
	components *dfs.Components
	heuristic  dijkstra.Heuristic
	logger     *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithHeuristic sets the heuristic used when a request names none.
func WithHeuristic(h dijkstra.Heuristic) Option {
	return func(s *Server) { s.heuristic = h }
}

// WithLogger replaces the request logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("api: WithLogger(nil)")
	}
	return func(s *Server) { s.logger = l }
}

// New prepares a Server for g, computing its strongly connected components.
func New(g *core.Graph, opts ...Option) (*Server, error) {
	comps, err := dfs.StronglyConnected(g)
	if err != nil {
		return nil, err
	}
	s := &Server{
		graph:      g,
		components: comps,
		logger:     log.New(os.Stderr, "lvrouted ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// RegisterRoutes mounts the API on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	router.HandleFunc("/stats", s.Stats).Methods(http.MethodGet)
	router.HandleFunc("/nodes/{id:[0-9]+}", s.Node).Methods(http.MethodGet)
	router.HandleFunc("/route", s.Route).Methods(http.MethodGet)
	router.HandleFunc("/components/{id:[0-9]+}", s.Component).Methods(http.MethodGet)
}

// Handler returns a router with every route, request logging and CORS
// method headers installed.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	r.Use(s.logRequests)
	r.Use(mux.CORSMethodMiddleware(r))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such route")
	})

	return r
}
