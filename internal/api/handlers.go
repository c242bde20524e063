package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/cost"
	"github.com/katalvlaran/lvroute/dijkstra"
)

type statsResponse struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Components int `json:"components"`
	Largest    int `json:"largest_component_size"`
}

type edgeJSON struct {
	To   core.NodeID `json:"to"`
	Cost cost.Cost   `json:"cost"`
}

type nodeJSON struct {
	ID    core.NodeID `json:"id"`
	Lat   float64     `json:"lat"`
	Lon   float64     `json:"lon"`
	Edges []edgeJSON  `json:"edges,omitempty"`
}

type routeResponse struct {
	From      core.NodeID `json:"from"`
	To        core.NodeID `json:"to"`
	Cost      cost.Cost   `json:"cost"`
	Settled   int         `json:"settled"`
	Heuristic string      `json:"heuristic"`
	Nodes     []nodeJSON  `json:"nodes"`
}

type componentResponse struct {
	Node      core.NodeID `json:"node"`
	Component int         `json:"component"`
	Size      int         `json:"size"`
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats reports graph size.
func (s *Server) Stats(w http.ResponseWriter, _ *http.Request) {
	resp := statsResponse{
		Nodes:      s.graph.Len(),
		Edges:      s.graph.EdgeCount(),
		Components: s.components.Count(),
	}
	if i := s.components.Largest(); i >= 0 {
		resp.Largest = len(s.components.Groups[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Node returns one node and its outgoing edges.
func (s *Server) Node(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	n, err := s.graph.Node(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	out := nodeJSON{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Edges: make([]edgeJSON, len(n.Edges))}
	for i, e := range n.Edges {
		out.Edges[i] = edgeJSON{To: e.To, Cost: e.Cost}
	}
	writeJSON(w, http.StatusOK, out)
}

// Route computes a least-cost path between the from and to query parameters.
// heuristic (none|haversine|euclidean) and scale override the server default.
func (s *Server) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseID(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := parseID(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}

	h, name := s.heuristic, "default"
	if hv := q.Get("heuristic"); hv != "" {
		scale := 1.0
		if sv := q.Get("scale"); sv != "" {
			if scale, err = strconv.ParseFloat(sv, 64); err != nil {
				writeError(w, http.StatusBadRequest, "scale: "+err.Error())
				return
			}
		}
		if h, err = dijkstra.ParseHeuristic(hv, scale); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		name = hv
	}
	if h == nil {
		name = "none"
	}

	// the client may already be gone
	if r.Context().Err() != nil {
		return
	}

	var opts []dijkstra.Option
	if h != nil {
		opts = append(opts, dijkstra.WithHeuristic(h))
	}
	p, err := dijkstra.ShortestPath(s.graph, from, to, opts...)
	switch {
	case errors.Is(err, dijkstra.ErrNodeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, dijkstra.ErrUnreachable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := routeResponse{
		From: from, To: to, Cost: p.Cost, Settled: p.Settled, Heuristic: name,
		Nodes: make([]nodeJSON, len(p.Nodes)),
	}
	for i, n := range p.Nodes {
		resp.Nodes[i] = nodeJSON{ID: n.ID, Lat: n.Lat, Lon: n.Lon}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Component returns the strongly connected component holding a node.
func (s *Server) Component(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	c, found := s.components.Of(id)
	if !found {
		writeError(w, http.StatusNotFound, "node "+strconv.FormatUint(uint64(id), 10)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, componentResponse{Node: id, Component: c, Size: len(s.components.Groups[c])})
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (core.NodeID, bool) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "id: "+err.Error())
		return 0, false
	}

	return id, true
}

var errMissing = errors.New("missing")

func parseID(v string) (core.NodeID, error) {
	if v == "" {
		return 0, errMissing
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}

	return core.NodeID(n), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
