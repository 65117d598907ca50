package entsoetest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Response is what the fake server answers to one query.
type Response struct {
	Status int
	Body   []byte
}

// Handler picks the response for a query.
type Handler func(q url.Values) Response

// Server fakes the REST endpoint and records every query it receives.
type Server struct {
	*httptest.Server
	handler Handler

	mu      sync.Mutex
	queries []url.Values
}

// NewServer starts a server; callers must Close it.
func NewServer(h Handler) *Server {
	s := &Server{handler: h}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	resp := s.handler(q)
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

// Queries returns a copy of the received query strings, in order.
func (s *Server) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]url.Values, len(s.queries))
	copy(out, s.queries)
	return out
}
