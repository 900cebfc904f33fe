// Package plotlytest provides an in-process fake of the plotting service.
//
// A [Server] answers the clientresp endpoint, records every call it receives
// and replies with a fixed chart URL or a configured failure:
//
//	srv := plotlytest.NewServer()
//	defer srv.Close()
//
//	client, _ := plotly.NewClient(plotly.Config{BaseURL: srv.URL, Credentials: creds})
//	url, err := client.Publish(ctx, fig, plotly.PublishOptions{Filename: "axes-reversed"})
//	calls := srv.Calls()
package plotlytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/plotpub/pkg/figure"
)

// DefaultURL is the chart URL returned by a Server unless overridden.
const DefaultURL = "http://example.test/chart/1"

// Call is one recorded clientresp request.
type Call struct {
	Username      string
	APIKey        string
	Origin        string
	Platform      string
	RequestID     string
	Filename      string
	FileOpt       string
	WorldReadable bool
	Traces        []*figure.Scatter
	Layout        *figure.Layout
}

// Failure describes how the server should fail a request.
type Failure struct {
	Status int    // HTTP status to reply with; 0 keeps 200
	Error  string // Service-level error message placed in the JSON body
	Drop   bool   // Close the connection without replying
}

// Server is a recording fake of the plotting service.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []Call
	url     string
	warning string
	failure *Failure
}

// NewServer starts a Server that answers with DefaultURL.
func NewServer() *Server {
	s := &Server{url: DefaultURL}

	r := chi.NewRouter()
	r.Post("/clientresp", s.handleClientresp)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	s.Server = httptest.NewServer(r)
	return s
}

// SetURL changes the chart URL returned on success.
func (s *Server) SetURL(u string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = u
}

// SetWarning adds a warning to successful responses.
func (s *Server) SetWarning(w string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warning = w
}

// Fail makes every following request fail as described by f.
// Pass nil to restore successful responses.
func (s *Server) Fail(f *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = f
}

// Calls returns a copy of the recorded requests in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) handleClientresp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	call := Call{
		Username:  r.PostForm.Get("un"),
		APIKey:    r.PostForm.Get("key"),
		Origin:    r.PostForm.Get("origin"),
		Platform:  r.PostForm.Get("platform"),
		RequestID: r.Header.Get("X-Request-ID"),
	}

	if err := json.Unmarshal([]byte(r.PostForm.Get("args")), &call.Traces); err != nil {
		s.record(call)
		writeJSON(w, http.StatusOK, map[string]string{"error": "malformed args: " + err.Error()})
		return
	}

	var kwargs struct {
		Filename      string         `json:"filename"`
		FileOpt       string         `json:"fileopt"`
		WorldReadable bool           `json:"world_readable"`
		Layout        *figure.Layout `json:"layout"`
	}
	if err := json.Unmarshal([]byte(r.PostForm.Get("kwargs")), &kwargs); err != nil {
		s.record(call)
		writeJSON(w, http.StatusOK, map[string]string{"error": "malformed kwargs: " + err.Error()})
		return
	}
	call.Filename = kwargs.Filename
	call.FileOpt = kwargs.FileOpt
	call.WorldReadable = kwargs.WorldReadable
	call.Layout = kwargs.Layout
	s.record(call)

	s.mu.Lock()
	failure, chartURL, warning := s.failure, s.url, s.warning
	s.mu.Unlock()

	if failure != nil {
		if failure.Drop {
			dropConnection(w)
			return
		}
		status := failure.Status
		if status == 0 {
			status = http.StatusOK
		}
		writeJSON(w, status, map[string]string{"error": failure.Error})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":      chartURL,
		"filename": kwargs.Filename,
		"warning":  warning,
		"message":  "",
		"error":    "",
	})
}

func (s *Server) record(c Call) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func dropConnection(w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic(http.ErrAbortHandler)
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		panic(http.ErrAbortHandler)
	}
	conn.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
