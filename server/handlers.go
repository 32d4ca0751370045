package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/export"
	"github.com/katalvlaran/mstviz/prim_kruskal"
	"github.com/katalvlaran/mstviz/render"
)

// SkippedHeader reports how many input lines lenient parsing dropped.
const SkippedHeader = "X-Skipped-Lines"

// errUnsupportedMedia marks a Content-Type other than text/plain or JSON.
var errUnsupportedMedia = errors.New("server: unsupported media type")

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", requestIDFrom(r.Context()))
	}
	s.writeJSON(w, status, errorBody{Error: err.Error(), RequestID: requestIDFrom(r.Context())})
}

// statusFor maps an input error to its HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, core.ErrInvalidNodeCount),
		errors.Is(err, core.ErrMissingHeader),
		errors.Is(err, core.ErrMalformedLine),
		errors.Is(err, core.ErrEndpointRange),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errBadRequest marks malformed request input without a more specific sentinel.
var errBadRequest = errors.New("server: bad request")

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMethods(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"methods": prim_kruskal.Methods()})
}

// buildTrace parses the method, the body graph and runs the builder.
func (s *Server) buildTrace(w http.ResponseWriter, r *http.Request) (prim_kruskal.Trace, *core.Graph, error) {
	method, err := prim_kruskal.ParseMethod(chi.URLParam(r, "method"))
	if err != nil {
		return prim_kruskal.Trace{}, nil, err
	}

	g, err := s.readGraph(w, r)
	if err != nil {
		return prim_kruskal.Trace{}, nil, err
	}

	tr, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(method)))
	if err != nil {
		return prim_kruskal.Trace{}, nil, err
	}
	s.logger.Debug("trace built", "method", method, "nodes", g.N(), "edges", g.M(), "steps", tr.Len(),
		"request_id", requestIDFrom(r.Context()))

	return tr, g, nil
}

// readGraph decodes the request body according to its Content-Type.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*core.Graph, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()

	mediaType := "text/plain"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("content type %q: %w", ct, errUnsupportedMedia)
		}
		mediaType = mt
	}

	switch mediaType {
	case "text/plain":
		var opts []core.ParseOption
		if strict, _ := strconv.ParseBool(r.URL.Query().Get("strict")); strict {
			opts = append(opts, core.WithStrict())
		}
		g, err := core.Parse(body, opts...)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		return g, nil
	case "application/json":
		g, err := core.DecodeJSON(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("content type %q: %w", mediaType, errUnsupportedMedia)
	}
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	format := s.format
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := export.ParseFormat(q)
		if err != nil {
			s.writeError(w, r, statusFor(err), err)
			return
		}
		format = f
	}

	tr, g, err := s.buildTrace(w, r)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	// Encode into a buffer so an encoding failure can still become a 500.
	var buf bytes.Buffer
	if err := export.Encode(&buf, tr, format); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set(SkippedHeader, strconv.Itoa(g.Skipped()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	step := -1
	if q := r.URL.Query().Get("step"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			err = fmt.Errorf("step %q: %w", q, errBadRequest)
			s.writeError(w, r, statusFor(err), err)
			return
		}
		step = n
	}

	tr, _, err := s.buildTrace(w, r)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	if step < 0 {
		step = tr.Len() - 1
	}

	dot, err := render.ToDOT(tr, step)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dot))
}
