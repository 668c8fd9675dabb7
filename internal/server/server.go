// Package server exposes polynomial operations over HTTP as JSON tools.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zephyrtronium/polynomial"
	"github.com/zephyrtronium/polynomial/internal/logging"
)

const maxBodyBytes = 1 << 20

// DefaultMaxPrecision is the largest precision accepted by /v1/eval when
// Options.MaxPrecision is zero.
const DefaultMaxPrecision = 4096

// Options configures a Server.
type Options struct {
	// Logger receives one record per request. Nil discards.
	Logger *slog.Logger
	// Registry receives the server's metrics and is served at /metrics. Nil
	// creates a private registry.
	Registry *prometheus.Registry
	// Variable selects the variable marker for parsing and formatting. Nil
	// means x.
	Variable polynomial.Option
	// Precision is the default precision in bits for /v1/eval. Zero means
	// float64 arithmetic.
	Precision uint
	// MaxPrecision is the largest precision a request may ask for. Zero means
	// DefaultMaxPrecision.
	MaxPrecision uint
}

// Server handles polynomial requests.
type Server struct {
	log     *slog.Logger
	reg     *prometheus.Registry
	popts   []polynomial.ParseOption
	fopts   []polynomial.FormatOption
	prec    uint
	maxPrec uint

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a server and registers its metrics.
func New(o Options) *Server {
	s := &Server{
		log:     o.Logger,
		reg:     o.Registry,
		prec:    o.Precision,
		maxPrec: o.MaxPrecision,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polynomial_requests_total",
				Help: "Requests handled, by operation and status code.",
			},
			[]string{"op", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "polynomial_request_duration_seconds",
				Help:    "Time spent handling requests, by operation.",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"op"},
		),
	}
	if s.log == nil {
		s.log = logging.NewNop()
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	if s.maxPrec == 0 {
		s.maxPrec = DefaultMaxPrecision
	}
	if o.Variable != nil {
		s.popts = []polynomial.ParseOption{o.Variable}
		s.fopts = []polynomial.FormatOption{o.Variable}
	}
	s.reg.MustRegister(s.requests, s.duration)
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/eval", s.eval)
		r.Post("/add", s.binary(polynomial.Polynomial.Add))
		r.Post("/multiply", s.binary(polynomial.Polynomial.Multiply))
		r.Post("/format", s.format)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	return r
}

// observe records metrics and a log line for each request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start)
		op := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			op = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		s.requests.WithLabelValues(op, strconv.Itoa(code)).Inc()
		s.duration.WithLabelValues(op).Observe(dur.Seconds())
		s.log.LogAttrs(r.Context(), slog.LevelDebug, "request",
			slog.String("id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("op", op),
			slog.Int("status", code),
			slog.Duration("dur", dur),
		)
	})
}

// PolyResponse describes a polynomial in responses.
type PolyResponse struct {
	Polynomial string            `json:"polynomial"`
	Terms      []polynomial.Term `json:"terms"`
	Degree     *int32            `json:"degree,omitempty"`
	Canonical  bool              `json:"canonical"`
}

func (s *Server) describe(p polynomial.Polynomial) PolyResponse {
	r := PolyResponse{
		Polynomial: polynomial.Format(p, s.fopts...),
		Terms:      p.Terms(),
		Canonical:  p.IsCanonical(),
	}
	if d, ok := p.Degree(); ok {
		r.Degree = &d
	}
	return r
}

// EvalRequest is the body of /v1/eval.
type EvalRequest struct {
	Polynomial string  `json:"polynomial"`
	X          float64 `json:"x"`
	// Precision overrides the server's default precision when non-zero.
	Precision uint `json:"precision,omitempty"`
}

// EvalResponse is the result of /v1/eval. Value is omitted when the result is
// not finite, since JSON has no representation for it; Text always holds it.
type EvalResponse struct {
	Value *float64 `json:"value,omitempty"`
	Text  string   `json:"text"`
}

func (s *Server) eval(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if !s.decode(w, r, &req) {
		return
	}
	prec := req.Precision
	if prec == 0 {
		prec = s.prec
	}
	if prec > s.maxPrec {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("precision %d exceeds limit of %d bits", prec, s.maxPrec)})
		return
	}
	p, err := polynomial.ParseString(req.Polynomial, s.popts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var resp EvalResponse
	if prec == 0 {
		v := p.Evaluate(req.X)
		resp.Text = strconv.FormatFloat(v, 'g', -1, 64)
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			resp.Value = &v
		}
	} else {
		v, err := p.EvaluateBig(new(big.Float).SetFloat64(req.X), prec)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.Text = v.Text('g', -1)
		if f, _ := v.Float64(); !math.IsInf(f, 0) {
			resp.Value = &f
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// BinaryRequest is the body of /v1/add and /v1/multiply.
type BinaryRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) binary(op func(a, b polynomial.Polynomial) polynomial.Polynomial) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BinaryRequest
		if !s.decode(w, r, &req) {
			return
		}
		a, err := polynomial.ParseString(req.A, s.popts...)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		b, err := polynomial.ParseString(req.B, s.popts...)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, s.describe(op(a, b)))
	}
}

// FormatRequest is the body of /v1/format.
type FormatRequest struct {
	Polynomial string `json:"polynomial"`
	Canonical  bool   `json:"canonical,omitempty"`
}

func (s *Server) format(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := polynomial.ParseString(req.Polynomial, s.popts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Canonical {
		p = p.Canonical()
	}
	writeJSON(w, http.StatusOK, s.describe(p))
}

// decode reads a JSON body into v. If it fails, it writes the error response
// and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	// Pos is the position in the input text of the problem, if known.
	Pos int `json:"pos,omitempty"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{Error: err.Error()}
	code := http.StatusInternalServerError
	var ie polynomial.InputError
	var de *polynomial.DomainError
	switch {
	case errors.As(err, &ie):
		code = http.StatusBadRequest
		resp.Pos = ie.Pos()
	case errors.Is(err, polynomial.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.As(err, &de):
		code = http.StatusUnprocessableEntity
	default:
		s.log.ErrorContext(r.Context(), "request failed", "error", err)
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
