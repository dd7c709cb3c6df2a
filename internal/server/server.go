// Package server exposes maze generation and solving over HTTP.
//
// Routes:
//
//	GET  /healthz  liveness probe
//	GET  /maze     generate a maze (query: width, height, seed, style, debug)
//	POST /solve    solve a ruled-format maze sent as the request body
//
// Responses are text/plain maze renderings, the same bytes the CLI emits.
// Seeded generations are served through the cache; unseeded ones are
// generated fresh on every request.
package server

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/asciimaze/mazectl/pkg/cache"
	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/eller"
	"github.com/asciimaze/mazectl/pkg/maze/parse"
	"github.com/asciimaze/mazectl/pkg/maze/render"
	"github.com/asciimaze/mazectl/pkg/maze/solve"
)

// cacheTTL bounds how long a rendered maze stays cached.
const cacheTTL = 24 * time.Hour

// maxBodyBytes caps the solve request body. A maze line is 3*width+7
// bytes; this allows mazes far beyond anything a terminal can display.
const maxBodyBytes = 8 << 20

// Server handles maze HTTP requests.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	router chi.Router
}

// New creates a server using the given logger and cache. Pass a NullCache
// to disable caching.
func New(logger *log.Logger, c cache.Cache) *Server {
	s := &Server{logger: logger, cache: c}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/maze", s.handleMaze)
	r.Post("/solve", s.handleSolve)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// mazeParams are the query parameters of GET /maze.
type mazeParams struct {
	width  int
	height int
	seed   uint64
	seeded bool
	style  string
}

func parseMazeParams(r *http.Request) (mazeParams, error) {
	q := r.URL.Query()
	p := mazeParams{style: "ruled"}

	var err error
	if p.width, err = strconv.Atoi(q.Get("width")); err != nil {
		return p, errors.New(errors.ErrCodeInvalidSize, "width must be an integer")
	}
	if p.height, err = strconv.Atoi(q.Get("height")); err != nil {
		return p, errors.New(errors.ErrCodeInvalidSize, "height must be an integer")
	}
	if p.width < 1 || p.height < 1 {
		return p, errors.New(errors.ErrCodeInvalidSize, "maze width and height must be greater than 0")
	}
	if v := q.Get("seed"); v != "" {
		if p.seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return p, errors.New(errors.ErrCodeInvalidInput, "seed must be an unsigned integer")
		}
		p.seeded = true
	}
	if v := q.Get("style"); v != "" {
		if v != "ruled" && v != "block" {
			return p, errors.New(errors.ErrCodeInvalidFormat, "style must be %q or %q", "ruled", "block")
		}
		p.style = v
	}
	return p, nil
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	p, err := parseMazeParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cache.MazeKey(cache.MazeKeyOpts{
		Width: p.width, Height: p.height, Seed: p.seed, Style: p.style,
	})
	if p.seeded {
		if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
			s.writeMaze(w, data)
			return
		}
	}

	seed := p.seed
	if !p.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := eller.New(p.width, p.height, seed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var rr render.RowRenderer = render.Ruled{}
	if p.style == "block" {
		rr = render.Block{}
	}
	var buf bytes.Buffer
	for g.Next() {
		if err := rr.RenderRow(&buf, g.Row(), g.Prev(), g.Labels(), g.First(), g.Last()); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	if p.seeded {
		if err := s.cache.Set(r.Context(), key, buf.Bytes(), cacheTTL); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		}
	}
	s.writeMaze(w, buf.Bytes())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	m, err := parse.Maze(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !solve.Maze(m) {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsolvable, "no path found through maze"))
		return
	}
	s.writeMaze(w, joinLines(m))
}

func joinLines(m *maze.Maze) []byte {
	var buf bytes.Buffer
	for _, line := range m.Lines {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (s *Server) writeMaze(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.CodeOf(err))
	s.logger.Debug("request failed", "path", r.URL.Path, "status", status, "err", err)
	http.Error(w, err.Error(), status)
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidSize, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeMalformedMaze, errors.ErrCodeUnsolvable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
