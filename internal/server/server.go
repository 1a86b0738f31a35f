// Package server exposes the cube over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Rashmi-kavindya/RubiksCube"
)

// Cube is the subset of rubikscube.Owner the handlers need.
type Cube interface {
	Apply(ctx context.Context, token string) (rubikscube.Outcome, error)
	Randomize(ctx context.Context) ([]rubikscube.Move, error)
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (*rubikscube.Cube, error)
}

// Server implements the HTTP handlers.
type Server struct {
	cube    Cube
	logger  *slog.Logger
	metrics http.Handler
}

// NewHandler creates the router. metrics may be nil.
func NewHandler(cube Cube, logger *slog.Logger, metrics http.Handler) http.Handler {
	s := &Server{cube: cube, logger: logger, metrics: metrics}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/cube", s.GetCube)
	r.Get("/faces/{face}", s.GetFace)
	r.Post("/moves/{token}", s.PostMove)
	r.Post("/shuffle", s.PostShuffle)
	r.Post("/reset", s.PostReset)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}

// CubeResponse is the JSON form of a cube.
type CubeResponse struct {
	Faces    map[string][3][3]string `json:"faces"`
	Solved   bool                    `json:"solved"`
	Balanced bool                    `json:"balanced"`
}

// MoveResponse is returned by POST /moves/{token}.
type MoveResponse struct {
	Move    string        `json:"move"`
	Outcome string        `json:"outcome"`
	Error   string        `json:"error,omitempty"`
	Cube    *CubeResponse `json:"cube,omitempty"`
}

// ShuffleResponse is returned by POST /shuffle.
type ShuffleResponse struct {
	Moves []string      `json:"moves,omitempty"`
	Cube  *CubeResponse `json:"cube"`
}

func toGrid(g rubikscube.Grid) [3][3]string {
	var out [3][3]string
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = g[row][col].Name()
		}
	}
	return out
}

func toResponse(c *rubikscube.Cube) *CubeResponse {
	resp := &CubeResponse{
		Faces:    make(map[string][3][3]string, len(rubikscube.Faces)),
		Solved:   c.IsSolved(),
		Balanced: c.IsBalanced(),
	}
	for _, f := range rubikscube.Faces {
		resp.Faces[f.String()] = toGrid(c.Face(f))
	}
	return resp
}

// GetCube handles GET /cube.
func (s *Server) GetCube(w http.ResponseWriter, r *http.Request) {
	c, err := s.cube.Snapshot(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(c))
}

// GetFace handles GET /faces/{face}.
func (s *Server) GetFace(w http.ResponseWriter, r *http.Request) {
	face, err := rubikscube.ParseFace(chi.URLParam(r, "face"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	c, err := s.cube.Snapshot(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGrid(c.Face(face)))
}

// PostMove handles POST /moves/{token}.
//
// Applied answers 200, an unknown token 422 and EX 409: a remote client
// cannot end the server's session.
func (s *Server) PostMove(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	outcome, err := s.cube.Apply(r.Context(), token)
	if err != nil && !errors.Is(err, rubikscube.ErrUnrecognizedMove) {
		s.fail(w, err)
		return
	}

	resp := MoveResponse{Move: token, Outcome: outcome.String()}
	status := http.StatusOK
	switch outcome {
	case rubikscube.Unrecognized:
		status = http.StatusUnprocessableEntity
		if err != nil {
			resp.Error = err.Error()
		}
	case rubikscube.TerminateRequested:
		status = http.StatusConflict
	}

	c, err := s.cube.Snapshot(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	resp.Cube = toResponse(c)
	s.writeJSON(w, status, resp)
}

// PostShuffle handles POST /shuffle.
func (s *Server) PostShuffle(w http.ResponseWriter, r *http.Request) {
	moves, err := s.cube.Randomize(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	c, err := s.cube.Snapshot(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	resp := ShuffleResponse{Cube: toResponse(c)}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, m.String())
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// PostReset handles POST /reset.
func (s *Server) PostReset(w http.ResponseWriter, r *http.Request) {
	if err := s.cube.Reset(r.Context()); err != nil {
		s.fail(w, err)
		return
	}

	c, err := s.cube.Snapshot(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(c))
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	http.Error(w, err.Error(), http.StatusServiceUnavailable)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
