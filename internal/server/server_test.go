package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rashmi-kavindya/RubiksCube"
	"github.com/Rashmi-kavindya/RubiksCube/internal/logging"
	"github.com/Rashmi-kavindya/RubiksCube/internal/metrics"
)

func newTestServer(t *testing.T, opts ...rubikscube.Option) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	m := metrics.New()
	engine := rubikscube.NewEngine(opts...)
	engine.OnEvent(m.Observe)

	owner := rubikscube.NewOwner(engine)
	go owner.Run(ctx)

	srv := httptest.NewServer(NewHandler(owner, logging.NewNop(), m.Handler()))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv
}

func post(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestGetCubeSolved(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/cube")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	c := decode[CubeResponse](t, resp)
	assert.True(t, c.Solved)
	assert.True(t, c.Balanced)
	assert.Len(t, c.Faces, 6)
	assert.Equal(t, "blue", c.Faces["front"][1][1])
}

func TestPostMoveOutcomes(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/moves/F+")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mv := decode[MoveResponse](t, resp)
	assert.Equal(t, "applied", mv.Outcome)
	require.NotNil(t, mv.Cube)
	assert.Equal(t, [3]string{"red", "red", "red"}, mv.Cube.Faces["up"][2])
	assert.Equal(t, [3]string{"orange", "orange", "orange"}, mv.Cube.Faces["bottom"][0])

	resp = post(t, srv.URL+"/moves/Z+")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	mv = decode[MoveResponse](t, resp)
	assert.Equal(t, "unrecognized", mv.Outcome)
	assert.Contains(t, mv.Error, "unrecognized move")

	resp = post(t, srv.URL+"/moves/EX")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	mv = decode[MoveResponse](t, resp)
	assert.Equal(t, "terminate_requested", mv.Outcome)
	assert.False(t, mv.Cube.Solved, "EX must not touch the cube")

	resp = post(t, srv.URL+"/moves/F-")
	mv = decode[MoveResponse](t, resp)
	assert.True(t, mv.Cube.Solved)
}

func TestGetFace(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/faces/back")
	require.NoError(t, err)
	g := decode[[3][3]string](t, resp)
	assert.Equal(t, "yellow", g[0][0])

	resp, err = http.Get(srv.URL + "/faces/middle")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShuffleAndReset(t *testing.T) {
	srv := newTestServer(t, rubikscube.WithShuffleMode(rubikscube.ShuffleMoves), rubikscube.WithScrambleLength(8))

	resp := post(t, srv.URL+"/shuffle")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sh := decode[ShuffleResponse](t, resp)
	assert.Len(t, sh.Moves, 8)
	assert.True(t, sh.Cube.Balanced)

	resp = post(t, srv.URL+"/reset")
	c := decode[CubeResponse](t, resp)
	assert.True(t, c.Solved)
}

func TestConcurrentMovesAreSerialized(t *testing.T) {
	srv := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/moves/R+", "application/json", nil)
			if assert.NoError(t, err) {
				resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	resp, err := http.Get(srv.URL + "/cube")
	require.NoError(t, err)
	c := decode[CubeResponse](t, resp)
	assert.True(t, c.Solved, "40 R+ turns are 10 full cycles")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	post(t, srv.URL+"/moves/U+").Body.Close()
	post(t, srv.URL+"/moves/Q").Body.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rubikscube_moves_total{move="U+"} 1`)
	assert.Contains(t, string(body), `rubikscube_outcomes_total{outcome="unrecognized"} 1`)
}
