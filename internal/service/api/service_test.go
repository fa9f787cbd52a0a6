package api

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/application-board/internal/config"
	"github.com/darkkaiser/application-board/internal/pkg/version"
	"github.com/darkkaiser/application-board/internal/service/api/constants"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/darkkaiser/application-board/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBoard struct {
	status board.Status
}

func (s stubBoard) Status() board.Status { return s.status }

type stubGateway struct {
	running bool
}

func (s stubGateway) Running() bool { return s.running }

func newTestService(t *testing.T, port int) *Service {
	t.Helper()

	appConfig := &config.AppConfig{Debug: true}
	appConfig.HTTP.ListenPort = port

	return NewService(appConfig,
		stubBoard{status: board.Status{Running: true, Applications: 7}},
		stubGateway{running: true},
		version.Info{Version: "1.0.0", Commit: "abc1234"},
	)
}

func TestNewService(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewService(nil, nil, nil, version.Info{}) })

	s := newTestService(t, 8080)
	assert.False(t, s.running, "초기 상태는 running=false여야 합니다")
	assert.Equal(t, "1.0.0", s.buildInfo.Version)
}

func TestService_setupServer(t *testing.T) {
	t.Parallel()

	e := newTestService(t, 8080).setupServer()
	assert.True(t, e.Debug)

	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	assert.True(t, paths["GET /"])
	assert.True(t, paths["GET /health"])
	assert.True(t, paths["GET /version"])
}

func TestService_StartAndShutdown(t *testing.T) {
	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	s := newTestService(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 중복 호출은 무시됩니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constants.LivenessMessage, string(body))

	cancel()
	wg.Wait()

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}

func TestService_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	s := newTestService(t, l.Addr().(*net.TCPAddr).Port)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(context.Background(), wg))

	// 서버가 즉시 종료되므로 취소 없이도 종료되어야 합니다.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		require.FailNow(t, "포트 충돌 시 서비스가 종료되지 않았습니다")
	}

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}
