package responder

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hellodock/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, time.October, 19, 15, 4, 5, 0, time.Local)

func testConfig(port string) *config.Config {
	cfg := config.New()
	cfg.Environment = "test"
	cfg.Port = port
	return cfg
}

func get(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestFormatKoreanTime(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"afternoon", time.Date(2025, 10, 19, 15, 4, 5, 0, time.UTC), "2025. 10. 19. 오후 3:04:05"},
		{"morning", time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), "2024. 1. 5. 오전 9:30:00"},
		{"midnight", time.Date(2024, 1, 5, 0, 0, 7, 0, time.UTC), "2024. 1. 5. 오전 12:00:07"},
		{"noon", time.Date(2024, 12, 31, 12, 59, 59, 0, time.UTC), "2024. 12. 31. 오후 12:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatKoreanTime(tt.at))
		})
	}
}

func TestNewRouter_LeavesGinModeAlone(t *testing.T) {
	prev := gin.Mode()
	gin.SetMode(gin.TestMode)
	defer gin.SetMode(prev)

	cfg := testConfig("3000")
	cfg.Environment = "production"
	log, _ := logtest.NewNullLogger()
	NewRouter(cfg, log)

	assert.Equal(t, gin.TestMode, gin.Mode())
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, "release", GinMode("production"))
	assert.Equal(t, "test", GinMode("test"))
	assert.Equal(t, "debug", GinMode("development"))
}

func TestRouter_Root(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	router := NewRouter(testConfig("3000"), log, WithClock(func() time.Time { return fixedTime }))

	rec := get(t, router, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Docker 학습 애플리케이션")
	assert.Contains(t, body, "현재 시간: 2025. 10. 19. 오후 3:04:05")
	assert.Contains(t, body, "환경: test")
	assert.Contains(t, body, "포트: 3000")
}

func TestRouter_PortFollowsConfig(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	router := NewRouter(testConfig("8123"), log)

	rec := get(t, router, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "8123")
}

func TestRouter_HideEnvironment(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	cfg := testConfig("3000")
	cfg.ShowEnvironment = false

	rec := get(t, NewRouter(cfg, log), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "환경:")
}

func TestRouter_UndefinedRoutes(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	router := NewRouter(testConfig("3000"), log)

	assert.Equal(t, http.StatusNotFound, get(t, router, http.MethodGet, "/missing").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, http.MethodPost, "/").Code)
}

func TestRouter_LogsRequests(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	router := NewRouter(testConfig("3000"), log)

	get(t, router, http.MethodGet, "/")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "/", entry.Data["path"])
}

func TestNewServer_InvalidPort(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	_, err := NewServer(testConfig("not-a-port"), log)
	assert.Error(t, err)
}

func TestServer_RunServesConfiguredPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := fmt.Sprint(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	log, hook := logtest.NewNullLogger()
	srv, err := NewServer(testConfig(port), log)
	require.NoError(t, err)
	assert.Equal(t, ":"+port, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://127.0.0.1:" + port + "/")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), port)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}

	var listening bool
	for _, e := range hook.AllEntries() {
		if e.Message == "server listening" && e.Data["port"] == port {
			listening = true
		}
	}
	assert.True(t, listening, "expected a listening log entry")
}

func TestServer_RunFailsWhenPortBusy(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := fmt.Sprint(ln.Addr().(*net.TCPAddr).Port)

	log, _ := logtest.NewNullLogger()
	srv, err := NewServer(testConfig(port), log)
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
