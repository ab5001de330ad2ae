package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/Activities/internal/client"
	"github.com/stpnv0/Activities/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestApp(t *testing.T, apiURL string, probe config.ProbeConfig) *App {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return &App{
		cfg: &config.Config{
			API:   config.APIConfig{BaseURL: apiURL},
			Probe: probe,
		},
		log:       log,
		apiClient: client.New(apiURL, time.Second),
	}
}

func TestApp_WarmUp_StopsOnCancel(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	app := newTestApp(t, deadURL, config.ProbeConfig{Attempts: 5, Delay: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan struct{})
	go func() {
		app.warmUp(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("warm-up kept retrying after cancel")
	}
}

func TestApp_WarmUp_ReachesAPI(t *testing.T) {
	var pings, fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			pings.Add(1)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case "/activities":
			fetches.Add(1)
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL, config.ProbeConfig{Attempts: 3, Delay: 10 * time.Millisecond})
	app.warmUp(context.Background())

	assert.Equal(t, int32(1), pings.Load())
	assert.Equal(t, int32(1), fetches.Load())
}
