package rest

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	api := newTestAPI(t, "/api")
	s := NewHTTPServer("127.0.0.1:0", api.engine, time.Second, logging.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var addr string
	select {
	case a := <-s.Ready():
		addr = a.String()
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_ListenError(t *testing.T) {
	s := NewHTTPServer("256.0.0.1:bad", http.NotFoundHandler(), time.Second, logging.NewNopLogger())
	assert.Error(t, s.Run(context.Background()))
}
