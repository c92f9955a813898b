package probe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"launchpad/core/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProbe_Check(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ui" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := probe.New(srv.URL+"/ui", time.Second, 100*time.Millisecond, zap.NewNop())
	code, err := p.Check()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func TestProbe_WaitReady(t *testing.T) {
	t.Run("ReadyImmediately", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := probe.New(srv.URL, time.Second, 50*time.Millisecond, zap.NewNop())
		assert.NoError(t, p.WaitReady(context.Background()))
	})

	t.Run("NotFoundStillCountsAsUp", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		p := probe.New(srv.URL, time.Second, 50*time.Millisecond, zap.NewNop())
		assert.NoError(t, p.WaitReady(context.Background()))
	})

	t.Run("TimesOutWhenUnreachable", func(t *testing.T) {
		// Grab a port nobody is listening on.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		p := probe.New(url, 200*time.Millisecond, 50*time.Millisecond, zap.NewNop())
		err := p.WaitReady(context.Background())
		assert.ErrorContains(t, err, "not ready")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := probe.New(srv.URL, time.Minute, 50*time.Millisecond, zap.NewNop())
		err := p.WaitReady(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
