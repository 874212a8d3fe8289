package subscriptionservice

import (
	"context"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storageCloserStub struct {
	closed bool
}

func (s *storageCloserStub) Close(_ context.Context) error {
	s.closed = true
	return nil
}

// Сбой ListenAndServe (например, занятый порт) должен освобождать
// соединение с хранилищем так же, как штатная остановка.
func TestRun_ServerErrorClosesStorage(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	closer := &storageCloserStub{}
	app := &App{
		server: &http.Server{Addr: ln.Addr().String()},
		logger: newNoopLogger(),
		db:     closer,
	}

	err = app.Run(context.Background())

	assert.Error(t, err)
	assert.True(t, closer.closed)
}

func TestRun_GracefulShutdownClosesStorage(t *testing.T) {
	closer := &storageCloserStub{}
	app := &App{
		server: &http.Server{Addr: "127.0.0.1:0"},
		logger: newNoopLogger(),
		db:     closer,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)

	assert.NoError(t, err)
	assert.True(t, closer.closed)
}
