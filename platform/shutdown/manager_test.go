package shutdown

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManagerRunsFunctionsInReverseOrder(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var order []string
	m.Add("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Add("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})
	m.Add("third", func(ctx context.Context) error {
		order = append(order, "third")
		return errors.New("cleanup failed")
	})

	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()

	// Даём Wait подписаться на сигналы перед отправкой
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}

	// LIFO: последняя зарегистрированная выполняется первой,
	// ошибка одной функции не прерывает остальные
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestShutdownWithoutSignal(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var order []string
	m.Add("pool", func(ctx context.Context) error {
		order = append(order, "pool")
		return nil
	})
	m.Add("telemetry", func(ctx context.Context) error {
		order = append(order, "telemetry")
		return nil
	})

	// Аварийный путь: ListenAndServe упал, сигнала не было
	m.Shutdown()
	assert.Equal(t, []string{"telemetry", "pool"}, order)

	// Повторный вызов ничего не выполняет
	m.Shutdown()
	assert.Equal(t, []string{"telemetry", "pool"}, order)
}

func TestShutdownHTTPServerAndClosePool(t *testing.T) {
	srvStopped := false
	fn := ShutdownHTTPServer(stubServer{stopped: &srvStopped})
	require.NoError(t, fn(context.Background()))
	assert.True(t, srvStopped)

	poolClosed := false
	fn = ClosePool(stubPool{closed: &poolClosed})
	require.NoError(t, fn(context.Background()))
	assert.True(t, poolClosed)
}

type stubServer struct{ stopped *bool }

func (s stubServer) Shutdown(ctx context.Context) error {
	*s.stopped = true
	return nil
}

type stubPool struct{ closed *bool }

func (p stubPool) Close() {
	*p.closed = true
}
