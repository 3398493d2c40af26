package keymutex_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"restopos/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := keymutex.New()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := km.Lock(ctx, "order-1")
			require.NoError(t, err)
			defer release()

			// Read-modify-write without further synchronization; only the
			// key lock protects it.
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := keymutex.New()
	ctx := context.Background()

	releaseA, err := km.Lock(ctx, "order-a")
	require.NoError(t, err)
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB, lockErr := km.Lock(ctx, "order-b")
		require.NoError(t, lockErr)
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key should not block")
	}
}

func TestKeyMutex_ContextCancellation(t *testing.T) {
	km := keymutex.New()

	release, err := km.Lock(context.Background(), "order-1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = km.Lock(ctx, "order-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyMutex_ReleaseAllowsNextHolder(t *testing.T) {
	km := keymutex.New()
	ctx := context.Background()

	release, err := km.Lock(ctx, "order-1")
	require.NoError(t, err)
	release()

	release2, err := km.Lock(ctx, "order-1")
	require.NoError(t, err)
	release2()
}
