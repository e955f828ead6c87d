package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessStorageFragile(t *testing.T) {
	pool := NewConnectionPool(nil, 2)

	first, err := pool.AccessStorageFragile()
	require.NoError(t, err)
	second, err := pool.AccessStorageFragile()
	require.NoError(t, err)

	_, err = pool.AccessStorageFragile()
	require.ErrorIs(t, err, ErrStorageTimeout)

	first.Release()
	third, err := pool.AccessStorageFragile()
	require.NoError(t, err)

	second.Release()
	third.Release()
}

func TestAccessStorageBlocks(t *testing.T) {
	pool := NewConnectionPool(nil, 1)
	held := pool.AccessStorage()

	acquired := make(chan *StorageProcessor)
	go func() {
		acquired <- pool.AccessStorage()
	}()

	select {
	case <-acquired:
		t.Fatal("blocking acquisition should wait for a free connection")
	case <-time.After(50 * time.Millisecond):
	}

	held.Release()

	select {
	case storage := <-acquired:
		storage.Release()
	case <-time.After(time.Second):
		t.Fatal("blocking acquisition should proceed after release")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	pool := NewConnectionPool(nil, 1)

	storage, err := pool.AccessStorageFragile()
	require.NoError(t, err)
	storage.Release()
	storage.Release()

	// a double release must not mint an extra connection
	again, err := pool.AccessStorageFragile()
	require.NoError(t, err)
	_, err = pool.AccessStorageFragile()
	require.ErrorIs(t, err, ErrStorageTimeout)
	again.Release()
}
