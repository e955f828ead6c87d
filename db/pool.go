package db

import (
	"errors"
)

// ErrStorageTimeout is returned by the fragile acquisition mode when every
// connection is in use. Handlers map it to HTTP 408.
var ErrStorageTimeout = errors.New("storage connection pool exhausted")

const DefaultPoolSize = 10

// ConnectionPool bounds concurrent storage access. It exposes two acquisition
// policies over one pool: fragile for request handlers, which must never
// queue behind each other, and blocking for callers off the request path.
type ConnectionPool struct {
	dao   LedgerDao
	slots chan struct{}
}

func NewConnectionPool(dao LedgerDao, size int) *ConnectionPool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	slots := make(chan struct{}, size)
	for i := 0; i < size; i++ {
		slots <- struct{}{}
	}
	return &ConnectionPool{
		dao:   dao,
		slots: slots,
	}
}

// AccessStorage waits until a connection is free.
func (p *ConnectionPool) AccessStorage() *StorageProcessor {
	<-p.slots
	return &StorageProcessor{
		LedgerDao: p.dao,
		pool:      p,
	}
}

// AccessStorageFragile fails with ErrStorageTimeout right away when the pool
// is exhausted instead of queueing the caller.
func (p *ConnectionPool) AccessStorageFragile() (*StorageProcessor, error) {
	select {
	case <-p.slots:
		return &StorageProcessor{
			LedgerDao: p.dao,
			pool:      p,
		}, nil
	default:
		return nil, ErrStorageTimeout
	}
}

// StorageProcessor is a held connection. Release must be called once the
// request is done with it; calling it more than once is a no-op.
type StorageProcessor struct {
	LedgerDao
	pool *ConnectionPool
}

func (s *StorageProcessor) Release() {
	if s.pool == nil {
		return
	}
	s.pool.slots <- struct{}{}
	s.pool = nil
}
