package status

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/syncstate/ledger-hub/db"
)

type stubDao struct {
	db.LedgerDao

	lastCommitted    uint64
	lastCommittedErr error
	lastVerified     uint64
	lastVerifiedErr  error
	totalTxs         uint64
	totalTxsErr      error
	outstanding      uint64
	outstandingErr   error

	outstandingArg uint64
}

func (s *stubDao) GetLastCommittedBlock() (uint64, error) {
	return s.lastCommitted, s.lastCommittedErr
}

func (s *stubDao) GetLastVerifiedBlock() (uint64, error) {
	return s.lastVerified, s.lastVerifiedErr
}

func (s *stubDao) CountTotalTransactions() (uint64, error) {
	return s.totalTxs, s.totalTxsErr
}

func (s *stubDao) CountOutstandingProofs(lastVerified uint64) (uint64, error) {
	s.outstandingArg = lastVerified
	return s.outstanding, s.outstandingErr
}

func TestCacheStartsUninitialized(t *testing.T) {
	cache := NewCache()
	snapshot := cache.Read()
	require.Zero(t, snapshot.LastCommitted)
	require.Zero(t, snapshot.LastVerified)
	require.Zero(t, snapshot.TotalTransactions)
	require.Zero(t, snapshot.OutstandingTxs)
	require.Nil(t, snapshot.NextBlockAtMax)
}

func TestRefreshPublishesSnapshot(t *testing.T) {
	dao := &stubDao{
		lastCommitted: 120,
		lastVerified:  100,
		totalTxs:      4200,
		outstanding:   37,
	}
	cache := NewCache()
	updater := NewUpdater(cache, db.NewConnectionPool(dao, 1), time.Second)

	updater.refresh()

	snapshot := cache.Read()
	require.Equal(t, uint64(120), snapshot.LastCommitted)
	require.Equal(t, uint64(100), snapshot.LastVerified)
	require.Equal(t, uint64(4200), snapshot.TotalTransactions)
	require.Equal(t, uint64(37), snapshot.OutstandingTxs)
	require.Equal(t, uint64(100), dao.outstandingArg)

	// repeated reads between ticks return identical values
	require.Equal(t, snapshot, cache.Read())
}

func TestRefreshDefaultsFailedFieldsToZero(t *testing.T) {
	dao := &stubDao{
		lastCommitted:   120,
		lastVerified:    100,
		lastVerifiedErr: errors.New("db gone"),
		totalTxs:        4200,
		outstanding:     37,
	}
	cache := NewCache()
	updater := NewUpdater(cache, db.NewConnectionPool(dao, 1), time.Second)

	updater.refresh()

	snapshot := cache.Read()
	require.Zero(t, snapshot.LastVerified)
	require.Equal(t, uint64(120), snapshot.LastCommitted)
	require.Equal(t, uint64(4200), snapshot.TotalTransactions)
	require.Equal(t, uint64(37), snapshot.OutstandingTxs)
	// the failed read feeds the default into the dependent count
	require.Zero(t, dao.outstandingArg)
}

func TestRefreshReleasesConnection(t *testing.T) {
	dao := &stubDao{}
	pool := db.NewConnectionPool(dao, 1)
	updater := NewUpdater(NewCache(), pool, time.Second)

	updater.refresh()
	updater.refresh()

	_, err := pool.AccessStorageFragile()
	require.NoError(t, err)
}
