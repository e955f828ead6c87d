package status

import (
	"fmt"
	"time"

	"github.com/syncstate/ledger-hub/db"
	"github.com/syncstate/ledger-hub/logging"
	"github.com/syncstate/ledger-hub/metrics"
	"github.com/syncstate/ledger-hub/types"
)

// Updater refreshes the status cache on a fixed cadence, off the request
// path. It acquires storage in blocking mode since a short wait is acceptable
// here, unlike in handlers.
type Updater struct {
	cache    *Cache
	pool     *db.ConnectionPool
	interval time.Duration
	done     chan error
}

func NewUpdater(cache *Cache, pool *db.ConnectionPool, interval time.Duration) *Updater {
	return &Updater{
		cache:    cache,
		pool:     pool,
		interval: interval,
		done:     make(chan error, 1),
	}
}

// Done reports the updater's own termination to its supervisor. The loop is
// meant to run for the lifetime of the process, so receiving anything here
// means the host process should restart.
func (u *Updater) Done() <-chan error {
	return u.done
}

func (u *Updater) StartLoop() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				u.done <- fmt.Errorf("status updater panicked: %v", r)
				return
			}
			u.done <- nil
		}()
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()
		for range ticker.C {
			u.refresh()
		}
	}()
}

// refresh recomputes the snapshot and publishes it. A failed read defaults
// that field to 0 for this cycle; the loop itself never stops on storage
// errors.
func (u *Updater) refresh() {
	storage := u.pool.AccessStorage()
	defer storage.Release()

	lastVerified, err := storage.GetLastVerifiedBlock()
	if err != nil {
		logging.Logger.Errorf("failed to get last verified block, err=%s", err.Error())
		lastVerified = 0
	}
	lastCommitted, err := storage.GetLastCommittedBlock()
	if err != nil {
		logging.Logger.Errorf("failed to get last committed block, err=%s", err.Error())
		lastCommitted = 0
	}
	totalTransactions, err := storage.CountTotalTransactions()
	if err != nil {
		logging.Logger.Errorf("failed to count total transactions, err=%s", err.Error())
		totalTransactions = 0
	}
	outstandingTxs, err := storage.CountOutstandingProofs(lastVerified)
	if err != nil {
		logging.Logger.Errorf("failed to count outstanding proofs, err=%s", err.Error())
		outstandingTxs = 0
	}

	u.cache.publish(&types.NetworkStatus{
		LastCommitted:     lastCommitted,
		LastVerified:      lastVerified,
		TotalTransactions: totalTransactions,
		OutstandingTxs:    outstandingTxs,
	})

	metrics.LastCommittedBlockGauge.Set(float64(lastCommitted))
	metrics.LastVerifiedBlockGauge.Set(float64(lastVerified))
	metrics.TotalTransactionsGauge.Set(float64(totalTransactions))
	metrics.OutstandingTxsGauge.Set(float64(outstandingTxs))
}
