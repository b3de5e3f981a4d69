// Package model defines domain models shared by the status cache and its storage backends.
package model

// BlockNumber is a rollup block number.
type BlockNumber uint32

// NetworkStatus is a point-in-time snapshot of aggregate network state.
// The zero value is the snapshot served before the first refresh.
type NetworkStatus struct {
	// NextBlockAtMax is reserved for a next block deadline estimate (unix seconds) and is always nil.
	NextBlockAtMax    *uint64     `json:"next_block_at_max"`
	LastCommitted     BlockNumber `json:"last_committed"`
	LastVerified      BlockNumber `json:"last_verified"`
	TotalTransactions uint32      `json:"total_transactions"`
	OutstandingTxs    uint32      `json:"outstanding_txs"`
	MempoolSize       uint32      `json:"mempool_size"`
}
