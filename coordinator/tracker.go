package coordinator

import (
	"time"

	"github.com/zhangyunhao116/skipmap"
)

// ShardRecord is one known shard server. Records are immutable; Touch
// replaces the whole record so readers never see a half-updated one.
type ShardRecord struct {
	Hostname      string
	Port          string
	LastHeartbeat int64 // unix nano
	Load          int64
}

// Address returns the shard host:port pair
func (r *ShardRecord) Address() string {
	return r.Hostname + ":" + r.Port
}

// Tracker keeps every shard that ever heartbeated, keyed by address.
// A shard with no heartbeat inside the staleness window is excluded from
// assignment but its record is kept so it can rejoin under the same
// identity.
type Tracker struct {
	records *skipmap.OrderedMap[string, *ShardRecord]
	window  time.Duration
}

// NewTracker creates a tracker with the given staleness window
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		records: skipmap.New[string, *ShardRecord](),
		window:  window,
	}
}

// Touch upserts the record for hostname:port; it always succeeds
func (t *Tracker) Touch(hostname string, port string, load int64, now time.Time) {
	record := &ShardRecord{
		Hostname:      hostname,
		Port:          port,
		LastHeartbeat: now.UnixNano(),
		Load:          load,
	}
	t.records.Store(record.Address(), record)
}

// Get returns the record for address, stale or not
func (t *Tracker) Get(address string) (*ShardRecord, bool) {
	return t.records.Load(address)
}

// Alive returns the shards whose last heartbeat falls inside the
// staleness window, in address order
func (t *Tracker) Alive(now time.Time) []*ShardRecord {
	cutoff := now.Add(-t.window).UnixNano()

	var alive []*ShardRecord
	t.records.Range(func(_ string, record *ShardRecord) bool {
		if record.LastHeartbeat >= cutoff {
			alive = append(alive, record)
		}
		return true
	})

	return alive
}

// Evict drops a shard record entirely
func (t *Tracker) Evict(address string) {
	t.records.Delete(address)
}

// Len returns the number of known shards, live or stale
func (t *Tracker) Len() int {
	return t.records.Len()
}
