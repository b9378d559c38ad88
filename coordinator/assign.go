package coordinator

import (
	"errors"

	"github.com/segmentio/fasthash/fnv1a"
)

// ErrNoAvailableShard means no shard heartbeated inside the staleness window
var ErrNoAvailableShard = errors.New("no available shard")

// Assign picks one live shard for clientID by rendezvous hashing: score
// every (client, shard) pair and take the highest. The same client maps to
// the same shard as long as that shard stays live, and a shard death only
// remaps the clients that were on it.
func Assign(clientID string, alive []*ShardRecord) (*ShardRecord, error) {
	if len(alive) == 0 {
		return nil, ErrNoAvailableShard
	}

	var best *ShardRecord
	var bestScore uint64

	for _, record := range alive {
		score := fnv1a.HashString64(clientID + "@" + record.Address())
		if best == nil || score > bestScore || (score == bestScore && record.Address() < best.Address()) {
			best = record
			bestScore = score
		}
	}

	return best, nil
}
