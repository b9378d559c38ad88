package coordinator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveShards(n int) []*ShardRecord {
	now := time.Now().UnixNano()
	shards := make([]*ShardRecord, n)
	for i := range shards {
		shards[i] = &ShardRecord{
			Hostname:      fmt.Sprintf("10.0.0.%d", i+1),
			Port:          "3010",
			LastHeartbeat: now,
		}
	}
	return shards
}

func TestAssignDeterministic(t *testing.T) {
	shards := liveShards(5)

	for i := 0; i < 100; i++ {
		clientID := fmt.Sprintf("client-%d", i)
		first, err := Assign(clientID, shards)
		require.NoError(t, err)
		second, err := Assign(clientID, shards)
		require.NoError(t, err)
		assert.Equal(t, first.Address(), second.Address())
	}
}

func TestAssignStableUnderShardDeath(t *testing.T) {
	shards := liveShards(5)
	dead := shards[2]
	survivors := append(append([]*ShardRecord{}, shards[:2]...), shards[3:]...)

	moved := 0
	for i := 0; i < 500; i++ {
		clientID := fmt.Sprintf("client-%d", i)
		before, err := Assign(clientID, shards)
		require.NoError(t, err)
		after, err := Assign(clientID, survivors)
		require.NoError(t, err)

		if before.Address() == dead.Address() {
			moved++
		} else {
			// clients on surviving shards must not migrate
			assert.Equal(t, before.Address(), after.Address())
		}
	}
	assert.NotZero(t, moved, "hash should have placed some clients on the dead shard")
}

func TestAssignDistribution(t *testing.T) {
	shards := liveShards(4)

	counts := make(map[string]int)
	for i := 0; i < 2000; i++ {
		record, err := Assign(fmt.Sprintf("client-%d", i), shards)
		require.NoError(t, err)
		counts[record.Address()]++
	}

	for _, shard := range shards {
		assert.Greater(t, counts[shard.Address()], 0, "every shard should receive some clients")
	}
}

func TestAssignNoAvailableShard(t *testing.T) {
	_, err := Assign("client-1", nil)
	assert.ErrorIs(t, err, ErrNoAvailableShard)
}
