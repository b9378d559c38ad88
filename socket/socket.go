package socket

import (
	"sync"
	"time"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const SESSION_BUFFER = 64
const MAX_CLIENT_RESPONSE = 10 * time.Second
const MAX_WS_CONNECTION_TIME = 1 * time.Hour

// session is one open timeline stream, owned by the shard for its lifetime
type session struct {
	username string
	id       string
	msg_chan chan []byte
}

type conc_session_table struct {
	table map[string]*session
	sync.RWMutex
}
type conc_session_table_shards []*conc_session_table

func (ct conc_session_table_shards) get_shard(username string) *conc_session_table {
	return ct[fnv1a.HashString32(username)%CONCURRENCY]
}

var session_table conc_session_table_shards = func() conc_session_table_shards {
	shards := make([]*conc_session_table, CONCURRENCY)

	for i := 0; uint32(i) < CONCURRENCY; i++ {
		shards[i] = &conc_session_table{table: make(map[string]*session)}
	}

	return shards
}()

// add_session opens a session for username, replacing (and closing) any
// previous one. At-least-once clients may reconnect before the old stream
// noticed the drop; last writer wins.
func add_session(username string) *session {
	id, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return nil
	}

	s := &session{
		username: username,
		id:       id,
		msg_chan: make(chan []byte, SESSION_BUFFER),
	}

	shard := session_table.get_shard(username)

	shard.Lock()
	prev := shard.table[username]
	shard.table[username] = s
	if prev != nil {
		close(prev.msg_chan)
	}
	shard.Unlock()

	return s
}

// remove_session closes the session only if it is still the current one
// for username; a replaced session must not tear down its successor.
func remove_session(username string, id string) bool {

	shard := session_table.get_shard(username)

	shard.Lock()
	s := shard.table[username]
	if s == nil || s.id != id {
		shard.Unlock()
		return false
	}
	delete(shard.table, username)
	close(s.msg_chan)
	shard.Unlock()

	return true
}

// deliver queues payload on username's open session, if any. Sends happen
// under the shard read lock so a concurrent close cannot race them; a full
// channel drops the payload for that receiver only (best-effort delivery).
func deliver(username string, payload []byte) bool {

	shard := session_table.get_shard(username)

	shard.RLock()
	defer shard.RUnlock()

	s := shard.table[username]
	if s == nil {
		return false
	}

	select {
	case s.msg_chan <- payload:
		return true
	default:
		return false
	}
}

// ConnectedCount returns the number of open timeline sessions on this shard
func ConnectedCount() int64 {

	var count int64
	for _, shard := range session_table {
		shard.RLock()
		count += int64(len(shard.table))
		shard.RUnlock()
	}

	return count
}
