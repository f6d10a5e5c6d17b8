package erasure

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const numShards = 16

// tableKey identifies one dispatch table. A nil payload is the empty table.
type tableKey struct {
	payload reflect.Type
	sig     reflect.Type
}

func (k tableKey) String() string {
	if k.payload == nil {
		return "<empty>/" + k.sig.String()
	}
	return k.payload.String() + "/" + k.sig.String()
}

type registryShard struct {
	mu     sync.RWMutex
	tables map[tableKey]any
}

var shards [numShards]registryShard

func init() {
	for i := range shards {
		shards[i].tables = make(map[tableKey]any)
	}
}

func shardOf(key tableKey) *registryShard {
	return &shards[xxhash.Sum64String(key.String())%numShards]
}

// lookup returns the table registered under key without building one.
func lookup(key tableKey) (any, bool) {
	shard := shardOf(key)
	shard.mu.RLock()
	table, ok := shard.tables[key]
	shard.mu.RUnlock()
	return table, ok
}

// loadOrBuild returns the table under key, calling build at most once per key.
func loadOrBuild(key tableKey, build func() any) any {
	if table, ok := lookup(key); ok {
		return table
	}

	shard := shardOf(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if table, ok := shard.tables[key]; ok {
		return table
	}
	table := build()
	shard.tables[key] = table
	return table
}
