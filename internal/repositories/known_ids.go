package repositories

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// knownIDs remembers external ids committed by this process so repeated runs skip them without a query.
type knownIDs struct {
	cache *gocache.Cache
}

func newKnownIDs(ttl time.Duration) *knownIDs {
	return &knownIDs{cache: gocache.New(ttl, 2*ttl)}
}

func (k *knownIDs) Has(id string) bool {
	if id == "" {
		return false
	}
	_, found := k.cache.Get(id)
	return found
}

func (k *knownIDs) Add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			k.cache.SetDefault(id, struct{}{})
		}
	}
}
