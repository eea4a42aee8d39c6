package memory

import (
	"ai-attendant-widget/pkg/store"

	"github.com/patrickmn/go-cache"
)

// InteractionRepository keeps draft/in-flight state per conversation id.
// Entries never expire; they are pruned when a conversation leaves the tab bar.
type InteractionRepository struct {
	cache *cache.Cache
}

func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *InteractionRepository) Save(conversationID string, state store.InteractionState) {
	r.cache.Set(conversationID, state, cache.NoExpiration)
}

func (r *InteractionRepository) Get(conversationID string) (store.InteractionState, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(store.InteractionState), true
	}
	return store.InteractionState{}, false
}

func (r *InteractionRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}

func (r *InteractionRepository) Count() int {
	return r.cache.ItemCount()
}
