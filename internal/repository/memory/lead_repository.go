package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const leadKey = "lead_id"

// LeadRepository holds the CRM lead the widget is embedded for.
// A non-zero ttl makes the lead expire like a browser session would.
type LeadRepository struct {
	cache *cache.Cache
}

func NewLeadRepository(ttl time.Duration) *LeadRepository {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &LeadRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *LeadRepository) Save(leadID int64) {
	r.cache.Set(leadKey, leadID, cache.DefaultExpiration)
}

// LeadID satisfies attendant.LeadSource.
func (r *LeadRepository) LeadID() (int64, bool) {
	if x, found := r.cache.Get(leadKey); found {
		return x.(int64), true
	}
	return 0, false
}

func (r *LeadRepository) Clear() {
	r.cache.Delete(leadKey)
}
