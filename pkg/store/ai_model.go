package store

// AIStatus is the availability shown on an attendant card.
type AIStatus string

const (
	AIStatusOnline  AIStatus = "online"
	AIStatusBusy    AIStatus = "busy"
	AIStatusOffline AIStatus = "offline"
)

// AIModel is a catalog entry. Entries are never mutated after they are fetched.
type AIModel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      AIStatus `json:"status"`
	Avatar      string   `json:"avatar"`
	Specialties []string `json:"specialties"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// Clone copies the specialties slice so callers cannot alias catalog memory.
func (m AIModel) Clone() AIModel {
	out := m
	out.Specialties = append([]string(nil), m.Specialties...)
	return out
}
