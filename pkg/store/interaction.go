package store

// InteractionState is the per-conversation input state: the unsent draft and
// whether a reply is being awaited. Dispatch identifies the in-flight request
// so a stale completion cannot clear a newer one.
type InteractionState struct {
	Draft    string `json:"draft"`
	Loading  bool   `json:"loading"`
	Dispatch uint64 `json:"-"`
}
