package profile

import (
	"encoding/json"
	"fmt"

	"github.com/tolgahan/oka/internal/store"
)

// StorageKey is the fixed record name the profile state lives under.
const StorageKey = "oka-state"

// recordStateRepo adapts the store's keyed-record repo to StateRepo,
// serializing the whole State as one JSON value.
type recordStateRepo struct {
	records store.RecordRepo
}

// NewStateRepo returns a StateRepo persisting through the given record repo.
func NewStateRepo(records store.RecordRepo) StateRepo {
	return &recordStateRepo{records: records}
}

func (r *recordStateRepo) Load() (State, bool, error) {
	data, ok, err := r.records.Load(StorageKey)
	if err != nil || !ok {
		return State{}, false, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, false, fmt.Errorf("decode profile state: %w", err)
	}
	return state, true, nil
}

func (r *recordStateRepo) Save(state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode profile state: %w", err)
	}
	return r.records.Save(StorageKey, data)
}
