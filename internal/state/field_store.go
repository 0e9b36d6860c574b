// Package state holds the view-ready stores fed by the transport adapter.
package state

import (
	"sort"
	"sync"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

// FieldStore keeps contract metadata, the latest snapshot of every observed
// field and the UI selection state.
type FieldStore struct {
	mu sync.RWMutex

	contracts     []model.Contract
	contractIndex map[string]int
	fields        map[model.FieldIdentifier]model.FieldValues
	bookmarks     map[model.FieldIdentifier]bool
	notifications map[model.FieldIdentifier]bool

	activeContract string
	activeField    model.FieldIdentifier
}

// NewFieldStore returns an empty store.
func NewFieldStore() *FieldStore {
	return &FieldStore{
		contractIndex: map[string]int{},
		fields:        map[model.FieldIdentifier]model.FieldValues{},
		bookmarks:     map[model.FieldIdentifier]bool{},
		notifications: map[model.FieldIdentifier]bool{},
	}
}

// ReplaceContracts swaps the whole contract set and rebuilds the identifier index.
func (s *FieldStore) ReplaceContracts(contracts []model.Contract) {
	next := make([]model.Contract, len(contracts))
	copy(next, contracts)
	index := make(map[string]int, len(next))
	for i, c := range next {
		index[c.ContractIdentifier] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = next
	s.contractIndex = index
}

// Contracts returns the current contract set in arrival order.
func (s *FieldStore) Contracts() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

// ContractIdentifiers returns the identifiers of the current contract set in arrival order.
func (s *FieldStore) ContractIdentifiers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.contracts))
	for _, c := range s.contracts {
		out = append(out, c.ContractIdentifier)
	}
	return out
}

// Contract looks a contract up by identifier.
func (s *FieldStore) Contract(contractIdentifier string) (model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.contractIndex[contractIdentifier]
	if !ok {
		return model.Contract{}, false
	}
	return s.contracts[i], true
}

// UpsertFieldSnapshot replaces the snapshot of a field wholesale.
func (s *FieldStore) UpsertFieldSnapshot(id model.FieldIdentifier, values model.FieldValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[id] = values
}

// FieldSnapshot returns the latest snapshot of a field.
func (s *FieldStore) FieldSnapshot(id model.FieldIdentifier) (model.FieldValues, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.fields[id]
	return v, ok
}

// SetActiveField selects the field shown by the view.
func (s *FieldStore) SetActiveField(contractIdentifier, fieldName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeContract = contractIdentifier
	s.activeField = model.NewFieldIdentifier(contractIdentifier, fieldName)
}

// ActivateDefaultField selects the first field of the first contract that
// declares any, unless a field is already active. It reports the active field.
func (s *FieldStore) ActivateDefaultField() (model.FieldIdentifier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeField != "" {
		return s.activeField, true
	}
	for _, c := range s.contracts {
		if name, ok := c.DefaultField(); ok {
			s.activeContract = c.ContractIdentifier
			s.activeField = model.NewFieldIdentifier(c.ContractIdentifier, name)
			return s.activeField, true
		}
	}
	return "", false
}

// ActiveField returns the active contract and field identifiers.
func (s *FieldStore) ActiveField() (string, model.FieldIdentifier) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeContract, s.activeField
}

// ToggleBookmark flips the bookmark flag of a field and returns the new value.
func (s *FieldStore) ToggleBookmark(id model.FieldIdentifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks[id] = !s.bookmarks[id]
	return s.bookmarks[id]
}

// ToggleNotification flips the notification flag of a field and returns the new value.
func (s *FieldStore) ToggleNotification(id model.FieldIdentifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[id] = !s.notifications[id]
	return s.notifications[id]
}

// IsBookmarked reports the bookmark flag of a field; absent means false.
func (s *FieldStore) IsBookmarked(id model.FieldIdentifier) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks[id]
}

// IsNotificationEnabled reports the notification flag of a field; absent means false.
func (s *FieldStore) IsNotificationEnabled(id model.FieldIdentifier) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications[id]
}

// Bookmarks returns the bookmarked fields in lexical order.
func (s *FieldStore) Bookmarks() []model.FieldIdentifier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FieldIdentifier, 0, len(s.bookmarks))
	for id, on := range s.bookmarks {
		if on {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResetSession forgets contracts, snapshots and the active field. Bookmarks
// and notification flags outlive sessions.
func (s *FieldStore) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = nil
	s.contractIndex = map[string]int{}
	s.fields = map[model.FieldIdentifier]model.FieldValues{}
	s.activeContract = ""
	s.activeField = ""
}

// Preference is the persisted UI state of one field.
type Preference struct {
	FieldIdentifier model.FieldIdentifier
	Bookmarked      bool
	Notified        bool
}

// LoadPreferences seeds bookmark and notification flags.
func (s *FieldStore) LoadPreferences(prefs []Preference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range prefs {
		s.bookmarks[p.FieldIdentifier] = p.Bookmarked
		s.notifications[p.FieldIdentifier] = p.Notified
	}
}

// Preference returns the current flags of a field.
func (s *FieldStore) Preference(id model.FieldIdentifier) Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Preference{
		FieldIdentifier: id,
		Bookmarked:      s.bookmarks[id],
		Notified:        s.notifications[id],
	}
}
