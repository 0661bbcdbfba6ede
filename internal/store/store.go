// Package store holds the process-wide tracking state: the two append-only
// entry collections and the water-glass counter. There is one logical
// writer, the current user-interaction handler, so the store does no
// locking; readers work from snapshot copies.
package store

import "github.com/jamundie/FoodTrackerApp/internal/model"

// Store lives for the process lifetime. Entries are never edited or removed
// after they are appended; insertion order is creation order, which is not
// necessarily chronological when an entry is back-dated.
type Store struct {
	waterIntake  int
	foodEntries  []model.FoodEntry
	waterEntries []model.WaterEntry
}

// Snapshot is the store's state as observed at a single point in time. The
// slices are copies, so a consumer can hold or mutate them without touching
// the store.
type Snapshot struct {
	WaterIntake  int
	FoodEntries  []model.FoodEntry
	WaterEntries []model.WaterEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AppendFoodEntry records a food entry. Append-only.
func (s *Store) AppendFoodEntry(entry model.FoodEntry) {
	s.mustBeInitialized()
	s.foodEntries = append(s.foodEntries, entry)
}

// AppendWaterEntry records a water entry. Append-only.
func (s *Store) AppendWaterEntry(entry model.WaterEntry) {
	s.mustBeInitialized()
	s.waterEntries = append(s.waterEntries, entry)
}

// IncrementWaterIntake bumps the glass counter. The counter is independent
// of the water-entry list; the two track water separately.
func (s *Store) IncrementWaterIntake() {
	s.mustBeInitialized()
	s.waterIntake++
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mustBeInitialized()
	snap := Snapshot{
		WaterIntake:  s.waterIntake,
		FoodEntries:  make([]model.FoodEntry, len(s.foodEntries)),
		WaterEntries: make([]model.WaterEntry, len(s.waterEntries)),
	}
	copy(snap.FoodEntries, s.foodEntries)
	copy(snap.WaterEntries, s.waterEntries)
	return snap
}

// Using the store before it exists is a programming error in the caller,
// not a recoverable condition.
func (s *Store) mustBeInitialized() {
	if s == nil {
		panic("tracking store used before initialization")
	}
}
