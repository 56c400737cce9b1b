package store

import "envelope/internal/ledger"

// Memory holds the snapshot in process memory with no durability. It backs
// the terminal front-end's default mode and the tests.
type Memory struct {
	snap ledger.Snapshot
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Load() (ledger.Snapshot, error) {
	return s.snap, nil
}

func (s *Memory) Save(snap ledger.Snapshot) error {
	s.snap = snap
	return nil
}
