package state

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/taskml/taskdata/pkg/errors"
)

// Register makes a state value type known to the persistence layer. Types
// stored in a Store must be registered before Save or Load, exactly like
// gob.Register.
func Register(value any) {
	gob.Register(value)
}

// Save writes the store contents to w. Use it to carry training-time derived
// parameters to a process that cannot co-construct the training split.
func (s *Store) Save(w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(s.snapshot()); err != nil {
		return errors.Wrap(err, "failed to encode state store")
	}
	return nil
}

// Load replaces the store contents with those read from r.
func (s *Store) Load(r io.Reader) error {
	decoder := gob.NewDecoder(r)
	var states map[string]any
	if err := decoder.Decode(&states); err != nil {
		return errors.Wrap(err, "failed to decode state store")
	}
	s.restore(states)
	return nil
}

// SaveFile writes the store contents to the named file.
func (s *Store) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create state file")
	}
	defer file.Close()
	return s.Save(file)
}

// LoadFile replaces the store contents with those read from the named file.
func (s *Store) LoadFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open state file")
	}
	defer file.Close()
	return s.Load(file)
}
