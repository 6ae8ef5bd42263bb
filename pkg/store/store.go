// Package store persists the network device list of a virtual machine
// as a JSON file, guarded by a sidecar file lock so concurrent
// configuration edits from separate processes do not corrupt it.
package store

import (
	"encoding/json"
	"os"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"vmnetdev/pkg/netdev"
)

type Store struct {
	path string
	lock *flock.Flock
}

func New(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads all device records. A missing file is an empty device
// list, not an error.
func (s *Store) Load() ([]*netdev.ConfigRecord, error) {
	if err := s.lock.RLock(); err != nil {
		return nil, errors.Wrapf(err, "failed to lock %q", s.lock.Path())
	}
	defer s.unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", s.path)
	}

	var records []*netdev.ConfigRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to decode device list %q", s.path)
	}
	return records, nil
}

// Save writes the full device list, replacing whatever was stored.
func (s *Store) Save(records []*netdev.ConfigRecord) error {
	if err := s.lock.Lock(); err != nil {
		return errors.Wrapf(err, "failed to lock %q", s.lock.Path())
	}
	defer s.unlock()

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to encode device list")
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %q", s.path)
	}
	logrus.Debugf("saved %d network device record(s) to %q", len(records), s.path)
	return nil
}

func (s *Store) unlock() {
	if err := s.lock.Unlock(); err != nil {
		logrus.Warnf("unlock %q: %v", s.lock.Path(), err)
	}
}
