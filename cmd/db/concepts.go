package db

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

func newConcepts() concepts {
	return concepts{ids: make(map[string]uint32)}
}

// concepts caches concept ids by concept name, so every concept is
// created in the database at most once, no matter how many filings
// mention it concurrently.
type concepts struct {
	ids   map[string]uint32
	group singleflight.Group
	mu    sync.RWMutex
}

// Prime preloads already known concept ids, like from repo.Concepts.
func (self *concepts) Prime(ids map[string]uint32) {
	self.mu.Lock()
	defer self.mu.Unlock()
	for name, id := range ids {
		self.ids[name] = id
	}
}

func (self *concepts) Id(name string, genId func() (uint32, error),
) (uint32, error) {
	if id, ok := self.knownId(name); ok {
		return id, nil
	}
	return self.createId(name, genId)
}

func (self *concepts) knownId(name string) (id uint32, ok bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	id, ok = self.ids[name]
	return
}

func (self *concepts) createId(name string, genId func() (uint32, error),
) (uint32, error) {
	v, err, _ := self.group.Do(name, func() (interface{}, error) {
		if id, ok := self.knownId(name); ok {
			return id, nil
		}

		id, err := genId()
		if err != nil {
			return 0, err
		}

		self.mu.Lock()
		defer self.mu.Unlock()
		self.ids[name] = id
		return id, nil
	})

	if err != nil {
		return 0, err //nolint:wrapcheck // wrapped inside genId
	}
	return v.(uint32), nil
}
