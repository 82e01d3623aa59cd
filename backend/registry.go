// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ui"
)

// Factory creates a new backend instance.
type Factory func() (Backend, error)

type registration struct {
	name     string
	priority int
	factory  Factory
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
)

// Register registers a backend factory under name. Higher priorities are
// preferred by Default. An existing registration with the same name is
// replaced.
func Register(name string, priority int, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = registration{name: name, priority: priority, factory: factory}
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Available returns the registered backend names, highest priority first.
// Equal priorities are ordered by name.
func Available() []string {
	regs := sorted()
	names := make([]string, len(regs))
	for i, r := range regs {
		names[i] = r.name
	}
	return names
}

// Get creates the backend registered under name.
func Get(name string) (Backend, error) {
	registryMu.RLock()
	r, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	b, err := r.factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBackendNotAvailable, name, err)
	}
	return b, nil
}

// Default creates the highest priority backend whose factory succeeds.
func Default() (Backend, error) {
	for _, r := range sorted() {
		b, err := r.factory()
		if err != nil {
			ui.Logger().Info("backend: skipping unavailable backend", "name", r.name, "err", err)
			continue
		}
		if b != nil {
			ui.Logger().Info("backend: selected", "name", r.name)
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}

// MustDefault returns the default backend or panics.
func MustDefault() Backend {
	b, err := Default()
	if err != nil {
		panic("backend: no backend available")
	}
	return b
}

func sorted() []registration {
	registryMu.RLock()
	regs := make([]registration, 0, len(backends))
	for _, r := range backends {
		regs = append(regs, r)
	}
	registryMu.RUnlock()

	sort.Slice(regs, func(i, j int) bool {
		if regs[i].priority != regs[j].priority {
			return regs[i].priority > regs[j].priority
		}
		return regs[i].name < regs[j].name
	})
	return regs
}
