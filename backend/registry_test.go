// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/ui/engine"
	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/tree"
)

type stubBackend struct {
	name   string
	closed bool
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Render(*tree.RenderTree, *env.Environment) (engine.FrameResult, error) {
	return engine.Idle, nil
}

func (s *stubBackend) Close() error {
	s.closed = true
	return nil
}

func stubFactory(name string) Factory {
	return func() (Backend, error) { return &stubBackend{name: name}, nil }
}

func failingFactory(err error) Factory {
	return func() (Backend, error) { return nil, err }
}

func withRegistry(t *testing.T, regs ...registration) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]registration)
	registryMu.Unlock()
	for _, r := range regs {
		Register(r.name, r.priority, r.factory)
	}
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestAvailableOrder(t *testing.T) {
	withRegistry(t,
		registration{"terminal", 1, stubFactory("terminal")},
		registration{"gpu", 20, stubFactory("gpu")},
		registration{"cpu", 10, stubFactory("cpu")},
		registration{"alt", 10, stubFactory("alt")},
	)

	got := Available()
	want := []string{"gpu", "alt", "cpu", "terminal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	errNoDevice := errors.New("no device")
	withRegistry(t,
		registration{"cpu", 10, stubFactory("cpu")},
		registration{"gpu", 20, failingFactory(errNoDevice)},
	)

	tests := []struct {
		name    string
		wantErr error
	}{
		{"cpu", nil},
		{"gpu", errNoDevice},
		{"missing", ErrBackendNotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Get(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				if !errors.Is(err, ErrBackendNotAvailable) {
					t.Errorf("Get(%q) error = %v, want wrapped ErrBackendNotAvailable", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.name, err)
			}
			if b.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", b.Name(), tt.name)
			}
		})
	}
}

func TestDefaultSkipsUnavailable(t *testing.T) {
	withRegistry(t,
		registration{"gpu", 20, failingFactory(errors.New("no adapter"))},
		registration{"cpu", 10, stubFactory("cpu")},
		registration{"terminal", 1, stubFactory("terminal")},
	)

	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if b.Name() != "cpu" {
		t.Errorf("Default().Name() = %q, want %q", b.Name(), "cpu")
	}
}

func TestDefaultEmpty(t *testing.T) {
	withRegistry(t)

	if _, err := Default(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() error = %v, want %v", err, ErrBackendNotAvailable)
	}
}

func TestMustDefaultPanics(t *testing.T) {
	withRegistry(t)

	defer func() {
		if recover() == nil {
			t.Error("MustDefault() did not panic with an empty registry")
		}
	}()
	MustDefault()
}

func TestRegisterReplaceAndUnregister(t *testing.T) {
	withRegistry(t, registration{"cpu", 10, stubFactory("first")})

	Register("cpu", 10, stubFactory("second"))
	b, err := Get("cpu")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if b.Name() != "second" {
		t.Errorf("Name() = %q, want %q", b.Name(), "second")
	}

	Unregister("cpu")
	if IsRegistered("cpu") {
		t.Error("IsRegistered(cpu) = true after Unregister")
	}
}
