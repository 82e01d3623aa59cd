// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import "sync"

// Source is a readable reactive value.
type Source[T any] interface {
	Get() T
}

// Watchable is implemented by sources that notify on change. Watch
// registers fn and returns a function that cancels the registration.
type Watchable interface {
	Watch(fn func()) (cancel func())
}

type constant[T any] struct{ v T }

func (c constant[T]) Get() T { return c.v }

// Constant returns a source that always yields v.
func Constant[T any](v T) Source[T] {
	return constant[T]{v: v}
}

// Func adapts a function to [Source]. The result is not watchable.
type Func[T any] func() T

// Get implements [Source].
func (f Func[T]) Get() T { return f() }

// Var is a mutable, watchable source.
type Var[T any] struct {
	mu       sync.Mutex
	value    T
	watchers map[int]func()
	next     int
}

// NewVar returns a Var holding v.
func NewVar[T any](v T) *Var[T] {
	return &Var[T]{value: v}
}

// Get implements [Source].
func (v *Var[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores x and notifies every watcher in registration order.
func (v *Var[T]) Set(x T) {
	v.mu.Lock()
	v.value = x
	fns := make([]func(), 0, len(v.watchers))
	for i := 0; i < v.next; i++ {
		if fn, ok := v.watchers[i]; ok {
			fns = append(fns, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Watch implements [Watchable].
func (v *Var[T]) Watch(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.watchers == nil {
		v.watchers = make(map[int]func())
	}
	id := v.next
	v.next++
	v.watchers[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.watchers, id)
	}
}

// Watchers returns the number of active registrations.
func (v *Var[T]) Watchers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.watchers)
}
