// SPDX-License-Identifier: Unlicense OR MIT

/*
Package proc resolves native OpenGL entry points on first use.

A Resolver maps a GL function name to the address returned by the
platform loader (wglGetProcAddress, glXGetProcAddress, eglGetProcAddress
or dlsym). Every name is looked up at most once; the result, including a
failed lookup, is cached for the lifetime of the Resolver.

Compatibility tags name the GL versions and extensions under which a
function is expected to exist. They are carried for diagnostics only and
never change which address is resolved.
*/
package proc

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LookupFunc is the platform primitive for locating a GL entry point.
// It returns 0 if the current context or driver doesn't expose name.
type LookupFunc func(name string) uintptr

var (
	// ErrUnsupported is matched by errors reporting a GL function
	// unavailable in the current context or driver.
	ErrUnsupported = errors.New("unsupported GL function")
	// ErrInvalidName is returned for an empty function name.
	ErrInvalidName = errors.New("invalid GL function name")
)

// UnsupportedError reports a function the platform loader could not
// locate.
type UnsupportedError struct {
	Name string
	// Tags are the compatibility tags passed on the first resolution.
	Tags []string
}

func (e *UnsupportedError) Error() string {
	if len(e.Tags) == 0 {
		return fmt.Sprintf("unsupported GL function: %s", e.Name)
	}
	return fmt.Sprintf("unsupported GL function: %s (%s)", e.Name, strings.Join(e.Tags, ", "))
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// Symbol identifies one native GL function.
type Symbol struct {
	Name string
	Tags []string
}

func (s Symbol) String() string {
	return s.Name
}

// Resolver resolves and caches GL function addresses. It is safe for
// concurrent use.
type Resolver struct {
	lookup LookupFunc
	log    *slog.Logger

	mu      sync.Mutex
	slots   map[string]*slot
	lookups int
}

type slot struct {
	once sync.Once
	addr uintptr
	err  error
}

// Option configures a Resolver.
type Option func(r *Resolver)

// WithLogger directs resolution diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver returns a Resolver backed by lookup.
func NewResolver(lookup LookupFunc, opts ...Option) *Resolver {
	r := &Resolver{
		lookup: lookup,
		log:    slog.Default(),
		slots:  make(map[string]*slot),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the address of the named function, consulting the
// platform loader only the first time name is seen. The tags are
// recorded in diagnostics and in the UnsupportedError of a failed
// lookup; they take no part in the lookup itself.
func (r *Resolver) Resolve(name string, tags ...string) (uintptr, error) {
	if name == "" {
		return 0, fmt.Errorf("proc: %w", ErrInvalidName)
	}
	r.mu.Lock()
	s, ok := r.slots[name]
	if !ok {
		s = new(slot)
		r.slots[name] = s
	}
	r.mu.Unlock()
	s.once.Do(func() {
		s.addr, s.err = r.resolve(name, tags)
	})
	return s.addr, s.err
}

func (r *Resolver) resolve(name string, tags []string) (uintptr, error) {
	r.mu.Lock()
	r.lookups++
	r.mu.Unlock()
	addr := r.lookup(name)
	if addr == 0 {
		r.log.Warn("GL function unavailable", "name", name, "tags", tags)
		return 0, &UnsupportedError{Name: name, Tags: slices.Clone(tags)}
	}
	r.log.Debug("GL function resolved", "name", name, "addr", fmt.Sprintf("%#x", addr), "tags", tags)
	return addr, nil
}

// Resolved reports whether a resolution of name has started, successful
// or not.
func (r *Resolver) Resolved(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.slots[name]
	return ok
}

// Symbols returns the sorted names of every function looked up so far.
func (r *Resolver) Symbols() []string {
	r.mu.Lock()
	names := maps.Keys(r.slots)
	r.mu.Unlock()
	slices.Sort(names)
	return names
}

// Lookups returns the number of calls made to the platform loader.
func (r *Resolver) Lookups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups
}
