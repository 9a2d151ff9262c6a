// SPDX-License-Identifier: Unlicense OR MIT

package proc

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Binder turns a native function address into a callable Go function.
type Binder interface {
	// Bind sets the Go func pointed to by fptr to call the native
	// function at addr.
	Bind(fptr any, addr uintptr) error
}

// BinderFunc adapts a function to the Binder interface.
type BinderFunc func(fptr any, addr uintptr) error

func (f BinderFunc) Bind(fptr any, addr uintptr) error {
	return f(fptr, addr)
}

// NativeBinder binds addresses with the platform C calling convention.
var NativeBinder Binder = BinderFunc(bindNative)

// Table is a set of lazily bound functions sharing a Resolver and a
// Binder.
type Table struct {
	mu       sync.Mutex
	resolver *Resolver
	binder   Binder
	funcs    map[string]lazyFunc
}

type lazyFunc interface {
	symbol() Symbol
	load() error
}

// NewTable returns a Table resolving through r and binding with
// NativeBinder.
func NewTable(r *Resolver) *Table {
	return &Table{
		resolver: r,
		binder:   NativeBinder,
		funcs:    make(map[string]lazyFunc),
	}
}

// Use replaces the Resolver. Functions already loaded keep their
// binding, so Use is meant to be called before the first GL call.
func (t *Table) Use(r *Resolver) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resolver = r
}

// Resolver returns the Resolver in use.
func (t *Table) Resolver() *Resolver {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolver
}

// SetBinder replaces the Binder. Like Use, it only affects functions not
// yet loaded.
func (t *Table) SetBinder(b Binder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.binder = b
}

// Funcs returns the declared symbols sorted by name.
func (t *Table) Funcs() []Symbol {
	t.mu.Lock()
	names := maps.Keys(t.funcs)
	slices.Sort(names)
	syms := make([]Symbol, len(names))
	for i, n := range names {
		syms[i] = t.funcs[n].symbol()
	}
	t.mu.Unlock()
	return syms
}

// Symbol returns the declared symbol for name.
func (t *Table) Symbol(name string) (Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.funcs[name]
	if !ok {
		return Symbol{}, false
	}
	return f.symbol(), true
}

// Load resolves and binds the named function.
func (t *Table) Load(name string) error {
	t.mu.Lock()
	f, ok := t.funcs[name]
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("proc: %s is not declared", name)
	}
	return f.load()
}

func (t *Table) state() (*Resolver, Binder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolver, t.binder
}

// Check loads the named functions, or every declared function if names
// is empty, and returns the combined errors of those that failed.
func Check(t *Table, names ...string) error {
	if len(names) == 0 {
		for _, s := range t.Funcs() {
			names = append(names, s.Name)
		}
	}
	var err error
	for _, n := range names {
		err = multierr.Append(err, t.Load(n))
	}
	return err
}

// Func is a lazily bound function of Go type T.
type Func[T any] struct {
	Symbol
	table *Table

	once sync.Once
	fn   T
	err  error
}

// Declare adds a function to t. T must be a func type matching the
// native signature. Declaring a name twice panics.
func Declare[T any](t *Table, name string, tags ...string) *Func[T] {
	if typ := reflect.TypeOf((*T)(nil)).Elem(); typ.Kind() != reflect.Func {
		panic(fmt.Errorf("proc: %s declared with non-func type %s", name, typ))
	}
	f := &Func[T]{
		Symbol: Symbol{Name: name, Tags: tags},
		table:  t,
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.funcs[name]; dup {
		panic(fmt.Errorf("proc: %s declared twice", name))
	}
	t.funcs[name] = f
	return f
}

// Load resolves and binds the function on first call and returns the
// cached result afterwards.
func (f *Func[T]) Load() (T, error) {
	f.once.Do(func() {
		r, b := f.table.state()
		addr, err := r.Resolve(f.Name, f.Tags...)
		if err != nil {
			f.err = err
			return
		}
		if err := b.Bind(&f.fn, addr); err != nil {
			f.err = fmt.Errorf("proc: bind %s: %w", f.Name, err)
		}
	})
	return f.fn, f.err
}

// Get is like Load but panics if the function is unavailable. The panic
// value is the error returned by Load, an *UnsupportedError when the
// driver lacks the function.
func (f *Func[T]) Get() T {
	fn, err := f.Load()
	if err != nil {
		panic(err)
	}
	return fn
}

// Available reports whether the function could be resolved and bound.
func (f *Func[T]) Available() bool {
	_, err := f.Load()
	return err == nil
}

func (f *Func[T]) symbol() Symbol {
	return f.Symbol
}

func (f *Func[T]) load() error {
	_, err := f.Load()
	return err
}
