// SPDX-License-Identifier: Unlicense OR MIT

// Package proctest provides a fake platform loader and a recording
// binder for testing code built on package proc without a GL driver.
package proctest

import (
	"fmt"
	"reflect"
	"sync"
)

// Loader is a call-counting stand-in for the platform proc-address
// primitive. Names missing from Addrs resolve to 0.
type Loader struct {
	Addrs map[string]uintptr

	mu    sync.Mutex
	calls map[string]int
	order []string
}

// Lookup implements proc.LookupFunc.
func (l *Loader) Lookup(name string) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.calls == nil {
		l.calls = make(map[string]int)
	}
	l.calls[name]++
	l.order = append(l.order, name)
	return l.Addrs[name]
}

// Calls returns the number of lookups of name.
func (l *Loader) Calls(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

// Order returns every looked up name in call order.
func (l *Loader) Order() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.order...)
}

// Call is a recorded invocation of a bound function.
type Call struct {
	Addr uintptr
	Args []any
}

// Recorder implements proc.Binder by binding every address to a Go
// function that records its arguments. If Impls holds a function for
// the address it is called with the same arguments and its results
// returned; otherwise zero values are returned.
type Recorder struct {
	Impls map[uintptr]any

	mu    sync.Mutex
	calls []Call
	binds map[uintptr]int
}

func (r *Recorder) Bind(fptr any, addr uintptr) error {
	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("proctest: %T is not a pointer to a func", fptr)
	}
	typ := v.Elem().Type()
	var impl reflect.Value
	if f, ok := r.Impls[addr]; ok {
		impl = reflect.ValueOf(f)
		if impl.Type() != typ {
			return fmt.Errorf("proctest: impl for %#x is %s, want %s", addr, impl.Type(), typ)
		}
	}
	r.mu.Lock()
	if r.binds == nil {
		r.binds = make(map[uintptr]int)
	}
	r.binds[addr]++
	r.mu.Unlock()
	fn := reflect.MakeFunc(typ, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, a := range in {
			args[i] = a.Interface()
		}
		r.mu.Lock()
		r.calls = append(r.calls, Call{Addr: addr, Args: args})
		r.mu.Unlock()
		if impl.IsValid() {
			return impl.Call(in)
		}
		out := make([]reflect.Value, typ.NumOut())
		for i := range out {
			out[i] = reflect.Zero(typ.Out(i))
		}
		return out
	})
	v.Elem().Set(fn)
	return nil
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Binds returns the number of times addr was bound.
func (r *Recorder) Binds(addr uintptr) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.binds[addr]
}
