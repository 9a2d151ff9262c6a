// SPDX-License-Identifier: Unlicense OR MIT

package proc

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"gioui.org/glproc/proc/proctest"
)

func newTestResolver(l *proctest.Loader) *Resolver {
	return NewResolver(l.Lookup, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestResolveIdempotent(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{
		"glClear":      0x1000,
		"glDrawArrays": 0x2000,
	}}
	r := newTestResolver(l)
	for _, name := range []string{"glClear", "glDrawArrays"} {
		first, err := r.Resolve(name, "GL_VERSION_1_0")
		if err != nil {
			t.Fatal(err)
		}
		second, err := r.Resolve(name, "GL_VERSION_1_0")
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("%s: resolved %#x then %#x", name, first, second)
		}
		if first != l.Addrs[name] {
			t.Errorf("%s: got %#x, want %#x", name, first, l.Addrs[name])
		}
		if n := l.Calls(name); n != 1 {
			t.Errorf("%s: looked up %d times, want 1", name, n)
		}
	}
	if n := r.Lookups(); n != 2 {
		t.Errorf("got %d lookups, want 2", n)
	}
}

func TestResolveIsolation(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{
		"glA": 0x10,
		"glB": 0x20,
	}}
	r := newTestResolver(l)
	if _, err := r.Resolve("glA", "GL_VERSION_1_0"); err != nil {
		t.Fatal(err)
	}
	if r.Resolved("glB") {
		t.Error("resolving glA marked glB as resolved")
	}
	if n := l.Calls("glB"); n != 0 {
		t.Errorf("resolving glA looked up glB %d times", n)
	}
	if diff := cmp.Diff([]string{"glA"}, l.Order()); diff != "" {
		t.Errorf("lookups (-want +got):\n%s", diff)
	}
	addr, err := r.Resolve("glB", "GL_VERSION_1_0")
	if err != nil {
		t.Fatal(err)
	}
	if addr != 0x20 {
		t.Errorf("glB: got %#x, want 0x20", addr)
	}
	if diff := cmp.Diff([]string{"glA", "glB"}, r.Symbols()); diff != "" {
		t.Errorf("symbols (-want +got):\n%s", diff)
	}
}

func TestResolveUnsupported(t *testing.T) {
	l := &proctest.Loader{}
	var buf bytes.Buffer
	r := NewResolver(l.Lookup, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	for i := 0; i < 2; i++ {
		addr, err := r.Resolve("glMissingNV", "GL_NV_missing")
		if addr != 0 {
			t.Errorf("got address %#x for a missing function", addr)
		}
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("got error %v, want ErrUnsupported", err)
		}
		var uerr *UnsupportedError
		if !errors.As(err, &uerr) {
			t.Fatalf("got %T, want *UnsupportedError", err)
		}
		if uerr.Name != "glMissingNV" {
			t.Errorf("got name %q", uerr.Name)
		}
		if !strings.HasPrefix(err.Error(), "unsupported GL function: glMissingNV") {
			t.Errorf("unexpected message %q", err)
		}
	}
	if n := l.Calls("glMissingNV"); n != 1 {
		t.Errorf("looked up %d times, want 1", n)
	}
	if out := buf.String(); !strings.Contains(out, "glMissingNV") || !strings.Contains(out, "level=WARN") {
		t.Errorf("missing warning in log output %q", out)
	}
}

func TestResolveEmptyName(t *testing.T) {
	l := &proctest.Loader{}
	r := newTestResolver(l)
	if _, err := r.Resolve(""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("got %v, want ErrInvalidName", err)
	}
	if len(l.Order()) != 0 {
		t.Error("empty name reached the loader")
	}
}

func TestResolveTagsInert(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{"glFoo": 0x42}}
	r := newTestResolver(l)
	a, err := r.Resolve("glFoo", "A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Resolve("glFoo", "B")
	if err != nil {
		t.Fatal(err)
	}
	c, err := r.Resolve("glFoo")
	if err != nil {
		t.Fatal(err)
	}
	if a != b || b != c {
		t.Errorf("tags changed the resolved address: %#x %#x %#x", a, b, c)
	}
	if n := l.Calls("glFoo"); n != 1 {
		t.Errorf("looked up %d times, want 1", n)
	}
}

func TestResolveConcurrentFirstUse(t *testing.T) {
	const n = 64
	l := &proctest.Loader{Addrs: map[string]uintptr{"glFoo": 0x1234}}
	r := newTestResolver(l)
	var (
		start sync.WaitGroup
		g     errgroup.Group
		addrs [n]uintptr
	)
	start.Add(1)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			start.Wait()
			addr, err := r.Resolve("glFoo", "GL_VERSION_1_0")
			addrs[i] = addr
			return err
		})
	}
	start.Done()
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if c := l.Calls("glFoo"); c != 1 {
		t.Errorf("looked up %d times, want 1", c)
	}
	for i, a := range addrs {
		if a != 0x1234 {
			t.Errorf("goroutine %d observed %#x", i, a)
		}
	}
}
