// SPDX-License-Identifier: Unlicense OR MIT

// Package loader opens the system OpenGL libraries and implements the
// platform proc-address primitive.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/multierr"
)

// ErrNoLoader is returned when no OpenGL library could be opened.
var ErrNoLoader = errors.New("loader: no OpenGL library available")

// getProcNames are the window system entry points that return
// extension and post-1.1 function addresses, in order of preference.
var getProcNames = []string{
	"wglGetProcAddress",
	"glXGetProcAddressARB",
	"glXGetProcAddress",
	"eglGetProcAddress",
}

// Library is a set of opened OpenGL libraries.
type Library struct {
	// Names lists the libraries that were opened.
	Names []string
	// GetProc is the name of the window system lookup function in
	// use, or empty if none was found.
	GetProc string

	handles []uintptr
	getProc func(name string) uintptr
}

// Open loads every named library that exists on the system, or the
// platform defaults if names is empty. It fails only if none could be
// loaded.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		names = defaultLibraries()
	}
	l := new(Library)
	var errs error
	for _, n := range names {
		h, err := openLibrary(n)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		l.Names = append(l.Names, n)
		l.handles = append(l.handles, h)
		if l.getProc != nil {
			continue
		}
		for _, gp := range getProcNames {
			if addr := symbol(h, gp); addr != 0 {
				l.GetProc = gp
				l.getProc = newGetProc(addr)
				break
			}
		}
	}
	if len(l.handles) == 0 {
		if errs == nil {
			return nil, ErrNoLoader
		}
		return nil, fmt.Errorf("%w: %v", ErrNoLoader, errs)
	}
	return l, nil
}

// ProcAddress returns the address of the named GL function, or 0 if no
// opened library exports it.
//
// Where the window system lookup is authoritative (WGL), it is consulted
// first. Elsewhere the libraries' own exports are searched first, since
// glXGetProcAddress returns a dispatch stub for any name.
func (l *Library) ProcAddress(name string) uintptr {
	if preferGetProc && l.getProc != nil {
		if addr := l.getProc(name); validProcAddress(addr) {
			return addr
		}
	}
	for _, h := range l.handles {
		if addr := symbol(h, name); addr != 0 {
			return addr
		}
	}
	if !preferGetProc && l.getProc != nil {
		if addr := l.getProc(name); validProcAddress(addr) {
			return addr
		}
	}
	return 0
}

// validProcAddress filters the sentinel values some wglGetProcAddress
// implementations return instead of NULL.
func validProcAddress(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default opens the platform default libraries once per process.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Open()
		if defaultErr != nil {
			slog.Warn("OpenGL libraries unavailable", "err", defaultErr)
			return
		}
		slog.Debug("OpenGL libraries opened", "libs", defaultLib.Names, "getproc", defaultLib.GetProc)
	})
	return defaultLib, defaultErr
}

// Lookup is the proc-address primitive of the default libraries. It
// returns 0 for every name if they could not be opened.
func Lookup(name string) uintptr {
	l, err := Default()
	if err != nil {
		return 0
	}
	return l.ProcAddress(name)
}
