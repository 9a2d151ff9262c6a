// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package loader

import (
	"fmt"
	"runtime"
)

const preferGetProc = false

func defaultLibraries() []string {
	return nil
}

func openLibrary(name string) (uintptr, error) {
	return 0, fmt.Errorf("loader: %s: dynamic libraries are not supported on %s", name, runtime.GOOS)
}

func symbol(h uintptr, name string) uintptr {
	return 0
}

func newGetProc(addr uintptr) func(name string) uintptr {
	return nil
}
