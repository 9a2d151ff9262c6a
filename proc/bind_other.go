// SPDX-License-Identifier: Unlicense OR MIT

//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package proc

import (
	"errors"
	"runtime"
)

func bindNative(fptr any, addr uintptr) error {
	return errors.New("native calls are not supported on " + runtime.GOOS)
}
