// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux || netbsd || windows

package proc

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func bindNative(fptr any, addr uintptr) (err error) {
	// RegisterFunc panics on signatures it can't express.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
