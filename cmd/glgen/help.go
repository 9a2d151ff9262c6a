// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The glgen command generates lazily bound Go wrappers for OpenGL functions.

Usage:

	glgen [flags]

The glgen tool reads the Khronos OpenGL API registry (gl.xml) and writes two
files to the output directory: funcs.go, with one wrapper function per GL
command, and enums.go, with the GL enum constants.

Each wrapper is declared in a proc.Table named procs, which the package must
define, along with the Enum, Bitfield, Boolean and Sync types.

The -registry flag names the registry file. Default is gl.xml.

The -api flag selects the feature API: gl, gles1 or gles2. The default, empty,
includes the features of every API and every extension.

The -version flag is the highest feature version to include, such as 4.6.
The default is all versions.

The -profile flag selects the core or compatibility profile. Commands removed
from the core profile are dropped for -profile core.

The -ext flag is a comma separated list of extensions to include, or * for every
extension supported by the -api.

The -pkg flag sets the package name of the generated files. Default is gl.

The -o flag specifies the output directory. Default is the current directory.

The -v flag logs the selected commands.
`
