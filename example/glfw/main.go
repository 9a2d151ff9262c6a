// SPDX-License-Identifier: Unlicense OR MIT

// package glfw doesn't build on OpenBSD and FreeBSD.
//go:build !openbsd && !freebsd && !android && !ios && !js

// Command glfw clears a GLFW window through the lazily resolved GL
// functions of package gl, looked up with glfwGetProcAddress.
package main

import (
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gioui.org/glproc/gl"
	"gioui.org/glproc/proc"
)

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(800, 600, "glproc + GLFW", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()

	gl.Use(proc.NewResolver(lookup, proc.WithLogger(logger)))
	if err := gl.Require("glClear", "glClearColor", "glViewport", "glGetString"); err != nil {
		log.Fatal(err)
	}
	ctx, err := gl.QueryContext()
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("context", "version", ctx.Version, "renderer", ctx.Renderer, "extensions", len(ctx.Extensions))
	if ctx.Supports("GL_KHR_debug") || ctx.Supports("GL_VERSION_4_3") {
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		width, height := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		t := time.Since(start).Seconds()
		gl.ClearColor(float32(0.5+0.5*math.Sin(t)), 0.3, 0.4, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		window.SwapBuffers()
	}
}

func lookup(name string) uintptr {
	return uintptr(glfw.GetProcAddress(name))
}
