// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/glproc/registry"
)

var (
	registryPath = flag.String("registry", "gl.xml", "Khronos registry file.")
	api          = flag.String("api", "", "feature API (gl, gles1, gles2). Empty includes every API and extension.")
	version      = flag.String("version", "", "highest feature version to include (e.g. 4.6). Requires -api.")
	profile      = flag.String("profile", "", "profile (core, compatibility).")
	extensions   = flag.String("ext", "", "comma separated extensions to include, or * for all.")
	pkgName      = flag.String("pkg", "gl", "package name of the generated files.")
	outDir       = flag.String("o", ".", "output directory.")
	verbose      = flag.Bool("v", false, "log the selected commands.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glgen: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	f, err := os.Open(*registryPath)
	if err != nil {
		return err
	}
	defer f.Close()
	reg, err := registry.Parse(f)
	if err != nil {
		return err
	}
	filter := registry.Filter{
		API:     *api,
		Version: *version,
		Profile: *profile,
	}
	if *extensions != "" {
		filter.Extensions = strings.Split(*extensions, ",")
	}
	sel, err := reg.Select(filter)
	if err != nil {
		return err
	}
	slog.Debug("selected", "commands", len(sel.Commands), "enums", len(sel.Enums), "filter", fmt.Sprintf("%+v", filter))
	for _, c := range sel.Commands {
		slog.Debug("command", "name", c.Name, "tags", c.Tags)
	}
	g := &generator{
		Registry: filepath.Base(*registryPath),
		Package:  *pkgName,
	}
	return g.writeFiles(*outDir, sel)
}
