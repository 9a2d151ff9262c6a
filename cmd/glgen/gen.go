// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"

	"gioui.org/glproc/registry"
)

type generator struct {
	// Registry is the registry file name quoted in the header.
	Registry string
	Package  string
}

const header = `// SPDX-License-Identifier: Unlicense OR MIT

// Code generated by glgen from {{.Registry}}. DO NOT EDIT.

package {{.Package}}
`

var funcsTemplate = template.Must(template.New("funcs").Funcs(template.FuncMap{
	"params": params,
	"args":   args,
	"result": result,
}).Parse(header + `
import (
{{- if .Unsafe}}
	"unsafe"
{{end}}
	"gioui.org/glproc/proc"
)
{{range .Commands}}
var fn{{.GoName}} = proc.Declare[func({{params .}}){{result .}}](procs, {{printf "%q" .Name}}{{range .Tags}}, {{printf "%q" .}}{{end}})

// {{.GoName}} calls {{.Name}}.
func {{.GoName}}({{params .}}){{result .}} {
	{{if .Return}}return {{end}}fn{{.GoName}}.Get()({{args .}})
}
{{end}}`))

var enumsTemplate = template.Must(template.New("enums").Parse(header + `{{if .Enums}}
const (
{{- range .Enums}}
	{{.GoName}} = {{.Value}}
{{- end}}
)
{{end}}`))

type fileData struct {
	*generator
	Unsafe   bool
	Commands []registry.Entry
	Enums    []registry.Enum
}

func params(e registry.Entry) string {
	var b strings.Builder
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.GoName + " " + p.GoType)
	}
	return b.String()
}

func args(e registry.Entry) string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.GoName
	}
	return strings.Join(names, ", ")
}

func result(e registry.Entry) string {
	if e.Return == "" {
		return ""
	}
	return " " + e.Return
}

func usesUnsafe(cmds []registry.Entry) bool {
	for _, c := range cmds {
		if strings.Contains(c.Return, "unsafe.") {
			return true
		}
		for _, p := range c.Params {
			if strings.Contains(p.GoType, "unsafe.") {
				return true
			}
		}
	}
	return false
}

// funcs renders the wrapper functions of sel.
func (g *generator) funcs(sel *registry.Selection) ([]byte, error) {
	if len(sel.Commands) == 0 {
		return nil, errors.New("no commands selected")
	}
	return render(funcsTemplate, fileData{
		generator: g,
		Unsafe:    usesUnsafe(sel.Commands),
		Commands:  sel.Commands,
	})
}

// enums renders the enum constants of sel.
func (g *generator) enums(sel *registry.Selection) ([]byte, error) {
	return render(enumsTemplate, fileData{
		generator: g,
		Enums:     sel.Enums,
	})
}

func render(t *template.Template, data fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		slog.Debug("unformatted source", "template", t.Name(), "src", buf.String())
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return src, nil
}

// writeFiles writes funcs.go and enums.go to dir.
func (g *generator) writeFiles(dir string, sel *registry.Selection) error {
	var files errgroup.Group
	write := func(name string, gen func(*registry.Selection) ([]byte, error)) {
		files.Go(func() error {
			src, err := gen(sel)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return err
			}
			slog.Debug("wrote", "file", path, "bytes", len(src))
			return nil
		})
	}
	write("funcs.go", g.funcs)
	write("enums.go", g.enums)
	return files.Wait()
}
