// SPDX-License-Identifier: Unlicense OR MIT

package registry

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Filter selects part of the registry.
type Filter struct {
	// API is the feature API: "gl", "gles1" or "gles2". Empty selects
	// every feature of every API and, unless Extensions is set, every
	// extension.
	API string
	// Version is the highest feature version included, such as "4.6".
	// Empty means every version. Setting it requires API.
	Version string
	// Profile is "core" or "compatibility". Empty keeps everything,
	// including commands removed from the core profile.
	Profile string
	// Extensions lists the extensions to include. A single "*"
	// includes every extension supported by API.
	Extensions []string
}

// Entry describes one command: the data a wrapper is generated from.
type Entry struct {
	Name   string
	GoName string
	Params []Arg
	// Return is the Go result type, empty for void.
	Return string
	// Tags are the features and extensions that provide the command,
	// in registry order.
	Tags []string
}

// Arg is a command parameter.
type Arg struct {
	Name   string
	GoName string
	CType  string
	GoType string
}

// Enum is a named constant.
type Enum struct {
	Name   string
	GoName string
	Value  string
}

// Selection is the result of Select.
type Selection struct {
	Commands []Entry
	Enums    []Enum
}

// Select returns the commands and enums matching f, sorted by name.
func (r *Registry) Select(f Filter) (*Selection, error) {
	var limit [2]int
	if f.Version != "" {
		if f.API == "" {
			return nil, fmt.Errorf("registry: version %s requires an API", f.Version)
		}
		v, err := parseNumber(f.Version)
		if err != nil {
			return nil, err
		}
		limit = v
	}
	cmds := make(map[string]bool)
	enums := make(map[string]bool)
	add := func(req Require) {
		for _, c := range req.Commands {
			cmds[c.Name] = true
		}
		for _, e := range req.Enums {
			enums[e.Name] = true
		}
	}
	for _, feat := range r.Features {
		if f.API != "" && feat.API != f.API {
			continue
		}
		v, err := parseNumber(feat.Number)
		if err != nil {
			return nil, fmt.Errorf("registry: %s: %w", feat.Name, err)
		}
		if f.Version != "" && less(limit, v) {
			continue
		}
		for _, req := range feat.Require {
			if req.Profile == "" || f.Profile == "" || req.Profile == f.Profile {
				add(req)
			}
		}
		if f.Profile == "" {
			continue
		}
		for _, rem := range feat.Remove {
			if rem.Profile != "" && rem.Profile != f.Profile {
				continue
			}
			for _, c := range rem.Commands {
				delete(cmds, c.Name)
			}
			for _, e := range rem.Enums {
				delete(enums, e.Name)
			}
		}
	}

	all := len(f.Extensions) == 1 && f.Extensions[0] == "*" ||
		f.API == "" && len(f.Extensions) == 0
	wanted := make(map[string]bool)
	if !all {
		for _, e := range f.Extensions {
			wanted[e] = true
		}
	}
	for _, ext := range r.Extensions {
		if !all && !wanted[ext.Name] {
			continue
		}
		delete(wanted, ext.Name)
		if f.API != "" && !ext.Supports(f.API) && !(f.API == "gl" && f.Profile == "core" && ext.Supports("glcore")) {
			if all {
				continue
			}
			return nil, fmt.Errorf("registry: %s is not supported by %s", ext.Name, f.API)
		}
		for _, req := range ext.Require {
			if req.API != "" && f.API != "" && req.API != f.API {
				continue
			}
			if req.Profile == "" || f.Profile == "" || req.Profile == f.Profile {
				add(req)
			}
		}
	}
	if len(wanted) > 0 {
		missing := maps.Keys(wanted)
		slices.Sort(missing)
		return nil, fmt.Errorf("registry: unknown extensions %v", missing)
	}

	tags := r.tags()
	sel := new(Selection)
	names := maps.Keys(cmds)
	slices.Sort(names)
	for _, n := range names {
		e, err := r.entry(n)
		if err != nil {
			return nil, err
		}
		e.Tags = tags[n]
		sel.Commands = append(sel.Commands, e)
	}
	values := r.enumValues(f.API)
	names = maps.Keys(enums)
	slices.Sort(names)
	for _, n := range names {
		v, ok := values[n]
		if !ok {
			return nil, fmt.Errorf("registry: enum %s has no value", n)
		}
		sel.Enums = append(sel.Enums, Enum{Name: n, GoName: goName(n), Value: v})
	}
	return sel, nil
}

// tags maps every command to the features and extensions requiring it.
func (r *Registry) tags() map[string][]string {
	tags := make(map[string][]string)
	add := func(tag string, reqs []Require) {
		for _, req := range reqs {
			for _, c := range req.Commands {
				if !slices.Contains(tags[c.Name], tag) {
					tags[c.Name] = append(tags[c.Name], tag)
				}
			}
		}
	}
	for _, f := range r.Features {
		add(f.Name, f.Require)
	}
	for _, e := range r.Extensions {
		add(e.Name, e.Require)
	}
	return tags
}

func (r *Registry) entry(name string) (Entry, error) {
	c, ok := r.Command(name)
	if !ok {
		return Entry{}, fmt.Errorf("registry: command %s is required but not defined", name)
	}
	ret, err := goType(ctype(c.Proto.Inner, c.Proto.Name), false, "")
	if err != nil {
		return Entry{}, fmt.Errorf("registry: %s: result: %w", name, err)
	}
	e := Entry{
		Name:   name,
		GoName: goName(name),
		Return: ret,
	}
	for _, p := range c.Params {
		ct := ctype(p.Inner, p.Name)
		gt, err := goType(ct, true, p.Len)
		if err != nil {
			return Entry{}, fmt.Errorf("registry: %s: %s: %w", name, p.Name, err)
		}
		e.Params = append(e.Params, Arg{
			Name:   p.Name,
			GoName: goIdent(p.Name),
			CType:  ct,
			GoType: gt,
		})
	}
	return e, nil
}

func (r *Registry) enumValues(api string) map[string]string {
	values := make(map[string]string)
	for _, b := range r.Enums {
		for _, e := range b.Enum {
			if e.API != "" && api != "" && e.API != api {
				continue
			}
			// An API specific value overrides a generic one; with no
			// API the first value wins.
			if _, dup := values[e.Name]; dup && (e.API == "" || api == "") {
				continue
			}
			values[e.Name] = e.Value
		}
	}
	return values
}

func parseNumber(s string) ([2]int, error) {
	var v [2]int
	if _, err := fmt.Sscanf(s, "%d.%d", &v[0], &v[1]); err != nil {
		return v, fmt.Errorf("invalid version %q", s)
	}
	return v, nil
}

func less(a, b [2]int) bool {
	return a[0] < b[0] || a[0] == b[0] && a[1] < b[1]
}
