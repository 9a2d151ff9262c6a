// SPDX-License-Identifier: Unlicense OR MIT

// Package registry reads the Khronos OpenGL XML API registry (gl.xml)
// and selects the commands and enums of a GL or GLES API version and
// a set of extensions.
package registry

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Registry is the decoded form of gl.xml.
type Registry struct {
	Enums      []EnumBlock `xml:"enums"`
	Commands   []Command   `xml:"commands>command"`
	Features   []Feature   `xml:"feature"`
	Extensions []Extension `xml:"extensions>extension"`

	commands map[string]*Command
}

type EnumBlock struct {
	Namespace string      `xml:"namespace,attr"`
	Vendor    string      `xml:"vendor,attr"`
	Enum      []EnumValue `xml:"enum"`
}

type EnumValue struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	// API restricts the value to one API, as for GL_ACTIVE_PROGRAM_EXT.
	API string `xml:"api,attr"`
}

type Command struct {
	Proto  Proto   `xml:"proto"`
	Params []Param `xml:"param"`
}

// Name returns the command name, for example glClear.
func (c *Command) Name() string {
	return c.Proto.Name
}

type Proto struct {
	Name  string `xml:"name"`
	Inner string `xml:",innerxml"`
}

type Param struct {
	Name  string `xml:"name"`
	Len   string `xml:"len,attr"`
	Group string `xml:"group,attr"`
	Inner string `xml:",innerxml"`
}

type Feature struct {
	API     string    `xml:"api,attr"`
	Name    string    `xml:"name,attr"`
	Number  string    `xml:"number,attr"`
	Require []Require `xml:"require"`
	Remove  []Require `xml:"remove"`
}

type Extension struct {
	Name string `xml:"name,attr"`
	// Supported is a regular expression of the APIs, such as
	// "gl|glcore|gles2".
	Supported string    `xml:"supported,attr"`
	Require   []Require `xml:"require"`
}

// Require is a <require> or <remove> block.
type Require struct {
	API      string    `xml:"api,attr"`
	Profile  string    `xml:"profile,attr"`
	Commands []NameRef `xml:"command"`
	Enums    []NameRef `xml:"enum"`
}

type NameRef struct {
	Name string `xml:"name,attr"`
}

// Parse decodes a registry.
func Parse(r io.Reader) (*Registry, error) {
	reg := new(Registry)
	if err := xml.NewDecoder(r).Decode(reg); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	reg.commands = make(map[string]*Command, len(reg.Commands))
	for i := range reg.Commands {
		c := &reg.Commands[i]
		if c.Name() == "" {
			return nil, fmt.Errorf("registry: command %d has no name", i)
		}
		reg.commands[c.Name()] = c
	}
	return reg, nil
}

// Command returns the named command.
func (r *Registry) Command(name string) (*Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

var tags = regexp.MustCompile(`<[^>]*>`)

// ctype extracts the C type of a <proto> or <param> from its inner XML,
// dropping the trailing name.
func ctype(inner, name string) string {
	s := tags.ReplaceAllString(inner, "")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, name)
	return strings.Join(strings.Fields(s), " ")
}

// Supports reports whether the extension is available to api.
func (e *Extension) Supports(api string) bool {
	for _, s := range strings.Split(e.Supported, "|") {
		if s == api {
			return true
		}
	}
	return false
}
