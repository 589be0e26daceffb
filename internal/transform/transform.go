// Package transform holds the fixed table of named text transforms.
//
// The table is built once at package init and never modified afterwards, so
// lookups are safe from any goroutine.
package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func is a pure string transform.
type Func func(string) string

// Transform is a single registry entry.
type Transform struct {
	Name        string
	Description string
	Apply       Func
}

// registry is in registration order; the order is visible in error messages.
var registry = []Transform{
	{Name: "uppercase", Description: "Convert every character to upper case", Apply: Upper},
	{Name: "lowercase", Description: "Convert every character to lower case", Apply: Lower},
	{Name: "reverse", Description: "Reverse the order of characters", Apply: Reverse},
	{Name: "title", Description: "Capitalise the first letter of every word", Apply: Title},
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(registry))
	for _, t := range registry {
		m[t.Name] = t.Apply
	}
	return m
}()

// Lookup returns the transform registered under name. Names are matched
// exactly; callers normalise case before calling.
func Lookup(name string) (Func, bool) {
	fn, ok := byName[name]
	return fn, ok
}

// Names returns all registered names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// All returns a copy of the registry in registration order.
func All() []Transform {
	out := make([]Transform, len(registry))
	copy(out, registry)
	return out
}

// Usage returns the registered names joined by ", ".
func Usage() string {
	return strings.Join(Names(), ", ")
}

// Upper maps every character to its upper-case form using full Unicode
// case mapping, so "ß" becomes "SS".
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower maps every character to its lower-case form.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Reverse reverses s by code point. Applying it twice returns s for any
// valid UTF-8 input.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Title upper-cases the first letter of each word and lower-cases the rest.
// Word boundaries follow cases.Title.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
