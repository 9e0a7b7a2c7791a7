package parser

import (
	"slices"
)

// Metadata collects name/value pairs in the order names were first reported.
// A name may carry several values; a name without values counts as absent.
type Metadata struct {
	names  []string
	values map[string][]string
}

func NewMetadata() *Metadata {
	return &Metadata{
		values: make(map[string][]string),
	}
}

// Set replaces all values of name. Calling Set without values removes it.
func (m *Metadata) Set(name string, values ...string) {
	if name == "" {
		return
	}

	values = compact(values)

	if len(values) == 0 {
		m.Remove(name)
		return
	}

	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}

	m.values[name] = values
}

// Add appends a value to name. Empty values are ignored.
func (m *Metadata) Add(name, value string) {
	if name == "" || value == "" {
		return
	}

	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}

	m.values[name] = append(m.values[name], value)
}

func (m *Metadata) Remove(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}

	delete(m.values, name)

	m.names = slices.DeleteFunc(m.names, func(n string) bool {
		return n == name
	})
}

// Get returns the first value of name, or an empty string.
func (m *Metadata) Get(name string) string {
	if values := m.values[name]; len(values) > 0 {
		return values[0]
	}

	return ""
}

func (m *Metadata) Values(name string) []string {
	return slices.Clone(m.values[name])
}

func (m *Metadata) Names() []string {
	return slices.Clone(m.names)
}

func (m *Metadata) Len() int {
	return len(m.names)
}

func compact(values []string) []string {
	var result []string

	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}

	return result
}
