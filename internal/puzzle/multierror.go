package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

// MultiError collects at most one error per named section so independent
// checks can run to completion and report together. Inserting into an
// already-populated section overwrites the earlier error.
type MultiError struct {
	sections map[string]error
}

// NewMultiError returns an empty error collection.
func NewMultiError() *MultiError {
	return &MultiError{sections: make(map[string]error)}
}

// Insert records err under section, replacing any earlier error there.
func (m *MultiError) Insert(section string, err error) {
	m.sections[section] = err
}

// Empty reports whether no section holds an error.
func (m *MultiError) Empty() bool { return len(m.sections) == 0 }

// Len returns the number of populated sections.
func (m *MultiError) Len() int { return len(m.sections) }

// Section returns the error recorded under name, or nil.
func (m *MultiError) Section(name string) error { return m.sections[name] }

// SectionNames returns the populated section names in sorted order.
func (m *MultiError) SectionNames() []string {
	names := make([]string, 0, len(m.sections))
	for name := range m.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *MultiError) Error() string {
	var b strings.Builder
	for i, name := range m.SectionNames() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", name, m.sections[name])
	}
	return b.String()
}
