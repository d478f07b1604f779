package tools

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedTool is returned for tool names outside the supported set.
var ErrUnsupportedTool = errors.New("unsupported tool")

// Factory creates Tool instances by name
type Factory struct{}

// NewFactory creates a new tool factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the adapter registered for name.
func (f *Factory) Create(name Name) (Tool, error) {
	switch name {
	case NameBandit:
		return NewBandit(), nil
	case NameFlake8:
		return NewFlake8(), nil
	case NamePylint:
		return NewPylint(), nil
	case NamePyreCheck:
		return NewPyre(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedTool, string(name), strings.Join(NameStrings(), ", "))
	}
}

// GetAvailableTools returns the supported tool names in display order
func (f *Factory) GetAvailableTools() []Name {
	return []Name{NameBandit, NameFlake8, NamePylint, NamePyreCheck}
}

// New is a convenience wrapper around Factory.Create.
func New(name Name) (Tool, error) {
	return NewFactory().Create(name)
}

// NameStrings returns the supported tool names as plain strings.
func NameStrings() []string {
	names := NewFactory().GetAvailableTools()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// ParseName validates s against the supported set. Matching is exact, the
// same way the command line accepts only the enumerated choices.
func ParseName(s string) (Name, error) {
	for _, n := range NewFactory().GetAvailableTools() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedTool, s, strings.Join(NameStrings(), ", "))
}
