package component

import (
	"fmt"
	"sort"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

// Component is the UI shown for one dashboard tab.
type Component interface {
	ID() string
	Title() string
	Table(cfg *model.AppConfig) Table
}

// Table is the tabular content of a component.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Registry maps tab identifiers to components.
type Registry map[string]Component

// NewRegistry registers every component, rejecting duplicate identifiers.
func NewRegistry(components ...Component) (Registry, error) {
	r := make(Registry, len(components))
	for _, c := range components {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds c under its identifier.
func (r Registry) Register(c Component) error {
	if _, exists := r[c.ID()]; exists {
		return fmt.Errorf("%w: %s", constant.ErrDuplicateComponent, c.ID())
	}

	r[c.ID()] = c

	return nil
}

// Lookup returns the component registered for a tab.
func (r Registry) Lookup(id string) (Component, error) {
	c, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constant.ErrUnknownTab, id)
	}

	return c, nil
}

// IDs returns the registered identifiers in lexical order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Clone returns a shallow copy; components themselves are immutable.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for id, c := range r {
		out[id] = c
	}

	return out
}
