package crownpages

import (
	"go.uber.org/zap"
)

// Definition is implemented by both section and full page definitions so the
// registry and lookup operations can be written once.
type Definition interface {
	TypeName() string
	CategoryName() Category
}

// Registry is an insertion-ordered mapping from type identifier to
// definition. It is populated once at construction and never mutated after,
// so reads need no locking. Insertion order is preserved so listings stay
// stable across processes and platforms.
type Registry[D Definition] struct {
	order  []string
	byType map[string]D
}

// NewRegistry builds a registry from the given definitions. Two definitions
// sharing a type key is a data-authoring error: the last one wins, and the
// collision is logged rather than silently absorbed.
func NewRegistry[D Definition](defs ...D) *Registry[D] {
	r := &Registry[D]{
		order:  make([]string, 0, len(defs)),
		byType: make(map[string]D, len(defs)),
	}
	for _, d := range defs {
		key := d.TypeName()
		if _, dup := r.byType[key]; dup {
			zap.S().Warnw("duplicate content type registered, last definition wins",
				"type", key)
		} else {
			r.order = append(r.order, key)
		}
		r.byType[key] = d
	}
	return r
}

// Get returns the definition registered under typeName.
func (r *Registry[D]) Get(typeName string) (D, bool) {
	d, ok := r.byType[typeName]
	return d, ok
}

// Types returns all registered type identifiers in registration order.
func (r *Registry[D]) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every registered definition in registration order.
func (r *Registry[D]) All() []D {
	out := make([]D, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byType[key])
	}
	return out
}

// ByCategory returns the definitions in the given category, in registration
// order. A category with no members, including an unrecognized one, yields
// an empty slice.
func (r *Registry[D]) ByCategory(category Category) []D {
	out := []D{}
	for _, key := range r.order {
		if d := r.byType[key]; d.CategoryName() == category {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered definitions.
func (r *Registry[D]) Len() int { return len(r.order) }

// The two process-wide registries. Built once from the static catalog when
// the package loads; all exported accessors below are read-only.
var (
	sectionRegistry  = NewRegistry(allSections()...)
	fullPageRegistry = NewRegistry(allFullPages()...)
)

// GetSection returns the section definition for typeName, or nil when no
// such type is registered. Callers must check for nil; an unknown type is an
// ordinary negative result, not an error.
func GetSection(typeName string) *SectionDefinition {
	if d, ok := sectionRegistry.Get(typeName); ok {
		return d
	}
	return nil
}

// ListSectionTypes returns every registered section type identifier in
// declaration order.
func ListSectionTypes() []string {
	return sectionRegistry.Types()
}

// AllSections returns every registered section definition in declaration
// order.
func AllSections() []*SectionDefinition {
	return sectionRegistry.All()
}

// SectionsByCategory returns the section definitions in the given category.
func SectionsByCategory(category Category) []*SectionDefinition {
	return sectionRegistry.ByCategory(category)
}

// GetFullPage returns the full page definition for typeName, or nil when no
// such type is registered.
func GetFullPage(typeName string) *FullPageDefinition {
	if d, ok := fullPageRegistry.Get(typeName); ok {
		return d
	}
	return nil
}

// ListFullPageTypes returns every registered full page type identifier in
// declaration order.
func ListFullPageTypes() []string {
	return fullPageRegistry.Types()
}

// AllFullPages returns every registered full page definition in declaration
// order.
func AllFullPages() []*FullPageDefinition {
	return fullPageRegistry.All()
}

// FullPagesByCategory returns the full page definitions in the given
// category.
func FullPagesByCategory(category Category) []*FullPageDefinition {
	return fullPageRegistry.ByCategory(category)
}
