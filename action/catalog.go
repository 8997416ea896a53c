// Package action turns command-line tokens into validated actions and runs
// them against a todo store.
//
// Parse resolves the first token against a Catalog and binds the remaining
// tokens as arguments. Executor.Execute dispatches the result on its Kind.
package action

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported actions.
type Kind int

// Action kinds, in catalog order.
const (
	KindCreate Kind = iota
	KindList
	KindEdit
	KindDone
	KindUndone
	KindDelete
)

// Spec describes an action and its argument requirement.
type Spec struct {
	Kind              Kind
	Name              string
	RequiresArguments bool
}

// Catalog is an immutable set of action specs with unique names.
type Catalog struct {
	specs []Spec
}

// NewCatalog builds a catalog, rejecting duplicate or empty names.
func NewCatalog(specs ...Spec) (*Catalog, error) {
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("action name cannot be empty")
		}
		if _, ok := seen[spec.Name]; ok {
			return nil, fmt.Errorf("duplicate action %q", spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}
	return &Catalog{specs: append([]Spec(nil), specs...)}, nil
}

// DefaultCatalog returns the six todo actions.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(
		Spec{Kind: KindCreate, Name: "create"},
		Spec{Kind: KindList, Name: "list"},
		Spec{Kind: KindEdit, Name: "edit", RequiresArguments: true},
		Spec{Kind: KindDone, Name: "done", RequiresArguments: true},
		Spec{Kind: KindUndone, Name: "undone", RequiresArguments: true},
		Spec{Kind: KindDelete, Name: "delete", RequiresArguments: true},
	)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Names returns the action names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for _, spec := range c.specs {
		names = append(names, spec.Name)
	}
	return names
}

// Resolve returns the spec named name.
func (c *Catalog) Resolve(name string) (Spec, error) {
	for _, spec := range c.specs {
		if spec.Name == name {
			return spec, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: %q [%s]", ErrUnknownAction, name, strings.Join(c.Names(), ", "))
}

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindList:
		return "list"
	case KindEdit:
		return "edit"
	case KindDone:
		return "done"
	case KindUndone:
		return "undone"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}
