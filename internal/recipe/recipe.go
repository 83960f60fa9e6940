// Package recipe loads named component class recipes from YAML.
//
// A recipe file looks like:
//
//	components:
//	  button:
//	    conditions:
//	      - inline-flex items-center rounded-md
//	      - when: {variant: primary}
//	        use: bg-primary text-primary-foreground
//	      - when: {disabled: true}
//	        use: opacity-50
package recipe

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/setclassname/pkg/classname"
)

var (
	ErrEmptyName        = errors.New("component name cannot be empty")
	ErrInvalidCondition = errors.New("invalid condition")
	ErrUnknownComponent = errors.New("unknown component")
)

// Component is one named, ordered condition list.
type Component struct {
	Name       string
	Conditions []classname.Condition
}

// Set is an immutable collection of components.
type Set struct {
	components map[string]Component
}

// Get returns the component called name.
func (s *Set) Get(name string) (Component, error) {
	if s != nil {
		if c, ok := s.components[name]; ok {
			return c, nil
		}
	}
	return Component{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
}

// Names returns the component names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of components in s. A nil set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.components)
}

type file struct {
	Components map[string]struct {
		Conditions []condition `yaml:"conditions"`
	} `yaml:"components"`
}

// Load reads and parses the recipe file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a recipe document.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	set := &Set{components: make(map[string]Component, len(f.Components))}
	for name, c := range f.Components {
		if name == "" {
			return nil, ErrEmptyName
		}
		conds := make([]classname.Condition, len(c.Conditions))
		for i, cond := range c.Conditions {
			conds[i] = classname.Condition(cond)
		}
		set.components[name] = Component{Name: name, Conditions: conds}
	}
	return set, nil
}

// condition decodes either a bare string or a {when, use} mapping.
type condition classname.Condition

func (c *condition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = condition(classname.Use(s))
		return nil

	case yaml.MappingNode:
		var raw struct {
			When map[string]yaml.Node `yaml:"when"`
			Use  string               `yaml:"use"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		out := classname.Condition{Use: raw.Use}
		if raw.When != nil {
			out.When = make(classname.Props, len(raw.When))
			for key, n := range raw.When {
				v, err := scalarValue(&n)
				if err != nil {
					return fmt.Errorf("line %d: when.%s: %w", n.Line, key, err)
				}
				out.When[key] = v
			}
		}
		*c = condition(out)
		return nil
	}
	return fmt.Errorf("line %d: %w: expected string or mapping", node.Line, ErrInvalidCondition)
}

func scalarValue(n *yaml.Node) (classname.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return classname.Value{}, fmt.Errorf("%w: value must be a scalar", ErrInvalidCondition)
	}
	switch n.ShortTag() {
	case "!!null":
		return classname.NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return classname.Value{}, err
		}
		return classname.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return classname.Value{}, err
		}
		return classname.Number(f), nil
	}
	return classname.String(n.Value), nil
}
