// Package yamlconfig loads a composite recipe tree from a small YAML
// declaration format - recipe name, string-keyed options, an ordered
// list of nested recipes - decoded here with gopkg.in/yaml.v3 the way
// vsavkov-kilroy's engine.LoadRunConfigFile decodes its own config: a
// strict decoder that rejects unknown fields and trailing documents,
// so a typo in a recipe tree fails fast instead of silently no-op'ing.
package yamlconfig

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/viant/rewrite/recipe"
)

// Declaration is one node of a recipe tree as written in YAML:
//
//	name: org.viant.rewrite.golang.AddImport
//	options:
//	  path: fmt
//	recipes:
//	  - name: org.viant.rewrite.golang.RemoveImport
//	    options:
//	      path: log
type Declaration struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
	Recipes []Declaration  `yaml:"recipes,omitempty"`
}

// Constructor builds a recipe.Recipe from a declaration's options.
// Constructors receive only their own node's options, never its
// children: nesting is Registry's job, not the constructor's.
type Constructor func(options map[string]any) (recipe.Recipe, error)

// Registry maps declared recipe names to constructors. The zero
// Registry has no constructors registered.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register installs the constructor used for name. A second
// registration under the same name replaces the first.
func (r *Registry) Register(name string, ctor Constructor) {
	r.constructors[name] = ctor
}

// Load decodes a single recipe tree document and builds it via the
// registered constructors.
func (r *Registry) Load(data []byte) (recipe.Recipe, error) {
	return r.LoadReader(bytes.NewReader(data))
}

// LoadReader is Load over an io.Reader, for callers reading directly
// from a file or afs.Service stream.
func (r *Registry) LoadReader(src io.Reader) (recipe.Recipe, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var decl Declaration
	if err := dec.Decode(&decl); err != nil {
		return nil, fmt.Errorf("yamlconfig: decode: %w", err)
	}
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("yamlconfig: multiple documents are not allowed")
		}
		return nil, fmt.Errorf("yamlconfig: %w", err)
	}

	return r.build(decl)
}

func (r *Registry) build(decl Declaration) (recipe.Recipe, error) {
	ctor, ok := r.constructors[decl.Name]
	if !ok {
		return nil, fmt.Errorf("yamlconfig: unknown recipe %q", decl.Name)
	}
	base, err := ctor(decl.Options)
	if err != nil {
		return nil, fmt.Errorf("yamlconfig: building %q: %w", decl.Name, err)
	}
	if len(decl.Recipes) == 0 {
		return base, nil
	}

	children := make([]recipe.Recipe, 0, len(decl.Recipes))
	for _, childDecl := range decl.Recipes {
		child, err := r.build(childDecl)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &composite{Recipe: base, children: children}, nil
}

// composite overrides a built recipe's Children with the ones declared
// beneath it in YAML, without needing every constructor to know how to
// accept children itself.
type composite struct {
	recipe.Recipe
	children []recipe.Recipe
}

func (c *composite) Children() []recipe.Recipe { return c.children }
