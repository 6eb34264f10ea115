package golang

import (
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/recipe/yamlconfig"
)

// RegisterRecipes installs this package's recipes into reg under the
// fully-qualified names a YAML recipe tree declares them by.
func RegisterRecipes(reg *yamlconfig.Registry) {
	reg.Register("org.viant.rewrite.golang.AddImport", func(options map[string]any) (recipe.Recipe, error) {
		path, err := yamlconfig.StringOption(options, "path")
		if err != nil {
			return nil, err
		}
		return &AddImportRecipe{Path: path, Alias: yamlconfig.StringOptionOr(options, "alias", "")}, nil
	})

	reg.Register("org.viant.rewrite.golang.RemoveImport", func(options map[string]any) (recipe.Recipe, error) {
		path, err := yamlconfig.StringOption(options, "path")
		if err != nil {
			return nil, err
		}
		return &RemoveImportRecipe{Path: path}, nil
	})

	reg.Register("org.viant.rewrite.golang.RenamePackage", func(options map[string]any) (recipe.Recipe, error) {
		from, err := yamlconfig.StringOption(options, "from")
		if err != nil {
			return nil, err
		}
		to, err := yamlconfig.StringOption(options, "to")
		if err != nil {
			return nil, err
		}
		return &RenamePackageRecipe{From: from, To: to}, nil
	})
}
