package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/lang/golang"
	"github.com/viant/rewrite/tree"
)

func TestAddImportRecipe_AddsMissingImport(t *testing.T) {
	f := parseOne(t, "package demo\n\nfunc F() {}\n")
	r := &golang.AddImportRecipe{Path: "fmt"}

	after, err := r.Visitor().Visit(execctx.New(), f)

	assert.NoError(t, err)
	assert.NotEqual(t, tree.SourceFile(f), after)
	gf := after.(*golang.File)
	assert.NotNil(t, findImport(gf, "fmt"))
}

func TestAddImportRecipe_IdempotentWhenAlreadyPresent(t *testing.T) {
	f := parseOne(t, "package demo\n\nimport \"fmt\"\n\nfunc F() { fmt.Println() }\n")
	r := &golang.AddImportRecipe{Path: "fmt"}

	after, err := r.Visitor().Visit(execctx.New(), f)

	assert.NoError(t, err)
	assert.Equal(t, tree.SourceFile(f), after)
}

func TestAddImportRecipe_ValidateRejectsEmptyPath(t *testing.T) {
	r := &golang.AddImportRecipe{}
	assert.False(t, r.Validate(execctx.New()).IsValid())
}

func TestRemoveImportRecipe_RemovesPresentImport(t *testing.T) {
	f := parseOne(t, "package demo\n\nimport \"fmt\"\n\nfunc F() {}\n")
	r := &golang.RemoveImportRecipe{Path: "fmt"}

	after, err := r.Visitor().Visit(execctx.New(), f)

	assert.NoError(t, err)
	assert.NotEqual(t, tree.SourceFile(f), after)
	gf := after.(*golang.File)
	assert.Nil(t, findImport(gf, "fmt"))
}

func TestRemoveImportRecipe_NoOpWhenAbsent(t *testing.T) {
	f := parseOne(t, "package demo\n\nfunc F() {}\n")
	r := &golang.RemoveImportRecipe{Path: "fmt"}

	after, err := r.Visitor().Visit(execctx.New(), f)

	assert.NoError(t, err)
	assert.Equal(t, tree.SourceFile(f), after)
}

func TestRenamePackageRecipe_ApplicableOnlyOnMatchingPackage(t *testing.T) {
	f := parseOne(t, "package old\n\nfunc F() {}\n")
	r := &golang.RenamePackageRecipe{From: "old", To: "new"}

	unchanged, err := r.SingleSourceApplicableTest().Visit(execctx.New(), f)
	assert.NoError(t, err)
	assert.NotEqual(t, tree.SourceFile(f), unchanged)

	other := parseOne(t, "package other\n\nfunc F() {}\n")
	unchanged2, err := r.SingleSourceApplicableTest().Visit(execctx.New(), other)
	assert.NoError(t, err)
	assert.Equal(t, tree.SourceFile(other), unchanged2)
}

func TestRenamePackageRecipe_RewritesPackageClause(t *testing.T) {
	f := parseOne(t, "package old\n\nfunc F() {}\n")
	r := &golang.RenamePackageRecipe{From: "old", To: "new"}

	after, err := r.Visitor().Visit(execctx.New(), f)

	assert.NoError(t, err)
	gf := after.(*golang.File)
	assert.Equal(t, "new", gf.AST().Name.Name)
}

func findImport(f *golang.File, path string) interface{} {
	for _, imp := range f.AST().Imports {
		if imp.Path.Value == `"`+path+`"` {
			return imp
		}
	}
	return nil
}
