// Package model turns a parsed GraphQL schema and a resolved directive
// into the declaration set the generator renders: one declaration per
// schema type, enum and root-level operation, with renames and type
// overrides already applied.
package model

// TypeKind distinguishes output object types from input object types.
type TypeKind int

const (
	ObjectType TypeKind = iota
	InputType
)

// TypeDecl is a generated struct declaration. Name is the schema name
// and stays on the wire through JSON tags; GoName is the (possibly
// renamed) Go identifier.
type TypeDecl struct {
	Name   string
	GoName string
	Kind   TypeKind
	Doc    string
	Fields []*FieldDecl
}

// FieldDecl is one struct field. GoType is a complete Go type
// expression, either derived from the schema type or taken verbatim
// from a type override.
type FieldDecl struct {
	Name   string
	GoName string
	GoType string
	Doc    string
}

// EnumDecl is a generated string-backed enum type.
type EnumDecl struct {
	Name   string
	GoName string
	Doc    string
	Values []*VariantDecl
}

// VariantDecl is one enum constant. Name is the schema value and is
// what goes on the wire; GoName is the unprefixed constant name, the
// generator prepends the enum's GoName.
type VariantDecl struct {
	Name   string
	GoName string
	Doc    string
}

// OperationDecl is one resolvable root field.
type OperationDecl struct {
	Kind       string // Query, Mutation or Subscription
	Field      string
	GoName     string // e.g. QueryPlayers
	Doc        string
	Args       []*ArgDecl
	ReturnType string // Go type expression of the resolved value
}

// ArgDecl is one operation argument.
type ArgDecl struct {
	Name   string
	GoName string
	GoType string
}

// Declarations is the complete declaration set for one schema.
type Declarations struct {
	Types      []*TypeDecl
	Enums      []*EnumDecl
	Operations []*OperationDecl
}
