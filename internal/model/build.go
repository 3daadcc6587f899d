package model

import (
	"strings"

	"github.com/dfeyer/lambda-appsync/internal/directive"
	"github.com/dfeyer/lambda-appsync/internal/language"
)

// scalarTypes maps GraphQL built-in and AppSync scalars to Go types.
// The appsync-qualified ones live in the runtime library.
var scalarTypes = map[string]string{
	"ID":           "appsync.ID",
	"String":       "string",
	"Int":          "int",
	"Float":        "float64",
	"Boolean":      "bool",
	"AWSEmail":     "appsync.AWSEmail",
	"AWSPhone":     "appsync.AWSPhone",
	"AWSURL":       "appsync.AWSURL",
	"AWSDate":      "appsync.AWSDate",
	"AWSTime":      "appsync.AWSTime",
	"AWSDateTime":  "appsync.AWSDateTime",
	"AWSTimestamp": "appsync.AWSTimestamp",
	"AWSJSON":      "appsync.AWSJSON",
	"AWSIPAddress": "appsync.AWSIPAddress",
}

// Build walks the schema document in declaration order and produces
// the declaration set, applying the directive's renames and type
// overrides.
func Build(doc *language.SchemaDocument, cfg *directive.Config) *Declarations {
	b := &builder{
		cfg:     cfg,
		goNames: map[string]string{},
		kinds:   map[string]language.DefinitionKind{},
		roots:   rootTypeNames(doc),
	}

	// First pass so forward references resolve to renamed identifiers.
	for _, def := range doc.Definitions {
		b.kinds[def.Name] = def.Kind
		name := def.Name
		if renamed, ok := cfg.NameOverrides.TypeName(def.Name); ok {
			name = renamed
		}
		b.goNames[def.Name] = name
	}

	decls := &Declarations{}
	for _, def := range doc.Definitions {
		if kind, isRoot := b.roots[def.Name]; isRoot {
			decls.Operations = append(decls.Operations, b.operations(kind, def)...)
			continue
		}
		switch def.Kind {
		case language.Object:
			decls.Types = append(decls.Types, b.typeDecl(def, ObjectType))
		case language.InputObject:
			decls.Types = append(decls.Types, b.typeDecl(def, InputType))
		case language.Enum:
			decls.Enums = append(decls.Enums, b.enumDecl(def))
		}
		// Interfaces, unions and custom scalars get no declaration of
		// their own; fields referencing them degrade to raw JSON.
	}
	return decls
}

// rootTypeNames maps each root operation type name to its kind,
// honoring an explicit schema { query: ... } block when present.
func rootTypeNames(doc *language.SchemaDocument) map[string]string {
	roots := map[string]string{
		"Query":        "Query",
		"Mutation":     "Mutation",
		"Subscription": "Subscription",
	}
	for _, schema := range doc.Schema {
		for _, op := range schema.OperationTypes {
			delete(roots, titleCase(string(op.Operation)))
			roots[op.Type] = titleCase(string(op.Operation))
		}
	}
	return roots
}

type builder struct {
	cfg     *directive.Config
	goNames map[string]string
	kinds   map[string]language.DefinitionKind
	roots   map[string]string
}

func (b *builder) typeDecl(def *language.Definition, kind TypeKind) *TypeDecl {
	decl := &TypeDecl{
		Name:   def.Name,
		GoName: b.goNames[def.Name],
		Kind:   kind,
		Doc:    def.Description,
	}
	for _, f := range def.Fields {
		goName, ok := b.cfg.NameOverrides.Member(def.Name, f.Name)
		if !ok {
			goName = exportName(f.Name)
		}
		goType, ok := b.cfg.TypeOverrides.Field(def.Name, f.Name)
		if !ok {
			goType = b.goType(f.Type)
		}
		decl.Fields = append(decl.Fields, &FieldDecl{
			Name:   f.Name,
			GoName: goName,
			GoType: goType,
			Doc:    f.Description,
		})
	}
	return decl
}

func (b *builder) enumDecl(def *language.Definition) *EnumDecl {
	decl := &EnumDecl{
		Name:   def.Name,
		GoName: b.goNames[def.Name],
		Doc:    def.Description,
	}
	for _, v := range def.EnumValues {
		goName, ok := b.cfg.NameOverrides.Member(def.Name, v.Name)
		if !ok {
			goName = variantName(v.Name)
		}
		decl.Values = append(decl.Values, &VariantDecl{
			Name:   v.Name,
			GoName: goName,
			Doc:    v.Description,
		})
	}
	return decl
}

func (b *builder) operations(kind string, def *language.Definition) []*OperationDecl {
	var ops []*OperationDecl
	for _, f := range def.Fields {
		op := &OperationDecl{
			Kind:   kind,
			Field:  f.Name,
			GoName: kind + exportName(f.Name),
			Doc:    f.Description,
		}
		if goType, ok := b.cfg.TypeOverrides.Field(kind, f.Name); ok {
			op.ReturnType = goType
		} else {
			op.ReturnType = b.goType(f.Type)
		}
		for _, arg := range f.Arguments {
			goType, ok := b.cfg.TypeOverrides.Arg(kind, f.Name, arg.Name)
			if !ok {
				goType = b.goType(arg.Type)
			}
			op.Args = append(op.Args, &ArgDecl{
				Name:   arg.Name,
				GoName: localName(arg.Name),
				GoType: goType,
			})
		}
		ops = append(ops, op)
	}
	return ops
}

// goType maps a schema type reference to a Go type expression:
// built-in scalars per scalarTypes, lists to slices, nullable
// non-list types to pointers. Interface, union and custom scalar
// references degrade to json.RawMessage, which is already nilable.
func (b *builder) goType(t *language.Type) string {
	if t.Elem != nil {
		return "[]" + b.goType(t.Elem)
	}
	base, ok := scalarTypes[t.NamedType]
	if !ok {
		switch b.kinds[t.NamedType] {
		case language.Object, language.InputObject, language.Enum:
			base = b.goNames[t.NamedType]
		default:
			return "json.RawMessage"
		}
	}
	if !t.NonNull {
		return "*" + base
	}
	return base
}

// exportName turns a schema field name into an exported Go
// identifier.
func exportName(name string) string {
	if name == "id" {
		return "ID"
	}
	return titleCase(name)
}

// localName keeps a schema argument name usable as a Go parameter,
// stepping around keywords.
func localName(name string) string {
	switch name {
	case "type", "func", "map", "range", "var", "chan", "select", "defer", "go", "interface":
		return name + "Arg"
	}
	return name
}

// variantName turns SCREAMING_SNAKE enum values into CamelCase.
func variantName(name string) string {
	parts := strings.Split(strings.ToLower(name), "_")
	for i, p := range parts {
		parts[i] = titleCase(p)
	}
	return strings.Join(parts, "")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
