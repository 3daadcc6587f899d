// Package directive parses the generation directive: a schema path
// followed by a comma-separated list of options, overrides and client
// declarations, e.g.
//
//	schema.graphql, batch = true, hook = verifyRequest,
//	type_override = Query.player.id: string,
//	dynamodb() -> github.com/aws/aws-sdk-go-v2/service/dynamodb.Client
package directive

import (
	"strconv"
	"strings"
)

// VisibilityFlags selects which generated artifacts are emitted and
// how the runtime behaves. All emission flags default to on.
type VisibilityFlags struct {
	Batch             bool
	LambdaHandler     bool
	AppsyncTypes      bool
	AppsyncOperations bool
	Hook              string // resolver-package function name, empty for none
}

// ClientSpec declares a lazily-initialized AWS client accessor.
type ClientSpec struct {
	Name string  // accessor function name
	Type TypeRef // client type, e.g. .../service/dynamodb.Client
	Pos  Position
}

// TypeRef is a type in another package, split into import path and
// local type name.
type TypeRef struct {
	ImportPath string
	Name       string
}

func (r TypeRef) String() string { return r.ImportPath + "." + r.Name }

// Config is the fully resolved directive.
type Config struct {
	SchemaPath    string
	SchemaPathPos Position
	Flags         VisibilityFlags
	TypeOverrides TypeOverrideMap
	NameOverrides NameOverrideMap
	Clients       []ClientSpec
}

// Parse parses and resolves a directive string. Items are processed in
// order, so later assignments to the same option or override slot win,
// and the order-dependent exclude_*/only_* flag semantics are
// preserved.
func Parse(input string) (*Config, error) {
	items := splitItems(input)
	if len(items) == 0 || items[0].text == "" {
		return nil, &UnknownArgumentError{Text: input, Pos: Position{}}
	}

	cfg := &Config{
		SchemaPath:    items[0].text,
		SchemaPathPos: Position{Arg: 0, Offset: items[0].offset},
		Flags: VisibilityFlags{
			Batch:             true,
			LambdaHandler:     true,
			AppsyncTypes:      true,
			AppsyncOperations: true,
		},
		TypeOverrides: TypeOverrideMap{},
		NameOverrides: NameOverrideMap{},
	}

	for i, item := range items[1:] {
		pos := Position{Arg: i + 1, Offset: item.offset}
		if err := cfg.apply(item.text, pos); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (cfg *Config) apply(item string, pos Position) error {
	if name, ref, ok := splitClientDecl(item); ok {
		return cfg.applyClient(item, name, ref, pos)
	}
	if key, value, ok := strings.Cut(item, "="); ok {
		return cfg.applyOption(strings.TrimSpace(key), strings.TrimSpace(value), pos)
	}
	return &UnknownArgumentError{Text: item, Pos: pos}
}

func (cfg *Config) applyOption(key, value string, pos Position) error {
	boolValue := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, &OptionValueError{Key: key, Value: value, Want: "true or false", Pos: pos}
		}
		return b, nil
	}

	f := &cfg.Flags
	switch key {
	case "batch":
		b, err := boolValue()
		if err != nil {
			return err
		}
		f.Batch = b
	case "hook":
		if !isIdent(value) {
			return &OptionValueError{Key: key, Value: value, Want: "a function identifier", Pos: pos}
		}
		f.Hook = value
	case "exclude_lambda_handler":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.LambdaHandler = false
		}
	case "only_lambda_handler":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.LambdaHandler = true
			f.AppsyncTypes = false
			f.AppsyncOperations = false
		}
	case "exclude_appsync_types":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.AppsyncTypes = false
		}
	case "only_appsync_types":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.LambdaHandler = false
			f.AppsyncTypes = true
			f.AppsyncOperations = false
		}
	case "exclude_appsync_operations":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.AppsyncOperations = false
		}
	case "only_appsync_operations":
		b, err := boolValue()
		if err != nil {
			return err
		}
		if b {
			f.LambdaHandler = false
			f.AppsyncTypes = false
			f.AppsyncOperations = true
		}
	case "type_override", "field_type_override":
		// field_type_override is the historical spelling.
		o, err := parseTypeOverride(value, pos)
		if err != nil {
			return err
		}
		cfg.TypeOverrides.put(o)
	case "name_override":
		o, err := parseNameOverride(value, pos)
		if err != nil {
			return err
		}
		cfg.NameOverrides.put(o)
	default:
		return &UnknownOptionError{Key: key, Pos: pos}
	}
	return nil
}

// parseTypeOverride parses `Type.field: GoType` or
// `Type.field.arg: GoType`.
func parseTypeOverride(value string, pos Position) (TypeOverride, error) {
	target, goType, ok := strings.Cut(value, ":")
	if !ok {
		return TypeOverride{}, &MalformedOverrideError{Value: value, Reason: "missing ':' before the replacement type", Pos: pos}
	}
	goType = strings.TrimSpace(goType)
	if goType == "" {
		return TypeOverride{}, &MalformedOverrideError{Value: value, Reason: "empty replacement type", Pos: pos}
	}
	segs := strings.Split(strings.TrimSpace(target), ".")
	if len(segs) < 2 || len(segs) > 3 {
		return TypeOverride{}, &MalformedOverrideError{Value: value, Reason: "target must be Type.field or Type.field.arg", Pos: pos}
	}
	for _, s := range segs {
		if !isIdent(s) {
			return TypeOverride{}, &MalformedOverrideError{Value: value, Reason: "target segments must be identifiers", Pos: pos}
		}
	}
	o := TypeOverride{TypeName: segs[0], FieldName: segs[1], GoType: goType, Pos: pos}
	if len(segs) == 3 {
		o.ArgName = segs[2]
	}
	return o, nil
}

// parseNameOverride parses `Type: NewName` or
// `Type.member: NewName`.
func parseNameOverride(value string, pos Position) (NameOverride, error) {
	target, newName, ok := strings.Cut(value, ":")
	if !ok {
		return NameOverride{}, &MalformedOverrideError{Value: value, Reason: "missing ':' before the new name", Pos: pos}
	}
	newName = strings.TrimSpace(newName)
	if !isIdent(newName) {
		return NameOverride{}, &MalformedOverrideError{Value: value, Reason: "new name must be an identifier", Pos: pos}
	}
	segs := strings.Split(strings.TrimSpace(target), ".")
	if len(segs) < 1 || len(segs) > 2 {
		return NameOverride{}, &MalformedOverrideError{Value: value, Reason: "target must be Type or Type.member", Pos: pos}
	}
	for _, s := range segs {
		if !isIdent(s) {
			return NameOverride{}, &MalformedOverrideError{Value: value, Reason: "target segments must be identifiers", Pos: pos}
		}
	}
	o := NameOverride{TypeName: segs[0], NewName: newName, Pos: pos}
	if len(segs) == 2 {
		o.Member = segs[1]
	}
	return o, nil
}

func (cfg *Config) applyClient(item, name, ref string, pos Position) error {
	if !isIdent(name) {
		return &MalformedClientSpecError{Spec: item, Reason: "accessor name must be an identifier", Pos: pos}
	}
	for _, c := range cfg.Clients {
		if c.Name == name {
			return &MalformedClientSpecError{Spec: item, Reason: "duplicate accessor name " + strconv.Quote(name), Pos: pos}
		}
	}
	tr, ok := parseTypeRef(ref)
	if !ok {
		return &MalformedClientSpecError{Spec: item, Reason: "client type must be import/path.Type", Pos: pos}
	}
	cfg.Clients = append(cfg.Clients, ClientSpec{Name: name, Type: tr, Pos: pos})
	return nil
}

// splitClientDecl recognizes `name() -> ref` items.
func splitClientDecl(item string) (name, ref string, ok bool) {
	left, right, found := strings.Cut(item, "->")
	if !found {
		return "", "", false
	}
	left = strings.TrimSpace(left)
	if !strings.HasSuffix(left, "()") {
		return "", "", false
	}
	return strings.TrimSpace(strings.TrimSuffix(left, "()")), strings.TrimSpace(right), true
}

// parseTypeRef splits `import/path.Type` at the dot following the last
// path segment.
func parseTypeRef(ref string) (TypeRef, bool) {
	base := ref
	slash := strings.LastIndex(ref, "/")
	if slash >= 0 {
		base = ref[slash+1:]
	}
	dot := strings.Index(base, ".")
	if dot < 0 {
		return TypeRef{}, false
	}
	tr := TypeRef{
		ImportPath: ref[:len(ref)-len(base)+dot],
		Name:       base[dot+1:],
	}
	if tr.ImportPath == "" || !isIdent(tr.Name) {
		return TypeRef{}, false
	}
	return tr, true
}

type rawItem struct {
	text   string
	offset int
}

// splitItems splits the directive on top-level commas, keeping commas
// nested in brackets (e.g. map[string]int inside an override) intact,
// and records each item's byte offset.
func splitItems(input string) []rawItem {
	var items []rawItem
	depth := 0
	start := 0
	flush := func(end int) {
		text := strings.TrimSpace(input[start:end])
		offset := start + (len(input[start:end]) - len(strings.TrimLeft(input[start:end], " \t\n")))
		if text != "" || len(items) == 0 {
			items = append(items, rawItem{text: text, offset: offset})
		}
	}
	for i, r := range input {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(input))
	return items
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
