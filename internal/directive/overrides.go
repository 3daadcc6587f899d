package directive

// TypeOverride replaces the generated Go type of one slot: a field's
// own type, or one argument of a field.
type TypeOverride struct {
	TypeName  string // schema type, or Query/Mutation/Subscription
	FieldName string
	ArgName   string // empty for a field-level override
	GoType    string // replacement Go type expression, verbatim
	Pos       Position
}

// FieldOverrides collects the overrides attached to one field. The
// field-level slot and the per-argument slots are independent: setting
// one never disturbs the other.
type FieldOverrides struct {
	Field *TypeOverride
	Args  map[string]TypeOverride
}

// TypeOverrideMap indexes type overrides by type name, then field
// name. Within a slot the last directive item wins.
type TypeOverrideMap map[string]map[string]*FieldOverrides

func (m TypeOverrideMap) put(o TypeOverride) {
	fields := m[o.TypeName]
	if fields == nil {
		fields = map[string]*FieldOverrides{}
		m[o.TypeName] = fields
	}
	fo := fields[o.FieldName]
	if fo == nil {
		fo = &FieldOverrides{}
		fields[o.FieldName] = fo
	}
	if o.ArgName == "" {
		fo.Field = &o
		return
	}
	if fo.Args == nil {
		fo.Args = map[string]TypeOverride{}
	}
	fo.Args[o.ArgName] = o
}

// Field returns the replacement Go type for a field, if overridden.
func (m TypeOverrideMap) Field(typeName, fieldName string) (string, bool) {
	if fo := m.lookup(typeName, fieldName); fo != nil && fo.Field != nil {
		return fo.Field.GoType, true
	}
	return "", false
}

// Arg returns the replacement Go type for a field argument, if
// overridden.
func (m TypeOverrideMap) Arg(typeName, fieldName, argName string) (string, bool) {
	if fo := m.lookup(typeName, fieldName); fo != nil {
		if o, ok := fo.Args[argName]; ok {
			return o.GoType, true
		}
	}
	return "", false
}

func (m TypeOverrideMap) lookup(typeName, fieldName string) *FieldOverrides {
	if fields, ok := m[typeName]; ok {
		return fields[fieldName]
	}
	return nil
}

// NameOverride renames one generated identifier: a type, or a
// field/enum variant within a type. The schema (wire) name is never
// affected.
type NameOverride struct {
	TypeName string
	Member   string // field or enum variant; empty for a type rename
	NewName  string
	Pos      Position
}

// NameOverrides collects the renames attached to one type. The type
// slot and the member slots are independent.
type NameOverrides struct {
	Type    *NameOverride
	Members map[string]NameOverride
}

// NameOverrideMap indexes renames by type name. Within a slot the last
// directive item wins.
type NameOverrideMap map[string]*NameOverrides

func (m NameOverrideMap) put(o NameOverride) {
	no := m[o.TypeName]
	if no == nil {
		no = &NameOverrides{}
		m[o.TypeName] = no
	}
	if o.Member == "" {
		no.Type = &o
		return
	}
	if no.Members == nil {
		no.Members = map[string]NameOverride{}
	}
	no.Members[o.Member] = o
}

// TypeName returns the replacement Go name for a type, if renamed.
func (m NameOverrideMap) TypeName(name string) (string, bool) {
	if no, ok := m[name]; ok && no.Type != nil {
		return no.Type.NewName, true
	}
	return "", false
}

// Member returns the replacement Go name for a field or enum variant,
// if renamed.
func (m NameOverrideMap) Member(typeName, member string) (string, bool) {
	if no, ok := m[typeName]; ok {
		if o, ok := no.Members[member]; ok {
			return o.NewName, true
		}
	}
	return "", false
}
