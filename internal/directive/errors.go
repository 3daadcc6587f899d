package directive

import "fmt"

// Position locates a parsed item inside the directive string: the
// item's ordinal (0 is the schema path) and its byte offset in the
// input. Errors carry it so diagnostics can point back at the exact
// argument that failed.
type Position struct {
	Arg    int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("argument %d (offset %d)", p.Arg, p.Offset)
}

// UnknownOptionError reports an `ident = value` item whose key is not
// a recognized option.
type UnknownOptionError struct {
	Key string
	Pos Position
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s: unknown option %q", e.Pos, e.Key)
}

// UnknownArgumentError reports an item that is neither an option
// assignment nor a client declaration.
type UnknownArgumentError struct {
	Text string
	Pos  Position
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("%s: unrecognized argument %q", e.Pos, e.Text)
}

// OptionValueError reports a recognized option with a value of the
// wrong shape.
type OptionValueError struct {
	Key   string
	Value string
	Want  string
	Pos   Position
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("%s: option %q wants %s, got %q", e.Pos, e.Key, e.Want, e.Value)
}

// MalformedOverrideError reports a type_override or name_override
// value that does not follow the override grammar.
type MalformedOverrideError struct {
	Value  string
	Reason string
	Pos    Position
}

func (e *MalformedOverrideError) Error() string {
	return fmt.Sprintf("%s: malformed override %q: %s", e.Pos, e.Value, e.Reason)
}

// MalformedClientSpecError reports a client declaration that does not
// follow `name() -> import/path.Type`, or reuses an accessor name.
type MalformedClientSpecError struct {
	Spec   string
	Reason string
	Pos    Position
}

func (e *MalformedClientSpecError) Error() string {
	return fmt.Sprintf("%s: malformed client declaration %q: %s", e.Pos, e.Spec, e.Reason)
}
