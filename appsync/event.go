package appsync

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// OperationKind is the GraphQL root type an operation belongs to.
type OperationKind string

const (
	Query        OperationKind = "Query"
	Mutation     OperationKind = "Mutation"
	Subscription OperationKind = "Subscription"
)

// EventInfo carries the GraphQL resolution context of an event.
type EventInfo struct {
	ParentTypeName      string         `json:"parentTypeName"`
	FieldName           string         `json:"fieldName"`
	SelectionSetGraphQL string         `json:"selectionSetGraphQL"`
	SelectionSetList    []string       `json:"selectionSetList"`
	Variables           map[string]any `json:"variables"`
}

// Event is one AppSync Direct Lambda resolver invocation payload.
type Event struct {
	Identity  Identity        `json:"identity"`
	Request   json.RawMessage `json:"request,omitempty"`
	Source    json.RawMessage `json:"source,omitempty"`
	Info      EventInfo       `json:"info"`
	Arguments json.RawMessage `json:"arguments"`
	Stash     map[string]any  `json:"stash,omitempty"`
}

// Operation returns the (kind, field) pair identifying the resolver
// this event targets. The kind falls back to Query when the parent
// type name is not one of the root operation types.
func (e *Event) Operation() (OperationKind, string) {
	switch OperationKind(e.Info.ParentTypeName) {
	case Mutation:
		return Mutation, e.Info.FieldName
	case Subscription:
		return Subscription, e.Info.FieldName
	}
	return Query, e.Info.FieldName
}

var jsonNull = []byte("null")

// Arg decodes the named resolver argument from the event into T. A
// missing argument is treated as JSON null, which is only valid for
// nilable target types (pointers, slices, maps); anything else yields
// an InvalidArgs error naming the argument, as does any decode
// failure.
func Arg[T any](e *Event, name string) (T, *Error) {
	var out T
	var args map[string]json.RawMessage
	if len(e.Arguments) > 0 && !bytes.Equal(bytes.TrimSpace(e.Arguments), jsonNull) {
		if err := json.Unmarshal(e.Arguments, &args); err != nil {
			return out, invalidArg(name, err)
		}
	}
	raw, ok := args[name]
	if !ok {
		raw = jsonNull
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		if nilable(reflect.TypeOf(&out).Elem()) {
			return out, nil
		}
		return out, invalidArg(name, errors.New("value is null or missing"))
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, invalidArg(name, err)
	}
	return out, nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
