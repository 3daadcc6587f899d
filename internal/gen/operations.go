package gen

import (
	"fmt"
	"strings"

	"github.com/dfeyer/lambda-appsync/internal/model"
)

// reservedLocals are identifiers the registration closures use
// themselves; argument parameters shadowing them get a suffix.
var reservedLocals = map[string]bool{
	"ctx": true, "event": true, "fn": true, "out": true,
	"err": true, "argErr": true, "router": true,
}

func paramName(name string) string {
	if reservedLocals[name] {
		return name + "Arg"
	}
	return name
}

// renderOperations emits the Operation enum, the package router and
// one typed registration function per operation.
func renderOperations(pkg string, decls *model.Declarations) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	imps := map[string]string{
		"context":   "",
		runtimePkg:  "",
	}
	for _, op := range decls.Operations {
		if op.Kind == "Subscription" {
			imps[subfilterPkg] = ""
		}
	}
	b.WriteString(importBlock(imps))

	if len(decls.Operations) == 0 {
		b.WriteString("// router dispatches events to the resolvers registered below.\n")
		b.WriteString("var router = appsync.NewRouter()\n")
		return b.String()
	}

	// Operation enum with its dispatch metadata.
	b.WriteString("// Operation identifies one resolvable field of the schema.\n")
	b.WriteString("type Operation int\n\n")
	b.WriteString("const (\n")
	for i, op := range decls.Operations {
		if i == 0 {
			fmt.Fprintf(&b, "\tOp%s Operation = iota\n", op.GoName)
		} else {
			fmt.Fprintf(&b, "\tOp%s\n", op.GoName)
		}
	}
	b.WriteString("\n\toperationCount\n")
	b.WriteString(")\n\n")

	b.WriteString("var operationRoutes = [operationCount]struct {\n")
	b.WriteString("\tkind  appsync.OperationKind\n")
	b.WriteString("\tfield string\n")
	b.WriteString("}{\n")
	for _, op := range decls.Operations {
		fmt.Fprintf(&b, "\t{appsync.%s, %q},\n", op.Kind, op.Field)
	}
	b.WriteString("}\n\n")

	b.WriteString("// Kind returns the root type the operation belongs to.\n")
	b.WriteString("func (op Operation) Kind() appsync.OperationKind { return operationRoutes[op].kind }\n\n")
	b.WriteString("// FieldName returns the schema field the operation resolves.\n")
	b.WriteString("func (op Operation) FieldName() string { return operationRoutes[op].field }\n\n")
	b.WriteString("func (op Operation) String() string {\n")
	b.WriteString("\treturn string(operationRoutes[op].kind) + \".\" + operationRoutes[op].field\n")
	b.WriteString("}\n\n")

	b.WriteString("// router dispatches events to the resolvers registered below.\n")
	b.WriteString("var router = appsync.NewRouter()\n\n")

	for _, op := range decls.Operations {
		renderRegistration(&b, op)
	}

	return b.String()
}

// renderRegistration emits the typed registration function for one
// operation: it decodes the declared arguments, calls the resolver and
// wraps its result or error into a response.
func renderRegistration(b *strings.Builder, op *model.OperationDecl) {
	retType := op.ReturnType
	if op.Kind == "Subscription" {
		// Subscription resolvers return the filter group scoping the
		// subscription, nil for unfiltered.
		retType = "*subfilter.FilterGroup"
	}

	params := make([]string, 0, len(op.Args)+1)
	params = append(params, "ctx context.Context")
	for _, a := range op.Args {
		params = append(params, fmt.Sprintf("%s %s", paramName(a.GoName), a.GoType))
	}

	docComment(b, op.Doc, "")
	fmt.Fprintf(b, "// Register%s binds the resolver for %s.%s.\n", op.GoName, op.Kind, op.Field)
	fmt.Fprintf(b, "func Register%s(fn func(%s) (%s, error)) {\n", op.GoName, strings.Join(params, ", "), retType)
	fmt.Fprintf(b, "\trouter.MustRegister(appsync.%s, %q, func(ctx context.Context, event *appsync.Event) appsync.Response {\n", op.Kind, op.Field)

	callArgs := []string{"ctx"}
	for _, a := range op.Args {
		name := paramName(a.GoName)
		fmt.Fprintf(b, "\t\t%s, argErr := appsync.Arg[%s](event, %q)\n", name, a.GoType, a.Name)
		b.WriteString("\t\tif argErr != nil {\n")
		b.WriteString("\t\t\treturn appsync.ErrorResponse(argErr)\n")
		b.WriteString("\t\t}\n")
		callArgs = append(callArgs, name)
	}

	fmt.Fprintf(b, "\t\tout, err := fn(%s)\n", strings.Join(callArgs, ", "))
	b.WriteString("\t\tif err != nil {\n")
	b.WriteString("\t\t\treturn appsync.ErrorResponse(appsync.ErrorFrom(err))\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\treturn appsync.DataResponse(out)\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n\n")
}
