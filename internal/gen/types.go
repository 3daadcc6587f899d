package gen

import (
	"fmt"
	"strings"

	"github.com/dfeyer/lambda-appsync/internal/model"
)

// renderTypes emits struct declarations for object and input types and
// string-backed constants for enums. Every field keeps its schema name
// in the JSON tag, so renames and type overrides never leak onto the
// wire.
func renderTypes(pkg string, decls *model.Declarations) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	imps := map[string]string{}
	if usesAppsync(decls) {
		imps[runtimePkg] = ""
	}
	if usesRawJSON(decls) {
		imps["encoding/json"] = ""
	}
	b.WriteString(importBlock(imps))

	for _, td := range decls.Types {
		docComment(&b, td.Doc, "")
		fmt.Fprintf(&b, "type %s struct {\n", td.GoName)
		for _, f := range td.Fields {
			docComment(&b, f.Doc, "\t")
			tag := f.Name
			if strings.HasPrefix(f.GoType, "*") || strings.HasPrefix(f.GoType, "[]") {
				tag += ",omitempty"
			}
			fmt.Fprintf(&b, "\t%s %s `json:%q`\n", f.GoName, f.GoType, tag)
		}
		b.WriteString("}\n\n")
	}

	for _, ed := range decls.Enums {
		docComment(&b, ed.Doc, "")
		fmt.Fprintf(&b, "type %s string\n\n", ed.GoName)
		b.WriteString("const (\n")
		for _, v := range ed.Values {
			docComment(&b, v.Doc, "\t")
			fmt.Fprintf(&b, "\t%s%s %s = %q\n", ed.GoName, v.GoName, ed.GoName, v.Name)
		}
		b.WriteString(")\n\n")

		fmt.Fprintf(&b, "// %sValues lists every declared %s value, in schema order.\n", ed.GoName, ed.GoName)
		fmt.Fprintf(&b, "func %sValues() []%s {\n", ed.GoName, ed.GoName)
		fmt.Fprintf(&b, "\treturn []%s{", ed.GoName)
		for i, v := range ed.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s%s", ed.GoName, v.GoName)
		}
		b.WriteString("}\n}\n\n")
	}

	return b.String()
}
