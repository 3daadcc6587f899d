package gen

import (
	"fmt"
	"path"
	"strings"

	"github.com/dfeyer/lambda-appsync/internal/directive"
)

// renderRuntime emits the Lambda entrypoint: client accessor
// singletons, hook wiring and main. It references the router declared
// in the operations file.
func renderRuntime(pkg string, cfg *directive.Config) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	imps := map[string]string{
		"log":       "",
		"os":        "",
		runtimePkg:  "",
	}
	aliases := clientAliases(cfg.Clients, imps)
	if len(cfg.Clients) > 0 {
		imps["github.com/aws/aws-sdk-go-v2/aws"] = ""
	}
	b.WriteString(importBlock(imps))

	for _, c := range cfg.Clients {
		qualified := aliases[c.Type.ImportPath] + "." + c.Type.Name
		fmt.Fprintf(&b, "// %s returns the process-wide %s, built lazily against the\n", c.Name, c.Type.Name)
		b.WriteString("// shared AWS configuration on first use.\n")
		fmt.Fprintf(&b, "var %s = appsync.Client(func(cfg aws.Config) *%s {\n", c.Name, qualified)
		fmt.Fprintf(&b, "\treturn %s.NewFromConfig(cfg)\n", aliases[c.Type.ImportPath])
		b.WriteString("})\n\n")
	}

	b.WriteString("func main() {\n")
	if cfg.Flags.Hook != "" {
		fmt.Fprintf(&b, "\trouter.SetHook(%s)\n\n", cfg.Flags.Hook)
	}
	b.WriteString("\topts := []appsync.ServeOption{\n")
	fmt.Fprintf(&b, "\t\tappsync.WithBatch(%v),\n", cfg.Flags.Batch)
	b.WriteString("\t\tappsync.WithTracing(os.Getenv(\"OTEL_EXPORTER_OTLP_ENDPOINT\"), os.Getenv(\"AWS_LAMBDA_FUNCTION_NAME\")),\n")
	b.WriteString("\t}\n")
	if len(cfg.Clients) > 0 {
		b.WriteString("\topts = append(opts, appsync.WithSDKConfig())\n")
	}
	b.WriteString("\tif err := appsync.Serve(router, opts...); err != nil {\n")
	b.WriteString("\t\tlog.Fatal(err)\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	return b.String()
}

// clientAliases assigns a stable import alias per client package and
// records the imports. Aliases end in "sdk" so accessor names stay
// free for the generated singletons.
func clientAliases(clients []directive.ClientSpec, imps map[string]string) map[string]string {
	aliases := map[string]string{}
	taken := map[string]bool{}
	for _, c := range clients {
		if _, ok := aliases[c.Type.ImportPath]; ok {
			continue
		}
		alias := path.Base(c.Type.ImportPath) + "sdk"
		for i := 2; taken[alias]; i++ {
			alias = fmt.Sprintf("%s%dsdk", path.Base(c.Type.ImportPath), i)
		}
		taken[alias] = true
		aliases[c.Type.ImportPath] = alias
		imps[c.Type.ImportPath] = alias
	}
	return aliases
}
