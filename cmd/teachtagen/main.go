// Command teachtagen emits Go source that installs the delegations
// declared in a TOML manifest, for projects that prefer generated
// registration code over loading the manifest at run time.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	teachta "github.com/toutaio/toutago-teachta-method-delegator"
)

var fileTemplate = template.Must(template.New("delegators").Parse(
	`// Code generated by teachtagen from {{.Manifest}}. DO NOT EDIT.

package {{.Package}}

import (
	teachta "github.com/toutaio/toutago-teachta-method-delegator"
)

// {{.Func}} installs the delegations declared in {{.Manifest}}.
func {{.Func}}(d teachta.Delegator) error {
{{- range .Calls}}
	{{.}}
{{- end}}
	return nil
}
`))

type templateData struct {
	Manifest string
	Package  string
	Func     string
	Calls    []string
}

func registrationCalls(m *teachta.Manifest) []string {
	calls := make([]string, 0, len(m.Delegators))
	for _, entry := range m.Delegators {
		switch {
		case entry.Method != "" && entry.Alias != "":
			calls = append(calls, fmt.Sprintf(
				"if _, err := d.DefineDelegator(%q, %q, %q); err != nil {\n\t\treturn err\n\t}",
				entry.Accessor, entry.Method, entry.Alias))
		case entry.Method != "":
			calls = append(calls, fmt.Sprintf(
				"if _, err := d.DefineDelegator(%q, %q); err != nil {\n\t\treturn err\n\t}",
				entry.Accessor, entry.Method))
		default:
			quoted := make([]string, 0, len(entry.Methods))
			for _, method := range entry.Methods {
				quoted = append(quoted, fmt.Sprintf("%q", method))
			}
			calls = append(calls, fmt.Sprintf(
				"if err := d.DefineDelegators(%q, %s); err != nil {\n\t\treturn err\n\t}",
				entry.Accessor, strings.Join(quoted, ", ")))
		}
	}
	return calls
}

func main() {
	manifest := flag.String("manifest", "", "path to the delegation manifest (TOML)")
	pkg := flag.String("package", "main", "package name for the generated file")
	fn := flag.String("func", "RegisterDelegators", "name of the generated registration function")
	output := flag.String("output", "", "output path for generated source (defaults to stdout)")
	flag.Parse()

	if *manifest == "" {
		log.Fatal("teachtagen: -manifest is required")
	}

	m, err := teachta.LoadManifest(*manifest)
	if err != nil {
		log.Fatal(err)
	}

	data := templateData{
		Manifest: *manifest,
		Package:  *pkg,
		Func:     *fn,
		Calls:    registrationCalls(m),
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		log.Fatal(err)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote delegation registrations to %s", *output)
}
