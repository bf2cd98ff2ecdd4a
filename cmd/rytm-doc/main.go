// Command rytm-doc prints a markdown reference of the message protocol:
// object classes and the identifier table of every object kind.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/version"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed reference.md.tmpl
var referenceTemplate string

type (
	reference struct {
		Version       string
		Classes       []command.Class
		PlockKeywords []string
		Lockable      []string
		Kinds         []kind
	}

	kind struct {
		Kind        command.ObjectKind
		Identifiers []command.Identifier
	}
)

func main() {
	outPath := flag.String("o", "", "write the reference to `file` instead of standard output")
	flag.Parse()
	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := render(out); err != nil {
		log.Fatal(err)
	}
}

func render(w io.Writer) error {
	caser := cases.Title(language.English)
	funcs := sprig.TxtFuncMap()
	funcs["title"] = caser.String
	funcs["value"] = value
	tmpl, err := template.New("reference").Funcs(funcs).Parse(referenceTemplate)
	if err != nil {
		return fmt.Errorf("parsing reference template: %w", err)
	}
	ref := reference{
		Version:       version.String(),
		Classes:       command.Classes(),
		PlockKeywords: []string{command.PlockSet, command.PlockGet, command.PlockClear},
		Lockable:      command.PlockIdentifiers(),
	}
	for _, k := range command.ObjectKinds() {
		ref.Kinds = append(ref.Kinds, kind{Kind: k, Identifiers: command.Identifiers(k)})
	}
	return tmpl.Execute(w, ref)
}

// value is Identifier.Value with the variants of enumerated identifiers
// spelled out.
func value(id command.Identifier) string {
	if id.Kind != command.EnumIdentifier {
		return id.Value()
	}
	return "`" + id.Name + ":` " + strings.Join(id.Variants(), " \\| ")
}
