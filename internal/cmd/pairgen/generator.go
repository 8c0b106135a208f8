package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/hupe1980/truncate/internal/kind"
)

const modulePath = "github.com/hupe1980/truncate"

type Generator struct {
	Output     string
	TestOutput string // skipped when empty
	Package    string
	Logger     *slog.Logger
}

// Function is one pair as seen by the template.
type Function struct {
	Name      string // e.g. Uint16ToUint8
	Source    string // Go type of the argument
	Zero      string // zero value expression of the argument
	Dest      string // Go type of the result
	Bits      int    // width of Dest
	Core      string // suffix selecting the conv and chop/shrink family
	TypeArg   string // explicit destination type argument, if generic
	Unchecked bool
}

func (g *Generator) Generate() error {
	pairs := kind.Pairs()

	src, err := Render(g.Package, pairs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(g.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.Output, err)
	}

	g.Logger.Info("generated truncation functions", "file", g.Output, "pairs", len(pairs))

	if g.TestOutput == "" {
		return nil
	}

	test, err := RenderTest(g.Package, pairs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(g.TestOutput, test, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.TestOutput, err)
	}

	g.Logger.Debug("generated truncation tests", "file", g.TestOutput)
	return nil
}

// Render returns the formatted source for the given pairs.
func Render(pkg string, pairs []kind.Pair) ([]byte, error) {
	return render(fileTemplate, pkg, pairs, modulePath+"/internal/conv")
}

// RenderTest returns the formatted zero round-trip test for the given pairs.
func RenderTest(pkg string, pairs []kind.Pair) ([]byte, error) {
	return render(testTemplate, pkg, pairs, "github.com/stretchr/testify/assert")
}

func render(tmpl *template.Template, pkg string, pairs []kind.Pair, imports ...string) ([]byte, error) {
	funcs := make([]Function, 0, len(pairs))
	var wideSigned, wideUnsigned bool
	for _, p := range pairs {
		fn, err := newFunction(p)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
		wideSigned = wideSigned || p.Source == kind.Int128 || p.Dest == kind.Int128
		wideUnsigned = wideUnsigned || p.Source == kind.Uint128 || p.Dest == kind.Uint128
	}
	if wideSigned {
		imports = append(imports, modulePath+"/int128")
	}
	if wideUnsigned {
		imports = append(imports, "lukechampine.com/uint128")
	}
	slices.Sort(imports)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package   string
		Imports   []string
		Functions []Function
	}{pkg, imports, funcs}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func newFunction(p kind.Pair) (Function, error) {
	if !kind.IsTruncation(p.Source, p.Dest) {
		return Function{}, fmt.Errorf("%s is not a truncation", p)
	}

	fn := Function{
		Name:      p.Name(),
		Source:    p.Source.GoType(),
		Zero:      "0",
		Dest:      p.Dest.GoType(),
		Bits:      p.Dest.Bits(),
		Unchecked: p.Unchecked(),
	}

	switch {
	case p.Source == kind.Uint128 && p.Dest == kind.Int128:
		fn.Core = "U128ToI128"
	case p.Source == kind.Int128 && p.Dest == kind.Uint128:
		fn.Core = "I128ToU128"
	case p.Source == kind.Uint128:
		fn.Core = "U128"
	case p.Source == kind.Int128:
		fn.Core = "I128"
	}
	if p.Source.Wide() {
		pkg, _, _ := strings.Cut(p.Source.GoType(), ".")
		fn.Zero = pkg + ".Zero"
	}
	if !p.Dest.Wide() {
		fn.TypeArg = "[" + p.Dest.GoType() + "]"
	}

	return fn, nil
}

var fileTemplate = template.Must(template.New("pairs").Parse(`// Code generated by pairgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Functions}}
// Try{{.Name}} converts v to {{.Dest}}, reporting false if it does not fit.
func Try{{.Name}}(v {{.Source}}) ({{.Dest}}, bool) {
	return conv.Try{{.Core}}{{.TypeArg}}(v)
}

// Chop{{.Name}} converts v to {{.Dest}} and panics with ErrOverflow if it does not fit.
func Chop{{.Name}}(v {{.Source}}) {{.Dest}} {
	return chop{{.Core}}{{.TypeArg}}(v)
}

// Shrink{{.Name}} converts v to {{.Dest}}, saturating at the bounds of {{.Dest}}.
func Shrink{{.Name}}(v {{.Source}}) {{.Dest}} {
	return shrink{{.Core}}{{.TypeArg}}(v)
}
{{- if .Unchecked}}

// Unchecked{{.Name}} returns the low {{.Bits}} bits of v as {{.Dest}}.
func Unchecked{{.Name}}(v {{.Source}}) {{.Dest}} {
	return conv.Unchecked{{.Core}}{{.TypeArg}}(v)
}
{{- end}}
{{end}}`))

var testTemplate = template.Must(template.New("pairs_test").Parse(`// Code generated by pairgen. DO NOT EDIT.

package {{.Package}}

import (
	"testing"
{{range .Imports}}
	"{{.}}"
{{- end}}
)

func TestGeneratedZeroRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T)
	}{
{{- range .Functions}}
		{"{{.Name}}", func(t *testing.T) {
			v, ok := Try{{.Name}}({{.Zero}})
			assert.True(t, ok)
			assert.Zero(t, v)
			assert.Zero(t, Chop{{.Name}}({{.Zero}}))
			assert.Zero(t, Shrink{{.Name}}({{.Zero}}))
{{- if .Unchecked}}
			assert.Zero(t, Unchecked{{.Name}}({{.Zero}}))
{{- end}}
		}},
{{- end}}
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.fn)
	}
}
`))
