package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// GoVarName returns the Go variable naming e in the bindings of namespace ns,
// e.g. "XLinkHrefAttr" for hrefAttr of XLinkNames.
func GoVarName(ns string, e *NameEntry) string {
	short := strings.TrimSuffix(ns, "Names")
	if short == "" {
		short = ns
	}
	return short + GoName(e.Raw) + e.Kind.Suffix()
}

// goBindHeader marks files written by GoBindings.
const goBindHeader = "Code generated by namegen. DO NOT EDIT."

// goBinding is an entry with its Go variable name.
type goBinding struct {
	name string
	ns   string
	e    *NameEntry
}

func (b goBinding) String() string {
	return b.ns + "::" + b.e.Ident()
}

func goBindings(n *Names) []goBinding {
	var bs []goBinding
	for _, ns := range n.All() {
		for _, e := range ns.Entries {
			bs = append(bs, goBinding{name: GoVarName(ns.Name, e), ns: ns.Name, e: e})
		}
	}
	return bs
}

// CheckGoNames reports distinct C++ names that would be bound to the same Go
// variable, e.g. stroke_widthAttr and strokeWidthAttr.
func CheckGoNames(n *Names) []Diagnostic {
	var (
		diags []Diagnostic
		order []string
		byVar = make(map[string][]goBinding)
	)
	for _, b := range goBindings(n) {
		if _, ok := byVar[b.name]; !ok {
			order = append(order, b.name)
		}
		byVar[b.name] = append(byVar[b.name], b)
	}
	for _, v := range order {
		var (
			raws   []string
			idents = make(map[string]bool)
		)
		for _, b := range byVar[v] {
			if !idents[b.String()] {
				idents[b.String()] = true
				raws = append(raws, b.e.Raw)
			}
		}
		if len(raws) < 2 {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:      CodeCollision,
			Namespace: byVar[v][0].ns,
			Ident:     v,
			Names:     raws,
			Message:   fmt.Sprintf("names %s share the Go name %s", quoteAll(raws), v),
		})
	}
	return diags
}

// GoBindings renders the Go table of every name of n. It fails when two
// entries map to the same Go variable.
func GoBindings(pkg, file string, n *Names) (Artifact, error) {
	bindings := goBindings(n)
	bound := make(map[string]goBinding, len(bindings))
	for _, b := range bindings {
		if prev, ok := bound[b.name]; ok {
			return Artifact{}, NewGenerationError("render", file,
				fmt.Sprintf("go name %s is bound to both %s and %s", b.name, prev, b), nil)
		}
		bound[b.name] = b
	}

	f := jen.NewFile(pkg)
	f.HeaderComment(goBindHeader)

	f.Comment("Name describes a generated qualified name.")
	f.Type().Id("Name").Struct(
		jen.Id("Raw").String().Comment("name as listed"),
		jen.Id("Ident").String().Comment("C++ identifier"),
		jen.Id("Namespace").String().Comment("C++ namespace"),
		jen.Id("LookupKey").String().Comment("enumeration constant"),
	)

	var vars []string
	f.Comment("Generated names, in initialization order.")
	f.Var().DefsFunc(func(g *jen.Group) {
		for _, b := range bindings {
			e := b.e
			vars = append(vars, b.name)
			if e.Reason != "" {
				g.Comment(b.name + ": " + e.Reason + ".")
			}
			g.Id(b.name).Op("=").Id("Name").Values(jen.Dict{
				jen.Id("Raw"):       jen.Lit(e.Raw),
				jen.Id("Ident"):     jen.Lit(e.Ident()),
				jen.Id("Namespace"): jen.Lit(b.ns),
				jen.Id("LookupKey"): jen.Lit(e.LookupKey),
			})
		}
	})

	f.Comment("All lists every generated name in initialization order.")
	f.Var().Id("All").Op("=").Index().Id("Name").ValuesFunc(func(g *jen.Group) {
		for _, v := range vars {
			g.Id(v)
		}
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return Artifact{}, NewGenerationError("render", file, "render go bindings", err)
	}
	out, err := imports.Process(file, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return Artifact{}, NewGenerationError("format", file, "format go bindings", err)
	}
	return Artifact{Path: file, Text: out}, nil
}
