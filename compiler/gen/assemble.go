package gen

import (
	"bytes"
	"embed"
	"text/template"
)

var (
	//go:embed template/*.tmpl
	templateFS embed.FS
	templates  = template.Must(template.New("namegen").ParseFS(templateFS, "template/*.tmpl"))
)

// initGuard opens the init function so that repeated calls are no-ops.
var initGuard = []string{
	"static bool initialized = false;",
	"if (initialized)",
	"    return;",
	"initialized = true;",
}

// Artifact is a rendered output file. Path is relative to the target directory.
type Artifact struct {
	Path string
	Text []byte
}

type block struct {
	Name  string
	Lines []string
	Owner bool
	Init  []string
}

type headerData struct {
	Guard    string
	Includes []string
	Macros   []string
	Outer    string
	Blocks   []block
}

type sourceData struct {
	Includes []string
	Outer    string
	Blocks   []block
	InitFunc string
	Guard    []string
}

// Assembler composes the namespace fragments into the final artifacts.
type Assembler struct {
	layout  Layout
	emitter *Emitter
	guarded bool
}

// NewAssembler returns an Assembler for l. When guarded is set, the init
// function returns immediately on every call after the first.
func NewAssembler(l Layout, guarded bool) *Assembler {
	return &Assembler{layout: l, emitter: NewEmitter(l), guarded: guarded}
}

// Assemble renders the header, the linking header and the implementation,
// in that order.
func (a *Assembler) Assemble(n *Names) ([]Artifact, error) {
	var (
		tags     = a.emitter.Emit(n.Tags)
		attrs    = a.emitter.Emit(n.Attrs)
		injected = a.emitter.Emit(n.Injected)
		xlink    = a.emitter.Emit(n.XLink)
		own      = tags.Append(attrs)
		l        = a.layout
	)
	header, err := a.render(l.Header, "header.tmpl", headerData{
		Guard:    l.HeaderGuard,
		Includes: l.Includes,
		Macros:   l.Macros,
		Outer:    l.Outer,
		Blocks: []block{
			{Name: l.Namespace, Lines: append([]string{"void " + l.InitFunc + "();"}, own.Decls...)},
			{Name: l.InjectedNamespace, Lines: injected.Decls},
		},
	})
	if err != nil {
		return nil, err
	}
	xheader, err := a.render(l.XLinkHeader, "header.tmpl", headerData{
		Guard:    l.XLinkGuard,
		Includes: l.Includes,
		Outer:    l.Outer,
		Blocks:   []block{{Name: l.XLinkNamespace, Lines: xlink.Decls}},
	})
	if err != nil {
		return nil, err
	}
	data := sourceData{
		Includes: l.SourceInclude,
		Outer:    l.Outer,
		InitFunc: l.InitFunc,
		Blocks: []block{
			{Name: l.InjectedNamespace, Lines: injected.Defs},
			{Name: l.XLinkNamespace, Lines: xlink.Defs},
			{Name: l.Namespace, Lines: own.Defs, Owner: true, Init: own.Append(injected).Append(xlink).Inits},
		},
	}
	if a.guarded {
		data.Guard = initGuard
	}
	source, err := a.render(l.Source, "source.tmpl", data)
	if err != nil {
		return nil, err
	}
	return []Artifact{header, xheader, source}, nil
}

func (a *Assembler) render(path, name string, data any) (Artifact, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Artifact{}, NewGenerationError("render", path, "execute template "+name, err)
	}
	return Artifact{Path: path, Text: buf.Bytes()}, nil
}
