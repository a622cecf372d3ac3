package gen

import "fmt"

// Runtime names referenced by the generated code.
const (
	qualifiedName = "DOM::QualifiedName"
	emptyPrefix   = "DOM::emptyPrefixName"
	makeID        = "DOM::makeId"
	localNamePart = "DOM::localNamePart"
)

// Fragments are the three positionally aligned outputs of one namespace:
// entry i of Decls, Defs and Inits refers to the same NameEntry.
type Fragments struct {
	Decls []string
	Defs  []string
	Inits []string
}

// Len returns the number of entries in f.
func (f Fragments) Len() int {
	return len(f.Decls)
}

// Append concatenates other after f.
func (f Fragments) Append(other Fragments) Fragments {
	return Fragments{
		Decls: append(f.Decls[:len(f.Decls):len(f.Decls)], other.Decls...),
		Defs:  append(f.Defs[:len(f.Defs):len(f.Defs)], other.Defs...),
		Inits: append(f.Inits[:len(f.Inits):len(f.Inits)], other.Inits...),
	}
}

// Emitter renders namespaces for a layout.
type Emitter struct {
	layout Layout
}

// NewEmitter returns an Emitter for l.
func NewEmitter(l Layout) *Emitter {
	return &Emitter{layout: l}
}

// Emit renders the declarations, definitions and initializer statements of
// ns, in entry order.
func (em *Emitter) Emit(ns Namespace) Fragments {
	qualify := em.layout.Qualifier(ns.Name)
	f := Fragments{
		Decls: make([]string, 0, len(ns.Entries)),
		Defs:  make([]string, 0, len(ns.Entries)),
		Inits: make([]string, 0, len(ns.Entries)),
	}
	for _, e := range ns.Entries {
		id := e.Ident()
		f.Decls = append(f.Decls, fmt.Sprintf("extern %s %s;", qualifiedName, id))
		f.Defs = append(f.Defs, fmt.Sprintf("%s %s;", qualifiedName, id))
		f.Inits = append(f.Inits, fmt.Sprintf("%s%s = %s;", qualify, id, em.Ctor(e)))
	}
	return f
}

// Ctor returns the constructor expression of e.
func (em *Emitter) Ctor(e *NameEntry) string {
	var id string
	switch e.Init {
	case InitElement:
		id = fmt.Sprintf("%s(%s, %s)", makeID, em.layout.ElementNamespace, e.LookupKey)
	case InitLocalName:
		id = fmt.Sprintf("%s(%s, %s(%s))", makeID, em.layout.ElementNamespace, localNamePart, e.LookupKey)
	default:
		id = e.LookupKey
	}
	return fmt.Sprintf("%s(%s, %s)", qualifiedName, id, emptyPrefix)
}
