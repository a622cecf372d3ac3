package gen

import "fmt"

// Kind classifies the list a name was read from.
type Kind uint8

const (
	// KindTag is an element name.
	KindTag Kind = iota + 1
	// KindAttribute is a generic attribute name.
	KindAttribute
	// KindLinkingAttribute is an attribute of the linking vocabulary.
	KindLinkingAttribute
)

var kindNames = [...]string{
	KindTag:              "tag",
	KindAttribute:        "attr",
	KindLinkingAttribute: "xlink",
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name != "" && name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q; use tag, attr, or xlink", text)
}

// Prefix returns the lookup key prefix used for names of kind k.
func (k Kind) Prefix() string {
	switch k {
	case KindTag:
		return TagPrefix
	case KindLinkingAttribute:
		return XLinkPrefix
	default:
		return AttrPrefix
	}
}

// Suffix returns the symbol suffix of generated names of kind k.
func (k Kind) Suffix() string {
	if k == KindTag {
		return "Tag"
	}
	return "Attr"
}

// InitStyle selects the constructor expression of a name.
type InitStyle uint8

const (
	// InitDefault picks the style from the entry kind.
	InitDefault InitStyle = iota
	// InitElement builds the id with makeId in the element namespace.
	InitElement
	// InitAttribute uses the lookup key as is.
	InitAttribute
	// InitLocalName builds an element id from the local name part of the key.
	InitLocalName
)

var initNames = [...]string{
	InitDefault:   "default",
	InitElement:   "element",
	InitAttribute: "attribute",
	InitLocalName: "local-name",
}

// String returns the configuration name of s.
func (s InitStyle) String() string {
	if int(s) < len(initNames) {
		return initNames[s]
	}
	return fmt.Sprintf("InitStyle(%d)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s InitStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *InitStyle) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = InitDefault
		return nil
	}
	for i, name := range initNames {
		if name == string(text) {
			*s = InitStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown init style %q; use element, attribute, or local-name", text)
}

func (k Kind) initStyle() InitStyle {
	if k == KindTag {
		return InitElement
	}
	return InitAttribute
}

// NameEntry is a single resolved name.
type NameEntry struct {
	Raw       string
	Symbol    string
	Kind      Kind
	LookupKey string
	Init      InitStyle
	// Injected is set when a special case moved the entry out of the
	// namespace of its list.
	Injected bool
	// Reason is the documented reason of the special case applied, if any.
	Reason string
}

// Ident returns the generated C++ identifier, e.g. "pathTag".
func (e *NameEntry) Ident() string {
	return e.Symbol + e.Kind.Suffix()
}

// NewEntry builds the default entry for raw read from a list of kind k.
func NewEntry(k Kind, raw string) *NameEntry {
	return &NameEntry{
		Raw:       raw,
		Symbol:    Symbol(raw),
		Kind:      k,
		LookupKey: LookupKey(k.Prefix(), raw),
		Init:      k.initStyle(),
	}
}

// Namespace is an ordered group of entries emitted into one C++ namespace.
type Namespace struct {
	Name    string
	Entries []*NameEntry
}

// Idents returns the generated identifiers of ns in order.
func (ns Namespace) Idents() []string {
	ids := make([]string, len(ns.Entries))
	for i, e := range ns.Entries {
		ids[i] = e.Ident()
	}
	return ids
}

// Names holds every resolved namespace of a run.
type Names struct {
	Tags     Namespace
	Attrs    Namespace
	Injected Namespace
	XLink    Namespace
}

// All returns the namespaces in initialization order.
func (n *Names) All() []Namespace {
	return []Namespace{n.Tags, n.Attrs, n.Injected, n.XLink}
}

// Lists are the raw name lists of a run.
type Lists struct {
	Tags  []string
	Attrs []string
	XLink []string
}

// Resolve classifies the lists into namespaces, applying the special cases.
// Entry order within each namespace follows list order. An injected name is
// kept at its first occurrence only. Rules marked Ensure whose name was not
// read are appended to their namespace after the others.
func Resolve(l Lists, layout Layout, table SpecialCases) *Names {
	n := &Names{
		Tags:     Namespace{Name: layout.Namespace},
		Attrs:    Namespace{Name: layout.Namespace},
		Injected: Namespace{Name: layout.InjectedNamespace},
		XLink:    Namespace{Name: layout.XLinkNamespace},
	}
	seen := make(map[ruleKey]bool)
	add := func(k Kind, raw string, home *Namespace) {
		e := NewEntry(k, raw)
		key := ruleKey{k, raw}
		if sc, ok := table.Lookup(k, raw); ok {
			if sc.Inject && seen[key] {
				// An injected name is defined once in a namespace the
				// lists do not own.
				return
			}
			seen[key] = true
			sc.Apply(e)
		}
		if e.Injected {
			n.Injected.Entries = append(n.Injected.Entries, e)
			return
		}
		home.Entries = append(home.Entries, e)
	}
	for _, raw := range l.Tags {
		add(KindTag, raw, &n.Tags)
	}
	for _, raw := range l.Attrs {
		add(KindAttribute, raw, &n.Attrs)
	}
	for _, raw := range l.XLink {
		add(KindLinkingAttribute, raw, &n.XLink)
	}
	for _, sc := range table {
		if !sc.Ensure || seen[ruleKey{sc.Kind, sc.Name}] {
			continue
		}
		seen[ruleKey{sc.Kind, sc.Name}] = true
		e := NewEntry(sc.Kind, sc.Name)
		sc.Apply(e)
		dst := &n.Injected
		if !e.Injected {
			dst = n.home(sc.Kind)
		}
		dst.Entries = append(dst.Entries, e)
	}
	return n
}

func (n *Names) home(k Kind) *Namespace {
	switch k {
	case KindTag:
		return &n.Tags
	case KindLinkingAttribute:
		return &n.XLink
	default:
		return &n.Attrs
	}
}

// Count returns the number of entries across all namespaces.
func (n *Names) Count() int {
	c := 0
	for _, ns := range n.All() {
		c += len(ns.Entries)
	}
	return c
}

// Find returns the entries whose raw name is raw, in initialization order.
func (n *Names) Find(raw string) []*NameEntry {
	var out []*NameEntry
	for _, ns := range n.All() {
		for _, e := range ns.Entries {
			if e.Raw == raw {
				out = append(out, e)
			}
		}
	}
	return out
}
