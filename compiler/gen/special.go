package gen

import "fmt"

// SpecialCase is an exception to the generic naming convention, matched by
// the exact raw name and the kind of list it was read from.
type SpecialCase struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	// LookupPrefix replaces the lookup key prefix of the kind.
	LookupPrefix string `yaml:"lookup_prefix,omitempty"`
	// Init replaces the constructor expression of the kind.
	Init InitStyle `yaml:"init,omitempty"`
	// Inject moves the entry into the injected namespace.
	Inject bool `yaml:"inject,omitempty"`
	// Ensure emits the entry even when the list does not carry it.
	Ensure bool `yaml:"ensure,omitempty"`
	// Reason documents the exception in generated Go bindings and logs.
	Reason string `yaml:"reason,omitempty"`
}

// Apply rewrites e according to the exception.
func (sc SpecialCase) Apply(e *NameEntry) {
	if sc.LookupPrefix != "" {
		e.LookupKey = LookupKey(sc.LookupPrefix, e.Raw)
	}
	if sc.Init != InitDefault {
		e.Init = sc.Init
	}
	if sc.Inject {
		e.Injected = true
	}
	e.Reason = sc.Reason
}

func (sc SpecialCase) validate() error {
	switch {
	case sc.Name == "":
		return NewConfigError("SpecialCases", nil, "special case without a name")
	case sc.Kind < KindTag || sc.Kind > KindLinkingAttribute:
		return NewConfigError("SpecialCases", sc.Name, fmt.Sprintf("unsupported kind %v", sc.Kind))
	case sc.Init > InitLocalName:
		return NewConfigError("SpecialCases", sc.Name, fmt.Sprintf("unsupported init style %v", sc.Init))
	}
	return nil
}

type ruleKey struct {
	kind Kind
	name string
}

// SpecialCases is an ordered exception table.
type SpecialCases []SpecialCase

// DefaultSpecialCases is the built-in exception table.
var DefaultSpecialCases = SpecialCases{
	{
		Name:         "text",
		Kind:         KindTag,
		LookupPrefix: AttrPrefix,
		Init:         InitLocalName,
		Reason:       "the element id of text is not exported by the enumeration",
	},
	{
		Name:   "class",
		Kind:   KindAttribute,
		Inject: true,
		Ensure: true,
		Reason: "class is shared with the HTML names",
	},
}

// Lookup returns the first rule matching raw read from a list of kind k.
func (t SpecialCases) Lookup(k Kind, raw string) (SpecialCase, bool) {
	for _, sc := range t {
		if sc.Kind == k && sc.Name == raw {
			return sc, true
		}
	}
	return SpecialCase{}, false
}

// Merge returns t followed by the rules of other. A rule of other replaces a
// rule of t with the same kind and name in place.
func (t SpecialCases) Merge(other SpecialCases) SpecialCases {
	out := make(SpecialCases, len(t), len(t)+len(other))
	copy(out, t)
	index := make(map[ruleKey]int, len(out))
	for i, sc := range out {
		index[ruleKey{sc.Kind, sc.Name}] = i
	}
	for _, sc := range other {
		k := ruleKey{sc.Kind, sc.Name}
		if i, ok := index[k]; ok {
			out[i] = sc
			continue
		}
		index[k] = len(out)
		out = append(out, sc)
	}
	return out
}

// Validate checks every rule of t.
func (t SpecialCases) Validate() error {
	for _, sc := range t {
		if err := sc.validate(); err != nil {
			return err
		}
	}
	return nil
}
