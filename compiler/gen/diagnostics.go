package gen

import (
	"fmt"
	"strings"
)

// DiagnosticCode classifies a Diagnostic.
type DiagnosticCode string

const (
	// CodeCollision reports distinct names sharing a generated identifier.
	CodeCollision DiagnosticCode = "collision"
	// CodeDuplicate reports a name listed more than once in a namespace.
	CodeDuplicate DiagnosticCode = "duplicate"
	// CodeMalformed reports a name that does not form a valid identifier.
	CodeMalformed DiagnosticCode = "malformed"
)

// Diagnostic is a finding about the name lists. Diagnostics never change the
// generated artifacts.
type Diagnostic struct {
	Code      DiagnosticCode
	Namespace string
	Ident     string
	Names     []string
	Message   string
}

// String returns a one-line description of d.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s::%s: %s", d.Code, d.Namespace, d.Ident, d.Message)
}

// Check inspects every namespace of n. Results follow initialization order.
func Check(n *Names) []Diagnostic {
	var diags []Diagnostic
	for _, ns := range n.All() {
		diags = append(diags, checkNamespace(ns)...)
	}
	return diags
}

func checkNamespace(ns Namespace) []Diagnostic {
	var (
		diags  []Diagnostic
		order  []string
		byID   = make(map[string][]string)
		counts = make(map[string]int)
	)
	for _, e := range ns.Entries {
		if msg := malformed(e.Raw); msg != "" {
			diags = append(diags, Diagnostic{
				Code:      CodeMalformed,
				Namespace: ns.Name,
				Ident:     e.Ident(),
				Names:     []string{e.Raw},
				Message:   fmt.Sprintf("name %q %s", e.Raw, msg),
			})
		}
		id := e.Ident()
		if _, ok := byID[id]; !ok {
			order = append(order, id)
		}
		key := id + "\x00" + e.Raw
		if counts[key]++; counts[key] == 1 {
			byID[id] = append(byID[id], e.Raw)
		}
	}
	for _, id := range order {
		raws := byID[id]
		if len(raws) > 1 {
			diags = append(diags, Diagnostic{
				Code:      CodeCollision,
				Namespace: ns.Name,
				Ident:     id,
				Names:     raws,
				Message:   fmt.Sprintf("names %s share the identifier", quoteAll(raws)),
			})
		}
		for _, raw := range raws {
			if c := counts[id+"\x00"+raw]; c > 1 {
				diags = append(diags, Diagnostic{
					Code:      CodeDuplicate,
					Namespace: ns.Name,
					Ident:     id,
					Names:     []string{raw},
					Message:   fmt.Sprintf("name %q is listed %d times", raw, c),
				})
			}
		}
	}
	return diags
}

// malformed describes why raw cannot form an identifier, or returns "".
func malformed(raw string) string {
	if raw == "" {
		return "is empty"
	}
	if raw[0] >= '0' && raw[0] <= '9' {
		return "starts with a digit"
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Sprintf("contains %q", r)
		}
	}
	return ""
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(q, ", ")
}
