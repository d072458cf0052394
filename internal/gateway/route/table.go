// Package route holds the gateway's prefix routing table.
package route

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Binding maps a path prefix to an upstream base URL.
type Binding struct {
	// Name identifies the upstream service (e.g. "auth").
	Name string
	// Prefix is the inbound path prefix, no trailing slash (e.g. "/api/auth").
	Prefix string
	// Upstream is the absolute base URL requests are forwarded to.
	Upstream *url.URL
}

// Table resolves inbound paths to upstream bindings. Built once at startup,
// read-only afterwards, so it is safe for concurrent use.
type Table struct {
	bindings []Binding
}

// NewTable validates the bindings and returns a table. Prefixes must start
// with "/" and carry no trailing slash; upstream URLs must be absolute.
func NewTable(bindings []Binding) (*Table, error) {
	seen := make(map[string]struct{}, len(bindings))

	for _, b := range bindings {
		if !strings.HasPrefix(b.Prefix, "/") || len(b.Prefix) < 2 {
			return nil, fmt.Errorf("route %q: prefix must start with / and name a segment", b.Prefix)
		}
		if strings.HasSuffix(b.Prefix, "/") {
			return nil, fmt.Errorf("route %q: prefix must not end with /", b.Prefix)
		}
		if b.Upstream == nil || !b.Upstream.IsAbs() || b.Upstream.Host == "" {
			return nil, fmt.Errorf("route %q: upstream must be an absolute URL", b.Prefix)
		}
		if _, dup := seen[b.Prefix]; dup {
			return nil, fmt.Errorf("route %q: duplicate prefix", b.Prefix)
		}
		seen[b.Prefix] = struct{}{}
	}

	t := &Table{bindings: append([]Binding(nil), bindings...)}

	// Longest prefix first so Match can take the first hit.
	sort.Slice(t.bindings, func(i, j int) bool {
		return len(t.bindings[i].Prefix) > len(t.bindings[j].Prefix)
	})

	return t, nil
}

// Match resolves path to a binding. The second return is the remaining path
// after the matched prefix, never empty: an exact prefix hit yields "/".
// Prefixes match on segment boundaries only, so "/api/auth" does not claim
// "/api/authors".
func (t *Table) Match(path string) (Binding, string, bool) {
	for _, b := range t.bindings {
		if !strings.HasPrefix(path, b.Prefix) {
			continue
		}

		rest := path[len(b.Prefix):]
		if rest == "" {
			return b, "/", true
		}
		if rest[0] == '/' {
			return b, rest, true
		}
	}
	return Binding{}, "", false
}

// Bindings returns the table's bindings, longest prefix first.
func (t *Table) Bindings() []Binding {
	return append([]Binding(nil), t.bindings...)
}
