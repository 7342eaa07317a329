package tabulate

import "strings"

// KeysSentinel asks the backend to derive columns from record keys.
const KeysSentinel = "keys"

type headersKind int

const (
	headersUnset headersKind = iota
	headersKeys
	headersNames
)

// Headers selects table columns: either the keys sentinel or an explicit
// ordered list of field names. The zero Headers is unset and resolves to
// the keys sentinel.
type Headers struct {
	kind  headersKind
	names []string
}

// HeaderKeys returns the keys sentinel.
func HeaderKeys() Headers { return Headers{kind: headersKeys} }

// HeaderNames returns an explicit column list. Without names it returns
// the keys sentinel.
func HeaderNames(names ...string) Headers {
	if len(names) == 0 {
		return HeaderKeys()
	}
	return Headers{kind: headersNames, names: append([]string(nil), names...)}
}

// IsZero reports whether h was never set.
func (h Headers) IsZero() bool { return h.kind == headersUnset }

// IsKeys reports whether h resolves to the keys sentinel.
func (h Headers) IsKeys() bool { return h.kind != headersNames }

// Names returns a copy of the explicit column list, or nil for the keys
// sentinel.
func (h Headers) Names() []string {
	if h.IsKeys() {
		return nil
	}
	return append([]string(nil), h.names...)
}

// Or returns h, or fallback when h is unset.
func (h Headers) Or(fallback Headers) Headers {
	if h.IsZero() {
		return fallback
	}
	return h
}

// String returns the comma-separated column list or the keys sentinel.
func (h Headers) String() string {
	if h.IsKeys() {
		return KeysSentinel
	}
	return strings.Join(h.names, ",")
}

// ParseHeaders parses a comma-separated column list. An empty string and
// "keys" yield the keys sentinel.
func ParseHeaders(s string) Headers {
	if strings.TrimSpace(s) == KeysSentinel {
		return HeaderKeys()
	}
	return HeaderNames(ParseFieldList(s)...)
}

// ParseFieldList splits a comma-separated list of field names, trimming
// each element and dropping empty ones.
func ParseFieldList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
