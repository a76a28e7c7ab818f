package http

import (
	"net/url"
	"strings"
)

// parseExtendedForm converts flat url-encoded pairs into a nested structure
// using bracket key syntax:
//
//	a=1                -> {"a": "1"}
//	a[b]=1             -> {"a": {"b": "1"}}
//	a[b][c]=1          -> {"a": {"b": {"c": "1"}}}
//	a[]=x&a[]=y        -> {"a": ["x", "y"]}
//	a=1&a=2            -> {"a": ["1", "2"]}
//
// Nested values are map[string]any, repeated values collect into []any,
// scalars stay string.
func parseExtendedForm(values url.Values) map[string]any {
	result := make(map[string]any, len(values))
	for key, vals := range values {
		path := splitFormKey(key)
		for _, val := range vals {
			insertFormValue(result, path, val)
		}
	}
	return result
}

// splitFormKey tokenizes a bracketed key: "a[b][c]" -> ["a","b","c"],
// "a[]" -> ["a",""]. Keys with unbalanced or misplaced brackets are kept
// literal as a single segment.
func splitFormKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	parts := []string{key[:open]}
	rest := key[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		parts = append(parts, rest[1:end])
		rest = rest[end+1:]
	}
	return parts
}

func insertFormValue(m map[string]any, path []string, value string) {
	key := path[0]

	// terminal segment, or an append marker right behind it
	if len(path) == 1 || (len(path) == 2 && path[1] == "") {
		appendOnly := len(path) == 2
		switch existing := m[key].(type) {
		case nil:
			if appendOnly {
				m[key] = []any{value}
			} else {
				m[key] = value
			}
		case []any:
			m[key] = append(existing, value)
		default:
			m[key] = []any{existing, value}
		}
		return
	}

	child, ok := m[key].(map[string]any)
	if !ok {
		// a scalar under the same key is discarded in favour of the deeper
		// structure, matching extended-mode parsers
		child = make(map[string]any)
		m[key] = child
	}
	insertFormValue(child, path[1:], value)
}
