package service

import (
	"net/http"
	"sort"
	"strings"
)

// cookieJar holds the latest value of every cookie seen across the hops of a
// single redirect chain. A fresh jar is created for every top-level
// RoundTrip call; cookies never persist across independent calls.
type cookieJar map[string]string

// absorb folds one hop into the jar: the request's own Cookie header first,
// overlaid by the response's Set-Cookie entries, so a Set-Cookie wins over a
// same-named request cookie. Within one response the last occurrence of a
// name wins. The merged working set then overwrites same-named jar entries.
func (j cookieJar) absorb(req *http.Request, resp *http.Response) {
	working := make(map[string]string)

	for _, c := range req.Cookies() {
		working[c.Name] = c.Value
	}

	for _, c := range resp.Cookies() {
		working[c.Name] = c.Value
	}

	for name, value := range working {
		j[name] = value
	}
}

// header formats the selected jar entries as a Cookie header value, sorted
// by name so the output is deterministic. Names the jar has never seen are
// skipped silently. An empty selection yields "".
func (j cookieJar) header(all bool, names []string) string {
	selected := make([]string, 0, len(j))

	if all {
		for name := range j {
			selected = append(selected, name)
		}
	} else {
		seen := make(map[string]struct{}, len(names))

		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}

			if _, ok := j[name]; ok {
				selected = append(selected, name)
			}
		}
	}

	sort.Strings(selected)

	pairs := make([]string, 0, len(selected))

	for _, name := range selected {
		// only the first component of a delimited value is sent
		value, _, _ := strings.Cut(j[name], ";")
		pairs = append(pairs, name+"="+strings.TrimSpace(value))
	}

	return strings.Join(pairs, "; ")
}
