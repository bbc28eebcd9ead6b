// Package view maps URL state (hash fragment plus query parameters)
// onto one of the fixed view modes of the archive frontend. Resolution
// is pure so it can be tested without any rendering environment; the
// HTTP layer exposes it as an endpoint the client calls on navigation.
package view

import (
	"net/url"
	"sort"
	"strings"

	"archivehub/internal/archive"
)

// Mode enumerates the view states.
type Mode string

const (
	ModeList    Mode = "list"
	ModeDetail  Mode = "detail"
	ModeSupport Mode = "support"
	ModeContact Mode = "contact"
)

// Route is the outcome of resolving a URL: which view to show, the
// detail id when applicable, the restored listing state, and the query
// string the client should mirror into the visible URL (empty when all
// parameters sit at their defaults).
type Route struct {
	Mode           Mode
	VideoID        string
	State          archive.FilterState
	CanonicalQuery string
}

// Resolve maps a fragment and query parameters onto a route.
//
// Precedence: hash fragment over the v parameter over the default list
// view. The support and contact fragments drop any v parameter from the
// canonical URL. A v pointing at no known record falls back to a fresh
// list with v removed. Entering the list resets transient state to
// whatever the query parameters say, defaults otherwise.
func Resolve(fragment string, query url.Values, exists func(id string) bool) Route {
	switch strings.TrimPrefix(fragment, "#") {
	case "support":
		return Route{Mode: ModeSupport, State: archive.DefaultState()}
	case "contact":
		return Route{Mode: ModeContact, State: archive.DefaultState()}
	}

	if id := query.Get("v"); id != "" {
		if exists != nil && exists(id) {
			return Route{
				Mode:           ModeDetail,
				VideoID:        id,
				State:          archive.DefaultState(),
				CanonicalQuery: url.Values{"v": {id}}.Encode(),
			}
		}
		// unknown id: back to a clean list, v stripped
		return Route{Mode: ModeList, State: archive.DefaultState()}
	}

	st := archive.FilterState{
		Query:  query.Get("q"),
		Topics: archive.SelectTopics(splitTopics(query.Get("topics"))),
		Sort:   archive.ParseSortKey(query.Get("sort")),
	}
	return Route{Mode: ModeList, State: st, CanonicalQuery: EncodeState(st)}
}

// EncodeState mirrors listing state back into a query string, omitting
// parameters at their default value so shared URLs stay minimal.
// Selected topics are emitted sorted for a stable encoding.
func EncodeState(st archive.FilterState) string {
	params := url.Values{}
	if st.Query != "" {
		params.Set("q", st.Query)
	}
	if st.Sort != "" && st.Sort != archive.SortNewest {
		params.Set("sort", string(st.Sort))
	}
	if len(st.Topics) > 0 {
		params.Set("topics", strings.Join(sortedTopics(st.Topics), ","))
	}
	return params.Encode()
}

func splitTopics(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func sortedTopics(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	// insertion order is lost in the set; sort for determinism
	sort.Strings(out)
	return out
}
