package archive

import (
	"sort"
	"strings"

	"archivehub/pkg/models"
)

// SortKey selects the ordering of a filtered listing.
type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortAZ     SortKey = "az"
	SortZA     SortKey = "za"
)

// ParseSortKey maps a query-parameter value onto a sort key, falling
// back to the default for unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNewest, SortOldest, SortAZ, SortZA:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// FilterState is the transient listing state: free-text query, selected
// topics and sort order. The zero query and empty topic set match
// everything.
type FilterState struct {
	Query  string
	Topics map[string]struct{}
	Sort   SortKey
}

// DefaultState is the state a fresh listing starts from.
func DefaultState() FilterState {
	return FilterState{Sort: SortNewest}
}

// IsDefault reports whether the state carries no filters and the
// default sort order.
func (st FilterState) IsDefault() bool {
	return st.Query == "" && len(st.Topics) == 0 && (st.Sort == "" || st.Sort == SortNewest)
}

// SelectTopics builds the selected-topic set from a list of tags.
func SelectTopics(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// Apply derives the displayed subset: text filter, then topic filter,
// then sort. The text filter is a case-insensitive substring match over
// title plus notes. The topic filter keeps a video when its topic list
// intersects the selection, by exact string match. Equal sort keys fall
// back to id ascending so the output order is deterministic.
func Apply(videos []models.Video, st FilterState) []models.Video {
	out := make([]models.Video, 0, len(videos))

	q := strings.ToLower(st.Query)
	for _, v := range videos {
		if q != "" && !strings.Contains(strings.ToLower(v.Title+" "+v.Notes), q) {
			continue
		}
		if len(st.Topics) > 0 && !intersects(v.Topics, st.Topics) {
			continue
		}
		out = append(out, v)
	}

	less := lessFor(st.Sort)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func intersects(topics []string, sel map[string]struct{}) bool {
	for _, t := range topics {
		if _, ok := sel[t]; ok {
			return true
		}
	}
	return false
}

func lessFor(key SortKey) func(a, b models.Video) bool {
	switch key {
	case SortNewest:
		return func(a, b models.Video) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.ID < b.ID
		}
	case SortOldest:
		return func(a, b models.Video) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.ID < b.ID
		}
	case SortAZ:
		return func(a, b models.Video) bool {
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return a.ID < b.ID
		}
	case SortZA:
		return func(a, b models.Video) bool {
			if a.Title != b.Title {
				return a.Title > b.Title
			}
			return a.ID < b.ID
		}
	default:
		return nil
	}
}

// Topics returns the distinct topics across the collection, sorted, for
// building the filter chip row.
func Topics(videos []models.Video) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range videos {
		for _, t := range v.Topics {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}
