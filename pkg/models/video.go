package models

// Video is the normalized, internal form of one archive entry.
//
// Every feed format (JSON, CSV, sqlite snapshot) is mapped into this
// structure first; the filter/sort engine, the recommender and the API
// all work from this representation. The JSON tags define the structured
// feed format, so encode/decode of []Video is the export format itself.
type Video struct {
	ID      string    `json:"id"`               // canonical id, e.g. "20240115-QM-2"
	Title   string    `json:"title"`            // display title
	URL     string    `json:"url"`              // watch URL
	Date    string    `json:"date"`             // ISO date string, lexicographically sortable
	Topics  []string  `json:"topics"`           // ordered tag list, trimmed, not deduplicated
	Thumb   string    `json:"thumb,omitempty"`  // resolved thumbnail URL
	Notes   string    `json:"notes"`            // free-text description
	Refs    RefGroups `json:"refs"`             // citations by category
	Related []string  `json:"related,omitempty"` // curated ids of related entries
}

// Reference is a single citation attached to a video.
// Link is only ever set when the raw value passed validation.
type Reference struct {
	Text string `json:"t"`
	Link string `json:"u,omitempty"`
	Note string `json:"n,omitempty"`
}

// RefGroups holds the citations of one video, keyed by the fixed
// set of reference categories.
type RefGroups struct {
	Papers   []Reference `json:"papers,omitempty"`
	Books    []Reference `json:"books,omitempty"`
	Talks    []Reference `json:"talks,omitempty"`
	Datasets []Reference `json:"datasets,omitempty"`
	Other    []Reference `json:"other,omitempty"`
}

// Empty reports whether no category holds any reference.
func (g RefGroups) Empty() bool {
	return len(g.Papers) == 0 && len(g.Books) == 0 && len(g.Talks) == 0 &&
		len(g.Datasets) == 0 && len(g.Other) == 0
}
