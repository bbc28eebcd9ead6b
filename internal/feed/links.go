package feed

import (
	"net/url"
	"regexp"
	"strings"

	"archivehub/pkg/models"
)

var (
	doiBare   = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	doiPref   = regexp.MustCompile(`(?i)^doi:\s*(.+)$`)
	arxivBare = regexp.MustCompile(`(?i)^\d{4}\.\d{4,5}(v\d+)?$`)
	arxivPref = regexp.MustCompile(`(?i)^arxiv:\s*(.+)$`)
)

// NormalizeLink validates a raw citation link and rewrites it to a
// canonical absolute URL. Accepted forms:
//
//	10.xxxx/...            bare DOI        -> https://doi.org/...
//	doi: 10.xxxx/...       prefixed DOI    -> https://doi.org/...
//	2301.01234[v2]         bare arXiv id   -> https://arxiv.org/abs/...
//	arXiv: 2301.01234      prefixed arXiv  -> https://arxiv.org/abs/...
//	http(s)://...          absolute URL    -> unchanged
//
// Anything else returns the empty string and the citation stays text-only.
func NormalizeLink(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if doiBare.MatchString(s) {
		return "https://doi.org/" + s
	}
	if m := doiPref.FindStringSubmatch(s); m != nil {
		return "https://doi.org/" + strings.TrimSpace(m[1])
	}

	if arxivBare.MatchString(s) {
		return "https://arxiv.org/abs/" + s
	}
	if m := arxivPref.FindStringSubmatch(s); m != nil {
		return "https://arxiv.org/abs/" + strings.TrimSpace(m[1])
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// ParseRefs parses one reference cell: ;-separated citations, each with
// up to three |-separated parts (label, raw link, note). A single part
// with no | is a text-only citation. When no label is given the raw link
// text doubles as the label.
func ParseRefs(cell string) []models.Reference {
	var out []models.Reference
	for _, entry := range strings.Split(cell, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) == 1 {
			out = append(out, models.Reference{Text: parts[0]})
			continue
		}
		label, rawLink := parts[0], parts[1]
		note := ""
		if len(parts) > 2 {
			note = parts[2]
		}
		ref := models.Reference{Text: label, Note: note}
		if ref.Text == "" {
			ref.Text = rawLink
		}
		ref.Link = NormalizeLink(rawLink)
		out = append(out, ref)
	}
	return out
}

// YouTubeID extracts a hosted-video id from a watch URL, supporting the
// long form (?v= query parameter) and the youtu.be short-link path form.
// Returns "" when no id can be extracted.
func YouTubeID(watchURL string) string {
	if watchURL == "" {
		return ""
	}
	u, err := url.Parse(watchURL)
	if err != nil {
		return ""
	}
	if strings.Contains(u.Host, "youtu.be") {
		return strings.TrimPrefix(u.Path, "/")
	}
	return u.Query().Get("v")
}

// ThumbURL synthesizes a default-quality thumbnail URL for a hosted
// video id.
func ThumbURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
