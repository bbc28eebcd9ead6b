package archive

import (
	"sort"
	"time"

	"archivehub/pkg/models"
)

// defaultEpoch stands in for missing dates when scoring recency.
const defaultEpoch = "2000-01-01"

const (
	topicWeight   = 0.85
	recencyWeight = 0.15
)

// Jaccard returns the Jaccard index of two topic lists: intersection
// size over union size. Two empty sets score 0, not 1.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Related returns up to max videos related to v.
//
// A non-empty curated list wins outright: each id is resolved through
// the merged index, unresolvable ids are dropped, and the curated order
// is kept — even when nothing resolves, no fallback runs. Otherwise
// candidates from the primary collection are scored by topic overlap
// with a mild boost for videos published close in time, and score ties
// break by id ascending so the result is deterministic.
func Related(v models.Video, primary []models.Video, ix *Index, max int) []models.Video {
	if max <= 0 {
		return nil
	}

	if len(v.Related) > 0 {
		out := make([]models.Video, 0, len(v.Related))
		for _, id := range v.Related {
			if r, ok := ix.Get(id); ok {
				out = append(out, r)
			}
			if len(out) == max {
				break
			}
		}
		return out
	}

	type scored struct {
		video models.Video
		score float64
	}
	candidates := make([]scored, 0, len(primary))
	for _, cand := range primary {
		if cand.ID == v.ID {
			continue
		}
		candidates = append(candidates, scored{cand, similarity(v, cand)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].video.ID < candidates[j].video.ID
	})

	n := max
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]models.Video, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.video)
	}
	return out
}

func similarity(a, b models.Video) float64 {
	topics := Jaccard(a.Topics, b.Topics)

	days := dateOf(a.Date).Sub(dateOf(b.Date)).Hours() / 24
	if days < 0 {
		days = -days
	}
	if days > 365 {
		days = 365
	}
	recency := 1 - days/365
	if recency < 0 {
		recency = 0
	}

	return topics*topicWeight + recency*recencyWeight
}

func dateOf(s string) time.Time {
	if s == "" {
		s = defaultEpoch
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, _ = time.Parse("2006-01-02", defaultEpoch)
	}
	return t
}
