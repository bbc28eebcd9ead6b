package archive

import (
	"archivehub/pkg/models"
)

// Index is the merged id lookup table spanning the primary archive and
// the optionally loaded secondary archive. The secondary set is inserted
// last, so on an id collision the secondary entry wins. That is a
// documented quirk of the feeds, not a guarantee.
type Index struct {
	byID map[string]models.Video
}

// NewIndex builds the merged table. Entries without an id are skipped.
func NewIndex(primary, secondary []models.Video) *Index {
	ix := &Index{byID: make(map[string]models.Video, len(primary)+len(secondary))}
	for _, v := range primary {
		if v.ID != "" {
			ix.byID[v.ID] = v
		}
	}
	for _, v := range secondary {
		if v.ID != "" {
			ix.byID[v.ID] = v
		}
	}
	return ix
}

// Get looks up a video by id.
func (ix *Index) Get(id string) (models.Video, bool) {
	v, ok := ix.byID[id]
	return v, ok
}

// Len returns the number of distinct ids in the merged table.
func (ix *Index) Len() int {
	return len(ix.byID)
}
