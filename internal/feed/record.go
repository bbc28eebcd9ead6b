package feed

import (
	"encoding/json"
	"strings"

	"archivehub/pkg/models"
)

// MapRow maps one header-keyed tabular row onto a Video.
//
// Ids are trimmed and underscores become hyphens (case is preserved).
// When no thumbnail is given one is synthesized from the watch URL if a
// hosted-video id can be extracted. Rows without an id are still mapped;
// the validator flags them downstream.
func MapRow(row map[string]string) models.Video {
	id := strings.ReplaceAll(strings.TrimSpace(row["id"]), "_", "-")
	watchURL := strings.TrimSpace(row["url"])

	thumb := strings.TrimSpace(row["thumb"])
	if thumb == "" {
		if yt := YouTubeID(watchURL); yt != "" {
			thumb = ThumbURL(yt)
		}
	}

	return models.Video{
		ID:     id,
		Title:  row["title"],
		URL:    watchURL,
		Date:   strings.TrimSpace(row["date"]),
		Topics: splitList(row["topics"]),
		Thumb:  thumb,
		Notes:  row["notes"],
		Refs: models.RefGroups{
			Papers:   ParseRefs(fieldOf(row, "ref_papers", "ref_paper", "papers", "paper", "refpaper")),
			Books:    ParseRefs(fieldOf(row, "ref_books", "ref_book", "books", "book", "refbook")),
			Talks:    ParseRefs(fieldOf(row, "ref_talks", "ref_talk", "talks", "talk", "reftalk")),
			Datasets: ParseRefs(fieldOf(row, "ref_datasets", "ref_dataset", "datasets", "dataset", "refdataset")),
			Other:    ParseRefs(fieldOf(row, "ref_other", "ref_misc", "other", "misc", "refother", "refmisc")),
		},
		Related: splitList(row["related"]),
	}
}

// FromCSV parses raw tabular feed text into videos.
func FromCSV(text string) []models.Video {
	rows := Rows(text)
	out := make([]models.Video, 0, len(rows))
	for _, row := range rows {
		out = append(out, MapRow(row))
	}
	return out
}

// FromJSON decodes the structured feed form.
func FromJSON(data []byte) ([]models.Video, error) {
	var videos []models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// ToJSON serializes videos to the structured feed form, which is also
// the export/download format. FromJSON(ToJSON(v)) yields an equal set.
func ToJSON(videos []models.Video) ([]byte, error) {
	return json.MarshalIndent(videos, "", "  ")
}
