package sponsor

import (
	"encoding/json"
	"time"

	"archivehub/internal/feed"
	"archivehub/pkg/models"
)

// Today returns the current UTC date in the feed's ISO form.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Active filters out expired sponsors. A sponsor with no expiry never
// expires.
func Active(sponsors []models.Sponsor, today string) []models.Sponsor {
	out := make([]models.Sponsor, 0, len(sponsors))
	for _, s := range sponsors {
		if s.Active(today) {
			out = append(out, s)
		}
	}
	return out
}

// FromCSV parses the tabular sponsor feed.
func FromCSV(text string) []models.Sponsor {
	rows := feed.Rows(text)
	out := make([]models.Sponsor, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Sponsor{
			Brand:      row["brand"],
			Logo:       row["logo"],
			Link:       row["link"],
			Expires:    row["expires"],
			Disclosure: row["disclosure"],
		})
	}
	return out
}

// FromJSON decodes the structured sponsor feed.
func FromJSON(data []byte) ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	if err := json.Unmarshal(data, &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}
