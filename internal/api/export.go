package api

import (
	"archivehub/internal/feed"
	"archivehub/internal/sponsor"
	"archivehub/pkg/models"
)

// exportJSON serializes the current in-memory primary collection to the
// structured feed format, suitable both for download and for seeding
// the JSON tier of the loader chain.
func exportJSON(app *App) ([]byte, error) {
	return feed.ToJSON(app.Videos())
}

func sponsorActive(app *App) []models.Sponsor {
	return sponsor.Active(app.Sponsors(), sponsor.Today())
}
