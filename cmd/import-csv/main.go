package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"archivehub/internal/archive"
	"archivehub/internal/feed"
	"archivehub/internal/sponsor"
	"archivehub/internal/store"
	"archivehub/pkg/database"
)

// Imports the tabular feeds into the local sqlite snapshot, so the
// server has a warm cache tier before its first successful remote load.
func main() {
	var (
		videosIn   = flag.String("videos", "data/videos.csv", "input CSV path for videos")
		sponsorsIn = flag.String("sponsors", "data/sponsors.csv", "input CSV path for sponsors")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}
	repo := store.NewRepo(db)

	b, err := os.ReadFile(*videosIn)
	if err != nil {
		log.Fatalf("read videos csv: %v", err)
	}
	videos := feed.FromCSV(string(b))
	archive.ValidateIDs(videos)

	if err := repo.ReplaceVideos(ctx, videos); err != nil {
		log.Fatalf("import videos failed: %v", err)
	}

	imported := len(videos)

	// sponsors are optional; a missing file is not an error
	if sb, err := os.ReadFile(*sponsorsIn); err == nil {
		sponsors := sponsor.FromCSV(string(sb))
		if err := repo.ReplaceSponsors(ctx, sponsors); err != nil {
			log.Fatalf("import sponsors failed: %v", err)
		}
		log.Printf("imported %d sponsors from %s", len(sponsors), *sponsorsIn)
	} else {
		log.Printf("skipping sponsors: %v", err)
	}

	log.Printf("imported %d videos from %s", imported, *videosIn)
}
