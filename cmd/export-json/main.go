package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"archivehub/internal/feed"
	"archivehub/internal/store"
	"archivehub/pkg/database"
)

// Regenerates the structured feeds from the sqlite snapshot. The output
// is the same format the server's /export endpoint serves and the JSON
// tier of the loader chain consumes.
func main() {
	var (
		videosOut   = flag.String("videos", "data/videos.json", "output JSON path for videos")
		sponsorsOut = flag.String("sponsors", "data/sponsors.json", "output JSON path for sponsors")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}
	repo := store.NewRepo(db)

	videos, err := repo.ListVideos(ctx)
	if err != nil {
		log.Fatalf("load videos failed: %v", err)
	}
	b, err := feed.ToJSON(videos)
	if err != nil {
		log.Fatalf("marshal videos failed: %v", err)
	}
	if err := writeFile(*videosOut, b); err != nil {
		log.Fatalf("write videos failed: %v", err)
	}
	log.Printf("exported %d videos to %s", len(videos), *videosOut)

	sponsors, err := repo.ListSponsors(ctx)
	if err != nil {
		log.Fatalf("load sponsors failed: %v", err)
	}
	sb, err := json.MarshalIndent(sponsors, "", "  ")
	if err != nil {
		log.Fatalf("marshal sponsors failed: %v", err)
	}
	if err := writeFile(*sponsorsOut, sb); err != nil {
		log.Fatalf("write sponsors failed: %v", err)
	}
	log.Printf("exported %d sponsors to %s", len(sponsors), *sponsorsOut)
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
