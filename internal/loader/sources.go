package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"archivehub/internal/feed"
	"archivehub/internal/sponsor"
	"archivehub/internal/store"
	"archivehub/pkg/models"
)

// Fetcher reads feed bytes from an http(s) URL or a local file path.
type Fetcher struct {
	Client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (f *Fetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return os.ReadFile(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, target)
	}
	return io.ReadAll(resp.Body)
}

// JSONFeed loads the structured archive feed.
type JSONFeed struct {
	URL     string
	Fetcher *Fetcher
}

func (s JSONFeed) Name() string { return "json-feed" }

func (s JSONFeed) Load(ctx context.Context) ([]models.Video, error) {
	b, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	return feed.FromJSON(b)
}

// CSVFeed loads the tabular archive feed.
type CSVFeed struct {
	URL     string
	Fetcher *Fetcher
}

func (s CSVFeed) Name() string { return "csv-feed" }

func (s CSVFeed) Load(ctx context.Context) ([]models.Video, error) {
	b, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	return feed.FromCSV(string(b)), nil
}

// Snapshot loads the last persisted collection from sqlite. An empty
// snapshot counts as a failure so the chain moves on to the terminal
// fallback.
type Snapshot struct {
	Repo *store.Repo
}

func (s Snapshot) Name() string { return "sqlite-snapshot" }

func (s Snapshot) Load(ctx context.Context) ([]models.Video, error) {
	videos, err := s.Repo.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("snapshot empty")
	}
	return videos, nil
}

// JSONSponsorFeed loads the structured sponsor feed.
type JSONSponsorFeed struct {
	URL     string
	Fetcher *Fetcher
}

func (s JSONSponsorFeed) Name() string { return "json-feed" }

func (s JSONSponsorFeed) Load(ctx context.Context) ([]models.Sponsor, error) {
	b, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	return sponsor.FromJSON(b)
}

// CSVSponsorFeed loads the tabular sponsor feed.
type CSVSponsorFeed struct {
	URL     string
	Fetcher *Fetcher
}

func (s CSVSponsorFeed) Name() string { return "csv-feed" }

func (s CSVSponsorFeed) Load(ctx context.Context) ([]models.Sponsor, error) {
	b, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, err
	}
	return sponsor.FromCSV(string(b)), nil
}

// SponsorSnapshot loads persisted sponsors from sqlite.
type SponsorSnapshot struct {
	Repo *store.Repo
}

func (s SponsorSnapshot) Name() string { return "sqlite-snapshot" }

func (s SponsorSnapshot) Load(ctx context.Context) ([]models.Sponsor, error) {
	sponsors, err := s.Repo.ListSponsors(ctx)
	if err != nil {
		return nil, err
	}
	if len(sponsors) == 0 {
		return nil, fmt.Errorf("snapshot empty")
	}
	return sponsors, nil
}
