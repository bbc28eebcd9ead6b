// Package loader runs the startup fallback chains: structured feed,
// then tabular feed, then the sqlite snapshot, then a hardcoded
// default. Each stage's failure is logged with its reason and triggers
// the next stage; the final stage cannot fail, so a chain always yields
// something to render.
package loader

import (
	"context"
	"log"

	"archivehub/pkg/models"
)

// Source is one attempt at loading the archive. Each source fetches its
// own format and maps it into videos.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Video, error)
}

// SponsorSource is one attempt at loading the sponsor list.
type SponsorSource interface {
	Name() string
	Load(ctx context.Context) ([]models.Sponsor, error)
}

// Chain tries its sources in order and returns the first success
// together with the winning source's name. A chain whose last source is
// infallible never returns an empty name; an exhausted chain returns
// nil videos and "".
type Chain struct {
	Label   string // for log lines, e.g. "primary"
	Sources []Source
}

func (c *Chain) Load(ctx context.Context) ([]models.Video, string) {
	for _, src := range c.Sources {
		videos, err := src.Load(ctx)
		if err != nil {
			log.Printf("[loader] %s: source %s failed: %v", c.Label, src.Name(), err)
			continue
		}
		log.Printf("[loader] %s: loaded %d entries from %s", c.Label, len(videos), src.Name())
		return videos, src.Name()
	}
	log.Printf("[loader] %s: all sources exhausted", c.Label)
	return nil, ""
}

// SponsorChain is the sponsor-feed counterpart of Chain.
type SponsorChain struct {
	Label   string
	Sources []SponsorSource
}

func (c *SponsorChain) Load(ctx context.Context) ([]models.Sponsor, string) {
	for _, src := range c.Sources {
		sponsors, err := src.Load(ctx)
		if err != nil {
			log.Printf("[loader] %s: source %s failed: %v", c.Label, src.Name(), err)
			continue
		}
		log.Printf("[loader] %s: loaded %d sponsors from %s", c.Label, len(sponsors), src.Name())
		return sponsors, src.Name()
	}
	log.Printf("[loader] %s: all sources exhausted", c.Label)
	return nil, ""
}

// Static is the terminal archive source: a fixed in-memory collection,
// usually empty. It never fails.
type Static struct {
	Videos []models.Video
}

func (s Static) Name() string { return "static-fallback" }

func (s Static) Load(context.Context) ([]models.Video, error) {
	return s.Videos, nil
}

// StaticSponsors is the terminal sponsor source.
type StaticSponsors struct {
	Sponsors []models.Sponsor
}

func (s StaticSponsors) Name() string { return "static-fallback" }

func (s StaticSponsors) Load(context.Context) ([]models.Sponsor, error) {
	return s.Sponsors, nil
}
