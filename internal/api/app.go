package api

import (
	"context"
	"log"
	"sync"
	"time"

	"archivehub/internal/archive"
	"archivehub/internal/loader"
	"archivehub/internal/store"
	synchub "archivehub/internal/sync"
	"archivehub/pkg/models"
)

// App holds the loaded application state: the primary collection the
// listing works from, the secondary collection loaded only for
// cross-archive related lookups, the merged index, and the sponsor
// list. Collections are replaced wholesale on (re)load and never
// mutated in place, so handlers can read them under a short RLock.
type App struct {
	PrimaryChain   *loader.Chain
	SecondaryChain *loader.Chain // nil when no secondary archive is configured
	SponsorChain   *loader.SponsorChain
	Repo           *store.Repo // nil disables the snapshot tier
	Hub            *synchub.Hub

	mu       sync.RWMutex
	primary  []models.Video
	index    *archive.Index
	sponsors []models.Sponsor
	topics   []string
}

// ReloadSummary reports what a load attempt produced.
type ReloadSummary struct {
	Source        string `json:"source"`
	Videos        int    `json:"videos"`
	SecondarySrc  string `json:"secondary_source,omitempty"`
	Secondary     int    `json:"secondary"`
	Sponsors      int    `json:"sponsors"`
	SnapshotSaved bool   `json:"snapshot_saved"`
}

// Reload runs all three loader chains and swaps in the result. The
// secondary and sponsor loads are independent of the primary: their
// failure degrades to empty sets and never blocks the primary archive.
func (a *App) Reload(ctx context.Context) ReloadSummary {
	primary, source := a.PrimaryChain.Load(ctx)
	archive.ValidateIDs(primary)

	var (
		secondary    []models.Video
		secondarySrc string
	)
	if a.SecondaryChain != nil {
		secondary, secondarySrc = a.SecondaryChain.Load(ctx)
	}

	var sponsors []models.Sponsor
	if a.SponsorChain != nil {
		sponsors, _ = a.SponsorChain.Load(ctx)
	}

	index := archive.NewIndex(primary, secondary)
	topics := archive.Topics(primary)

	a.mu.Lock()
	a.primary = primary
	a.index = index
	a.sponsors = sponsors
	a.topics = topics
	a.mu.Unlock()

	summary := ReloadSummary{
		Source:       source,
		Videos:       len(primary),
		SecondarySrc: secondarySrc,
		Secondary:    len(secondary),
		Sponsors:     len(sponsors),
	}

	// Persist the snapshot only when the data came from a live feed;
	// re-writing the snapshot with itself would be pointless.
	if a.Repo != nil && source != "" && source != "sqlite-snapshot" && source != "static-fallback" {
		if err := a.Repo.ReplaceVideos(ctx, primary); err != nil {
			log.Printf("[app] snapshot videos failed: %v", err)
		} else {
			summary.SnapshotSaved = true
		}
		if err := a.Repo.ReplaceSponsors(ctx, sponsors); err != nil {
			log.Printf("[app] snapshot sponsors failed: %v", err)
		}
	}

	if a.Hub != nil {
		a.Hub.BroadcastJSON(synchub.ReloadEvent{
			Type:    "archive.reload",
			Archive: "primary",
			Source:  source,
			Count:   len(primary),
			At:      time.Now().UTC(),
		})
	}

	return summary
}

// Videos returns the primary collection.
func (a *App) Videos() []models.Video {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.primary
}

// Lookup resolves an id through the merged cross-archive index.
func (a *App) Lookup(id string) (models.Video, bool) {
	a.mu.RLock()
	ix := a.index
	a.mu.RUnlock()
	if ix == nil {
		return models.Video{}, false
	}
	return ix.Get(id)
}

// Index returns the merged index, possibly nil before the first load.
func (a *App) Index() *archive.Index {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.index
}

// Sponsors returns the full sponsor list, expired entries included.
func (a *App) Sponsors() []models.Sponsor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sponsors
}

// Topics returns the distinct sorted topics of the primary collection.
func (a *App) Topics() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.topics
}
