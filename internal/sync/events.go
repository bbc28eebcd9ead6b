package sync

import "time"

// ReloadEvent announces that an archive finished (re)loading.
type ReloadEvent struct {
	Type    string    `json:"type"` // "archive.reload"
	Archive string    `json:"archive"`
	Source  string    `json:"source"` // winning loader source
	Count   int       `json:"count"`
	At      time.Time `json:"at"`
}

// PulseEvent is the periodic cosmetic sponsor highlight.
type PulseEvent struct {
	Type  string    `json:"type"` // "sponsor.pulse"
	Brand string    `json:"brand,omitempty"`
	At    time.Time `json:"at"`
}
