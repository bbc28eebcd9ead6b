package utils

import (
	"os"
	"strconv"
	"time"
)

// FeedConfig names the data sources the loader chains try, in order.
// Each URL may be http(s) or a local file path; an empty secondary URL
// means no secondary archive is configured.
type FeedConfig struct {
	VideosJSONURL   string
	VideosCSVURL    string
	SecondaryCSVURL string
	SponsorsJSONURL string
	SponsorsCSVURL  string
}

func LoadFeedConfig() FeedConfig {
	return FeedConfig{
		VideosJSONURL:   envOr("ARCHIVEHUB_VIDEOS_JSON", "data/videos.json"),
		VideosCSVURL:    envOr("ARCHIVEHUB_VIDEOS_CSV", "data/videos.csv"),
		SecondaryCSVURL: os.Getenv("ARCHIVEHUB_SECONDARY_CSV"),
		SponsorsJSONURL: envOr("ARCHIVEHUB_SPONSORS_JSON", "data/sponsors.json"),
		SponsorsCSVURL:  envOr("ARCHIVEHUB_SPONSORS_CSV", "data/sponsors.csv"),
	}
}

type AuthConfig struct {
	JWTSecret     string
	JWTIssuer     string
	JWTDuration   time.Duration
	AdminPassword string
}

func LoadAuthConfig() AuthConfig {
	cfg := AuthConfig{
		// dev defaults (change for demo / production)
		JWTSecret:     envOr("ARCHIVEHUB_JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:     envOr("ARCHIVEHUB_JWT_ISSUER", "archivehub"),
		JWTDuration:   24 * time.Hour,
		AdminPassword: envOr("ARCHIVEHUB_ADMIN_PASSWORD", "change-me"),
	}
	if h := os.Getenv("ARCHIVEHUB_JWT_TTL_HOURS"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			cfg.JWTDuration = time.Duration(n) * time.Hour
		}
	}
	return cfg
}

// SupportLinks are the static support/contact panel targets.
type SupportLinks struct {
	Patreon string `json:"patreon"`
	KoFi    string `json:"kofi"`
	PayPal  string `json:"paypal"`
	Merch   string `json:"merch"`
	Email   string `json:"email"`
}

func LoadSupportLinks() SupportLinks {
	return SupportLinks{
		Patreon: envOr("ARCHIVEHUB_LINK_PATREON", "https://patreon.com/SeeThePattern"),
		KoFi:    envOr("ARCHIVEHUB_LINK_KOFI", "https://ko-fi.com/seethepattern"),
		PayPal:  envOr("ARCHIVEHUB_LINK_PAYPAL", "https://paypal.me/seethepattern"),
		Merch:   envOr("ARCHIVEHUB_LINK_MERCH", "https://see-the-pattern.myspreadshop.co.uk/"),
		Email:   envOr("ARCHIVEHUB_CONTACT_EMAIL", "contact@seethepattern.org"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
