package archive

import (
	"log"
	"regexp"
	"strings"

	"archivehub/pkg/models"
)

// ReflectionPrefix marks ids that belong to the reflections archive and
// route to its presentation page.
const ReflectionPrefix = "REF-"

// idPattern is the expected shape: an optional REF- prefix, an 8-digit
// date-like block, then any number of -suffix segments.
var idPattern = regexp.MustCompile(`^(REF-)?[0-9]{8}(-[A-Za-z0-9]+)*$`)

const maxIDLength = 48

// IsReflectionID reports whether an id belongs to the reflections archive.
func IsReflectionID(id string) bool {
	return strings.HasPrefix(id, ReflectionPrefix)
}

// PageForID names the presentation page a detail link for this id
// should point at.
func PageForID(id string) string {
	if IsReflectionID(id) {
		return "reflections.html"
	}
	return "stp.html"
}

// ValidateIDs audits a loaded collection: missing, duplicate, malformed
// or very long ids are logged and nothing is rejected — bad data must
// not keep the archive from rendering.
func ValidateIDs(videos []models.Video) {
	seen := make(map[string]struct{}, len(videos))
	for _, v := range videos {
		if v.ID == "" {
			log.Printf("[archive] missing id on %q", v.Title)
			continue
		}
		if _, dup := seen[v.ID]; dup {
			log.Printf("[archive] duplicate id: %s", v.ID)
		}
		seen[v.ID] = struct{}{}
		if !idPattern.MatchString(v.ID) {
			log.Printf("[archive] invalid id format: %s (expected YYYYMMDD-suffix)", v.ID)
		}
		if len(v.ID) > maxIDLength {
			log.Printf("[archive] very long id: %s", v.ID)
		}
	}
	if len(videos) == 0 {
		log.Printf("[archive] no videos loaded")
		return
	}
	log.Printf("[archive] id validation complete: %d entries", len(videos))
}
