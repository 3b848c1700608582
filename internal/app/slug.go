package app

import (
	"github.com/google/uuid"
	gslug "github.com/gosimple/slug"
)

// makeSlug derives a URL-safe slug from a listing title. German umlauts and
// ß fold to ae/oe/ue/ss; the random suffix guarantees uniqueness without a
// retry loop on the unique index.
func makeSlug(title string) string {
	return gslug.MakeLang(title, "de") + "-" + uuid.NewString()[:6]
}
