package crawl

import (
	"net/url"
	"path"
	"strings"
)

// skipExtensions lists path extensions for non-document resources.
// Fetching these wastes a request: they carry no indexable text and
// no outbound links.
var skipExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".ico":  true,
	".css":  true,
	".js":   true,
	".mjs":  true,
	".json": true,
	".xml":  true,
	".pdf":  true,
	".zip":  true,
	".gz":   true,
	".tar":  true,
	".mp3":  true,
	".mp4":  true,
	".webm": true,
	".woff": true,
	".ttf":  true,
	".exe":  true,
	".dmg":  true,
}

// InScope reports whether a normalized candidate URL belongs to the
// crawl scope: same host as the seed (exact match, so subdomains are
// out of scope) and not an obvious non-document resource by extension.
// InScope is pure; it performs no network access.
func InScope(seedHost string, candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if !strings.EqualFold(u.Host, seedHost) {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	return !skipExtensions[ext]
}
