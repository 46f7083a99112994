package shortlink

import (
	"net/http"
	"strings"

	"github.com/Maetry/website/model"
)

// Defaults for the fields a server-side resolution cannot observe. They
// match what the original booking client reports when no display is
// available.
const (
	defaultCores        = 4
	defaultMemoryMB     = 4096
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
	defaultColorDepth   = 24
	defaultPixelRatio   = 1.0
	defaultTimeZone     = "UTC"
)

// BuildClickRequest derives a click fingerprint from request headers.
// Language data comes from Accept-Language; device geometry falls back to
// defaults since the edge resolves links before any client script runs.
func BuildClickRequest(r *http.Request) model.ClickRequest {
	language := "en"
	languages := []string{}

	for _, entry := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		entry = strings.TrimSpace(strings.Split(entry, ";")[0])
		if entry == "" {
			continue
		}
		base := strings.ToLower(strings.Split(entry, "-")[0])
		languages = append(languages, base)
	}
	if len(languages) > 0 {
		language = languages[0]
	} else {
		languages = []string{language}
	}

	return model.ClickRequest{
		Language:     language,
		Languages:    languages,
		Cores:        defaultCores,
		Memory:       defaultMemoryMB,
		ScreenWidth:  defaultScreenWidth,
		ScreenHeight: defaultScreenHeight,
		ColorDepth:   defaultColorDepth,
		PixelRatio:   defaultPixelRatio,
		TimeZone:     defaultTimeZone,
	}
}
