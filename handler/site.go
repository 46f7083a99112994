package handler

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/i18n"
)

// Site renders the localized marketing shell and the static well-known files.
type Site struct {
	tmpl *template.Template
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p>{{.Tagline}}</p>
</main>
</body>
</html>
`))

// NewSite creates the site handler.
func NewSite() *Site {
	return &Site{tmpl: shellTemplate}
}

type shellData struct {
	Locale  string
	Title   string
	Tagline string
}

// Shell handles GET /{locale} and locale-prefixed marketing pages.
func (s *Site) Shell(w http.ResponseWriter, r *http.Request) {
	locale := i18n.DefaultLocale
	if v := mux.Vars(r)["locale"]; i18n.IsSupported(v) {
		locale = i18n.Locale(v)
	}

	messages := i18n.Catalog(locale)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.tmpl.Execute(w, shellData{
		Locale:  string(locale),
		Title:   messages.LandingTitle,
		Tagline: messages.LandingTagline,
	})
	if err != nil {
		log.Error().Err(err).Str("locale", string(locale)).Msg("Failed to render page shell")
	}
}

// appleAppSiteAssociation lets iOS open short links and booking pages in the
// native app when installed.
const appleAppSiteAssociation = `{
  "applinks": {
    "apps": [],
    "details": [
      {
        "appID": "6V2K8A3DNA.com.maetry.client",
        "paths": ["/link/*", "/*/link/*", "/booking/*"]
      }
    ]
  }
}`

// AppleAppSiteAssociation handles GET /.well-known/apple-app-site-association
func (s *Site) AppleAppSiteAssociation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write([]byte(appleAppSiteAssociation)); err != nil {
		log.Error().Err(err).Msg("Failed to write app site association")
	}
}
