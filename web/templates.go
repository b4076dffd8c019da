package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-contrib/multitemplate"
)

//go:embed templates
var templatesFS embed.FS

// views rendered inside the base layout, keyed by the name handlers use.
var views = []string{
	"home.html",
	"error.html",
	"auth/login.html",
	"auth/signup.html",
	"auth/check_email.html",
	"feed.html",
	"article.html",
	"onboarding.html",
	"profile.html",
	"settings.html",
	"write.html",
}

// Renderer builds the multitemplate renderer from the embedded template
// files. Embedding keeps rendering independent of the working directory.
func Renderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := mustRead("templates/layouts/base.html")
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2 Jan 2006")
		},
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("há %d segundos", seconds)
			case seconds < 3600:
				return fmt.Sprintf("há %d minutos", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("há %d horas", seconds/3600)
			case seconds < 2592000:
				return fmt.Sprintf("há %d dias", seconds/86400)
			case seconds < 31536000:
				return fmt.Sprintf("há %d meses", seconds/2592000)
			}
			return fmt.Sprintf("há %d anos", seconds/31536000)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	for _, view := range views {
		r.AddFromStringsFuncs(view, funcMap, layout, mustRead("templates/views/"+view))
	}
	return r
}

func mustRead(path string) string {
	data, err := templatesFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("missing embedded template %s: %v", path, err))
	}
	return string(data)
}
