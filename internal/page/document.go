package page

import (
	"time"

	"github.com/civansanli/portfolio/internal/profile"
)

// Assets are the stylesheets and scripts referenced from the document head.
// Boot is inline script run at the end of the body.
type Assets struct {
	Stylesheets []string
	Scripts     []string
	Boot        string
}

// DefaultAssets loads Tailwind and Lucide from their public CDNs.
func DefaultAssets() Assets {
	return Assets{
		Scripts: []string{
			"https://cdn.tailwindcss.com",
			"https://unpkg.com/lucide@latest",
		},
		Boot: "window.lucide && lucide.createIcons();",
	}
}

// Document wraps Build in a complete html element.
func Document(p profile.Profile, now time.Time, assets Assets) *Node {
	head := El("head", nil,
		El("meta", A("charset", "utf-8")),
		El("meta", A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		El("title", nil, Text(p.Name)),
	)
	if p.Tagline != "" {
		head.Children = append(head.Children, El("meta", A("name", "description", "content", p.Tagline)))
	}
	for _, href := range assets.Stylesheets {
		head.Children = append(head.Children, El("link", A("rel", "stylesheet", "href", href)))
	}
	for _, src := range assets.Scripts {
		head.Children = append(head.Children, El("script", A("src", src)))
	}

	body := El("body", nil, Build(p, now))
	if assets.Boot != "" {
		body.Children = append(body.Children, El("script", nil, Text(assets.Boot)))
	}

	return El("html", A("lang", Locale.String()), head, body)
}
