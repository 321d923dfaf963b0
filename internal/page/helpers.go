package page

import (
	"time"

	"github.com/civansanli/portfolio/internal/profile"
)

const (
	sectionClass = "max-w-5xl mx-auto px-6 md:px-8 py-12"
	pillClass    = "pill inline-flex items-center rounded-full border px-3 py-1 text-sm mr-2 mb-2"
	cardClass    = "border rounded-2xl p-5 bg-white"
)

// Section is a titled, anchor addressable page region.
func Section(id, title string, children ...*Node) *Node {
	heading := El("h2", A("class", "text-2xl md:text-3xl font-bold mb-6"), Text(title)).
		Animate(fadeUp(InView, 500*time.Millisecond))
	return El("section", A("id", id, "class", sectionClass), append([]*Node{heading}, children...)...)
}

// Pill is a small bordered chip for short tags.
func Pill(label string) *Node {
	return El("span", A("class", pillClass), Text(label))
}

// icon is a Lucide placeholder element; the icon script swaps it for an svg.
func icon(name profile.Icon, size string) *Node {
	if name == "" {
		return nil
	}
	return El("i", A("data-lucide", string(name), "width", size, "height", size, "aria-hidden", "true"))
}

func socialLinks(socials []profile.Social, class string) []*Node {
	links := make([]*Node, 0, len(socials))
	for _, s := range socials {
		links = append(links, El("a", A("href", s.Href, "class", "social "+class),
			icon(s.Icon, "18"), Text(" "+s.Label)))
	}
	return links
}
