// Package page builds the portfolio page as a plain document tree.
//
// Build is a pure function of the profile and the render time: it performs no
// I/O and two calls with equal arguments return equal trees. Serializing the
// tree is left to the render package.
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/civansanli/portfolio/internal/profile"
)

// Anchor identifiers shared by sections and navigation links.
const (
	AnchorHero      = "hero"
	AnchorAbout     = "about"
	AnchorProjects  = "projects"
	AnchorSkills    = "skills"
	AnchorEducation = "education"
	AnchorContact   = "contact"
)

// ResumePath is where the downloadable resume is served from.
const ResumePath = "/cv.pdf"

// Anchors lists every section anchor in page order.
var Anchors = []string{AnchorHero, AnchorAbout, AnchorProjects, AnchorSkills, AnchorEducation, AnchorContact}

type navItem struct {
	anchor string
	label  string
}

var navItems = []navItem{
	{AnchorAbout, navAbout},
	{AnchorProjects, navProjects},
	{AnchorSkills, navSkills},
	{AnchorEducation, navEducation},
	{AnchorContact, navContact},
}

// Build returns the page body for p. now only feeds the footer year.
func Build(p profile.Profile, now time.Time) *Node {
	return El("div", A("class", "min-h-screen bg-white text-gray-900"),
		header(p),
		El("main", nil,
			hero(p),
			about(p),
			projects(p),
			skills(p),
			education(p),
			contact(p),
		),
		footer(p, now),
	)
}

// Greeting is the hero heading for p.
func Greeting(p profile.Profile) string {
	first := p.FirstName()
	if first == "" {
		return greetingBare
	}
	return fmt.Sprintf(greetingFormat, first)
}

// Copyright is the footer line for p in the year of now.
func Copyright(p profile.Profile, now time.Time) string {
	return fmt.Sprintf(copyrightText, now.Year(), p.Name)
}

func header(p profile.Profile) *Node {
	nav := El("nav", A("class", "hidden md:flex gap-6 text-sm"))
	for _, item := range navItems {
		nav.Children = append(nav.Children,
			El("a", A("href", "#"+item.anchor, "class", "hover:opacity-70"), Text(item.label)))
	}
	return El("header", A("class", "sticky top-0 z-40 backdrop-blur bg-white/80 border-b"),
		El("div", A("class", "max-w-5xl mx-auto flex items-center justify-between px-6 md:px-8 h-16"),
			El("a", A("href", "#"+AnchorHero, "class", "font-semibold"), Text(p.Name)),
			nav,
		),
	)
}

func hero(p profile.Profile) *Node {
	intro := El("div", A("class", "md:col-span-2"),
		El("h1", A("class", "text-3xl md:text-5xl font-extrabold leading-tight"), Text(Greeting(p))),
		El("p", A("class", "mt-3 text-lg text-gray-700"), Text(p.Tagline)),
		El("div", A("class", "mt-6 flex flex-wrap items-center gap-3"),
			El("a", A("href", "#"+AnchorProjects, "class", "cta rounded-2xl px-5 py-2.5 border font-medium"),
				icon("code-xml", "18"), Text(" "+ctaProjects)),
			El("a", A("href", ResumePath, "class", "cta rounded-2xl px-5 py-2.5 border font-medium"),
				icon("download", "18"), Text(" "+ctaResume)),
		),
		heroFacts(p),
		El("div", A("class", "socials mt-4 flex items-center gap-3"),
			socialLinks(p.Socials, "inline-flex items-center gap-2 text-sm border rounded-xl px-3 py-1.5")...),
	).Animate(fadeUp(OnLoad, 600*time.Millisecond))

	portrait := El("div", A("class", "aspect-square rounded-3xl border flex items-center justify-center", "aria-hidden", "true"),
		El("span", A("class", "text-6xl"), Text("🧠")),
	).Animate(scaleIn(600*time.Millisecond, 50*time.Millisecond))

	return El("section", A("id", AnchorHero, "class", "max-w-5xl mx-auto px-6 md:px-8 py-16"),
		El("div", A("class", "grid md:grid-cols-3 gap-8 items-center"), intro, portrait),
	)
}

func heroFacts(p profile.Profile) *Node {
	facts := El("div", A("class", "facts mt-6 flex flex-wrap items-center gap-3 text-sm text-gray-600"))
	if p.Location != "" {
		facts.Children = append(facts.Children,
			El("span", A("class", "fact"), icon(profile.IconMapPin, "16"), Text(" "+p.Location)))
	}
	if p.Phone != "" {
		facts.Children = append(facts.Children,
			El("span", A("class", "fact"), icon(profile.IconPhone, "16"), Text(" "+p.Phone)))
	}
	if p.Email != "" {
		facts.Children = append(facts.Children,
			El("a", A("href", p.MailTo(), "class", "fact hover:underline"), icon(profile.IconMail, "16"), Text(" "+p.Email)))
	}
	return facts
}

func about(p profile.Profile) *Node {
	return Section(AnchorAbout, titleAbout,
		El("div", A("class", "prose max-w-none"),
			El("p", A("class", "text-gray-700 leading-relaxed"), Text(p.About)),
		),
	)
}

func projects(p profile.Profile) *Node {
	grid := El("div", A("class", "project-grid grid md:grid-cols-3 gap-6"))
	for i, proj := range p.Projects {
		grid.Children = append(grid.Children, projectCard(proj).Animate(staggered(fadeUp(InView, 450*time.Millisecond), i)))
	}
	return Section(AnchorProjects, titleProjects, grid)
}

func projectCard(proj profile.Project) *Node {
	stack := El("div", A("class", "stack mt-3"))
	for _, t := range proj.Stack {
		stack.Children = append(stack.Children, Pill(t))
	}

	link := proj.Link
	if link == "" {
		link = "#"
	}
	preview := El("a", A("href", link, "class", "preview inline-flex items-center gap-1 text-sm mt-4 hover:underline"),
		Text(livePreview+" "), icon("external-link", "16"))
	if strings.HasPrefix(link, "http") {
		preview.Attrs = append(preview.Attrs, Attr{"target", "_blank"}, Attr{"rel", "noopener noreferrer"})
	}

	return El("article", A("class", "project-card border rounded-2xl p-5 hover:shadow-sm bg-white"),
		El("h3", A("class", "font-semibold text-lg"), Text(proj.Title)),
		El("p", A("class", "text-sm text-gray-700 mt-2"), Text(proj.Description)),
		stack,
		preview,
	)
}

func skills(p profile.Profile) *Node {
	list := El("div", A("class", "skill-list flex flex-wrap"))
	for _, s := range p.Skills {
		list.Children = append(list.Children, Pill(s))
	}
	return Section(AnchorSkills, titleSkills, list)
}

func education(p profile.Profile) *Node {
	list := El("div", A("class", "space-y-4"))
	for _, e := range p.Education {
		list.Children = append(list.Children,
			El("div", A("class", "education-card "+cardClass),
				El("div", A("class", "flex items-center gap-2 text-sm text-gray-600"),
					icon("graduation-cap", "16"), El("span", A("class", "year"), Text(e.Year))),
				El("div", A("class", "school mt-1 font-semibold"), Text(e.School)),
				El("div", A("class", "detail text-sm text-gray-700"), Text(e.Detail)),
			))
	}
	return Section(AnchorEducation, titleEducation, list)
}

func contact(p profile.Profile) *Node {
	facts := El("ul", A("class", "text-sm text-gray-700 space-y-2"))
	fact := func(ic profile.Icon, label string, value ...*Node) {
		li := El("li", A("class", "flex items-center gap-2"), icon(ic, "16"), Text(" "+label+" "))
		li.Children = append(li.Children, value...)
		facts.Children = append(facts.Children, li)
	}
	if p.Website.Label != "" {
		href := p.Website.Href
		if href == "" {
			href = "#"
		}
		fact(profile.IconGlobe, factWebsite, El("a", A("class", "hover:underline", "href", href), Text(p.Website.Label)))
	}
	if p.Email != "" {
		fact(profile.IconMail, factEmail, El("a", A("class", "hover:underline", "href", p.MailTo()), Text(p.Email)))
	}
	fact(profile.IconPhone, factPhone, Text(p.Phone))
	fact(profile.IconMapPin, factLocation, Text(p.Location))

	// The form has no action and the button is not a submit button: nothing
	// entered here leaves the browser.
	form := El("form", A("class", "contact-form "+cardClass),
		El("h3", A("class", "font-semibold mb-3"), Text(formTitle)),
		El("div", A("class", "grid gap-3 text-sm"),
			El("input", A("type", "text", "name", "name", "class", "border rounded-xl px-3 py-2", "placeholder", formName)),
			El("input", A("type", "email", "name", "email", "class", "border rounded-xl px-3 py-2", "placeholder", formEmail)),
			El("textarea", A("name", "message", "class", "border rounded-xl px-3 py-2 min-h-[120px]", "placeholder", formMessage)),
			El("button", A("type", "button", "class", "rounded-xl px-4 py-2 border hover:shadow-sm font-medium"), Text(formSubmit)),
			El("p", A("class", "text-xs text-gray-500"), Text(formNote)),
		),
	)

	return Section(AnchorContact, titleContact,
		El("div", A("class", "grid md:grid-cols-2 gap-6"),
			El("div", A("class", "quick-facts "+cardClass),
				El("h3", A("class", "font-semibold mb-3"), Text(quickFacts)),
				facts,
			),
			form,
		),
	)
}

func footer(p profile.Profile, now time.Time) *Node {
	return El("footer", A("class", "border-t py-10 mt-8"),
		El("div", A("class", "max-w-5xl mx-auto px-6 md:px-8 text-sm text-gray-600 flex flex-col md:flex-row justify-between gap-3"),
			El("span", A("class", "copyright"), Text(Copyright(p, now))),
			El("div", A("class", "socials flex gap-3"),
				socialLinks(p.Socials, "inline-flex items-center gap-1 border rounded-xl px-3 py-1.5")...),
		),
	)
}
