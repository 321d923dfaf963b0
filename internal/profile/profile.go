// Package profile holds the single record that drives every piece of content
// on the portfolio page.
package profile

import "strings"

// Icon is a Lucide icon name, e.g. "linkedin" or "mail".
type Icon string

const (
	IconLinkedIn Icon = "linkedin"
	IconGitHub   Icon = "github"
	IconMail     Icon = "mail"
	IconGlobe    Icon = "globe"
	IconPhone    Icon = "phone"
	IconMapPin   Icon = "map-pin"
)

// Link is a labeled outbound reference.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href" validate:"omitempty,link"`
}

type Social struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required,link"`
	Icon  Icon   `json:"icon"`
}

type Education struct {
	School string `json:"school" validate:"required"`
	Detail string `json:"detail"`
	Year   string `json:"year"`
}

type Project struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Stack       []string `json:"stack" validate:"dive,required"`
	Link        string   `json:"link" validate:"omitempty,link"`
}

// Profile is the person shown on the page. Values returned by Default are
// copies; the built-in record itself is never handed out.
type Profile struct {
	Name      string      `json:"name" validate:"required"`
	Tagline   string      `json:"tagline"`
	Location  string      `json:"location"`
	Email     string      `json:"email" validate:"omitempty,email"`
	Phone     string      `json:"phone"`
	About     string      `json:"about"`
	Website   Link        `json:"website"`
	Socials   []Social    `json:"socials" validate:"dive"`
	Skills    []string    `json:"skills" validate:"dive,required"`
	Education []Education `json:"education" validate:"dive"`
	Projects  []Project   `json:"projects" validate:"dive"`
}

var civan = Profile{
	Name:     "Civan Şanlı",
	Tagline:  "Yazılıma tutkulu, gelişmeye açık bir lise öğrencisi ve basketbol oyuncusuyum.",
	Location: "İstanbul, Türkiye",
	Email:    "civan@aivon.com",
	Phone:    "—",
	About: `Ben Civan, yazılım ve teknolojiye meraklı bir lise öğrencisiyim. Her gün kendimi geliştirmek için yeni şeyler öğreniyor, ` +
		`küçük projelerle deneyim kazanıyorum. Hedefim, iyi bir üniversiteden mezun olup profesyonel bir yazılımcı olmak.`,
	Website: Link{Label: "civansanli.dev", Href: "#"},
	Socials: []Social{
		{Label: "LinkedIn", Href: "https://www.linkedin.com/in/civan-%C5%9Fanl%C4%B1-8146b0268/", Icon: IconLinkedIn},
		{Label: "E‑posta", Href: "mailto:civan@aivon.com", Icon: IconMail},
	},
	Skills: []string{"HTML", "JavaScript", "React"},
	Education: []Education{
		{School: "Lise (12. sınıf)", Detail: "YKS sayısal hazırlık", Year: "2025"},
	},
	Projects: []Project{
		{
			Title: "WhatsApp Chatbot Tasarımı",
			Description: `Farklı işletmelere destek vermek amacıyla tasarladığım yapay zekâ tabanlı bir WhatsApp chatbot projesi. ` +
				`Otomatik mesaj yanıtı, müşteri etkileşimi ve bilgi akışı yönetimi gibi özellikler içerir.`,
			Stack: []string{"Node.js", "API", "Webhook"},
			Link:  "#",
		},
		{
			Title: "Website Designer",
			Description: `Modern ve kullanıcı dostu web arayüzleri tasarladığım kişisel proje. ` +
				`React, TailwindCSS ve temel UI/UX prensipleriyle şık sayfalar oluşturdum.`,
			Stack: []string{"React", "TailwindCSS"},
			Link:  "#",
		},
	},
}

// Default returns a copy of the built-in profile.
func Default() Profile {
	return civan.Clone()
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := p
	out.Socials = append([]Social(nil), p.Socials...)
	out.Skills = append([]string(nil), p.Skills...)
	out.Education = append([]Education(nil), p.Education...)
	out.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		proj.Stack = append([]string(nil), proj.Stack...)
		out.Projects[i] = proj
	}
	if p.Projects == nil {
		out.Projects = nil
	}
	return out
}

// FirstName returns the first whitespace separated token of the name.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// MailTo returns a mailto: URI for the profile email, or "" when unset.
func (p Profile) MailTo() string {
	if p.Email == "" {
		return ""
	}
	return "mailto:" + p.Email
}
