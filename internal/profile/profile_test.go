package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Name = "changed"
	a.Skills[0] = "changed"
	a.Projects[0].Stack[0] = "changed"
	a.Socials = append(a.Socials, Social{Label: "X"})

	b := Default()
	assert.Equal(t, "Civan Şanlı", b.Name)
	assert.Equal(t, "HTML", b.Skills[0])
	assert.Equal(t, "Node.js", b.Projects[0].Stack[0])
	assert.Len(t, b.Socials, 2)
}

func TestCloneKeepsNilSequences(t *testing.T) {
	p := Profile{Name: "Ada Lovelace"}
	c := p.Clone()
	assert.Nil(t, c.Projects)
	assert.Empty(t, c.Skills)
	assert.Empty(t, c.Socials)
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Ada Lovelace", want: "Ada"},
		{name: "Civan Şanlı", want: "Civan"},
		{name: "  Grace   Brewster Hopper ", want: "Grace"},
		{name: "Plato", want: "Plato"},
		{name: "", want: ""},
		{name: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Profile{Name: tt.name}.FirstName())
		})
	}
}

func TestMailTo(t *testing.T) {
	assert.Equal(t, "mailto:ada@example.com", Profile{Email: "ada@example.com"}.MailTo())
	assert.Equal(t, "", Profile{}.MailTo())
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{name: "minimal", mutate: func(p *Profile) {}},
		{name: "empty sequences", mutate: func(p *Profile) {
			p.Socials, p.Skills, p.Education, p.Projects = nil, nil, nil, nil
		}},
		{name: "missing name", mutate: func(p *Profile) { p.Name = "" }, wantErr: true},
		{name: "bad email", mutate: func(p *Profile) { p.Email = "not-an-email" }, wantErr: true},
		{name: "social without href", mutate: func(p *Profile) {
			p.Socials = []Social{{Label: "GitHub", Icon: IconGitHub}}
		}, wantErr: true},
		{name: "social with relative garbage", mutate: func(p *Profile) {
			p.Socials = []Social{{Label: "GitHub", Href: "github.com/ada"}}
		}, wantErr: true},
		{name: "project placeholder link", mutate: func(p *Profile) {
			p.Projects = []Project{{Title: "X", Stack: []string{"A", "B"}, Link: "#"}}
		}},
		{name: "project with empty stack item", mutate: func(p *Profile) {
			p.Projects = []Project{{Title: "X", Stack: []string{"A", ""}}}
		}, wantErr: true},
		{name: "empty skill", mutate: func(p *Profile) { p.Skills = []string{"Go", ""} }, wantErr: true},
		{name: "education without school", mutate: func(p *Profile) {
			p.Education = []Education{{Year: "2025"}}
		}, wantErr: true},
		{name: "website with ftp link", mutate: func(p *Profile) {
			p.Website = Link{Label: "files", Href: "ftp://example.com"}
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{Name: "Ada Lovelace", Email: "ada@example.com"}
			tt.mutate(&p)
			err := Validate(p)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validate profile:")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsLink(t *testing.T) {
	valid := []string{
		"#",
		"#projects",
		"/cv.pdf",
		"https://www.linkedin.com/in/civan-%C5%9Fanl%C4%B1-8146b0268/",
		"http://localhost:8080",
		"mailto:civan@aivon.com",
	}
	for _, s := range valid {
		assert.True(t, IsLink(s), s)
	}

	invalid := []string{
		"",
		"# broken anchor",
		"//cdn.example.com/x.js",
		"https://",
		"mailto:",
		"javascript:alert(1)",
		"example.com",
	}
	for _, s := range invalid {
		assert.False(t, IsLink(s), s)
	}
}
