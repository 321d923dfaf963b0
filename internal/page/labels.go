package page

import "golang.org/x/text/language"

// Locale is the only language the page is written in.
var Locale = language.Turkish

// Section titles, navigation and fixed copy. The page has a single locale so
// these are plain constants rather than a message catalog.
const (
	navAbout     = "Hakkımda"
	navProjects  = "Projeler"
	navSkills    = "Beceriler"
	navEducation = "Eğitim"
	navContact   = "İletişim"

	titleAbout     = "Hakkımda"
	titleProjects  = "Öne Çıkan Projeler"
	titleSkills    = "Beceriler"
	titleEducation = "Eğitim"
	titleContact   = "İletişim"

	greetingFormat = "Merhaba, ben %s 👋"
	greetingBare   = "Merhaba 👋"
	ctaProjects    = "Projelerime göz at"
	ctaResume      = "Özgeçmiş (PDF)"
	livePreview    = "Canlı Önizleme"

	quickFacts    = "Hızlı Bilgiler"
	factWebsite   = "Portföy:"
	factEmail     = "E‑posta:"
	factPhone     = "Telefon:"
	factLocation  = "Lokasyon:"
	formTitle     = "Bana yaz"
	formName      = "Ad Soyad"
	formEmail     = "E‑posta"
	formMessage   = "Mesaj"
	formSubmit    = "Gönder"
	formNote      = "(Demo form – canlıya taşırken Formspree, Getform veya kendi backend'inle bağlayabilirsin.)"
	copyrightText = "© %d %s. Tüm hakları saklıdır."
)
