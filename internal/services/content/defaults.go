package services

import "github.com/chatco/chatco-backend/internal/models"

// fallback is the built-in content served when a section key has no
// stored row. The registry mirrors the seeded sections so a wiped
// database still renders every public page.
type fallback struct {
	SectionType string
	Text        string
	Items       []string
}

var fallbacks = map[string]fallback{
	"about_title": {
		SectionType: models.SectionTypeText,
		Text:        "Kas yra Chatco?",
	},
	"about_content": {
		SectionType: models.SectionTypeText,
		Text:        "Chatco - tai moderni AI pokalbių platforma, sukurta lietuviams vartotojams.",
	},
	"about_who_title": {
		SectionType: models.SectionTypeText,
		Text:        "Kam skirta Chatco?",
	},
	"about_who_content": {
		SectionType: models.SectionTypeText,
		Text:        "Chatco skirta visiems, kuriems reikia greito ir aiškaus atsakymo.",
	},
	"about_benefits_title": {
		SectionType: models.SectionTypeText,
		Text:        "Privalumai",
	},
	"about_benefits_content": {
		SectionType: models.SectionTypeJSON,
		Items: []string{
			"Trumpi atsakymai be nereikalingos informacijos",
			"Viskas lietuvių kalba",
			"Paprasta ir aiški sąsaja",
			"14 dienų nemokamas bandomasis laikotarpis",
		},
	},
	"contact_intro": {
		SectionType: models.SectionTypeText,
		Text:        "Turite klausimų ar pasiūlymų? Susisiekite su mumis!",
	},
	"contact_email": {
		SectionType: models.SectionTypeText,
		Text:        "info@chatco.lt",
	},
	"contact_phone": {
		SectionType: models.SectionTypeText,
		Text:        "+370 600 00000",
	},
	"contact_address": {
		SectionType: models.SectionTypeText,
		Text:        "Vilnius, Lietuva",
	},
}
