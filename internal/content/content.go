// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import "strconv"

// Event is one entry in the day's program. The card shows Icon, Time and
// Title on the front and Details on the back.
type Event struct {
	Time     string `toml:"time" yaml:"time" json:"time"`
	Title    string `toml:"title" yaml:"title" json:"title"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle"`
	Icon     string `toml:"icon" yaml:"icon" json:"icon"`
	Details  string `toml:"details" yaml:"details" json:"details"`
}

// FAQItem is a question with a Markdown answer.
type FAQItem struct {
	Question string `toml:"question" yaml:"question" json:"question"`
	Answer   string `toml:"answer" yaml:"answer" json:"answer"`
}

// Photo is one archive image.
type Photo struct {
	File    string `toml:"file" yaml:"file" json:"file"`
	Caption string `toml:"caption" yaml:"caption" json:"caption"`
}

// Invitation is everything the content page renders.
type Invitation struct {
	Greeting string `toml:"greeting" yaml:"greeting" json:"greeting"`
	Title    string `toml:"title" yaml:"title" json:"title"`
	// Highlight is the part of Title drawn in the accent colour.
	Highlight  string `toml:"highlight" yaml:"highlight" json:"highlight"`
	Date       string `toml:"date" yaml:"date" json:"date"`
	ScrollHint string `toml:"scroll_hint" yaml:"scroll_hint" json:"scroll_hint"`

	ProgramTitle string  `toml:"program_title" yaml:"program_title" json:"program_title"`
	Timeline     []Event `toml:"timeline" yaml:"timeline" json:"timeline"`

	ArchiveTitle       string  `toml:"archive_title" yaml:"archive_title" json:"archive_title"`
	ArchiveDescription string  `toml:"archive_description" yaml:"archive_description" json:"archive_description"`
	Archive            []Photo `toml:"archive" yaml:"archive" json:"archive"`

	FAQTitle       string    `toml:"faq_title" yaml:"faq_title" json:"faq_title"`
	FAQDescription string    `toml:"faq_description" yaml:"faq_description" json:"faq_description"`
	FAQ            []FAQItem `toml:"faq" yaml:"faq" json:"faq"`

	Footer []string `toml:"footer" yaml:"footer" json:"footer"`
}

// Default returns the 2026 invitation.
func Default() *Invitation {
	return &Invitation{
		Greeting:   "Velkommen til",
		Title:      "Juleroerbord 🎄",
		Highlight:  "roer",
		Date:       "Lørdag 12. desember 2026",
		ScrollHint: "Se programmet",

		ProgramTitle: "Program",
		Timeline: []Event{
			{
				Time:     "10:45",
				Title:    "Treningsøkt",
				Subtitle: "Romaskin - NSR eller CR 💪",
				Icon:     "🏋️",
				Details:  "Start dagen med en treningsøkt på romaskin. Velg mellom NSR eller CR.",
			},
			{
				Time:     "13:15",
				Title:    "Badstue",
				Subtitle: "Sukkerbiten 🧖",
				Icon:     "🔥",
				Details:  "Slapp av i badstuen på Sukkerbiten etter treningen.",
			},
			{
				Time:     "18:15",
				Title:    "Vors",
				Subtitle: "Krebs gate 🥂",
				Icon:     "🍾",
				Details:  "Vi samles for vors i Krebs gate før vi drar videre.",
			},
			{
				Time:     "20:00",
				Title:    "Maxitaxi",
				Subtitle: "Transport til middag 🚕",
				Icon:     "🚖",
				Details:  "Maxitaxi henter oss og kjører til Stortorvet.",
			},
			{
				Time:     "20:30",
				Title:    "Middag",
				Subtitle: "Stortorvet → BA3 🍽️",
				Icon:     "🎄",
				Details:  "Julemiddag på Stortorvet, deretter videre til BA3!",
			},
		},

		ArchiveTitle: "Arkiv",
		Archive:      defaultArchive(),

		FAQTitle:       "FAQ",
		FAQDescription: "Ofte stilte spørsmål om julefeiringen 🎄",
		FAQ: []FAQItem{
			{
				Question: "Kommer jeg til å bli drita full?",
				Answer:   "Ja, Med unntak av badstuepils og byen, er dette et All inclusive opplegg (muringsgaranti).",
			},
			{
				Question: "Hva om jeg har en eller annen allergi (som ikke sitter i huet..)?",
				Answer:   "Det er selvfølgelig tatt hensyn til allergier for de det måtte gjelde.",
			},
			{
				Question: "Når er det greit å dra hjem?",
				Answer: "Det er greit å dra hjem om du:\n" +
					"1. Blir kasta ut (så lenge du fyrer litt til vakta mens det skjer)\n" +
					"2. Når lysene skrus på",
			},
		},

		Footer: []string{"🎁", "🍪", "❤️", "✨"},
	}
}

func defaultArchive() []Photo {
	files := []string{
		"archive-photo.jpeg",
		"archive-1.jpg",
		"archive-2.jpeg",
		"archive-3.jpeg",
		"archive-4.png",
		"archive-5.jpg",
		"archive-6.jpeg",
		"archive-7.jpg",
		"archive-8.jpg",
		"archive-9.jpeg",
		"archive-10.jpeg",
		"archive-12.jpeg",
	}
	photos := make([]Photo, len(files))
	for i, f := range files {
		photos[i] = Photo{File: f, Caption: "Arkivbilde " + strconv.Itoa(i+1)}
	}
	return photos
}

// Clone returns a deep copy of inv.
func (inv *Invitation) Clone() *Invitation {
	c := *inv
	c.Timeline = append([]Event(nil), inv.Timeline...)
	c.Archive = append([]Photo(nil), inv.Archive...)
	c.FAQ = append([]FAQItem(nil), inv.FAQ...)
	c.Footer = append([]string(nil), inv.Footer...)
	return &c
}

// fillDefaults replaces empty fields and sections with the defaults.
func (inv *Invitation) fillDefaults() {
	d := Default()
	if inv.Greeting == "" {
		inv.Greeting = d.Greeting
	}
	if inv.Title == "" {
		inv.Title = d.Title
		if inv.Highlight == "" {
			inv.Highlight = d.Highlight
		}
	}
	if inv.Date == "" {
		inv.Date = d.Date
	}
	if inv.ScrollHint == "" {
		inv.ScrollHint = d.ScrollHint
	}
	if inv.ProgramTitle == "" {
		inv.ProgramTitle = d.ProgramTitle
	}
	if len(inv.Timeline) == 0 {
		inv.Timeline = d.Timeline
	}
	if inv.ArchiveTitle == "" {
		inv.ArchiveTitle = d.ArchiveTitle
	}
	if len(inv.Archive) == 0 {
		inv.Archive = d.Archive
	}
	if inv.FAQTitle == "" {
		inv.FAQTitle = d.FAQTitle
	}
	if inv.FAQDescription == "" {
		inv.FAQDescription = d.FAQDescription
	}
	if len(inv.FAQ) == 0 {
		inv.FAQ = d.FAQ
	}
	if len(inv.Footer) == 0 {
		inv.Footer = d.Footer
	}
}
