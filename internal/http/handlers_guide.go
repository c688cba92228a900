package http

import (
	"net/http"

	"spolek/internal/core"
)

// guidePoint is one numbered step of the how-to section.
type guidePoint struct {
	Heading string
	Text    string
}

type guideContent struct {
	Title       string
	Intro       string
	Points      []guidePoint
	Warning     string
	WarningText string
}

type guideData struct {
	Lang  string
	T     uiText
	Guide guideContent
}

var guideContents = map[core.Language]guideContent{
	core.Czech: {
		Title: "Jak vést účetnictví spolku",
		Intro: "Malý spolek s ročními příjmy do 3 milionů Kč může vést jednoduché účetnictví. " +
			"Stačí peněžní deník, kniha pohledávek a závazků a evidence majetku.",
		Points: []guidePoint{
			{
				Heading: "Peněžní deník",
				Text: "Zapisujte každý příjem a výdaj s datem, popisem a částkou. " +
					"Oddělujte hlavní (spolkovou) a vedlejší (hospodářskou) činnost.",
			},
			{
				Heading: "Daňové kategorie",
				Text: "Členské příspěvky a dary jsou zpravidla osvobozené. Příjmy z vedlejší " +
					"činnosti, třeba z reklamy nebo pronájmu, se daní sazbou 19 %.",
			},
			{
				Heading: "Roční uzávěrka",
				Text: "Na konci roku sestavte přehled hospodaření, proveďte inventarizaci " +
					"majetku a do 1. července podejte přiznání k dani z příjmů.",
			},
		},
		Warning: "Pozor na vedlejší činnost",
		WarningText: "Jakmile příjmy z vedlejší činnosti přesáhnou náklady na ni, vzniká " +
			"zdanitelný zisk. Veďte ji proto v deníku vždy odděleně.",
	},
	core.English: {
		Title: "How to keep the association's books",
		Intro: "A small association with annual income under 3 million CZK may keep " +
			"single-entry books. A cash journal, a receivables ledger and an asset " +
			"inventory are enough.",
		Points: []guidePoint{
			{
				Heading: "Cash journal",
				Text: "Record every income and expense with its date, description and " +
					"amount. Keep the main (mission) and secondary (commercial) activity apart.",
			},
			{
				Heading: "Tax categories",
				Text: "Membership fees and donations are usually exempt. Income from the " +
					"secondary activity, such as advertising or rent, is taxed at 19%.",
			},
			{
				Heading: "Year-end closing",
				Text: "At year end prepare the financial overview, take stock of the " +
					"assets and file the income tax return by July 1.",
			},
		},
		Warning: "Mind the secondary activity",
		WarningText: "Once income from the secondary activity exceeds its costs, the " +
			"surplus is taxable. Always keep it separate in the journal.",
	},
}

func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	lang := s.requestLanguage(r)
	content, ok := guideContents[lang]
	if !ok {
		content = guideContents[core.Czech]
	}
	s.render(w, r, "guide.html", guideData{
		Lang:  string(lang),
		T:     textsFor(lang),
		Guide: content,
	})
}
