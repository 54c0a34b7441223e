package templates

import "trainingquote/services"

// QuotePageData is the full calculator page.
type QuotePageData struct {
	Title   string
	Company string
	Form    QuoteFormData
}

// QuoteFormData is the calculator form and its computed breakdown. It is
// re-rendered on every change; nothing is kept server-side between requests.
type QuoteFormData struct {
	Selection services.Selection
	Breakdown services.Breakdown
}
