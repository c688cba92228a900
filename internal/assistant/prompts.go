package assistant

import (
	"fmt"

	"spolek/internal/core"
)

// The extraction prompts pin the model to the stable enum tags, never the
// display labels, so parsed output feeds the domain model directly.

const extractionSystem = "You are an accounting extraction system for Czech non-profit associations. " +
	"Output STRICT JSON only: no comments, no trailing commas, no Markdown fences."

const draftSchema = "Output a JSON array of objects, each with these fields:\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"description\": string, counterparty or purpose\n" +
	"- \"amount\": number, positive magnitude in CZK\n" +
	"- \"type\": \"INCOME\" or \"EXPENSE\"\n" +
	"- \"variableSymbol\": string payment reference, or null; use \"CASH\" for cash transactions\n" +
	"- \"suggestedActivity\": \"MAIN\" (mission activity) or \"SECONDARY\" (economic activity)\n" +
	"- \"suggestedTaxCategory\": one of \"TAXABLE\", \"NON_TAXABLE\", \"DEDUCTIBLE\", \"NON_DEDUCTIBLE\"\n" +
	"The array must begin with \"[\" and end with \"]\". Return an empty array when nothing is found.\n"

const documentPrompt = "Extract ALL transactions from the attached document (bank statement, invoice or receipt).\n\n" + draftSchema

func tabularPrompt(csvText string) string {
	return "Extract ALL transactions from the following CSV data.\n\n" + draftSchema + "\nDATA:\n" + csvText
}

func categorizeSystem(lang core.Language) string {
	if lang == core.English {
		return "You are an accounting assistant for Czech non-profit associations. Respond in JSON, reasoning in English."
	}
	return "Jsi účetní asistent pro české neziskové organizace. Odpovídej JSON, zdůvodnění česky."
}

func categorizePrompt(description string) string {
	return fmt.Sprintf("Analyze this transaction: %q. Determine its direction, activity and tax category under Czech non-profit law.\n"+
		"Output a single JSON object with fields:\n"+
		"- \"suggestedType\": \"INCOME\" or \"EXPENSE\"\n"+
		"- \"suggestedActivity\": \"MAIN\" or \"SECONDARY\"\n"+
		"- \"suggestedTaxCategory\": one of \"TAXABLE\", \"NON_TAXABLE\", \"DEDUCTIBLE\", \"NON_DEDUCTIBLE\"\n"+
		"- \"reasoning\": short string\n", description)
}

func advicePrompt(query, ledgerContext string, lang core.Language) string {
	if lang == core.English {
		return fmt.Sprintf("User asks: %q. Context: %s. You are an expert on Czech non-profit accounting and tax law. Answer in English, concisely.", query, ledgerContext)
	}
	return fmt.Sprintf("Uživatel se ptá: %q. Kontext: %s. Jsi expert na účetnictví a daně českých neziskovek. Odpovídej česky a stručně.", query, ledgerContext)
}

func updatesPrompt(lang core.Language) string {
	if lang == core.English {
		return "What are the current legislative updates for Czech non-profit associations (spolky) this year? Be concise."
	}
	return "Jaké jsou aktuální legislativní novinky pro české neziskové organizace (spolky) pro letošní rok? Buď stručný."
}

func minutesPrompt(req MinutesRequest) string {
	// Minutes are a Czech legal document, generated in Czech regardless of
	// the UI language.
	return fmt.Sprintf("Vytvoř formální text Zápisu ze schůze spolku.\nTyp schůze: %s\nDatum: %s\nPřítomni: %s\nProjednané body: %s\n"+
		"Výstup je čistý text zápisu bez dalších komentářů.",
		req.MeetingType, req.Date, req.Attendees, req.Points)
}

func replySystem(view string, lang core.Language) string {
	if lang == core.English {
		return fmt.Sprintf("You are the guide of the 'NeziskovkaPro' bookkeeping app. The user is looking at the %s view. Help with the app and Czech non-profit accounting. Answer in English.", view)
	}
	return fmt.Sprintf("Jsi průvodce aplikací 'NeziskovkaPro'. Aktuální pohled: %s. Pomáhej uživateli s aplikací a účetnictvím spolku. Odpovídej česky.", view)
}
