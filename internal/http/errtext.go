package http

import (
	"errors"

	"spolek/internal/core"
)

// errText carries the user-facing error messages rendered into error
// fragments, one translation per language like uiText.
type errText struct {
	InvalidForm        string
	InvalidDate        string
	InvalidAmount      string
	InvalidEntry       string
	MissingDescription string
	InvalidType        string
	InvalidActivity    string
	InvalidTaxCat      string
	MissingEntryID     string
	EntryNotFound      string

	InvalidUpload    string
	MissingStatement string
	UploadRead       string
	UnsupportedFile  string
	NothingExtracted string
	SessionExpired   string
	ImportFailed     string

	EmptyQuestion string
	ImageRead     string
	AssistantOff  string
	AssistantDown string

	MissingItemID string
	ItemNotFound  string
	ToggleFailed  string
	ChecklistDown string

	MissingAgenda string
	EmptyMinutes  string
	InvalidAsset  string

	ExportFailed   string
	SheetsOff      string
	SnapshotFailed string

	RenderFailed string
}

var errTexts = map[core.Language]errText{
	core.Czech: {
		InvalidForm:        "Neplatná data formuláře",
		InvalidDate:        "Neplatné datum",
		InvalidAmount:      "Neplatná částka",
		InvalidEntry:       "Neplatný záznam",
		MissingDescription: "Chybí popis",
		InvalidType:        "Neplatný typ transakce",
		InvalidActivity:    "Neplatný typ činnosti",
		InvalidTaxCat:      "Neplatná daňová kategorie",
		MissingEntryID:     "Chybí identifikátor záznamu",
		EntryNotFound:      "Záznam nenalezen",

		InvalidUpload:    "Neplatný soubor",
		MissingStatement: "Chybí soubor s výpisem",
		UploadRead:       "Soubor se nepodařilo přečíst",
		UnsupportedFile:  "Nepodporovaný typ souboru",
		NothingExtracted: "Ze souboru se nepodařilo přečíst žádné transakce",
		SessionExpired:   "Relace importu vypršela",
		ImportFailed:     "Import se nezdařil",

		EmptyQuestion: "Prázdný dotaz",
		ImageRead:     "Obrázek se nepodařilo přečíst",
		AssistantOff:  "Asistent není nastaven",
		AssistantDown: "Asistent je nedostupný",

		MissingItemID: "Chybí identifikátor položky",
		ItemNotFound:  "Položka nenalezena",
		ToggleFailed:  "Položku se nepodařilo přepnout",
		ChecklistDown: "Checklist je nedostupný",

		MissingAgenda: "Chybí body programu",
		EmptyMinutes:  "Prázdný text zápisu",
		InvalidAsset:  "Neplatný majetek",

		ExportFailed:   "Export se nezdařil",
		SheetsOff:      "Synchronizace s tabulkou není nastavena",
		SnapshotFailed: "Odeslání snímku se nezdařilo",

		RenderFailed: "Stránku se nepodařilo vykreslit",
	},
	core.English: {
		InvalidForm:        "Invalid form data",
		InvalidDate:        "Invalid date",
		InvalidAmount:      "Invalid amount",
		InvalidEntry:       "Invalid entry",
		MissingDescription: "Missing description",
		InvalidType:        "Invalid transaction type",
		InvalidActivity:    "Invalid activity type",
		InvalidTaxCat:      "Invalid tax category",
		MissingEntryID:     "Missing entry id",
		EntryNotFound:      "Entry not found",

		InvalidUpload:    "Invalid upload",
		MissingStatement: "Missing statement file",
		UploadRead:       "Failed to read the file",
		UnsupportedFile:  "Unsupported file type",
		NothingExtracted: "Could not read any transactions from the file",
		SessionExpired:   "Import session expired",
		ImportFailed:     "Import failed",

		EmptyQuestion: "Empty question",
		ImageRead:     "Failed to read the image",
		AssistantOff:  "Assistant not configured",
		AssistantDown: "Assistant unavailable",

		MissingItemID: "Missing item id",
		ItemNotFound:  "Item not found",
		ToggleFailed:  "Failed to toggle the item",
		ChecklistDown: "Checklist unavailable",

		MissingAgenda: "Missing agenda points",
		EmptyMinutes:  "Empty minutes text",
		InvalidAsset:  "Invalid asset",

		ExportFailed:   "Export failed",
		SheetsOff:      "Spreadsheet sync not configured",
		SnapshotFailed: "Snapshot failed",

		RenderFailed: "Failed to render the page",
	},
}

func errorsFor(lang core.Language) errText {
	if t, ok := errTexts[lang]; ok {
		return t
	}
	return errTexts[core.Czech]
}

// validationMessage maps domain validation sentinels to the localized
// message shown in the feedback fragment.
func validationMessage(et errText, err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return et.InvalidAmount
	case errors.Is(err, core.ErrInvalidDate):
		return et.InvalidDate
	case errors.Is(err, core.ErrEmptyDescription):
		return et.MissingDescription
	case errors.Is(err, core.ErrInvalidType):
		return et.InvalidType
	case errors.Is(err, core.ErrInvalidActivity):
		return et.InvalidActivity
	case errors.Is(err, core.ErrInvalidTaxCat):
		return et.InvalidTaxCat
	default:
		return et.InvalidEntry
	}
}
