// Package export renders the statutory outputs: tax XML, spreadsheet
// workbook, PDF documents and the optional Google Sheets snapshot. Renderers
// are pure functions of their inputs and never touch the journal.
package export

import (
	"encoding/xml"
	"fmt"

	"spolek/internal/report"
)

// pisemnost mirrors the simplified filing schema of the tax portal upload.
type pisemnost struct {
	XMLName xml.Name      `xml:"Pisemnost"`
	Data    pisemnostData `xml:"Data"`
}

type pisemnostData struct {
	Prijmy int64 `xml:"Prijmy"`
	Vydaje int64 `xml:"Vydaje"`
}

// TaxXML renders the tax filing document. Amounts are whole CZK.
func TaxXML(s report.Summary) ([]byte, error) {
	doc := pisemnost{Data: pisemnostData{
		Prijmy: s.TotalIncome / 100,
		Vydaje: s.TotalExpense / 100,
	}}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tax xml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
