package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"spolek/internal/core"
	"spolek/internal/report"
)

var xlsxRowLabels = map[core.Language][]string{
	core.Czech: {
		"Celkové příjmy",
		"Celkové výdaje",
		"Hospodářský výsledek",
		"Výsledek hlavní činnosti",
		"Výsledek vedlejší činnosti",
		"Odhad daně",
	},
	core.English: {
		"Total income",
		"Total expenses",
		"Economic result",
		"Main activity result",
		"Secondary activity result",
		"Estimated tax",
	},
}

// SummaryXLSX renders the report summary as a one-sheet workbook. Amounts
// are in CZK.
func SummaryXLSX(s report.Summary, lang core.Language) ([]byte, error) {
	labels, ok := xlsxRowLabels[lang]
	if !ok {
		labels = xlsxRowLabels[core.Czech]
	}
	values := []int64{
		s.TotalIncome,
		s.TotalExpense,
		s.Balance,
		s.MainResult,
		s.SecondaryResult,
		s.EstimatedTax,
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for i, label := range labels {
		row := i + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label); err != nil {
			return nil, fmt.Errorf("write label row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), float64(values[i])/100); err != nil {
			return nil, fmt.Errorf("write value row %d: %w", row, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
