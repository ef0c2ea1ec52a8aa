package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// agenda workbook column headers
var agendaHeaders = []string{"Date", "Title", "Type", "Sub-type", "Priority", "Process", "Status"}

// GenerateAgendaWorkbook renders the deadline agenda as an Excel workbook
// for offline circulation in the office.
func GenerateAgendaWorkbook(entries []AgendaEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Agenda"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range agendaHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	for row, e := range entries {
		values := []interface{}{
			e.Date,
			e.Title,
			e.Type,
			e.SubType,
			e.Priority,
			e.ProcessNumber,
			agendaStatusLabel(e),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "F", 20)
	f.SetColWidth(sheet, "G", "G", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func agendaStatusLabel(e AgendaEntry) string {
	switch {
	case e.Completed:
		return "Completed"
	case e.Overdue:
		return "Overdue"
	case e.Urgent:
		return "Urgent"
	default:
		return "Pending"
	}
}
