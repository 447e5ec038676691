package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/limaJavier/cycle-timetabling/pkg/model"
)

// CSVExporter writes the same grid as ConsoleView: a header row of group names, then per day a row with the day and one row per slot
type CSVExporter struct {
	Comma rune
}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{Comma: ';'}
}

func (e *CSVExporter) Export(w io.Writer, data ScheduleData) error {
	if len(data.Groups) == 0 {
		return fmt.Errorf("csv requires at least one group")
	} else if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid schedule data: %w", err)
	}

	writer := csv.NewWriter(w)
	if e.Comma != 0 {
		writer.Comma = e.Comma
	}

	columns := len(data.Groups) + 1
	if err := writer.Write(append([]string{""}, data.GroupNames()...)); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, day := range model.Days() {
		record := make([]string, columns)
		record[0] = day.String()
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv day row: %w", err)
		}

		for slot := range data.LessonsPerDay {
			record := make([]string, columns)
			record[0] = strconv.FormatUint(slot+1, 10)
			for group := range data.Groups {
				record[group+1] = data.lesson(group, day, slot)
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
