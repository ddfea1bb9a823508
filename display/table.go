package display

import (
	"github.com/pterm/pterm"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/jobs"
)

// TableHeader is the header row of every job table
var TableHeader = []string{"id", "Company", "Title", "Type", "Status"}

// Row is one rendered job: plain-text cells plus the color of the status cell
type Row struct {
	Cells  []string
	Status jobs.Status
	Color  pterm.Color
}

// TableModel is the row-oriented table built from job records
type TableModel struct {
	Header []string
	Rows   []Row
}

// BuildTable produces one row per record, in input order. Rows are never
// filtered, deduplicated or sorted.
func BuildTable(records []jobs.Job) TableModel {
	model := TableModel{
		Header: append([]string(nil), TableHeader...),
		Rows:   make([]Row, 0, len(records)),
	}

	for _, job := range records {
		model.Rows = append(model.Rows, Row{
			Cells: []string{
				job.ID.String(),
				job.Company,
				job.Title,
				job.Type,
				job.Status.String(),
			},
			Status: job.Status,
			Color:  StatusColor(job.Status),
		})
	}

	return model
}

// Data returns the table as pterm rows, header first, status cells colored
func (m TableModel) Data() pterm.TableData {
	data := make(pterm.TableData, 0, len(m.Rows)+1)
	data = append(data, append([]string(nil), m.Header...))

	for _, row := range m.Rows {
		cells := append([]string(nil), row.Cells...)
		if last := len(cells) - 1; last >= 0 {
			cells[last] = row.Color.Sprint(cells[last])
		}
		data = append(data, cells)
	}
	return data
}

// Render draws the table inside a borderless, padded frame
func (r Renderer) Render(model TableModel) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(model.Data()).
		Srender()
	if err != nil {
		return "", errors.WrapRender(err, "failed to render job table")
	}

	framed := blankBox().Sprint(table)
	if r.Center {
		framed = pterm.DefaultCenter.Sprint(framed)
	}
	return framed, nil
}

// Render draws the table with the default renderer
func Render(model TableModel) (string, error) {
	return DefaultRenderer.Render(model)
}

// blankBox is a frame whose border is drawn with spaces: padding only
func blankBox() *pterm.BoxPrinter {
	return pterm.DefaultBox.
		WithTopPadding(0).
		WithBottomPadding(0).
		WithLeftPadding(1).
		WithRightPadding(1).
		WithVerticalString(" ").
		WithHorizontalString(" ").
		WithTopLeftCornerString(" ").
		WithTopRightCornerString(" ").
		WithBottomLeftCornerString(" ").
		WithBottomRightCornerString(" ")
}
