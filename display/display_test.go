package display

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/jobs"
)

var plain = Renderer{Center: false}

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status jobs.Status
		want   pterm.Color
	}{
		{jobs.StatusAccepted, pterm.FgLightGreen},
		{jobs.StatusApplied, pterm.FgLightYellow},
		{jobs.StatusRejected, pterm.FgLightRed},
		{"Pending", DefaultStatusColor},
		{"accepted", DefaultStatusColor},
		{" Accepted", DefaultStatusColor},
		{"Rejected ", DefaultStatusColor},
		{"", DefaultStatusColor},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusColor(tt.status))
		})
	}

	assert.Equal(t, pterm.FgLightYellow, DefaultStatusColor, "default reuses the Applied color")
}

func TestBuildTable_SingleRecord(t *testing.T) {
	model := BuildTable([]jobs.Job{
		{ID: "1", Company: "Acme", Title: "Engineer", Type: "FT", Status: jobs.StatusAccepted},
	})

	assert.Equal(t, []string{"id", "Company", "Title", "Type", "Status"}, model.Header)
	require.Len(t, model.Rows, 1)
	assert.Equal(t, []string{"1", "Acme", "Engineer", "FT", "Accepted"}, model.Rows[0].Cells)
	assert.Equal(t, pterm.FgLightGreen, model.Rows[0].Color)
	assert.Equal(t, jobs.StatusAccepted, model.Rows[0].Status)
}

func TestBuildTable_Empty(t *testing.T) {
	for _, records := range [][]jobs.Job{nil, {}} {
		model := BuildTable(records)
		assert.Empty(t, model.Rows)
		assert.Equal(t, TableHeader, model.Header)

		data := model.Data()
		require.Len(t, data, 1, "header row only")
		assert.Equal(t, TableHeader, data[0])
	}
}

func TestBuildTable_PreservesOrder(t *testing.T) {
	records := []jobs.Job{
		{ID: "9", Company: "Zeta", Status: jobs.StatusRejected},
		{ID: "2", Company: "Acme", Status: "Pending"},
		{ID: "9", Company: "Zeta", Status: jobs.StatusRejected},
		{ID: "5", Company: "Initech", Status: jobs.StatusApplied},
	}

	model := BuildTable(records)
	require.Len(t, model.Rows, len(records))
	for i, job := range records {
		assert.Equal(t, job.ID.String(), model.Rows[i].Cells[0])
		assert.Equal(t, job.Company, model.Rows[i].Cells[1])
		assert.Equal(t, StatusColor(job.Status), model.Rows[i].Color)
	}
	assert.Equal(t, DefaultStatusColor, model.Rows[1].Color, "unmapped status gets the default")
}

func TestBuildTable_DoesNotAliasHeader(t *testing.T) {
	model := BuildTable(nil)
	model.Header[0] = "changed"
	assert.Equal(t, "id", TableHeader[0])
}

func TestData_ColorsStatusOnly(t *testing.T) {
	model := BuildTable([]jobs.Job{
		{ID: "1", Company: "Acme", Title: "Engineer", Type: "FT", Status: jobs.StatusRejected},
	})

	data := model.Data()
	require.Len(t, data, 2)
	assert.Equal(t, pterm.FgLightRed.Sprint("Rejected"), data[1][4])
	assert.Equal(t, "Acme", data[1][1])
	assert.Equal(t, "Rejected", model.Rows[0].Cells[4], "model cells stay plain")
}

func TestRender(t *testing.T) {
	model := BuildTable([]jobs.Job{
		{ID: "1", Company: "Acme", Title: "Engineer", Type: "FT", Status: jobs.StatusAccepted},
		{ID: "2", Company: "Globex", Title: "Analyst", Type: "PT", Status: "Pending"},
	})

	out, err := plain.Render(model)
	require.NoError(t, err)

	for _, want := range []string{"id", "Company", "Title", "Type", "Status", "Acme", "Engineer", "FT", "Accepted", "Globex", "Pending"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Acme"), strings.Index(out, "Globex"), "rows keep input order")
	assert.Less(t, strings.Index(out, "Company"), strings.Index(out, "Acme"), "header comes first")
}

func TestRender_ColorsStatusCell(t *testing.T) {
	pterm.EnableColor()
	defer pterm.DisableColor()

	model := BuildTable([]jobs.Job{
		{ID: "1", Company: "Acme", Title: "Engineer", Type: "FT", Status: jobs.StatusAccepted},
		{ID: "2", Company: "Globex", Title: "Analyst", Type: "PT", Status: "Pending"},
	})

	out, err := plain.Render(model)
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[92mAccepted\x1b[0m")
	assert.Contains(t, out, "\x1b[93mPending\x1b[0m", "unmapped status falls back to yellow")
	assert.NotContains(t, out, "\x1b[92mAcme")
	assert.NotContains(t, out, "\x1b[93mGlobex")

	data := model.Data()
	for _, cell := range data[1][:4] {
		assert.NotContains(t, cell, "\x1b", "only the status cell is colored")
	}
	assert.Equal(t, "\x1b[92mAccepted\x1b[0m", data[1][4])
}

func TestRender_HeaderOnly(t *testing.T) {
	out, err := plain.Render(BuildTable(nil))
	require.NoError(t, err)
	assert.Contains(t, out, "Company")
	assert.NotContains(t, out, "Accepted")
}

func TestRenderBanner(t *testing.T) {
	out, err := plain.RenderBanner("Jobs")
	require.NoError(t, err)

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	assert.Greater(t, strings.Count(out, "\n"), 3, "block letters span several lines")
}

func TestRenderBanner_Rejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"glyph missing from font", "Jobs ☃"},
		{"tab", "Jobs\tX"},
		{"newline", "Jobs\nX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := plain.RenderBanner(tt.text)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.IsRenderError(err))
		})
	}
}

func TestMissingGlyphs(t *testing.T) {
	assert.Empty(t, missingGlyphs("Job Applications"))
	assert.Equal(t, []rune{'☃'}, missingGlyphs("☃ ☃ A"))
	assert.Equal(t, []rune{'\t'}, missingGlyphs("Jobs\tX"))
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ClearScreen(&buf))
	assert.Equal(t, "\033[H\033[2J", buf.String())
}
