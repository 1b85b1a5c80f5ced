package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterUsesColumnOrder(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Columns: []Column{{Key: "email", Label: "Email"}, {Key: "overall"}},
		Rows: []map[string]string{
			{"overall": "5", "email": "pax@example.com"},
			{"email": "other@example.com"},
		},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Email,overall", lines[0])
	assert.Equal(t, "pax@example.com,5", lines[1])
	assert.Equal(t, "other@example.com,", lines[2])
}

func TestCSVExporterRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRenderSummary(t *testing.T) {
	out, err := NewPDFExporter().RenderSummary(Summary{
		Title:       "Vendor Registration",
		Subtitle:    "Acme Air Charter",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Sections: []Section{
			{Heading: "Company", Fields: []Field{{Label: "Company name", Value: "Acme Air Charter"}, {Label: "Website"}}},
			{Heading: "Empty"},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewPDFExporter().RenderSummary(Summary{})
	assert.Error(t, err)
}
