package results

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fai-plates/platemeta/internal/batch"
	"github.com/fai-plates/platemeta/internal/cards"
	"github.com/fai-plates/platemeta/internal/config"
)

func sampleReport() *Report {
	set := cards.NewSet()
	set.Set("RA-ORIG", "05:33:00")
	set.Set("EXPTIME", 1200.0)
	set.Set("NUMEXP", 1)

	return NewReport("logbook.csv", []batch.Result{
		{Path: "fai_0001.fits", PlateID: "0001", Cards: set},
		{Path: "fai_0002.fits", PlateID: "0002", Error: "plate not in logbook: 0002"},
		{Path: "fai_0003.fits", PlateID: "0003", Skipped: true},
	})
}

func TestNewReport(t *testing.T) {
	report := sampleReport()
	assert.Equal(t, "logbook.csv", report.Run.Logbook)
	assert.Equal(t, 3, report.Run.Total)
	assert.Equal(t, 1, report.Run.Annotated)
	assert.Equal(t, 1, report.Run.Skipped)
	assert.Equal(t, 1, report.Run.Failed)
	assert.NotEmpty(t, report.Run.Timestamp)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), config.FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "plate_id: \"0001\"")
	assert.Contains(t, out, "plate not in logbook: 0002")
	assert.Contains(t, out, "skipped: true")

	ra := strings.Index(out, "RA-ORIG")
	exp := strings.Index(out, "EXPTIME")
	num := strings.Index(out, "NUMEXP")
	assert.True(t, ra >= 0 && ra < exp && exp < num, "cards must keep insertion order:\n%s", out)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), config.FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"RA-ORIG": "05:33:00"`)
	assert.Less(t, strings.Index(out, "RA-ORIG"), strings.Index(out, "NUMEXP"))

	var decoded struct {
		Run     RunInfo `json:"run"`
		Results []struct {
			PlateID string         `json:"plate_id"`
			Cards   map[string]any `json:"cards"`
			Skipped bool           `json:"skipped"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Run.Total)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, 1200.0, decoded.Results[0].Cards["EXPTIME"])
	assert.Nil(t, decoded.Results[1].Cards)
	assert.True(t, decoded.Results[2].Skipped)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleReport(), "xml")
	assert.EqualError(t, err, "unsupported output format: xml")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	require.NoError(t, Save(path, sampleReport(), config.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plate_id": "0001"`)
}
