package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"animalscraper/internal/downloader"

	"github.com/stretchr/testify/assert"
)

func TestPrinterWithoutTerminalHasNoColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintInfo("Output", "tmp/images")
	p.PrintError("Failed to parse", "no table")

	assert.Equal(t, "Output: tmp/images\nFailed to parse: no table\n", buf.String())
}

func TestQuietPrinterOnlyReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.PrintLogo()
	p.PrintInfo("Output", "tmp/images")
	p.PrintSuccess("done")
	p.PrintWarning("careful")
	p.PrintSummary(downloader.Summary{Total: 1, Saved: 1})
	assert.Empty(t, buf.String())
	assert.Equal(t, io.Discard, p.Writer())

	p.PrintError("boom")
	assert.Equal(t, "boom\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintSummary(downloader.Summary{
		Total: 5, Saved: 2, Skipped: 1, NoImage: 1, Failed: 1,
		Bytes: 2048, Duration: 1500 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "Animals: 5")
	assert.Contains(t, out, "Saved: 2 (2.0 KiB)")
	assert.Contains(t, out, "Already present: 1")
	assert.Contains(t, out, "Without image: 1")
	assert.Contains(t, out, "Failed: 1")
	assert.Contains(t, out, "Elapsed: 1.5s")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KiB", formatBytes(1536))
	assert.Equal(t, "3.0 MiB", formatBytes(3*1024*1024))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
}
