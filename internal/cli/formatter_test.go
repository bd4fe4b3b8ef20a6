package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/bigfiles/internal/bigfiles"
	"github.com/idelchi/bigfiles/internal/cli"
	"github.com/idelchi/bigfiles/internal/sizespec"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer

	cli.PrintBanner(".", sizespec.Parse("100"), &buf)
	assert.Equal(t, "Scanning \".\" for files >= 100 MB...\n\n", buf.String())

	buf.Reset()
	cli.PrintBanner("/data", sizespec.Parse("1.5gb"), &buf)
	assert.Equal(t, "Scanning \"/data\" for files >= 1.5 GB...\n\n", buf.String())
}

func TestPrintTable(t *testing.T) {
	result := &bigfiles.Result{
		Records: []bigfiles.FileRecord{
			{Path: "one.bin", Size: 150 * 1024 * 1024},
			{Path: "big/two.bin", Size: 200 * 1024 * 1024},
		},
		ScannedCount: 5,
		Elapsed:      1230 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, cli.PrintTable(result, sizespec.Parse("100"), &buf))

	want := "Scanned in: 1.23s\n" +
		"Size (MB)       Path\n" +
		strings.Repeat("-", 80) + "\n" +
		"        200.00  big/two.bin\n" +
		"        150.00  one.bin\n" +
		"\n" +
		"Total: 2 files (scanned 5 files)\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cli.PrintTable(&bigfiles.Result{}, sizespec.Parse("100"), &buf))

	want := "Scanned in: 0.00s\n" +
		"Size (MB)       Path\n" +
		strings.Repeat("-", 80) + "\n" +
		"\n" +
		"Total: 0 files (scanned 0 files)\n"

	assert.Equal(t, want, buf.String())
}

func TestPrintTableGBUnit(t *testing.T) {
	result := &bigfiles.Result{
		Records: []bigfiles.FileRecord{
			{Path: "movie.mkv", Size: 1536 * 1024 * 1024},
		},
		ScannedCount: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, cli.PrintTable(result, sizespec.Parse("1g"), &buf))

	assert.Contains(t, buf.String(), "Size (GB)       Path\n")
	assert.Contains(t, buf.String(), "          1.50  movie.mkv\n")
}

func TestPrintJSONSortsDescending(t *testing.T) {
	result := &bigfiles.Result{
		Records: []bigfiles.FileRecord{
			{Path: "small.bin", Size: 10},
			{Path: "large.bin", Size: 30},
			{Path: "mid.bin", Size: 20},
		},
		ScannedCount: 7,
	}

	var buf bytes.Buffer
	require.NoError(t, cli.PrintJSON(result, &buf))

	var decoded bigfiles.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Records, 3)
	assert.Equal(t, "large.bin", decoded.Records[0].Path)
	assert.Equal(t, "mid.bin", decoded.Records[1].Path)
	assert.Equal(t, "small.bin", decoded.Records[2].Path)
	assert.EqualValues(t, 7, decoded.ScannedCount)
}

// Displayed MB values must reproduce the original byte count within the
// tolerance of the printed two-decimal precision.
func TestDisplayedSizeRoundTrip(t *testing.T) {
	const size = int64(123456789)

	threshold := sizespec.Parse("100")
	displayed := threshold.Convert(size)

	rounded := float64(int64(displayed*100+0.5)) / 100
	back := rounded * 1024 * 1024

	assert.InDelta(t, float64(size), back, 0.005*1024*1024)
}
