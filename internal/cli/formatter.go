package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/idelchi/bigfiles/internal/bigfiles"
	"github.com/idelchi/bigfiles/internal/sizespec"
)

const (
	// separatorWidth is the width of the dashed line under the table header.
	separatorWidth = 80
	// labelWidth pads the size column label so "Path" lines up.
	labelWidth = 15
	// sizeWidth right-aligns the size values under the label.
	sizeWidth = 14
)

// PrintBanner announces the scan target and threshold before the walk
// starts.
func PrintBanner(directory string, threshold sizespec.Threshold, writer io.Writer) {
	fmt.Fprintf(writer, "Scanning %q for files >= %s %s...\n\n", directory, threshold.Amount(), threshold.Unit)
}

// sortBySize orders records largest first. Ties keep discovery order.
func sortBySize(records []bigfiles.FileRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Size > records[j].Size
	})
}

// PrintJSON outputs the scan result in JSON format, records sorted by
// descending size.
func PrintJSON(result *bigfiles.Result, writer io.Writer) error {
	sortBySize(result.Records)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan result as a fixed-width table: elapsed
// time, a header labeled with the display unit, one row per record with
// the size right-aligned to two decimals, and a trailer with matched and
// scanned counts.
func PrintTable(result *bigfiles.Result, threshold sizespec.Threshold, writer io.Writer) error {
	sortBySize(result.Records)

	fmt.Fprintf(writer, "Scanned in: %.2fs\n", result.Elapsed.Seconds())
	fmt.Fprintf(writer, "%-*s Path\n", labelWidth, fmt.Sprintf("Size (%s)", threshold.Unit))
	fmt.Fprintln(writer, strings.Repeat("-", separatorWidth))

	for _, record := range result.Records {
		fmt.Fprintf(writer, "%*.2f  %s\n", sizeWidth, threshold.Convert(record.Size), record.Path)
	}

	fmt.Fprintf(writer, "\nTotal: %d files (scanned %d files)\n", len(result.Records), result.ScannedCount)

	return nil
}
