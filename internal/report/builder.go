// =============================================================================
// Compute Sales - Report Builder Module
// =============================================================================
//
// This module renders the sales report: one section per sales record file
// with a line-item table, warnings, the file total and the running time,
// plus a closing summary for the whole run. Summary mode collapses the
// per-file sections into a single totals table.
//
// All rendering goes through the Sink, so the console and the report file
// always carry identical content.
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/compute-sales/internal/aggregator"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// FileTotal is one row of the summary table.
type FileTotal struct {
	// Label identifies the sales record file, as given on the command line.
	Label string

	// TotalCost is the file's aggregated cost.
	TotalCost decimal.Decimal
}

// RunStats counts the files of a batch run for the closing section.
type RunStats struct {
	// Processed is the number of sales record files attempted.
	Processed int

	// Succeeded is the number of files that loaded and aggregated.
	Succeeded int

	// Failed is the number of files that could not be loaded.
	Failed int
}

// Builder renders report sections to a Sink.
type Builder struct {
	sink           Sink
	currencyPrefix string
}

// NewBuilder returns a Builder rendering money with the given currency
// prefix.
func NewBuilder(sink Sink, currencyPrefix string) *Builder {
	return &Builder{sink: sink, currencyPrefix: currencyPrefix}
}

// =============================================================================
// PER-FILE SECTIONS
// =============================================================================

// FileSection renders one sales record file's full section: header,
// line-item table, warnings, file total and running time.
func (b *Builder) FileSection(label string, res aggregator.Result, elapsed time.Duration) {
	b.sink.Emit(sectionHeader(label))
	b.lineTable(res.Lines)
	for _, w := range res.Warnings {
		b.sink.Emit("WARNING: " + w.Message)
	}
	b.sink.Emit("Total cost of sales: " + b.money(res.TotalCost))
	b.sink.Emit(executionLine(elapsed))
	b.sink.Emit("")
}

// FileSectionError renders the section for a sales record file that could
// not be loaded.
func (b *Builder) FileSectionError(label string, err error) {
	b.sink.Emit(sectionHeader(label))
	b.sink.Emit("ERROR: " + err.Error())
	b.sink.Emit("")
}

// =============================================================================
// SUMMARY MODE
// =============================================================================

// WarningLine renders one warning prefixed with its file label. Summary mode
// has no per-file section to carry warnings, so they are emitted inline.
func (b *Builder) WarningLine(label string, w aggregator.Warning) {
	b.sink.Emit(fmt.Sprintf("WARNING [%s]: %s", label, w.Message))
}

// ErrorLine renders a load failure prefixed with its file label, used in
// summary mode.
func (b *Builder) ErrorLine(label string, err error) {
	b.sink.Emit(fmt.Sprintf("ERROR [%s]: %v", label, err))
}

// SummaryTable renders the single-table summary: one row per successfully
// processed file, then the grand total and running time.
func (b *Builder) SummaryTable(totals []FileTotal, grand decimal.Decimal, elapsed time.Duration) {
	b.sink.Emit("=== Sales Summary ===")

	buf := &bytes.Buffer{}
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"File", "Total Cost"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, t := range totals {
		table.Append([]string{t.Label, b.money(t.TotalCost)})
	}
	table.Render()
	b.emitLines(buf)

	b.sink.Emit("Total cost of sales: " + b.money(grand))
	b.sink.Emit(executionLine(elapsed))
	b.sink.Emit("")
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary renders the closing section of a detail-mode run.
func (b *Builder) RunSummary(stats RunStats, grand decimal.Decimal, elapsed time.Duration) {
	b.sink.Emit("=== Processing Complete ===")
	b.sink.Emit(fmt.Sprintf("Files processed: %d", stats.Processed))
	b.sink.Emit(fmt.Sprintf("Succeeded:       %d", stats.Succeeded))
	b.sink.Emit(fmt.Sprintf("Failed:          %d", stats.Failed))
	b.sink.Emit("Total cost of sales: " + b.money(grand))
	b.sink.Emit(executionLine(elapsed))
}

// =============================================================================
// RENDERING HELPERS
// =============================================================================

// lineTable renders the per-file line-item table. An empty file still gets
// the table frame so every section has the same shape.
func (b *Builder) lineTable(lines []aggregator.LineResult) {
	buf := &bytes.Buffer{}
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"Product", "Quantity", "Unit Price", "Subtotal"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, line := range lines {
		table.Append([]string{
			line.Product,
			line.Quantity.String(),
			b.money(line.UnitPrice),
			b.money(line.Subtotal),
		})
	}
	table.Render()
	b.emitLines(buf)
}

// emitLines feeds rendered table output through the sink one line at a
// time, so tables land in both destinations like any other report line.
func (b *Builder) emitLines(buf *bytes.Buffer) {
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		b.sink.Emit(line)
	}
}

// money formats an amount with the configured currency prefix and two
// decimal places.
func (b *Builder) money(amount decimal.Decimal) string {
	return b.currencyPrefix + amount.StringFixed(2)
}

func sectionHeader(label string) string {
	return fmt.Sprintf("=== Sales Report: %s ===", label)
}

// executionLine formats the running time with six decimal places.
func executionLine(elapsed time.Duration) string {
	return fmt.Sprintf("Execution time: %.6f seconds", elapsed.Seconds())
}
