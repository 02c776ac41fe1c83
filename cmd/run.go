// =============================================================================
// Compute Sales - Run Orchestration
// =============================================================================
//
// This file drives a full run: configuration, logging, catalogue indexing,
// per-file aggregation, report rendering and archival. The command layer
// stays thin; the domain work lives in the internal packages.
//
// PROCESSING PIPELINE:
//   1. Load configuration and build the logger
//   2. Open the report sink (console + report file)
//   3. Load and index the price catalogue (fatal on failure)
//   4. Load and aggregate each sales record file (failures skip the file)
//   5. Render per-file sections, or the summary table in summary mode
//   6. Flush, archive and apply archive retention
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ginjaninja78/compute-sales/internal/aggregator"
	"github.com/ginjaninja78/compute-sales/internal/catalogue"
	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/docloader"
	"github.com/ginjaninja78/compute-sales/internal/logging"
	"github.com/ginjaninja78/compute-sales/internal/report"
	"github.com/ginjaninja78/compute-sales/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// runCompute executes one full run, writing the report to console and,
// unless --no-save is given, to the report file.
//
// PARAMETERS:
//   - console: Destination for report output (stdout in production).
//   - args: The catalogue path followed by one or more sales record paths.
func runCompute(console io.Writer, args []string) error {
	startTime := time.Now()

	// Step 1: Configuration and logging.
	cfg, err := config.Load(cfgFile, rootCmd.PersistentFlags().Changed("config"))
	if err != nil {
		return err
	}

	maxArchiveAge, err := cfg.MaxArchiveAge()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cataloguePath := args[0]
	salesPaths := args[1:]

	outputPath := cfg.OutputFile
	if outputFile != "" {
		outputPath = outputFile
	}

	runID := uuid.NewString()
	logger.Info("starting run",
		zap.String("run_id", runID),
		zap.String("catalogue", cataloguePath),
		zap.Int("sales_files", len(salesPaths)),
		zap.Bool("summary", summaryMode),
	)

	// Step 2: Report sink. The report file is created up front, replacing
	// the previous run's report.
	var reportFile *os.File
	if !noSave {
		reportFile, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file %s: %w", outputPath, err)
		}
	}
	sink := report.NewTeeSink(console, reportFile)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("failed to close report file", zap.Error(err))
		}
	}()

	builder := report.NewBuilder(sink, cfg.CurrencyPrefix)

	// Step 3: The catalogue. Without it no sale can be priced, so a load
	// failure ends the run.
	catalogueDocs, err := docloader.Load(cataloguePath)
	if err != nil {
		sink.Emit("ERROR: " + err.Error())
		return err
	}

	index := catalogue.BuildIndex(catalogueDocs)
	logger.Info("catalogue indexed",
		zap.String("path", cataloguePath),
		zap.Int("records", len(catalogueDocs)),
		zap.Int("products", index.Len()),
	)
	if index.Len() == 0 {
		logger.Warn("catalogue contains no usable products", zap.String("path", cataloguePath))
	}

	// Step 4: Sales record files.
	var (
		grandTotal decimal.Decimal
		totals     []report.FileTotal
		stats      report.RunStats
	)
	stats.Processed = len(salesPaths)

	for _, path := range salesPaths {
		docs, err := docloader.Load(path)
		if err != nil {
			stats.Failed++
			logger.Error("sales record failed to load", zap.String("path", path), zap.Error(err))
			if summaryMode {
				builder.ErrorLine(path, err)
			} else {
				builder.FileSectionError(path, err)
			}
			continue
		}

		res := aggregator.Aggregate(index, docs)
		stats.Succeeded++
		grandTotal = grandTotal.Add(res.TotalCost)

		if summaryMode {
			totals = append(totals, report.FileTotal{Label: path, TotalCost: res.TotalCost})
			for _, w := range res.Warnings {
				builder.WarningLine(path, w)
			}
		} else {
			builder.FileSection(path, res, time.Since(startTime))
		}

		logger.Info("sales record processed",
			zap.String("path", path),
			zap.Int("entries", len(docs)),
			zap.Int("priced_lines", len(res.Lines)),
			zap.Int("warnings", len(res.Warnings)),
			zap.String("total", res.TotalCost.StringFixed(2)),
		)
	}

	// Step 5: Closing output.
	if summaryMode {
		builder.SummaryTable(totals, grandTotal, time.Since(startTime))
	} else {
		builder.RunSummary(stats, grandTotal, time.Since(startTime))
	}

	// Step 6: Flush and archive.
	if reportFile != nil {
		if err := sink.Flush(); err != nil {
			return err
		}
		if size, err := utils.GetFileSize(outputPath); err == nil {
			logger.Info("report written", zap.String("path", outputPath), zap.Int64("bytes", size))
		}

		if cfg.ArchiveDir != "" {
			archived, err := utils.ArchiveReport(outputPath, cfg.ArchiveDir)
			if err != nil {
				// Log and continue; the report itself is already on disk.
				logger.Warn("failed to archive report", zap.Error(err))
			} else {
				logger.Info("report archived", zap.String("path", archived))
				if maxArchiveAge > 0 {
					removed, err := utils.CleanOldArchives(cfg.ArchiveDir, maxArchiveAge)
					if err != nil {
						logger.Warn("failed to clean old archives", zap.Error(err))
					} else if removed > 0 {
						logger.Info("old archives removed", zap.Int("count", removed))
					}
				}
			}
		}
	}

	logger.Info("run complete",
		zap.String("run_id", runID),
		zap.Int("files", stats.Processed),
		zap.Int("succeeded", stats.Succeeded),
		zap.Int("failed", stats.Failed),
		zap.String("grand_total", grandTotal.StringFixed(2)),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return nil
}
