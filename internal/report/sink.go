// =============================================================================
// Compute Sales - Report Sink Module
// =============================================================================
//
// Report output goes through a single Sink so the console and the saved
// report file can never drift apart: every line the operator sees on stdout
// is the same line that lands in the report artifact.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Sink receives fully formatted report lines.
type Sink interface {
	// Emit writes one line (without trailing newline) to every destination.
	Emit(line string)
}

// TeeSink writes report lines to the console and, optionally, to a report
// file.
type TeeSink struct {
	console  io.Writer
	file     *os.File
	buffered *bufio.Writer
}

// NewTeeSink returns a sink that mirrors every line to console and file.
// A nil file gives a console-only sink.
func NewTeeSink(console io.Writer, file *os.File) *TeeSink {
	sink := &TeeSink{console: console, file: file}
	if file != nil {
		sink.buffered = bufio.NewWriter(file)
	}
	return sink
}

// Emit writes one report line to every destination. File write errors are
// sticky in the buffered writer and surface on Flush or Close.
func (s *TeeSink) Emit(line string) {
	fmt.Fprintln(s.console, line)
	if s.buffered != nil {
		fmt.Fprintln(s.buffered, line)
	}
}

// Flush forces buffered report lines out to the file.
func (s *TeeSink) Flush() error {
	if s.buffered == nil {
		return nil
	}
	if err := s.buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush report file: %w", err)
	}
	return nil
}

// Close flushes and closes the report file, if any.
func (s *TeeSink) Close() error {
	if s.file == nil {
		return nil
	}
	if err := s.Flush(); err != nil {
		return err
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
