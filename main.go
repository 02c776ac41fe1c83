// =============================================================================
// Compute Sales - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Compute Sales CLI application. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   computesales <price-catalogue> <sales-record> [sales-record...]
//   computesales version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : CLI command definitions and run orchestration (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/compute-sales/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
