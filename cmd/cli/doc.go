// Package cli constructs the repoinit command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. Running the root command with no subcommand starts the
// interactive setup session.
package cli
