// Package cli implements the yamlsimple command line: flag and environment
// configuration, logger setup, and one subcommand per document operation.
package cli
