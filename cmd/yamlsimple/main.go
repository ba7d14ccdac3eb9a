// Package main provides the CLI entrypoint for yamlsimple.
//
// yamlsimple reads and edits simple YAML configuration files by dotted
// key-path:
//   - list, get, has and export read a file
//   - set and add rewrite it in place
//   - lint reports lines the simple reader handles differently from YAML
package main

import (
	"os"

	"yamlsimple/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
