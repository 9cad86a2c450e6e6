// Command schema writes the JSON schema of the onepick config, embedded by pkg/config to verify
// config files before they are loaded. Run by go generate in pkg/config, the optional argument
// overrides the output path.
package main

import (
	"encoding/json"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/config"
)

const defaultOutput = "pkg/config/schema.json"

func main() {
	outputPath := defaultOutput
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		lgr.Fatalf("can't marshal config schema: %v", err)
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		lgr.Fatalf("can't write config schema to %s: %v", outputPath, err)
	}
	lgr.Printf("[INFO] config schema written to %s", outputPath)
}
