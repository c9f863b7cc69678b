package main

import (
	"encoding/json"
	"os"
)

// outputJSON writes v to stdout as indented JSON. Used by every command when
// --json is set.
func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
