package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var outputFormat string

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatTable, "output format: table, json or yaml")
}

// writeStructured renders v as json or yaml. It returns false for the table
// format, leaving the printing to the caller.
func writeStructured(w io.Writer, v any) (bool, error) {
	switch strings.ToLower(outputFormat) {
	case formatTable, "":
		return false, nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return true, fmt.Errorf("unknown format %q, use table, json or yaml", outputFormat)
}
