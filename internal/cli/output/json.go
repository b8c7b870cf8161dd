package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how CLI commands render their results.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// JSONFormatter renders results as one indented JSON document per
// call.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, data any) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
