package printers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
