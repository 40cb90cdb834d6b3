package objmeasure

import (
	"fmt"
	"io"
	"strings"

	"github.com/latticevision/objmeasure/table"
)

// Fprint writes a human-readable tabular dump of t to w: a header row of
// feature names (each spanning its value columns), a sub-header of value
// labels and units, then one row per object prefixed by its identifier.
// Columns are tab-separated; values are formatted with six significant
// digits, matching spec section 6.
func Fprint(w io.Writer, t *table.Table) error {
	features := t.Features()

	var header strings.Builder
	header.WriteString("ID")
	var subHeader strings.Builder
	subHeader.WriteString("")

	for _, f := range features {
		values, err := t.ValuesOf(f.Name)
		if err != nil {
			return err
		}
		header.WriteString("\t" + f.Name)
		for i := 1; i < f.NumberValues; i++ {
			header.WriteString("\t")
		}
		for _, v := range values {
			label := v.Name
			if v.Unit != "" {
				label += " (" + v.Unit + ")"
			}
			subHeader.WriteString("\t" + label)
		}
	}

	if _, err := fmt.Fprintln(w, header.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, subHeader.String()); err != nil {
		return err
	}

	for _, id := range t.Objects() {
		var row strings.Builder
		fmt.Fprintf(&row, "%d", id)
		ov, err := t.ObjectByID(id)
		if err != nil {
			return err
		}
		for it := ov.FirstFeatureCell(); !it.IsAtEnd(); it = it.Next() {
			for _, v := range it.Cell() {
				fmt.Fprintf(&row, "\t%.6g", v)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}
