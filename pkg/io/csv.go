package io

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	pkerrors "github.com/localgod/plantkit/pkg/errors"
)

// Defaults applied to rows of a CSV model.
const (
	DefaultCSVElementType  = "Business_Process"
	DefaultCSVRelationType = "Rel_Triggering"
)

// ReadCSV decodes a flat process model from r.
//
// Each record has the columns id, label, successors and type; only id and
// label are required. successors is a ';'-separated list of ids, each of
// which becomes a relation of type DefaultCSVRelationType from the row's
// element. Rows without a type get DefaultCSVElementType. A first record
// whose id column reads "id" is treated as a header. Lines starting with
// '#' are ignored.
//
// A successor that does not name an element of the file is an
// UNRESOLVED_REFERENCE error.
func ReadCSV(r io.Reader) (*Model, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var m Model
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pkerrors.Wrap(pkerrors.ErrCodeInvalidFormat, err, "decode csv")
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
				continue
			}
		}
		if len(rec) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, pkerrors.New(pkerrors.ErrCodeInvalidFormat,
				"csv line %d: expected at least 2 columns (id, label), got %d", line, len(rec))
		}

		id := strings.TrimSpace(rec[0])
		el := Element{ID: id, Label: strings.TrimSpace(rec[1]), Type: DefaultCSVElementType}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			el.Type = strings.TrimSpace(rec[3])
		}
		m.Elements = append(m.Elements, el)

		if len(rec) > 2 {
			for _, succ := range strings.Split(rec[2], ";") {
				if succ = strings.TrimSpace(succ); succ != "" {
					m.Relations = append(m.Relations, Relation{
						Source: id,
						Target: succ,
						Type:   DefaultCSVRelationType,
					})
				}
			}
		}
	}
	return validated(&m)
}
