// Package export turns stored runs into shareable artifacts: a JSON dump of
// the full trajectory record and an SVG rendering of the trails.
package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/storage"
)

type RunData struct {
	Meta      storage.RunMetadata `json:"meta"`
	Times     []float64           `json:"times"`
	Positions [][]engine.Vec3     `json:"positions"`
	Active    [][]bool            `json:"active"`
}

func WriteJSON(w io.Writer, meta storage.RunMetadata, rec *engine.Recording) error {
	data := RunData{
		Meta:      meta,
		Times:     rec.Times,
		Positions: rec.Positions,
		Active:    rec.Active,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
