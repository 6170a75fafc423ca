package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// Meta describes how a trace was produced.
type Meta struct {
	Scheme     string `json:"scheme"`
	Integrator string `json:"integrator"`
	SelfPull   bool   `json:"self_pull"`
	Walls      bool   `json:"walls"`
}

type ExportData struct {
	Meta
	Ticks   int                `json:"ticks"`
	Anchors []string           `json:"anchors"`
	Homes   []string           `json:"homes"`
	Final   []string           `json:"final"`
	Trace   [][][3]float64     `json:"trace"`
	Metrics map[string]float64 `json:"metrics"`
}

func hexes(points []dynamo.Point, home bool) []string {
	out := make([]string, len(points))
	for i, p := range points {
		if home {
			out[i] = p.Home.Hex()
		} else {
			out[i] = p.Pos.Hex()
		}
	}
	return out
}

func NewExportData(meta Meta, r *dynamo.Result) ExportData {
	data := ExportData{
		Meta:    meta,
		Ticks:   r.Ticks,
		Anchors: hexes(r.Final.Anchors, false),
		Homes:   hexes(r.Final.Movable, true),
		Final:   hexes(r.Final.Movable, false),
		Trace:   make([][][3]float64, len(r.Trace)),
		Metrics: r.Metrics,
	}
	for i, row := range r.Trace {
		data.Trace[i] = make([][3]float64, len(row))
		for j, v := range row {
			data.Trace[i][j] = [3]float64{v.R, v.G, v.B}
		}
	}
	return data
}

func WriteJSON(w io.Writer, meta Meta, r *dynamo.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, r))
}

var csvHeader = []string{"tick", "slot", "r", "g", "b", "hex", "displacement"}

// WriteCSV writes one row per slot per trace row.
func WriteCSV(w io.Writer, r *dynamo.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for tick, row := range r.Trace {
		for slot, v := range row {
			home := r.Final.Movable[slot].Home
			record := []string{
				strconv.Itoa(tick),
				strconv.Itoa(slot),
				f(v.R), f(v.G), f(v.B),
				v.Hex(),
				f(dynamo.Distance(v, home)),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
