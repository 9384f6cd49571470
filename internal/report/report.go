// Package report collects per-image, per-method MSE rows and renders them as
// a fixed-width console table or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/edge-mse/internal/imaging"
)

// Column widths of the console table.
const (
	ImageWidth  = 45
	MethodWidth = 12
	MSEWidth    = 12
	ruleWidth   = 75
)

// Title is printed above the console table.
const Title = "EDGE DETECTION MSE REPORT"

// Row is one (image, method, MSE) entry.
type Row struct {
	Image  string         `json:"image"`
	Method imaging.Method `json:"method"`
	MSE    float64        `json:"mse"`
}

// Failure records an image that could not be fully processed.
type Failure struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// Report is the ordered outcome of a batch run.
//
// Rows appear image by image in input order and, within one image, in method
// order. Rows and failures are append-only.
type Report struct {
	Rows     []Row     `json:"rows"`
	Failures []Failure `json:"failures"`
}

// New returns an empty report.
func New() *Report {
	return &Report{
		Rows:     []Row{},
		Failures: []Failure{},
	}
}

// Add appends one row per method for image, in method order.
func (r *Report) Add(image string, scores [imaging.NumMethods]float64) {
	for _, m := range imaging.Methods {
		r.Rows = append(r.Rows, Row{Image: image, Method: m, MSE: scores[m]})
	}
}

// Fail appends a failure.
func (r *Report) Fail(f Failure) {
	r.Failures = append(r.Failures, f)
}

// FormatRow renders a row as fixed-width columns: image (45), method (12)
// and MSE (12, six decimals).
func FormatRow(row Row) string {
	return fmt.Sprintf("%-*s %-*s %-*.6f", ImageWidth, row.Image, MethodWidth, row.Method.Title(), MSEWidth, row.MSE)
}

// WriteTable renders the report as a console table followed by any failures.
func (r *Report) WriteTable(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n\n", Title)
	fmt.Fprintf(&b, "%-*s %-*s %-*s\n", ImageWidth, "Image", MethodWidth, "Method", MSEWidth, "MSE")
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')
	for _, row := range r.Rows {
		b.WriteString(FormatRow(row))
		b.WriteByte('\n')
	}

	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, "\nFAILURES (%d)\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "  %s [%s] %s\n", f.Path, f.Step, f.Message)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON encodes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
