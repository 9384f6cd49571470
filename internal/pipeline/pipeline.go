package pipeline

import (
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-mse/internal/imaging"
)

// Source loads decoded images by path.
type Source interface {
	Load(path string) (image.Image, error)
}

// Sink persists 8-bit edge images.
type Sink interface {
	EnsureDir(dir string) error
	Save(path string, img *image.Gray) error
	Remove(path string) error
}

// Options configures a Pipeline.
type Options struct {
	// OutputDir receives the {base}_{method}.png files.
	OutputDir string

	// Logger receives per-image progress. The zero value discards output.
	Logger zerolog.Logger
}

// Pipeline processes one image end to end: intensity conversion, the four
// edge operators, MSE scoring and persistence of the edge images.
type Pipeline struct {
	source    Source
	sink      Sink
	outputDir string
	operators [imaging.NumMethods]imaging.Operator
	logger    zerolog.Logger
}

// New creates a pipeline reading from source and writing to sink.
func New(source Source, sink Sink, opts Options) *Pipeline {
	p := &Pipeline{
		source:    source,
		sink:      sink,
		outputDir: opts.OutputDir,
		logger:    opts.Logger.With().Str("component", "pipeline").Logger(),
	}
	for _, m := range imaging.Methods {
		p.operators[m] = m.Operator()
	}
	return p
}

// OutputDir returns the directory edge images are written to.
func (p *Pipeline) OutputDir() string {
	return p.outputDir
}

// Result holds the outcome of processing one image.
type Result struct {
	// Path is the input path as given.
	Path string

	// Image is the input file name, used as the report identifier.
	Image string

	// Outputs holds the written file per method. Entries are empty when
	// saving failed.
	Outputs [imaging.NumMethods]string

	// Scores holds the MSE between the intensity image and each method's
	// normalized edge field.
	Scores [imaging.NumMethods]float64
}

// Score returns the MSE for m.
func (r *Result) Score(m imaging.Method) float64 {
	return r.Scores[m]
}

// Saved reports whether every edge image was written.
func (r *Result) Saved() bool {
	for _, out := range r.Outputs {
		if out == "" {
			return false
		}
	}
	return true
}

// MarshalJSON encodes outputs and scores keyed by method name.
func (r *Result) MarshalJSON() ([]byte, error) {
	outputs := make(map[string]string, imaging.NumMethods)
	scores := make(map[string]float64, imaging.NumMethods)
	for _, m := range imaging.Methods {
		if r.Outputs[m] != "" {
			outputs[m.String()] = r.Outputs[m]
		}
		scores[m.String()] = r.Scores[m]
	}
	return json.Marshal(struct {
		Path    string             `json:"path"`
		Image   string             `json:"image"`
		Outputs map[string]string  `json:"outputs"`
		Scores  map[string]float64 `json:"scores"`
	}{r.Path, r.Image, outputs, scores})
}

// OutputPath returns the edge image path for base and m:
// {dir}/{base}_{method}.png.
func OutputPath(dir, base string, m imaging.Method) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, m))
}

// Process runs the full pipeline for the image at path.
//
// # Failure Semantics
//
//   - Load failure: returns (nil, *Error{Kind: KindInputUnavailable}); nothing
//     is written.
//   - Shape mismatch between an operator's output and the intensity image:
//     returns (nil, *Error{Kind: KindShapeMismatch}); nothing is written.
//   - Save failure: returns the Result with all scores together with an
//     *Error{Kind: KindOutputWriteFailure}. Files already written for this
//     image are removed.
func (p *Pipeline) Process(path string) (*Result, error) {
	log := p.logger.With().Str("path", path).Logger()

	img, err := p.source.Load(path)
	if err != nil {
		return nil, newInputUnavailable(path, err)
	}

	gray := imaging.ToIntensity(img)
	log.Debug().Int("width", gray.Width).Int("height", gray.Height).Msg("intensity image ready")

	res := &Result{Path: path, Image: filepath.Base(path)}
	var fields [imaging.NumMethods]*imaging.Field

	for _, m := range imaging.Methods {
		field := p.operators[m](gray)
		score, err := imaging.MSE(gray, field)
		if err != nil {
			return nil, newShapeMismatch(path, fmt.Errorf("%s: %w", m, err))
		}
		fields[m] = field
		res.Scores[m] = score
		log.Debug().Stringer("method", m).Float64("mse", score).Msg("scored")
	}

	if err := p.save(res, fields); err != nil {
		return res, err
	}

	log.Info().Str("image", res.Image).Msg("image processed")
	return res, nil
}

// save writes every field as {base}_{method}.png. On failure the files
// written so far for this image are removed and res.Outputs is cleared.
func (p *Pipeline) save(res *Result, fields [imaging.NumMethods]*imaging.Field) error {
	if err := p.sink.EnsureDir(p.outputDir); err != nil {
		return newOutputWriteFailure(res.Path, err)
	}

	base := imaging.BaseName(res.Path)
	for _, m := range imaging.Methods {
		out := OutputPath(p.outputDir, base, m)
		if err := p.sink.Save(out, imaging.ToGray8(fields[m])); err != nil {
			p.discard(res)
			return newOutputWriteFailure(res.Path, fmt.Errorf("%s: %w", out, err))
		}
		res.Outputs[m] = out
	}
	return nil
}

func (p *Pipeline) discard(res *Result) {
	for m, out := range res.Outputs {
		if out == "" {
			continue
		}
		if err := p.sink.Remove(out); err != nil {
			p.logger.Warn().Err(err).Str("file", out).Msg("failed to remove partial output")
		}
		res.Outputs[m] = ""
	}
}
