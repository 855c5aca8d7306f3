package dataset

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultScale is the divisor applied to every feature value.
// It maps 8-bit pixel intensities in [0, 255] onto [0, 1].
const DefaultScale = 255.0

// LabelParser converts the raw text of a label cell into a label value.
type LabelParser[L cmp.Ordered] func(string) (L, error)

// ErrNaNLabel is returned by ParseFloatLabel for "NaN" cells.
var ErrNaNLabel = errors.New("label is NaN")

// ParseFloatLabel parses numeric labels such as "7" or "3.0".
// NaN is rejected since it cannot be ordered or matched.
func ParseFloatLabel(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, ErrNaNLabel
	}
	return v, nil
}

// ParseIntLabel parses integer labels.
func ParseIntLabel(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseStringLabel keeps the label text unchanged.
func ParseStringLabel(s string) (string, error) {
	return s, nil
}

type loadOptions struct {
	comma       rune
	scale       float64
	header      *bool
	compression *Compression
	logger      *slog.Logger
}

// LoadOption configures how a table is read.
type LoadOption func(*loadOptions)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) LoadOption {
	return func(o *loadOptions) {
		o.comma = r
	}
}

// WithScale sets the divisor applied to feature values.
// The default is DefaultScale. Values <= 0 are ignored.
func WithScale(scale float64) LoadOption {
	return func(o *loadOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithHeader forces the first row to be treated as a header (true) or as
// data (false). Without it, the first row is a header when any of its
// feature cells is not a number.
func WithHeader(present bool) LoadOption {
	return func(o *loadOptions) {
		o.header = &present
	}
}

// WithCompression overrides compression detection from the file name.
func WithCompression(c Compression) LoadOption {
	return func(o *loadOptions) {
		o.compression = &c
	}
}

// WithLogger sets the logger used for load diagnostics.
// Pass nil to disable logging.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

func applyLoadOptions(optFns []LoadOption) loadOptions {
	o := loadOptions{
		comma: ',',
		scale: DefaultScale,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Load reads a delimited table with a numeric label in column 0 and numeric
// features in the remaining columns. Every feature is divided by 255.
//
// Files ending in .gz, .zst or .lz4 are decompressed transparently.
func Load(path string, opts ...LoadOption) ([][]float64, []float64, error) {
	return LoadLabeled(path, ParseFloatLabel, opts...)
}

// LoadLabeled is like Load but converts label cells with parse.
func LoadLabeled[L cmp.Ordered](path string, parse LabelParser[L], opts ...LoadOption) ([][]float64, []L, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	x, y, err := LoadReader(f, parse, withDetectedCompression(path, opts)...)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return x, y, nil
}

// LoadFrom reads the table called name from src.
func LoadFrom[L cmp.Ordered](src Source, name string, parse LabelParser[L], opts ...LoadOption) ([][]float64, []L, error) {
	rc, err := src.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset %s: %w", name, err)
	}
	defer rc.Close()

	x, y, err := LoadReader(rc, parse, withDetectedCompression(name, opts)...)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	return x, y, nil
}

// withDetectedCompression puts the extension-derived compression ahead of
// the caller's options so WithCompression still overrides it.
func withDetectedCompression(name string, opts []LoadOption) []LoadOption {
	out := make([]LoadOption, 0, len(opts)+1)
	out = append(out, WithCompression(DetectCompression(name)))
	return append(out, opts...)
}

// LoadReader parses a delimited table from r.
//
// Rows are returned in input order. All rows must have the same number of
// fields as the first data row; violations yield a *ParseError.
func LoadReader[L cmp.Ordered](r io.Reader, parse LabelParser[L], opts ...LoadOption) ([][]float64, []L, error) {
	o := applyLoadOptions(opts)

	compression := CompressionNone
	if o.compression != nil {
		compression = *o.compression
	}
	rc, err := decompress(r, compression)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		x      [][]float64
		y      []L
		width  = -1
		header bool
	)

	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read table: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first && isHeader(rec, o.header, parse) {
			header = true
			continue
		}

		if width < 0 {
			width = len(rec)
			if width < 2 {
				return nil, nil, &ParseError{Line: line, Column: -1, Err: fmt.Errorf("need a label and at least one feature, got %d field(s)", width)}
			}
		}
		if len(rec) != width {
			return nil, nil, &ParseError{Line: line, Column: -1, Err: fmt.Errorf("expected %d fields, got %d", width, len(rec))}
		}

		label, err := parse(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, nil, &ParseError{Line: line, Column: 0, Err: err}
		}

		row := make([]float64, width-1)
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, &ParseError{Line: line, Column: j + 1, Err: err}
			}
			row[j] = v / o.scale
		}

		x = append(x, row)
		y = append(y, label)
	}

	if len(x) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	o.logger.Debug("dataset loaded",
		"samples", len(x),
		"features", width-1,
		"header", header,
		"compression", compression.String(),
	)

	return x, y, nil
}

// isHeader decides whether the first record names the columns: a label
// cell parse rejects or any non-numeric feature cell marks a header.
func isHeader[L cmp.Ordered](rec []string, forced *bool, parse LabelParser[L]) bool {
	if forced != nil {
		return *forced
	}
	if _, err := parse(strings.TrimSpace(rec[0])); err != nil {
		return true
	}
	for _, cell := range rec[1:] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return true
		}
	}
	return false
}
