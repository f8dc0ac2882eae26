// Package source reads barcode sets from plain line lists, FASTA/FASTQ
// files and memory.
package source

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/baditaflorin/go_barcode_guru/internal/adapters/stream/lineprocessor"
	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
	"github.com/baditaflorin/go_barcode_guru/internal/ports"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Format names an input layout.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatFastx Format = "fastx"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var fastxExtensions = map[string]bool{
	".fa": true, ".fasta": true, ".fna": true,
	".fq": true, ".fastq": true,
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatAuto, FormatLines, FormatFastx:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s. Must be 'auto', 'lines' or 'fastx'", name)
	}
}

// Detect resolves FormatAuto from the file extension, ignoring a trailing
// .gz. Standard input is read as lines.
func Detect(path string) Format {
	if path == Stdin || path == "" {
		return FormatLines
	}
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	if fastxExtensions[filepath.Ext(name)] {
		return FormatFastx
	}
	return FormatLines
}

// Open returns a BarcodeSource for path. Compressed input is handled
// transparently.
func Open(path string, format Format, logger ports.Logger, normalizer ports.Normalizer, cfg lineprocessor.ProcessingConfig) (ports.BarcodeSource, error) {
	if path == "" {
		path = Stdin
	}
	if format == FormatAuto || format == "" {
		format = Detect(path)
	}
	logger.Debug("Opening barcode input", "path", path, "format", string(format))

	switch format {
	case FormatLines:
		r, err := xopen.Ropen(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return NewLineSource(r, lineprocessor.NewProcessor(logger, normalizer, cfg)), nil
	case FormatFastx:
		r, err := fastx.NewDefaultReader(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return &FastxSource{reader: r, logger: logger, normalizer: normalizer}, nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// LineSource reads one barcode per line.
type LineSource struct {
	reader    io.Reader
	closer    io.Closer
	processor *lineprocessor.Processor
}

// NewLineSource wraps an already open reader. Close closes r when it is an
// io.Closer.
func NewLineSource(r io.Reader, processor *lineprocessor.Processor) *LineSource {
	s := &LineSource{reader: r, processor: processor}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadBarcodes implements ports.BarcodeSource.
func (s *LineSource) ReadBarcodes(ctx context.Context) (domain.BarcodeSet, error) {
	lines, _, err := s.processor.ReadLines(ctx, s.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read barcodes: %w", err)
	}
	return domain.BarcodeSet(lines), nil
}

// Close implements ports.BarcodeSource.
func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// FastxSource reads one barcode per FASTA/FASTQ record.
type FastxSource struct {
	reader     *fastx.Reader
	logger     ports.Logger
	normalizer ports.Normalizer
	names      []string
}

// ReadBarcodes implements ports.BarcodeSource.
func (s *FastxSource) ReadBarcodes(ctx context.Context) (domain.BarcodeSet, error) {
	var set domain.BarcodeSet
	for {
		select {
		case <-ctx.Done():
			return set, ctx.Err()
		default:
		}

		record, err := s.reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return set, fmt.Errorf("failed to read record %d: %w", len(set)+1, err)
		}
		s.names = append(s.names, string(record.ID))
		set = append(set, s.normalizer.Normalize(string(record.Seq.Seq)))
	}
	s.logger.Debug("Read barcode records", "records", len(set))
	return set, nil
}

// Names returns the record identifiers read so far, in input order.
func (s *FastxSource) Names() []string {
	return s.names
}

// Close implements ports.BarcodeSource.
func (s *FastxSource) Close() error {
	s.reader.Close()
	return nil
}

// SliceSource serves a fixed list of raw lines.
type SliceSource struct {
	lines      []string
	normalizer ports.Normalizer
}

// NewSliceSource creates a source over raw lines.
func NewSliceSource(lines []string, normalizer ports.Normalizer) *SliceSource {
	return &SliceSource{lines: lines, normalizer: normalizer}
}

// ReadBarcodes implements ports.BarcodeSource.
func (s *SliceSource) ReadBarcodes(ctx context.Context) (domain.BarcodeSet, error) {
	set := make(domain.BarcodeSet, len(s.lines))
	for i, line := range s.lines {
		set[i] = s.normalizer.Normalize(line)
	}
	return set, nil
}

// Close implements ports.BarcodeSource.
func (s *SliceSource) Close() error { return nil }
