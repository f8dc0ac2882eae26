package lineprocessor

import (
	"context"
	"io"
	"time"

	"github.com/baditaflorin/go_barcode_guru/internal/ports"
)

// Constants for line processing
const (
	// DefaultChunkSize defines the default size of each chunk for reading
	DefaultChunkSize = 64 * 1024 // 64KB

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 500 // chunks

	// Common newline characters
	CR = '\r'
	LF = '\n'
)

// ProcessingConfig defines configuration for line processing
type ProcessingConfig struct {
	ChunkSize int
	// SkipBlank drops empty lines anywhere in the input. Trailing empty
	// lines are always dropped.
	SkipBlank bool
}

// Processor splits a byte stream into normalized lines. LF, CRLF and a lone
// CR all end a line, also when a CRLF pair straddles two reads.
type Processor struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	chunkSize  int
	skipBlank  bool
}

// NewProcessor creates a new line processor
func NewProcessor(
	logger ports.Logger,
	normalizer ports.Normalizer,
	config ProcessingConfig,
) *Processor {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}

	return &Processor{
		logger:     logger,
		normalizer: normalizer,
		chunkSize:  config.ChunkSize,
		skipBlank:  config.SkipBlank,
	}
}

// ReadLines reads reader to the end and returns its normalized lines along
// with the number of bytes consumed.
func (p *Processor) ReadLines(ctx context.Context, reader io.Reader) ([]string, int64, error) {
	startTime := time.Now()

	chunk := make([]byte, p.chunkSize)
	var (
		lines          []string
		pending        []byte
		afterCR        bool
		bytesProcessed int64
		checkCounter   int
	)

	emit := func() {
		line := p.normalizer.Normalize(string(pending))
		pending = pending[:0]
		if line == "" && p.skipBlank {
			return
		}
		lines = append(lines, line)
	}

	for {
		checkCounter++
		if checkCounter >= ContextCheckFrequency {
			select {
			case <-ctx.Done():
				p.logger.Warn("Processing cancelled by context", "error", ctx.Err())
				return lines, bytesProcessed, ctx.Err()
			default:
			}
			checkCounter = 0
		}

		n, err := reader.Read(chunk)
		bytesProcessed += int64(n)
		for _, b := range chunk[:n] {
			switch b {
			case LF:
				if afterCR {
					// second half of CRLF; the line was emitted at CR
					afterCR = false
					continue
				}
				emit()
			case CR:
				emit()
				afterCR = true
			default:
				afterCR = false
				pending = append(pending, b)
			}
		}

		if err != nil {
			if err != io.EOF {
				p.logger.Warn("Error reading from input", "error", err)
				return lines, bytesProcessed, err
			}
			break
		}
	}

	if len(pending) > 0 {
		emit()
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	p.logger.Debug("Line processing completed",
		"lines", len(lines),
		"bytes_processed", bytesProcessed,
		"duration", time.Since(startTime),
	)

	return lines, bytesProcessed, nil
}
