package source

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baditaflorin/go_barcode_guru/internal/adapters/logger"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/normalizer"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/stream/lineprocessor"
	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
	"github.com/baditaflorin/go_barcode_guru/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readAll(t *testing.T, path string, format Format) domain.BarcodeSet {
	t.Helper()
	src, err := Open(path, format, logger.Nop{}, normalizer.NewDefaultNormalizer(), lineprocessor.ProcessingConfig{})
	require.NoError(t, err)
	defer src.Close()
	set, err := src.ReadBarcodes(context.Background())
	require.NoError(t, err)
	return set
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatLines, Detect(Stdin))
	assert.Equal(t, FormatLines, Detect("barcodes.txt"))
	assert.Equal(t, FormatFastx, Detect("barcodes.fa"))
	assert.Equal(t, FormatFastx, Detect("BARCODES.FASTQ.GZ"))
	assert.Equal(t, FormatLines, Detect("barcodes.txt.gz"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("FASTX")
	require.NoError(t, err)
	assert.Equal(t, FormatFastx, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestLineSource(t *testing.T) {
	path := writeFile(t, "barcodes.txt", "acgtac\r\nttggca\nCCAATG\n")
	assert.Equal(t, domain.BarcodeSet{"ACGTAC", "TTGGCA", "CCAATG"}, readAll(t, path, FormatAuto))
}

func TestLineSourceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barcodes.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("acgtac\nttggca\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, domain.BarcodeSet{"ACGTAC", "TTGGCA"}, readAll(t, path, FormatAuto))
}

func TestFastxSource(t *testing.T) {
	path := writeFile(t, "barcodes.fa", ">s1\nacgtac\n>s2\nTTGGCA\n")
	src, err := Open(path, FormatAuto, logger.Nop{}, normalizer.NewDefaultNormalizer(), lineprocessor.ProcessingConfig{})
	require.NoError(t, err)
	defer src.Close()

	set, err := src.ReadBarcodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeSet{"ACGTAC", "TTGGCA"}, set)

	fx, ok := src.(*FastxSource)
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, fx.Names())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fa"), FormatFastx, logger.Nop{}, normalizer.NewDefaultNormalizer(), lineprocessor.ProcessingConfig{})
	assert.Error(t, err)
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]string{"acgt\n", "TTGG"}, normalizer.NewDefaultNormalizer())
	set, err := src.ReadBarcodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeSet{"ACGT", "TTGG"}, set)
	assert.NoError(t, src.Close())
}

type closeTracker struct {
	*strings.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestNewLineSource(t *testing.T) {
	processor := lineprocessor.NewProcessor(logger.Nop{}, normalizer.NewDefaultNormalizer(), lineprocessor.ProcessingConfig{})

	r := &closeTracker{Reader: strings.NewReader("acgt\nttgg\n")}
	src := NewLineSource(r, processor)
	set, err := src.ReadBarcodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeSet{"ACGT", "TTGG"}, set)
	require.NoError(t, src.Close())
	assert.True(t, r.closed)

	plain := NewLineSource(strings.NewReader("acgt\n"), processor)
	assert.NoError(t, plain.Close())
}

func TestOnlyFastxSourceIsNamed(t *testing.T) {
	var fx ports.BarcodeSource = &FastxSource{}
	_, ok := fx.(ports.NamedSource)
	assert.True(t, ok)

	var lines ports.BarcodeSource = NewLineSource(strings.NewReader(""), nil)
	_, ok = lines.(ports.NamedSource)
	assert.False(t, ok)
}
