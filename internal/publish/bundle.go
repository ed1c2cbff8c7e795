package publish

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
)

// Size guideline boundaries for the gzipped main bundle.
const (
	ExcellentLimit = 10 * 1024
	GoodLimit      = 50 * 1024
	FairLimit      = 100 * 1024
)

// BundleStat is the raw and gzipped size of one build artifact.
type BundleStat struct {
	File     string `json:"file"`
	Size     int64  `json:"size"`
	GzipSize int64  `json:"gzipSize"`
}

// FormatSize renders Size for humans.
func (s BundleStat) FormatSize() string { return humanize.IBytes(uint64(s.Size)) }

// FormatGzip renders GzipSize for humans.
func (s BundleStat) FormatGzip() string { return humanize.IBytes(uint64(s.GzipSize)) }

// AnalyzeFile measures path and its default-level gzip encoding.
func AnalyzeFile(path string) (BundleStat, error) {
	f, err := os.Open(path)
	if err != nil {
		return BundleStat{}, err
	}
	defer f.Close()

	counter := &countingWriter{}
	zw, err := gzip.NewWriterLevel(counter, gzip.DefaultCompression)
	if err != nil {
		return BundleStat{}, err
	}
	size, err := io.Copy(zw, f)
	if err != nil {
		return BundleStat{}, fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return BundleStat{}, fmt.Errorf("failed to compress %s: %w", path, err)
	}

	return BundleStat{
		File:     filepath.Base(path),
		Size:     size,
		GzipSize: counter.n,
	}, nil
}

// AnalyzeDir measures every name in dir that exists, in order. Missing files are skipped.
func AnalyzeDir(dir string, names []string) ([]BundleStat, error) {
	var stats []BundleStat
	for _, name := range names {
		stat, err := AnalyzeFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// Totals sums raw and gzipped sizes.
func Totals(stats []BundleStat) (size, gzipSize int64) {
	for _, s := range stats {
		size += s.Size
		gzipSize += s.GzipSize
	}
	return size, gzipSize
}

// CompressionRatio is the percentage saved by gzip. Zero when size is zero.
func CompressionRatio(size, gzipSize int64) float64 {
	if size == 0 {
		return 0
	}
	return (1 - float64(gzipSize)/float64(size)) * 100
}

// Guideline grades the gzipped size of the main bundle.
func Guideline(gzipSize int64) string {
	switch {
	case gzipSize < ExcellentLimit:
		return "✓ Excellent: <10 KB gzipped"
	case gzipSize < GoodLimit:
		return "✓ Good: <50 KB gzipped"
	case gzipSize < FairLimit:
		return "⚠️  Fair: <100 KB gzipped - consider optimizing"
	default:
		return "❌ Large: >100 KB gzipped - optimization recommended"
	}
}

type countingWriter struct{ n int64 }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
