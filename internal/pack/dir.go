package pack

import (
	"context"
	"os"
	"path/filepath"

	"github.com/municipress/flipbook/internal/domain"
)

// DirPackager writes the bundle as a directory tree on the local
// filesystem, the CLI's default destination.
type DirPackager struct {
	outputDir string
}

// NewDirPackager creates a packager rooted at outputDir.
func NewDirPackager(outputDir string) *DirPackager {
	return &DirPackager{outputDir: outputDir}
}

// Pack writes every bundle file under the output directory, creating
// parent directories as needed.
func (p *DirPackager) Pack(ctx context.Context, res *domain.ConversionResult) (*Manifest, error) {
	if p.outputDir == "" {
		return nil, domain.PackagingError("output directory cannot be empty", nil)
	}

	entries := bundleEntries(res)

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		full := filepath.Join(p.outputDir, filepath.FromSlash(e.path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return nil, domain.PackagingError("failed to create output directory", err)
		}
		if err := os.WriteFile(full, e.data, 0o644); err != nil {
			return nil, domain.PackagingError("failed to write "+e.path, err)
		}
	}

	m := &Manifest{
		Location: p.outputDir,
		IndexURL: filepath.Join(p.outputDir, IndexPath),
		CSSURL:   filepath.Join(p.outputDir, filepath.FromSlash(CSSPath)),
		JSURL:    filepath.Join(p.outputDir, filepath.FromSlash(JSPath)),
		Files:    len(entries),
	}
	for _, pg := range res.Pages {
		m.PageURLs = append(m.PageURLs, filepath.Join(p.outputDir, filepath.FromSlash(PagePath(pg.Ordinal))))
		m.ThumbURLs = append(m.ThumbURLs, filepath.Join(p.outputDir, filepath.FromSlash(ThumbPath(pg.Ordinal))))
	}
	return m, nil
}
