package fixtures

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ersonp/prototypes/internal/domain/entities"
)

//go:embed data/*.yaml
var embedded embed.FS

// overrideExtensions are tried in order when looking for a dataset file in
// the override directory.
var overrideExtensions = []string{".yaml", ".yml", ".json"}

// Loader reads the dataset catalog from the embedded fixtures, replacing any
// dataset that has a file of the same name in Dir.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader. An empty dir uses only the embedded fixtures.
// A nil logger discards log output.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{dir: dir, logger: logger}
}

// Load reads every dataset.
func (l *Loader) Load(ctx context.Context) (*entities.Catalog, error) {
	if l.dir != "" {
		info, err := os.Stat(l.dir)
		if err != nil {
			return nil, fmt.Errorf("checking datasets dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("datasets dir %s is not a directory", l.dir)
		}
	}

	catalog := &entities.Catalog{}
	for _, name := range entities.DatasetNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.loadDataset(name, catalog); err != nil {
			return nil, fmt.Errorf("loading dataset %s: %w", name, err)
		}
	}
	return catalog, nil
}

// Source returns where the named dataset is read from: an override file path
// or the embedded fixture name.
func (l *Loader) Source(name string) (string, error) {
	if !entities.IsDataset(name) {
		return "", fmt.Errorf("unknown dataset: %s", name)
	}
	if p, ok := l.override(name); ok {
		return p, nil
	}
	return "embedded:" + embeddedPath(name), nil
}

func (l *Loader) loadDataset(name string, catalog *entities.Catalog) error {
	newDoc, ok := documents[name]
	if !ok {
		return fmt.Errorf("no fixture shape for dataset %s", name)
	}
	doc := newDoc()

	if p, ok := l.override(name); ok {
		l.logger.Debug("loading dataset override", "dataset", name, "path", p)
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("opening %s: %w", p, err)
		}
		defer f.Close()
		if err := decodeFile(p, f, doc); err != nil {
			return fmt.Errorf("decoding %s: %w", p, err)
		}
		doc.apply(catalog)
		return nil
	}

	p := embeddedPath(name)
	l.logger.Debug("loading embedded dataset", "dataset", name, "path", p)
	f, err := embedded.Open(p)
	if err != nil {
		return fmt.Errorf("opening embedded %s: %w", p, err)
	}
	defer f.Close()
	if err := decodeFile(p, f, doc); err != nil {
		return fmt.Errorf("decoding embedded %s: %w", p, err)
	}
	doc.apply(catalog)
	return nil
}

// override finds the first file in the override directory named after the dataset.
func (l *Loader) override(name string) (string, bool) {
	if l.dir == "" {
		return "", false
	}
	for _, ext := range overrideExtensions {
		p := filepath.Join(l.dir, name+ext)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, true
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("skipping unreadable override", "path", p, "error", err)
		}
	}
	return "", false
}

func decodeFile(name string, r io.Reader, doc document) error {
	decoder, err := ForFile(name)
	if err != nil {
		return err
	}
	return decoder.Decode(r, doc)
}

func embeddedPath(name string) string {
	return path.Join("data", name+".yaml")
}
