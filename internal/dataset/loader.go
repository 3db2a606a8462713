package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/orderlens/backend/internal/insights"
	"github.com/orderlens/backend/pkg/config"
	pkgerrors "github.com/orderlens/backend/pkg/errors"
	"github.com/orderlens/backend/pkg/logger"
	"go.uber.org/multierr"
)

// Loader materializes the raw order snapshot from the first configured
// source that yields a parseable CSV. Sources are local paths or HTTP URLs,
// tried in priority order; per-source failures are combined so the caller
// sees every attempt when all of them fail.
type Loader struct {
	sources []string
	client  *http.Client
	cache   *SnapshotCache
	logg    *logger.Logger
}

// NewLoader builds a loader from the dataset configuration.
func NewLoader(cfg config.DatasetConfig, logg *logger.Logger) (*Loader, error) {
	sources := cfg.Sources()
	if len(sources) == 0 {
		return nil, fmt.Errorf("at least one dataset source required")
	}
	return &Loader{
		sources: sources,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		logg:    logg,
	}, nil
}

// WithCache attaches an optional snapshot cache consulted before the sources.
func (l *Loader) WithCache(cache *SnapshotCache) *Loader {
	l.cache = cache
	return l
}

// Load returns the raw record set. The core pipeline never learns where the
// snapshot came from; it always receives a plain RawTable.
func (l *Loader) Load(ctx context.Context) (*insights.RawTable, error) {
	if l.cache != nil {
		if data, ok := l.cache.Get(ctx); ok {
			table, err := parseCSV(data)
			if err == nil {
				return table, nil
			}
			if l.logg != nil {
				l.logg.Warn(ctx, "cached snapshot unparseable, falling back to sources")
			}
		}
	}

	var errs error
	for _, source := range l.sources {
		data, err := l.fetch(ctx, source)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
			continue
		}
		table, err := parseCSV(data)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
			continue
		}
		if l.cache != nil {
			if err := l.cache.Put(ctx, data); err != nil && l.logg != nil {
				l.logg.Warn(l.logg.WithDatasetSource(ctx, source), "failed to cache snapshot")
			}
		}
		if l.logg != nil {
			l.logg.Info(l.logg.WithDatasetSource(ctx, source), "dataset snapshot loaded")
		}
		return table, nil
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "loading dataset snapshot")
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetchURL(ctx, source)
	}
	return os.ReadFile(source)
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func parseCSV(data []byte) (*insights.RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Row width mismatches degrade per-row downstream instead of failing the
	// whole snapshot.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty snapshot")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return &insights.RawTable{Columns: header, Rows: rows}, nil
}
