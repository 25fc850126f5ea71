package sportradar

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Config holds the caller-facing settings of a sport client.
type Config struct {
	APIKey string
	// AccessLevel defaults to Production.
	AccessLevel AccessLevel
	// Locale defaults to DefaultLocale.
	Locale string
}

// Operation is a single buffered endpoint call.
type Operation func(ctx context.Context, p Params) (Document, error)

// SportClient is implemented by every sport client.
type SportClient interface {
	// Sport returns the canonical sport name, e.g. "soccer".
	Sport() string
	// BaseURL returns the versioned API root the client targets.
	BaseURL() string
	// Locale returns the default locale of the client.
	Locale() string
	// Operations returns every buffered endpoint keyed by operation name.
	Operations() map[string]Operation

	GetCompetitions(ctx context.Context, p Params) (Document, error)
	GetCompetitionInfo(ctx context.Context, p Params) (Document, error)
	GetCompetitionSeasons(ctx context.Context, p Params) (Document, error)
	GetSeasons(ctx context.Context, p Params) (Document, error)
	GetSeasonInfo(ctx context.Context, p Params) (Document, error)
	GetSeasonSchedules(ctx context.Context, p Params) (Document, error)
	GetSeasonStandings(ctx context.Context, p Params) (Document, error)
	GetSeasonSummaries(ctx context.Context, p Params) (Document, error)
	GetSportEventSummary(ctx context.Context, p Params) (Document, error)
	GetSportEventTimeline(ctx context.Context, p Params) (Document, error)

	StreamEvents(ctx context.Context, p StreamParams) (io.ReadCloser, error)
	StreamStatistics(ctx context.Context, p StreamParams) (io.ReadCloser, error)
}

// Constructor creates a sport client from cfg.
type Constructor func(cfg Config, opts ...Option) (SportClient, error)

// sportBase is the state every sport client shares: its pipeline, the
// canonical sport name and the default locale.
type sportBase struct {
	pipeline *RequestPipeline
	sport    string
	locale   string
	suffix   string
}

func newSportBase(sport, urlTemplate string, cfg Config, opts []Option) (sportBase, error) {
	if cfg.APIKey == "" {
		return sportBase{}, fmt.Errorf("%s client: %w", sport, ErrMissingAPIKey)
	}
	level := cfg.AccessLevel.orDefault()
	if !level.IsValid() {
		return sportBase{}, fmt.Errorf("%s client: %w: %q", sport, ErrInvalidAccessLevel, cfg.AccessLevel)
	}
	locale := cfg.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf(urlTemplate, level)
	}

	return sportBase{
		pipeline: newRequestPipeline(ClientConfig{APIKey: cfg.APIKey, BaseURL: baseURL}, o),
		sport:    sport,
		locale:   locale,
		suffix:   ".json",
	}, nil
}

// Sport returns the canonical sport name.
func (b *sportBase) Sport() string {
	return b.sport
}

// BaseURL returns the versioned API root.
func (b *sportBase) BaseURL() string {
	return b.pipeline.BaseURL()
}

// Locale returns the default locale.
func (b *sportBase) Locale() string {
	return b.locale
}

// path builds "/<locale>/<segments...>.json". Segments are used verbatim.
func (b *sportBase) path(p Params, segments ...string) string {
	locale := p.Locale
	if locale == "" {
		locale = b.locale
	}
	return "/" + locale + "/" + strings.Join(segments, "/") + b.suffix
}

func (b *sportBase) get(ctx context.Context, path string, q any) (Document, error) {
	values, err := encodeQuery(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query for %s: %w", path, err)
	}
	return b.pipeline.Get(ctx, path, values)
}

func (b *sportBase) stream(ctx context.Context, path string, q any) (io.ReadCloser, error) {
	values, err := encodeQuery(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query for %s: %w", path, err)
	}
	return b.pipeline.Stream(ctx, path, values)
}

// requireParams fails with ErrMissingParam for the first empty value. Pairs are
// name, value.
func requireParams(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return missingParam(pairs[i])
		}
	}
	return nil
}

func pageQuery(p Params) listQuery {
	return listQuery{Offset: p.Offset, Start: p.Start, Limit: p.Limit}
}

func offsetLimitQuery(p Params) listQuery {
	return listQuery{Offset: p.Offset, Limit: p.Limit}
}
