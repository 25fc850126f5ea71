package sportradar

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// Params carries the arguments of a single endpoint call. Every field is
// optional; each endpoint reads only the fields it documents. Nil pointers
// leave the value to the upstream default and are never sent.
type Params struct {
	// Locale overrides the client locale for this call.
	Locale string

	CompetitionID string
	CompetitorID  string
	CompetitorID2 string
	PlayerID      string
	SeasonID      string
	SportEventID  string
	// Date is a YYYY-MM-DD schedule date.
	Date string

	Offset *int
	Start  *int
	Limit  *int
	Round  *int
	Live   *bool

	// CreatedLimit maps to created_endpoints_limit on the global v2 APIs.
	CreatedLimit *int
	// UpdatedRemovedLimit maps to updated_removed_endpoints_limit on the global v2 APIs.
	UpdatedRemovedLimit *int
}

// StreamParams selects what a push-feed subscription delivers. Empty fields
// are omitted.
type StreamParams struct {
	Format        string
	EventID       string
	CompetitionID string
	SeasonID      string
	SportID       string
	SportEventID  string
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

type listQuery struct {
	Offset              *int  `url:"offset,omitempty"`
	Start               *int  `url:"start,omitempty"`
	Limit               *int  `url:"limit,omitempty"`
	Round               *int  `url:"round,omitempty"`
	Live                *bool `url:"live,omitempty"`
	CreatedLimit        *int  `url:"created_endpoints_limit,omitempty"`
	UpdatedRemovedLimit *int  `url:"updated_removed_endpoints_limit,omitempty"`
}

type soccerStreamQuery struct {
	CompetitionID string `url:"competition_id,omitempty"`
	EventID       string `url:"event_id,omitempty"`
	SeasonID      string `url:"season_id,omitempty"`
	SportEventID  string `url:"sport_event_id,omitempty"`
}

type globalStreamQuery struct {
	Format        string `url:"stream_format,omitempty"`
	EventID       string `url:"stream_event_id,omitempty"`
	CompetitionID string `url:"stream_competition_id,omitempty"`
	SeasonID      string `url:"stream_season_id,omitempty"`
	SportID       string `url:"stream_sport_id,omitempty"`
	SportEventID  string `url:"stream_sport_event_id,omitempty"`
}

// encodeQuery turns one of the query structs above into url.Values, dropping
// unset fields. A nil q yields nil.
func encodeQuery(q any) (url.Values, error) {
	if q == nil {
		return nil, nil
	}
	return query.Values(q)
}
