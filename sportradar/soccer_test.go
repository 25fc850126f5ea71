package sportradar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSoccerClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		baseURL string
		locale  string
		wantErr error
	}{
		{
			name:    "defaults",
			cfg:     Config{APIKey: "key"},
			baseURL: "https://api.sportradar.com/soccer/production/v4",
			locale:  "en",
		},
		{
			name:    "trial with locale",
			cfg:     Config{APIKey: "key", AccessLevel: Trial, Locale: "de"},
			baseURL: "https://api.sportradar.com/soccer/trial/v4",
			locale:  "de",
		},
		{
			name:    "missing API key",
			cfg:     Config{},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "invalid access level",
			cfg:     Config{APIKey: "key", AccessLevel: "staging"},
			wantErr: ErrInvalidAccessLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewSoccerClient(tt.cfg)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "soccer", client.Sport())
			assert.Equal(t, tt.baseURL, client.BaseURL())
			assert.Equal(t, tt.locale, client.Locale())
		})
	}
}

func TestSoccerClient_GetCompetitionsRequestTarget(t *testing.T) {
	rt := newRecordingTransport(http.StatusOK, `{"competitions":[]}`)
	client, err := NewSoccerClient(Config{APIKey: "testkey123", Locale: "en"}, WithHTTPClient(rt.client()))
	require.NoError(t, err)

	doc, err := client.GetCompetitions(context.Background(), Params{})
	require.NoError(t, err)
	assert.Contains(t, doc, "competitions")

	require.Equal(t, 1, rt.calls())
	sent := rt.last()
	assert.Equal(t, http.MethodGet, sent.Method)
	assert.Equal(t, "https://api.sportradar.com/soccer/production/v4/en/competitions.json?api_key=testkey123", sent.URL.String())
}

func TestSoccerClient_Paths(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		q.Del("api_key")
		gotQuery = q.Encode()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewSoccerClient(Config{APIKey: "key", Locale: "en"}, WithBaseURL(server.URL))
	require.NoError(t, err)
	ops := client.Operations()

	tests := []struct {
		op    string
		p     Params
		path  string
		query string
	}{
		{op: "getCompetitionInfo", p: Params{CompetitionID: "sr:competition:17"}, path: "/en/competitions/sr:competition:17/info.json"},
		{op: "getCompetitorVersusSummaries", p: Params{CompetitorID: "sr:competitor:1", CompetitorID2: "sr:competitor:2"}, path: "/en/competitors/sr:competitor:1/versus/sr:competitor:2/summaries.json"},
		{op: "getCompetitorMappings", p: Params{Limit: Int(50)}, path: "/en/competitors/mappings.json", query: "limit=50"},
		{op: "getPlayerMappings", p: Params{Offset: Int(0), Start: Int(2)}, path: "/en/players/mappings.json", query: "offset=0&start=2"},
		{op: "getScheduleSummaries", p: Params{Date: "2024-05-01", Offset: Int(10)}, path: "/en/schedules/2024-05-01/summaries.json", query: "offset=10"},
		{op: "getLiveTimelinesDelta", path: "/en/schedules/live/timelines_delta.json"},
		{op: "getSeasonCompetitorStatistics", p: Params{SeasonID: "sr:season:1", CompetitorID: "sr:competitor:9"}, path: "/en/seasons/sr:season:1/competitors/sr:competitor:9/statistics.json"},
		{op: "getSeasonStandings", p: Params{SeasonID: "sr:season:1", Round: Int(3)}, path: "/en/seasons/sr:season:1/standings.json", query: "round=3"},
		{op: "getSeasonSchedules", p: Params{SeasonID: "sr:season:1"}, path: "/en/seasons/sr:season:1/schedules.json"},
		{op: "getSportEventFunFacts", p: Params{SportEventID: "sr:sport_event:5", Locale: "fr"}, path: "/fr/sport_events/sr:sport_event:5/fun_facts.json"},
		{op: "getSportEventsUpdated", p: Params{Limit: Int(5)}, path: "/en/sport_events/updated.json", query: "limit=5"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			op, ok := ops[tt.op]
			require.True(t, ok)

			_, err := op(context.Background(), tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.path, gotPath)
			assert.Equal(t, tt.query, gotQuery)
			assert.NotContains(t, gotQuery, "undefined")
		})
	}
}

func TestSoccerClient_GetSeasonSummariesDefaults(t *testing.T) {
	rt := newRecordingTransport(http.StatusOK, `{"summaries":[]}`)
	client, err := NewSoccerClient(Config{APIKey: "key"}, WithHTTPClient(rt.client()))
	require.NoError(t, err)

	_, err = client.GetSeasonSummaries(context.Background(), Params{SeasonID: "sr:season:1"})
	require.NoError(t, err)
	q := rt.last().URL.Query()
	assert.Equal(t, "0", q.Get("offset"))
	assert.Equal(t, "100", q.Get("limit"))

	_, err = client.GetSeasonSummaries(context.Background(), Params{SeasonID: "sr:season:1", Offset: Int(200), Limit: Int(20)})
	require.NoError(t, err)
	q = rt.last().URL.Query()
	assert.Equal(t, "200", q.Get("offset"))
	assert.Equal(t, "20", q.Get("limit"))
}

func TestSoccerClient_MissingParams(t *testing.T) {
	rt := newRecordingTransport(http.StatusOK, `{}`)
	client, err := NewSoccerClient(Config{APIKey: "key"}, WithHTTPClient(rt.client()))
	require.NoError(t, err)

	_, err = client.GetSeasonInfo(context.Background(), Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParam)
	assert.Contains(t, err.Error(), "SeasonID")

	_, err = client.GetCompetitorVersusSummaries(context.Background(), Params{CompetitorID: "sr:competitor:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CompetitorID2")

	assert.Equal(t, 0, rt.calls())
}

func TestSoccerClient_Stream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stream/statistics/subscribe", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "sr:season:1", q.Get("season_id"))
		assert.False(t, q.Has("competition_id"))
		assert.False(t, q.Has("stream_season_id"))
		w.Write([]byte("{}\n"))
	}))
	defer server.Close()

	client, err := NewSoccerClient(Config{APIKey: "key"}, WithBaseURL(server.URL))
	require.NoError(t, err)

	body, err := client.StreamStatistics(context.Background(), StreamParams{SeasonID: "sr:season:1"})
	require.NoError(t, err)
	require.NotNil(t, body)
	body.Close()
}

func TestSoccerClient_StreamErrorPropagates(t *testing.T) {
	rt := newRecordingTransport(http.StatusUnauthorized, `{"message":"invalid key"}`)
	client, err := NewSoccerClient(Config{APIKey: "soccer-key-1"}, WithHTTPClient(rt.client()))
	require.NoError(t, err)

	body, err := client.StreamEvents(context.Background(), StreamParams{})
	require.Error(t, err)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
