package sportradar

import (
	"context"
	"io"
)

// globalAPI implements the endpoints shared by the Sportradar "global" v2
// APIs (basketball, ice hockey and volleyball), which follow one layout.
type globalAPI struct {
	sportBase
}

// GetSeasonSchedules always returns an empty schedule list without calling
// the API; the v2 APIs have no season schedule endpoint.
func (g *globalAPI) GetSeasonSchedules(ctx context.Context, p Params) (Document, error) {
	return Document{"schedules": []any{}}, nil
}

// GetCompetitions lists all competitions.
func (g *globalAPI) GetCompetitions(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "competitions"), nil)
}

// GetCompetitionInfo returns info for a competition.
func (g *globalAPI) GetCompetitionInfo(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitionID", p.CompetitionID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "competitions", p.CompetitionID, "info"), nil)
}

// GetCompetitionSeasons lists all seasons of a competition.
func (g *globalAPI) GetCompetitionSeasons(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitionID", p.CompetitionID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "competitions", p.CompetitionID, "seasons"), nil)
}

func (g *globalAPI) GetCompetitorProfile(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "competitors", p.CompetitorID, "profile"), nil)
}

func (g *globalAPI) GetCompetitorSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "competitors", p.CompetitorID, "summaries"), nil)
}

func (g *globalAPI) GetCompetitorVersusSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID, "CompetitorID2", p.CompetitorID2); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "competitors", p.CompetitorID, "versus", p.CompetitorID2, "summaries"), nil)
}

func (g *globalAPI) GetCompetitorMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "competitors", "mappings"), pageQuery(p))
}

func (g *globalAPI) GetCompetitorMergeMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "competitors", "merge_mappings"), nil)
}

func (g *globalAPI) GetPlayerProfile(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("PlayerID", p.PlayerID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "players", p.PlayerID, "profile"), nil)
}

func (g *globalAPI) GetPlayerMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "players", "mappings"), pageQuery(p))
}

func (g *globalAPI) GetPlayerMergeMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "players", "merge_mappings"), nil)
}

// GetScheduleSummaries lists summaries of all sport events on p.Date.
func (g *globalAPI) GetScheduleSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("Date", p.Date); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "schedules", p.Date, "summaries"), offsetLimitQuery(p))
}

func (g *globalAPI) GetScheduleLiveSummaries(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "schedules", "live", "summaries"), nil)
}

func (g *globalAPI) GetLiveTimelines(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "schedules", "live", "timelines"), nil)
}

func (g *globalAPI) GetLiveTimelinesDelta(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "schedules", "live", "timelines_delta"), nil)
}

// GetSeasons lists all seasons.
func (g *globalAPI) GetSeasons(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "seasons"), nil)
}

func (g *globalAPI) GetSeasonCompetitors(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "competitors"), pageQuery(p))
}

func (g *globalAPI) GetSeasonCompetitorStatistics(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID, "CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "competitors", p.CompetitorID, "statistics"), nil)
}

// GetSeasonInfo returns info for a season.
func (g *globalAPI) GetSeasonInfo(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "info"), nil)
}

func (g *globalAPI) GetSeasonLineups(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "lineups"), pageQuery(p))
}

func (g *globalAPI) GetSeasonPlayers(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "players"), pageQuery(p))
}

func (g *globalAPI) GetSeasonProbabilities(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "probabilities"), nil)
}

func (g *globalAPI) GetSeasonSimpleTeamMappings(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "simple_team_mappings"), nil)
}

func (g *globalAPI) GetSeasonSimpleTournamentMappings(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "simple_tournament_mappings"), nil)
}

func (g *globalAPI) GetSeasonStagesGroupsCupRounds(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "stages_groups_cup_rounds"), nil)
}

// GetSeasonStandings returns the standings of a season. Round and Live are
// optional.
func (g *globalAPI) GetSeasonStandings(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "standings"), listQuery{Round: p.Round, Live: p.Live})
}

// GetSeasonSummaries lists summaries of all sport events in a season.
func (g *globalAPI) GetSeasonSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "seasons", p.SeasonID, "summaries"), pageQuery(p))
}

func (g *globalAPI) GetSeasonMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "seasons", "mappings"), pageQuery(p))
}

func (g *globalAPI) GetSportEventLineups(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "sport_events", p.SportEventID, "lineups"), nil)
}

// GetSportEventSummary returns a summary of one sport event including results.
func (g *globalAPI) GetSportEventSummary(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "sport_events", p.SportEventID, "summary"), nil)
}

// GetSportEventTimeline returns a summary and timeline of one sport event.
func (g *globalAPI) GetSportEventTimeline(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return g.get(ctx, g.path(p, "sport_events", p.SportEventID, "timeline"), nil)
}

// GetSportEventsCreated lists sport events created in the last 24 hours.
func (g *globalAPI) GetSportEventsCreated(ctx context.Context, p Params) (Document, error) {
	q := listQuery{Offset: p.Offset, Start: p.Start, CreatedLimit: p.CreatedLimit}
	return g.get(ctx, g.path(p, "sport_events", "created"), q)
}

func (g *globalAPI) GetSportEventMappings(ctx context.Context, p Params) (Document, error) {
	return g.get(ctx, g.path(p, "sport_events", "mappings"), pageQuery(p))
}

// GetSportEventsRemoved lists sport events that were removed or disabled.
func (g *globalAPI) GetSportEventsRemoved(ctx context.Context, p Params) (Document, error) {
	q := listQuery{Offset: p.Offset, Start: p.Start, UpdatedRemovedLimit: p.UpdatedRemovedLimit}
	return g.get(ctx, g.path(p, "sport_events", "removed"), q)
}

// GetSportEventsUpdated lists sport events updated in the last 24 hours.
func (g *globalAPI) GetSportEventsUpdated(ctx context.Context, p Params) (Document, error) {
	q := listQuery{Offset: p.Offset, Start: p.Start, UpdatedRemovedLimit: p.UpdatedRemovedLimit}
	return g.get(ctx, g.path(p, "sport_events", "updated"), q)
}

// StreamEvents subscribes to the live event push feed.
//
// Failures are logged and swallowed: a failed subscription returns a nil
// body and a nil error. Callers must check the body before reading it.
func (g *globalAPI) StreamEvents(ctx context.Context, p StreamParams) (io.ReadCloser, error) {
	return g.legacyStream(ctx, "/stream/events/subscribe", p)
}

// StreamStatistics subscribes to the live statistics push feed. Failures are
// swallowed the same way as in StreamEvents.
func (g *globalAPI) StreamStatistics(ctx context.Context, p StreamParams) (io.ReadCloser, error) {
	return g.legacyStream(ctx, "/stream/statistics/subscribe", p)
}

func (g *globalAPI) legacyStream(ctx context.Context, path string, p StreamParams) (io.ReadCloser, error) {
	q := globalStreamQuery{
		Format:        p.Format,
		EventID:       p.EventID,
		CompetitionID: p.CompetitionID,
		SeasonID:      p.SeasonID,
		SportID:       p.SportID,
		SportEventID:  p.SportEventID,
	}
	body, err := g.stream(ctx, path, q)
	if err != nil {
		g.pipeline.logger.Error().
			Err(err).
			Str("sport", g.sport).
			Str("path", path).
			Msg("Stream subscription failed")
		return nil, nil
	}
	return body, nil
}

func (g *globalAPI) operations() map[string]Operation {
	return map[string]Operation{
		"getSeasonSchedules":                g.GetSeasonSchedules,
		"getCompetitions":                   g.GetCompetitions,
		"getCompetitionInfo":                g.GetCompetitionInfo,
		"getCompetitionSeasons":             g.GetCompetitionSeasons,
		"getCompetitorProfile":              g.GetCompetitorProfile,
		"getCompetitorSummaries":            g.GetCompetitorSummaries,
		"getCompetitorVersusSummaries":      g.GetCompetitorVersusSummaries,
		"getCompetitorMappings":             g.GetCompetitorMappings,
		"getCompetitorMergeMappings":        g.GetCompetitorMergeMappings,
		"getPlayerProfile":                  g.GetPlayerProfile,
		"getPlayerMappings":                 g.GetPlayerMappings,
		"getPlayerMergeMappings":            g.GetPlayerMergeMappings,
		"getScheduleSummaries":              g.GetScheduleSummaries,
		"getScheduleLiveSummaries":          g.GetScheduleLiveSummaries,
		"getLiveTimelines":                  g.GetLiveTimelines,
		"getLiveTimelinesDelta":             g.GetLiveTimelinesDelta,
		"getSeasons":                        g.GetSeasons,
		"getSeasonCompetitors":              g.GetSeasonCompetitors,
		"getSeasonCompetitorStatistics":     g.GetSeasonCompetitorStatistics,
		"getSeasonInfo":                     g.GetSeasonInfo,
		"getSeasonLineups":                  g.GetSeasonLineups,
		"getSeasonPlayers":                  g.GetSeasonPlayers,
		"getSeasonProbabilities":            g.GetSeasonProbabilities,
		"getSeasonSimpleTeamMappings":       g.GetSeasonSimpleTeamMappings,
		"getSeasonSimpleTournamentMappings": g.GetSeasonSimpleTournamentMappings,
		"getSeasonStagesGroupsCupRounds":    g.GetSeasonStagesGroupsCupRounds,
		"getSeasonStandings":                g.GetSeasonStandings,
		"getSeasonSummaries":                g.GetSeasonSummaries,
		"getSeasonMappings":                 g.GetSeasonMappings,
		"getSportEventLineups":              g.GetSportEventLineups,
		"getSportEventSummary":              g.GetSportEventSummary,
		"getSportEventTimeline":             g.GetSportEventTimeline,
		"getSportEventsCreated":             g.GetSportEventsCreated,
		"getSportEventMappings":             g.GetSportEventMappings,
		"getSportEventsRemoved":             g.GetSportEventsRemoved,
		"getSportEventsUpdated":             g.GetSportEventsUpdated,
	}
}
