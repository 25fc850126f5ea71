package sportradar

import (
	"context"
	"io"
)

const soccerBaseURL = "https://api.sportradar.com/soccer/%s/v4"

// DefaultListLimit is the page size GetSeasonSummaries asks for on soccer
// when the caller sets no limit.
const DefaultListLimit = 100

// SoccerClient wraps the Soccer v4 API.
type SoccerClient struct {
	sportBase
}

var _ SportClient = (*SoccerClient)(nil)

// NewSoccerClient creates a Soccer v4 client.
func NewSoccerClient(cfg Config, opts ...Option) (*SoccerClient, error) {
	base, err := newSportBase("soccer", soccerBaseURL, cfg, opts)
	if err != nil {
		return nil, err
	}
	return &SoccerClient{sportBase: base}, nil
}

// GetCompetitions lists all competitions.
func (c *SoccerClient) GetCompetitions(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "competitions"), nil)
}

// GetCompetitionInfo returns info for a competition.
func (c *SoccerClient) GetCompetitionInfo(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitionID", p.CompetitionID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "competitions", p.CompetitionID, "info"), nil)
}

// GetCompetitionSeasons lists all seasons of a competition.
func (c *SoccerClient) GetCompetitionSeasons(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitionID", p.CompetitionID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "competitions", p.CompetitionID, "seasons"), nil)
}

// GetCompetitorProfile returns a competitor's profile.
func (c *SoccerClient) GetCompetitorProfile(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "competitors", p.CompetitorID, "profile"), nil)
}

// GetCompetitorSummaries returns a competitor's recent and upcoming sport events.
func (c *SoccerClient) GetCompetitorSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "competitors", p.CompetitorID, "summaries"), nil)
}

// GetCompetitorVersusSummaries returns the head-to-head history of two competitors.
func (c *SoccerClient) GetCompetitorVersusSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("CompetitorID", p.CompetitorID, "CompetitorID2", p.CompetitorID2); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "competitors", p.CompetitorID, "versus", p.CompetitorID2, "summaries"), nil)
}

func (c *SoccerClient) GetCompetitorMappings(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "competitors", "mappings"), pageQuery(p))
}

// GetCompetitorMergeMappings returns old and new ids of merged competitors.
func (c *SoccerClient) GetCompetitorMergeMappings(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "competitors", "merge_mappings"), nil)
}

// GetPlayerProfile returns a player's profile.
func (c *SoccerClient) GetPlayerProfile(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("PlayerID", p.PlayerID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "players", p.PlayerID, "profile"), nil)
}

// GetPlayerSummaries returns a player's recent and upcoming sport events.
func (c *SoccerClient) GetPlayerSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("PlayerID", p.PlayerID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "players", p.PlayerID, "summaries"), nil)
}

func (c *SoccerClient) GetPlayerMappings(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "players", "mappings"), pageQuery(p))
}

// GetPlayerMergeMappings returns old and new ids of merged players.
func (c *SoccerClient) GetPlayerMergeMappings(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "players", "merge_mappings"), nil)
}

// GetScheduleSummaries lists summaries of all sport events on p.Date.
func (c *SoccerClient) GetScheduleSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("Date", p.Date); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "schedules", p.Date, "summaries"), offsetLimitQuery(p))
}

// GetScheduleLiveSummaries lists summaries of all live sport events.
func (c *SoccerClient) GetScheduleLiveSummaries(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "schedules", "live", "summaries"), nil)
}

// GetLiveTimelines lists timelines of all live sport events.
func (c *SoccerClient) GetLiveTimelines(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "schedules", "live", "timelines"), nil)
}

// GetLiveTimelinesDelta lists timeline changes of live sport events from the last 10 seconds.
func (c *SoccerClient) GetLiveTimelinesDelta(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "schedules", "live", "timelines_delta"), nil)
}

// GetSeasons lists all seasons.
func (c *SoccerClient) GetSeasons(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "seasons"), nil)
}

// GetSeasonCompetitorPlayers lists the players of every competitor in a season.
func (c *SoccerClient) GetSeasonCompetitorPlayers(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "competitor_players"), offsetLimitQuery(p))
}

// GetSeasonCompetitors lists the competitors of a season.
func (c *SoccerClient) GetSeasonCompetitors(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "competitors"), offsetLimitQuery(p))
}

// GetSeasonCompetitorStatistics returns competitor and player statistics for a season.
func (c *SoccerClient) GetSeasonCompetitorStatistics(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID, "CompetitorID", p.CompetitorID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "competitors", p.CompetitorID, "statistics"), nil)
}

// GetSeasonInfo returns info for a season.
func (c *SoccerClient) GetSeasonInfo(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "info"), nil)
}

// GetSeasonLeaders returns the statistical leaders of a season.
func (c *SoccerClient) GetSeasonLeaders(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "leaders"), nil)
}

// GetSeasonLineups lists the lineups of every sport event in a season.
func (c *SoccerClient) GetSeasonLineups(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "lineups"), pageQuery(p))
}

// GetSeasonMissingPlayers lists injured and suspended players of a season.
func (c *SoccerClient) GetSeasonMissingPlayers(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "missing_players"), nil)
}

// GetSeasonOverUnderStatistics returns over/under goal statistics for a season.
func (c *SoccerClient) GetSeasonOverUnderStatistics(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "over_under_statistics"), nil)
}

// GetSeasonPlayers lists the players of a season.
func (c *SoccerClient) GetSeasonPlayers(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "players"), pageQuery(p))
}

// GetSeasonProbabilities returns pre-match win probabilities for a season.
func (c *SoccerClient) GetSeasonProbabilities(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "probabilities"), nil)
}

// GetSeasonSchedules lists the schedule of a season.
func (c *SoccerClient) GetSeasonSchedules(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "schedules"), nil)
}

// GetSeasonStagesGroupsCupRounds lists the stages, groups and cup rounds of a season.
func (c *SoccerClient) GetSeasonStagesGroupsCupRounds(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "stages_groups_cup_rounds"), nil)
}

// GetSeasonStandings returns the standings of a season, optionally for one round.
func (c *SoccerClient) GetSeasonStandings(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "standings"), listQuery{Round: p.Round})
}

// GetSeasonSummaries lists summaries of all sport events in a season. Unlike
// the other list endpoints it defaults to offset 0 and DefaultListLimit.
func (c *SoccerClient) GetSeasonSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	q := listQuery{Offset: p.Offset, Limit: p.Limit}
	if q.Offset == nil {
		q.Offset = Int(0)
	}
	if q.Limit == nil {
		q.Limit = Int(DefaultListLimit)
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "summaries"), q)
}

// GetSeasonTransfers lists the transfers of a season.
func (c *SoccerClient) GetSeasonTransfers(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "transfers"), nil)
}

// GetSportEventFunFacts returns fun facts for a sport event.
func (c *SoccerClient) GetSportEventFunFacts(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "sport_events", p.SportEventID, "fun_facts"), nil)
}

// GetSportEventLeagueTimeline returns a summary and timeline from official league sources.
func (c *SoccerClient) GetSportEventLeagueTimeline(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "sport_events", p.SportEventID, "league_timeline"), nil)
}

// GetSportEventLineups returns a sport event including lineups.
func (c *SoccerClient) GetSportEventLineups(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "sport_events", p.SportEventID, "lineups"), nil)
}

// GetSportEventSummary returns a summary of one sport event including results.
func (c *SoccerClient) GetSportEventSummary(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "sport_events", p.SportEventID, "summary"), nil)
}

// GetSportEventTimeline returns a summary and timeline of one sport event.
func (c *SoccerClient) GetSportEventTimeline(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SportEventID", p.SportEventID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "sport_events", p.SportEventID, "timeline"), nil)
}

// GetSportEventsCreated lists sport events created in the last 24 hours.
func (c *SoccerClient) GetSportEventsCreated(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "sport_events", "created"), offsetLimitQuery(p))
}

// GetSportEventsRemoved lists sport events that were removed or disabled.
func (c *SoccerClient) GetSportEventsRemoved(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "sport_events", "removed"), offsetLimitQuery(p))
}

// GetSportEventsUpdated lists sport events updated in the last 24 hours.
func (c *SoccerClient) GetSportEventsUpdated(ctx context.Context, p Params) (Document, error) {
	return c.get(ctx, c.path(p, "sport_events", "updated"), offsetLimitQuery(p))
}

// StreamEvents subscribes to the live event push feed. The caller must close
// the returned body.
func (c *SoccerClient) StreamEvents(ctx context.Context, p StreamParams) (io.ReadCloser, error) {
	return c.stream(ctx, "/stream/events/subscribe", soccerStream(p))
}

// StreamStatistics subscribes to the live statistics push feed. The caller
// must close the returned body.
func (c *SoccerClient) StreamStatistics(ctx context.Context, p StreamParams) (io.ReadCloser, error) {
	return c.stream(ctx, "/stream/statistics/subscribe", soccerStream(p))
}

func soccerStream(p StreamParams) soccerStreamQuery {
	return soccerStreamQuery{
		CompetitionID: p.CompetitionID,
		EventID:       p.EventID,
		SeasonID:      p.SeasonID,
		SportEventID:  p.SportEventID,
	}
}

// Operations returns every buffered endpoint keyed by operation name.
func (c *SoccerClient) Operations() map[string]Operation {
	return map[string]Operation{
		"getCompetitions":                c.GetCompetitions,
		"getCompetitionInfo":             c.GetCompetitionInfo,
		"getCompetitionSeasons":          c.GetCompetitionSeasons,
		"getCompetitorProfile":           c.GetCompetitorProfile,
		"getCompetitorSummaries":         c.GetCompetitorSummaries,
		"getCompetitorVersusSummaries":   c.GetCompetitorVersusSummaries,
		"getCompetitorMappings":          c.GetCompetitorMappings,
		"getCompetitorMergeMappings":     c.GetCompetitorMergeMappings,
		"getPlayerProfile":               c.GetPlayerProfile,
		"getPlayerSummaries":             c.GetPlayerSummaries,
		"getPlayerMappings":              c.GetPlayerMappings,
		"getPlayerMergeMappings":         c.GetPlayerMergeMappings,
		"getScheduleSummaries":           c.GetScheduleSummaries,
		"getScheduleLiveSummaries":       c.GetScheduleLiveSummaries,
		"getLiveTimelines":               c.GetLiveTimelines,
		"getLiveTimelinesDelta":          c.GetLiveTimelinesDelta,
		"getSeasons":                     c.GetSeasons,
		"getSeasonCompetitorPlayers":     c.GetSeasonCompetitorPlayers,
		"getSeasonCompetitors":           c.GetSeasonCompetitors,
		"getSeasonCompetitorStatistics":  c.GetSeasonCompetitorStatistics,
		"getSeasonInfo":                  c.GetSeasonInfo,
		"getSeasonLeaders":               c.GetSeasonLeaders,
		"getSeasonLineups":               c.GetSeasonLineups,
		"getSeasonMissingPlayers":        c.GetSeasonMissingPlayers,
		"getSeasonOverUnderStatistics":   c.GetSeasonOverUnderStatistics,
		"getSeasonPlayers":               c.GetSeasonPlayers,
		"getSeasonProbabilities":         c.GetSeasonProbabilities,
		"getSeasonSchedules":             c.GetSeasonSchedules,
		"getSeasonStagesGroupsCupRounds": c.GetSeasonStagesGroupsCupRounds,
		"getSeasonStandings":             c.GetSeasonStandings,
		"getSeasonSummaries":             c.GetSeasonSummaries,
		"getSeasonTransfers":             c.GetSeasonTransfers,
		"getSportEventFunFacts":          c.GetSportEventFunFacts,
		"getSportEventLeagueTimeline":    c.GetSportEventLeagueTimeline,
		"getSportEventLineups":           c.GetSportEventLineups,
		"getSportEventSummary":           c.GetSportEventSummary,
		"getSportEventTimeline":          c.GetSportEventTimeline,
		"getSportEventsCreated":          c.GetSportEventsCreated,
		"getSportEventsRemoved":          c.GetSportEventsRemoved,
		"getSportEventsUpdated":          c.GetSportEventsUpdated,
	}
}
