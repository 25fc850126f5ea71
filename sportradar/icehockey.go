package sportradar

import "context"

const iceHockeyBaseURL = "https://api.sportradar.com/icehockey/%s/v2"

// IceHockeyClient wraps the global Ice Hockey v2 API. It has every endpoint
// of the other v2 clients plus player summaries and season leaders.
type IceHockeyClient struct {
	globalAPI
}

var _ SportClient = (*IceHockeyClient)(nil)

// NewIceHockeyClient creates a global Ice Hockey v2 client.
func NewIceHockeyClient(cfg Config, opts ...Option) (*IceHockeyClient, error) {
	base, err := newSportBase("icehockey", iceHockeyBaseURL, cfg, opts)
	if err != nil {
		return nil, err
	}
	return &IceHockeyClient{globalAPI{sportBase: base}}, nil
}

// GetPlayerSummaries returns a player's recent and upcoming sport events.
func (c *IceHockeyClient) GetPlayerSummaries(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("PlayerID", p.PlayerID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "players", p.PlayerID, "summaries"), nil)
}

// GetSeasonLeaders returns the statistical leaders of a season.
func (c *IceHockeyClient) GetSeasonLeaders(ctx context.Context, p Params) (Document, error) {
	if err := requireParams("SeasonID", p.SeasonID); err != nil {
		return nil, err
	}
	return c.get(ctx, c.path(p, "seasons", p.SeasonID, "leaders"), nil)
}

// Operations returns every buffered endpoint keyed by operation name.
func (c *IceHockeyClient) Operations() map[string]Operation {
	ops := c.operations()
	ops["getPlayerSummaries"] = c.GetPlayerSummaries
	ops["getSeasonLeaders"] = c.GetSeasonLeaders
	return ops
}
