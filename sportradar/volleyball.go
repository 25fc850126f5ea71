package sportradar

const volleyballBaseURL = "https://api.sportradar.com/volleyball/%s/v2"

// VolleyballClient wraps the Volleyball v2 API.
type VolleyballClient struct {
	globalAPI
}

var _ SportClient = (*VolleyballClient)(nil)

// NewVolleyballClient creates a Volleyball v2 client.
func NewVolleyballClient(cfg Config, opts ...Option) (*VolleyballClient, error) {
	base, err := newSportBase("volleyball", volleyballBaseURL, cfg, opts)
	if err != nil {
		return nil, err
	}
	return &VolleyballClient{globalAPI{sportBase: base}}, nil
}

// Operations returns every buffered endpoint keyed by operation name.
func (c *VolleyballClient) Operations() map[string]Operation {
	return c.operations()
}
