package sportradar

const basketballBaseURL = "https://api.sportradar.com/basketball/%s/v2"

// BasketballClient wraps the Basketball v2 API.
type BasketballClient struct {
	globalAPI
}

var _ SportClient = (*BasketballClient)(nil)

// NewBasketballClient creates a Basketball v2 client.
func NewBasketballClient(cfg Config, opts ...Option) (*BasketballClient, error) {
	base, err := newSportBase("basketball", basketballBaseURL, cfg, opts)
	if err != nil {
		return nil, err
	}
	return &BasketballClient{globalAPI{sportBase: base}}, nil
}

// Operations returns every buffered endpoint keyed by operation name.
func (c *BasketballClient) Operations() map[string]Operation {
	return c.operations()
}
