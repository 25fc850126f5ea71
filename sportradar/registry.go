package sportradar

import (
	"sort"
	"strings"
)

// registry maps lower-case sport names to client constructors. It is
// populated once at init and never written afterwards.
var registry = map[string]Constructor{
	"football":   newSoccer,
	"soccer":     newSoccer,
	"basketball": newBasketball,
	"volleyball": newVolleyball,
	"icehockey":  newIceHockey,
}

// ResolveClientConstructor returns the constructor registered for sport.
// The lookup is case-insensitive; unknown sports return false.
func ResolveClientConstructor(sport string) (Constructor, bool) {
	newClient, ok := registry[strings.ToLower(strings.TrimSpace(sport))]
	return newClient, ok
}

// Sports returns the registered sport names in sorted order.
func Sports() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// The adapters below return an untyped nil interface on error.

func newSoccer(cfg Config, opts ...Option) (SportClient, error) {
	c, err := NewSoccerClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newBasketball(cfg Config, opts ...Option) (SportClient, error) {
	c, err := NewBasketballClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newVolleyball(cfg Config, opts ...Option) (SportClient, error) {
	c, err := NewVolleyballClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newIceHockey(cfg Config, opts ...Option) (SportClient, error) {
	c, err := NewIceHockeyClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}
