package sportradar

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func funcPointer(f Constructor) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func TestResolveClientConstructor(t *testing.T) {
	tests := []struct {
		sport string
		want  Constructor
		found bool
	}{
		{sport: "soccer", want: newSoccer, found: true},
		{sport: "football", want: newSoccer, found: true},
		{sport: "FOOTBALL", want: newSoccer, found: true},
		{sport: " Basketball ", want: newBasketball, found: true},
		{sport: "volleyball", want: newVolleyball, found: true},
		{sport: "IceHockey", want: newIceHockey, found: true},
		{sport: "cricket", found: false},
		{sport: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.sport, func(t *testing.T) {
			got, ok := ResolveClientConstructor(tt.sport)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, funcPointer(tt.want), funcPointer(got))
		})
	}
}

func TestResolveClientConstructor_FootballIsSoccer(t *testing.T) {
	football, ok := ResolveClientConstructor("FOOTBALL")
	require.True(t, ok)
	soccer, ok := ResolveClientConstructor("soccer")
	require.True(t, ok)
	assert.Equal(t, funcPointer(soccer), funcPointer(football))

	client, err := football(Config{APIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &SoccerClient{}, client)
	assert.Equal(t, "soccer", client.Sport())
}

func TestConstructor_ErrorReturnsNilInterface(t *testing.T) {
	for _, sport := range Sports() {
		newClient, ok := ResolveClientConstructor(sport)
		require.True(t, ok)

		client, err := newClient(Config{})
		require.Error(t, err, sport)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.True(t, client == nil, sport)
	}
}

func TestSports(t *testing.T) {
	assert.Equal(t, []string{"basketball", "football", "icehockey", "soccer", "volleyball"}, Sports())
}
