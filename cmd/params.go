package cmd

import (
	"github.com/spf13/pflag"

	"github.com/tigermax139/sportradar-sdk/sportradar"
)

// paramFlags binds the endpoint parameters to command flags
type paramFlags struct {
	locale              string
	competitionID       string
	competitorID        string
	competitorID2       string
	playerID            string
	seasonID            string
	sportEventID        string
	date                string
	offset              int
	start               int
	limit               int
	round               int
	live                bool
	createdLimit        int
	updatedRemovedLimit int
}

func (f *paramFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.locale, "lang", "", "locale for this call only")
	fs.StringVar(&f.competitionID, "competition", "", "competition id, e.g. sr:competition:17")
	fs.StringVar(&f.competitorID, "competitor", "", "competitor id")
	fs.StringVar(&f.competitorID2, "competitor2", "", "second competitor id for versus summaries")
	fs.StringVar(&f.playerID, "player", "", "player id")
	fs.StringVar(&f.seasonID, "season", "", "season id")
	fs.StringVar(&f.sportEventID, "sport-event", "", "sport event id")
	fs.StringVar(&f.date, "date", "", "schedule date (YYYY-MM-DD)")
	fs.IntVar(&f.offset, "offset", 0, "list offset")
	fs.IntVar(&f.start, "start", 0, "list start")
	fs.IntVar(&f.limit, "limit", 0, "list limit")
	fs.IntVar(&f.round, "round", 0, "standings round")
	fs.BoolVar(&f.live, "live", false, "live standings")
	fs.IntVar(&f.createdLimit, "created-limit", 0, "limit for created sport events")
	fs.IntVar(&f.updatedRemovedLimit, "updated-removed-limit", 0, "limit for updated or removed sport events")
}

// params builds the call parameters. Numeric and boolean values are only set
// when their flag was given, so unset values stay off the query string.
func (f *paramFlags) params(fs *pflag.FlagSet) sportradar.Params {
	p := sportradar.Params{
		Locale:        f.locale,
		CompetitionID: f.competitionID,
		CompetitorID:  f.competitorID,
		CompetitorID2: f.competitorID2,
		PlayerID:      f.playerID,
		SeasonID:      f.seasonID,
		SportEventID:  f.sportEventID,
		Date:          f.date,
	}

	intFlag := func(name string, v int) *int {
		if fs.Changed(name) {
			return sportradar.Int(v)
		}
		return nil
	}
	p.Offset = intFlag("offset", f.offset)
	p.Start = intFlag("start", f.start)
	p.Limit = intFlag("limit", f.limit)
	p.Round = intFlag("round", f.round)
	p.CreatedLimit = intFlag("created-limit", f.createdLimit)
	p.UpdatedRemovedLimit = intFlag("updated-removed-limit", f.updatedRemovedLimit)
	if fs.Changed("live") {
		p.Live = sportradar.Bool(f.live)
	}
	return p
}
