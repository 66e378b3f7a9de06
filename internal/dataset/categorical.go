package dataset

import "sort"

// categorical declares one categorical column of a dataset.
type categorical[T any] struct {
	name  string
	field func(*T) *Category
}

var gameCategoricals = []categorical[Game]{
	{"homeTeamAbbr", func(g *Game) *Category { return &g.HomeTeamAbbr }},
	{"visitorTeamAbbr", func(g *Game) *Category { return &g.VisitorTeamAbbr }},
}

var playerCategoricals = []categorical[Player]{
	{"collegeName", func(p *Player) *Category { return &p.CollegeName }},
	{"position", func(p *Player) *Category { return &p.Position }},
}

var playCategoricals = []categorical[Play]{
	{"possessionTeam", func(p *Play) *Category { return &p.PossessionTeam }},
	{"defensiveTeam", func(p *Play) *Category { return &p.DefensiveTeam }},
	{"passResult", func(p *Play) *Category { return &p.PassResult }},
	{"offenseFormation", func(p *Play) *Category { return &p.OffenseFormation }},
}

var trackingCategoricals = []categorical[TrackingFrame]{
	{"club", func(f *TrackingFrame) *Category { return &f.Club }},
	{"playDirection", func(f *TrackingFrame) *Category { return &f.PlayDirection }},
	{"event", func(f *TrackingFrame) *Category { return &f.Event }},
}

// makeCategoricals interns every declared column in place so repeated
// values share storage, and returns the sorted levels per column. The empty
// category (NA) is not a level.
func makeCategoricals[T any](rows []T, cols []categorical[T]) map[string][]string {
	levels := make(map[string][]string, len(cols))
	for _, col := range cols {
		pool := make(map[Category]Category)
		for i := range rows {
			value := col.field(&rows[i])
			if *value == "" {
				continue
			}
			if interned, ok := pool[*value]; ok {
				*value = interned
				continue
			}
			pool[*value] = *value
		}
		names := make([]string, 0, len(pool))
		for level := range pool {
			names = append(names, string(level))
		}
		sort.Strings(names)
		levels[col.name] = names
	}
	return levels
}
