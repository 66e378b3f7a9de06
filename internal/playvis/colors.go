package playvis

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorSwapThreshold is the primary-color distance below which the second
// team's colors are reversed.
const colorSwapThreshold = 500

// ColorPair holds a marker fill color and its outline color.
type ColorPair [2]string

// Primary returns the fill color.
func (p ColorPair) Primary() string { return p[0] }

// Secondary returns the outline color.
func (p ColorPair) Secondary() string { return p[1] }

// Swapped returns the pair in reverse order.
func (p ColorPair) Swapped() ColorPair { return ColorPair{p[1], p[0]} }

// teamColors lists each club's colors in preference order; only the first
// two are used for markers.
var teamColors = map[string][]string{
	"ARI":      {"#97233F", "#000000", "#FFB612"},
	"ATL":      {"#A71930", "#000000", "#A5ACAF"},
	"BAL":      {"#241773", "#000000"},
	"BUF":      {"#00338D", "#C60C30"},
	"CAR":      {"#0085CA", "#101820", "#BFC0BF"},
	"CHI":      {"#0B162A", "#C83803"},
	"CIN":      {"#FB4F14", "#000000"},
	"CLE":      {"#311D00", "#FF3C00"},
	"DAL":      {"#003594", "#041E42", "#869397"},
	"DEN":      {"#FB4F14", "#002244"},
	"DET":      {"#0076B6", "#B0B7BC", "#000000"},
	"GB":       {"#203731", "#FFB612"},
	"HOU":      {"#03202F", "#A71930"},
	"IND":      {"#002C5F", "#A2AAAD"},
	"JAX":      {"#101820", "#D7A22A", "#9F792C"},
	"KC":       {"#E31837", "#FFB81C"},
	"LA":       {"#003594", "#FFA300", "#FF8200"},
	"LAC":      {"#0080C6", "#FFC20E", "#FFFFFF"},
	"LV":       {"#000000", "#A5ACAF"},
	"MIA":      {"#008E97", "#FC4C02", "#005778"},
	"MIN":      {"#4F2683", "#FFC62F"},
	"NE":       {"#002244", "#C60C30", "#B0B7BC"},
	"NO":       {"#101820", "#D3BC8D"},
	"NYG":      {"#0B2265", "#A71930", "#A5ACAF"},
	"NYJ":      {"#125740", "#000000", "#FFFFFF"},
	"PHI":      {"#004C54", "#A5ACAF", "#ACC0C6"},
	"PIT":      {"#FFB612", "#101820"},
	"SEA":      {"#002244", "#69BE28", "#A5ACAF"},
	"SF":       {"#AA0000", "#B3995D"},
	"TB":       {"#D50A0A", "#FF7900", "#0A0A08"},
	"TEN":      {"#0C2340", "#4B92DB", "#C8102E"},
	"WAS":      {"#5A1414", "#FFB612"},
	"football": {"#CBB67C", "#663831"},
}

// TeamColors returns the natural color pair of a club.
func TeamColors(team string) (ColorPair, error) {
	colors, ok := teamColors[team]
	if !ok || len(colors) < 2 {
		return ColorPair{}, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	return ColorPair{colors[0], colors[1]}, nil
}

// ColorDistance measures how far apart two hex colors look using a
// redmean-weighted Euclidean distance. Components are normalized to [0,1]
// and the result is scaled back to 8-bit units, so black and white are 765
// apart. Identical strings are 0 apart. The 8-bit scale is intentional: on
// the unit scale no pair reaches colorSwapThreshold.
func ColorDistance(hex1, hex2 string) (float64, error) {
	if hex1 == hex2 {
		return 0, nil
	}
	r1, g1, b1, err := hexToRGB(hex1)
	if err != nil {
		return 0, err
	}
	r2, g2, b2, err := hexToRGB(hex2)
	if err != nil {
		return 0, err
	}

	rm := 0.5 * (r1 + r2)
	dr, dg, db := r1-r2, g1-g2, b1-b2
	d := math.Sqrt(math.Abs((2+rm)*dr*dr + 4*dg*dg + (3-rm)*db*db))
	return d * 255, nil
}

// ColorPairs assigns marker colors for the two clubs of a play plus the
// football. When the primaries are too close, the second club's pair is
// reversed so its markers stay distinguishable.
func ColorPairs(team1, team2 string) (map[string]ColorPair, error) {
	pairs, _, err := colorPairs(team1, team2)
	return pairs, err
}

// colorPairs also returns the distance between the natural primaries; the
// second pair is swapped when it falls below colorSwapThreshold.
func colorPairs(team1, team2 string) (map[string]ColorPair, float64, error) {
	pair1, err := TeamColors(team1)
	if err != nil {
		return nil, 0, err
	}
	pair2, err := TeamColors(team2)
	if err != nil {
		return nil, 0, err
	}
	ball, err := TeamColors(string(footballClub))
	if err != nil {
		return nil, 0, err
	}

	distance, err := ColorDistance(pair1.Primary(), pair2.Primary())
	if err != nil {
		return nil, 0, err
	}
	if distance < colorSwapThreshold {
		pair2 = pair2.Swapped()
	}
	return map[string]ColorPair{
		team1:                pair1,
		team2:                pair2,
		string(footballClub): ball,
	}, distance, nil
}

func hexToRGB(hex string) (r, g, b float64, err error) {
	trimmed := strings.TrimSpace(hex)
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c.R, c.G, c.B, nil
}
