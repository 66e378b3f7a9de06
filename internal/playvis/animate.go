package playvis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"nflvis/internal/dataset"
)

const footballClub = dataset.FootballClub

// mphPerYardPerSecond converts tracking speed (yards/s) to miles per hour.
const mphPerYardPerSecond = 2.23693629205

const (
	fieldFont       = "Courier New, monospace"
	fieldBackground = "#00B140"
	titleLineBreaks = 19
)

// Options tunes the rendered animation.
type Options struct {
	// FrameDurationMS is the playback delay between frames.
	FrameDurationMS int
	// Scale is the number of pixels per yard of the 120x60 canvas.
	Scale int
}

// DefaultOptions returns the standard playback settings.
func DefaultOptions() Options {
	return Options{FrameDurationMS: 100, Scale: 10}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FrameDurationMS <= 0 {
		o.FrameDurationMS = def.FrameDurationMS
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	return o
}

// Animation is the frame sequence and static layout of one play.
type Animation struct {
	GameID      int64
	PlayID      int64
	HomeTeam    string
	VisitorTeam string
	// Teams are the two clubs in the order they first appear in tracking.
	Teams         [2]string
	Colors        map[string]ColorPair
	ColorsSwapped bool
	// ColorDistance is the distance between the two clubs' natural primaries.
	ColorDistance float64

	LineOfScrimmage float64
	FirstDownMarker float64
	Direction       string
	Down            int
	Quarter         int
	GameClock       string
	Description     string

	Frames []Frame
	Layout Layout
}

// FrameIDs returns the tracking frame ids in playback order.
func (a *Animation) FrameIDs() []int {
	ids := make([]int, 0, len(a.Frames))
	for _, f := range a.Frames {
		id, _ := strconv.Atoi(f.Name)
		ids = append(ids, id)
	}
	return ids
}

// Figure assembles the Plotly document: the first frame's traces as the
// initial data, the layout, and every frame.
func (a *Animation) Figure() Figure {
	var data []Trace
	if len(a.Frames) > 0 {
		data = a.Frames[0].Data
	}
	return Figure{Data: data, Layout: a.Layout, Frames: a.Frames}
}

// playGeometry carries the derived play fields shared by every frame.
type playGeometry struct {
	lineOfScrimmage float64
	firstDown       float64
	endzoneColors   [2]string
}

// Animate builds the animation of one play. The input tables are read only;
// the selected rows are copied before use.
func Animate(games []dataset.Game, tracking []dataset.TrackingFrame, plays []dataset.Play, gameID, playID int64, opts Options) (*Animation, error) {
	opts = opts.withDefaults()

	game, ok := selectGame(games, gameID)
	if !ok {
		return nil, &SelectionNotFoundError{Table: "games", GameID: gameID, PlayID: playID}
	}
	play, ok := selectPlay(plays, gameID, playID)
	if !ok {
		return nil, &SelectionNotFoundError{Table: "plays", GameID: gameID, PlayID: playID}
	}
	rows := selectTracking(tracking, gameID, playID)
	if len(rows) == 0 {
		return nil, &SelectionNotFoundError{Table: "tracking", GameID: gameID, PlayID: playID}
	}

	clubs := clubOrder(rows)
	teams := make([]string, 0, 2)
	for _, club := range clubs {
		if club != string(footballClub) {
			teams = append(teams, club)
		}
	}
	if len(teams) != 2 {
		return nil, &InvalidTeamSetError{GameID: gameID, PlayID: playID, Teams: teams}
	}
	if !singleBall(rows) {
		return nil, &InvalidTeamSetError{
			GameID: gameID,
			PlayID: playID,
			Teams:  teams,
			Reason: "expected one football entity",
		}
	}

	colors, distance, err := colorPairs(teams[0], teams[1])
	if err != nil {
		return nil, fmt.Errorf("assign colors: %w", err)
	}
	home, visitor := string(game.HomeTeamAbbr), string(game.VisitorTeamAbbr)
	homeColors, okHome := colors[home]
	visitorColors, okVisitor := colors[visitor]
	if !okHome || !okVisitor {
		return nil, &InvalidTeamSetError{
			GameID: gameID,
			PlayID: playID,
			Teams:  teams,
			Reason: fmt.Sprintf("game teams %s and %s do not match tracking clubs", home, visitor),
		}
	}

	// The direction comes from tracking, not the play record; the two can
	// disagree in source data.
	direction := string(rows[0].PlayDirection)
	geom := playGeometry{
		lineOfScrimmage: play.AbsoluteYardlineNumber,
		endzoneColors:   [2]string{homeColors.Primary(), visitorColors.Primary()},
	}
	geom.firstDown = FirstDownMarker(geom.lineOfScrimmage, play.YardsToGo, direction)

	anim := &Animation{
		GameID:          gameID,
		PlayID:          playID,
		HomeTeam:        home,
		VisitorTeam:     visitor,
		Teams:           [2]string{teams[0], teams[1]},
		Colors:          colors,
		ColorsSwapped:   distance < colorSwapThreshold,
		ColorDistance:   distance,
		LineOfScrimmage: geom.lineOfScrimmage,
		FirstDownMarker: geom.firstDown,
		Direction:       direction,
		Down:            play.Down,
		Quarter:         play.Quarter,
		GameClock:       play.GameClock,
		Description:     SplitDescription(play.PlayDescription),
	}

	frameIDs := distinctFrameIDs(rows)
	anim.Frames = make([]Frame, 0, len(frameIDs))
	for _, frameID := range frameIDs {
		anim.Frames = append(anim.Frames, buildFrame(frameID, rows, clubs, colors, geom))
	}
	anim.Layout = buildLayout(anim, frameIDs, opts)
	return anim, nil
}

func selectGame(games []dataset.Game, gameID int64) (dataset.Game, bool) {
	for _, g := range games {
		if g.GameID == gameID {
			return g, true
		}
	}
	return dataset.Game{}, false
}

func selectPlay(plays []dataset.Play, gameID, playID int64) (dataset.Play, bool) {
	for _, p := range plays {
		if p.GameID == gameID && p.PlayID == playID {
			return p, true
		}
	}
	return dataset.Play{}, false
}

func selectTracking(tracking []dataset.TrackingFrame, gameID, playID int64) []dataset.TrackingFrame {
	var rows []dataset.TrackingFrame
	for _, row := range tracking {
		if row.GameID == gameID && row.PlayID == playID {
			rows = append(rows, row)
		}
	}
	return rows
}

// clubOrder returns the distinct clubs, ball included, by first appearance.
func clubOrder(rows []dataset.TrackingFrame) []string {
	seen := make(map[string]struct{})
	var clubs []string
	for _, row := range rows {
		club := string(row.Club)
		if _, ok := seen[club]; ok {
			continue
		}
		seen[club] = struct{}{}
		clubs = append(clubs, club)
	}
	return clubs
}

// singleBall reports whether the play tracks the football with at most one
// row per frame and at least one row overall.
func singleBall(rows []dataset.TrackingFrame) bool {
	perFrame := make(map[int]int)
	for _, row := range rows {
		if !row.IsBall() {
			continue
		}
		perFrame[row.FrameID]++
		if perFrame[row.FrameID] > 1 {
			return false
		}
	}
	return len(perFrame) > 0
}

func distinctFrameIDs(rows []dataset.TrackingFrame) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, row := range rows {
		if _, ok := seen[row.FrameID]; ok {
			continue
		}
		seen[row.FrameID] = struct{}{}
		ids = append(ids, row.FrameID)
	}
	sort.Ints(ids)
	return ids
}

func buildFrame(frameID int, rows []dataset.TrackingFrame, clubs []string, colors map[string]ColorPair, geom playGeometry) Frame {
	data := make([]Trace, 0, 6+len(clubs))
	data = append(data, yardNumberTrace(5), yardNumberTrace(sidelineY-5))
	data = append(data,
		guideLine(geom.lineOfScrimmage, "blue"),
		guideLine(geom.firstDown, "yellow"),
		endzoneBlock(0, geom.endzoneColors[0]),
		endzoneBlock(fieldLength-endzoneDepth, geom.endzoneColors[1]),
	)
	for _, club := range clubs {
		data = append(data, entityTrace(frameID, club, rows, colors[club]))
	}
	return Frame{Name: strconv.Itoa(frameID), Data: data}
}

func yardNumberTrace(y float64) Trace {
	xs, labels := yardNumbers()
	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = y
	}
	return Trace{
		Type:       "scatter",
		X:          xs,
		Y:          ys,
		Mode:       "text",
		Text:       labels,
		TextFont:   &Font{Family: fieldFont, Size: 30, Color: "#ffffff"},
		ShowLegend: boolPtr(false),
		HoverInfo:  "none",
	}
}

func guideLine(x float64, color string) Trace {
	return Trace{
		Type:       "scatter",
		X:          []float64{x, x},
		Y:          []float64{0, sidelineY},
		Line:       &Line{Dash: "dash", Color: color},
		ShowLegend: boolPtr(false),
		HoverInfo:  "none",
	}
}

func endzoneBlock(xMin float64, color string) Trace {
	xMax := xMin + endzoneDepth
	return Trace{
		Type:       "scatter",
		X:          []float64{xMin, xMin, xMax, xMax, xMin},
		Y:          []float64{0, sidelineY, sidelineY, 0, 0},
		Fill:       "toself",
		FillColor:  color,
		Mode:       "lines",
		Line:       &Line{Color: "white", Width: 3},
		Opacity:    floatPtr(1),
		ShowLegend: boolPtr(false),
		HoverInfo:  "skip",
	}
}

func entityTrace(frameID int, club string, rows []dataset.TrackingFrame, pair ColorPair) Trace {
	trace := Trace{
		Type: "scatter",
		X:    []float64{},
		Y:    []float64{},
		Mode: "markers",
		Name: club,
		Marker: &Marker{
			Color: pair.Primary(),
			Size:  10,
			Line:  &Line{Width: 2, Color: pair.Secondary()},
		},
	}
	isBall := club == string(footballClub)
	for _, row := range rows {
		if row.FrameID != frameID || string(row.Club) != club {
			continue
		}
		trace.X = append(trace.X, row.X)
		trace.Y = append(trace.Y, row.Y)
		if !isBall {
			trace.HoverText = append(trace.HoverText, hoverText(row))
		}
	}
	if isBall {
		trace.HoverInfo = "none"
	} else {
		trace.HoverInfo = "text"
	}
	return trace
}

func hoverText(row dataset.TrackingFrame) string {
	return fmt.Sprintf("nflId:%d<br>displayName:%s<br>Player Speed:%s MPH",
		row.NFLID.Int64, row.DisplayName, formatSpeed(SpeedMPH(row.S)))
}

// SpeedMPH converts yards per second to miles per hour rounded to three
// decimals.
func SpeedMPH(yardsPerSecond float64) float64 {
	return math.Round(yardsPerSecond*mphPerYardPerSecond*1000) / 1000
}

// formatSpeed prints a speed the way a float literal reads: shortest form,
// always with a fractional part.
func formatSpeed(mph float64) string {
	s := strconv.FormatFloat(mph, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
