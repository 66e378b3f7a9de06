package dataset

// FootballClub is the pseudo-team code carried by ball tracking rows.
const FootballClub Category = "football"

// Table is a loaded dataset: its rows plus the sorted levels observed in
// each column the dataset declares categorical.
type Table[T any] struct {
	Rows       []T
	Categories map[string][]string
}

// Len returns the number of rows.
func (t Table[T]) Len() int { return len(t.Rows) }

// Game is one row of games.csv.
type Game struct {
	GameID            int64     `csv:"gameId"`
	Season            int       `csv:"season"`
	Week              int       `csv:"week"`
	GameDate          Date      `csv:"gameDate"`
	GameTimeEastern   string    `csv:"gameTimeEastern"`
	HomeTeamAbbr      Category  `csv:"homeTeamAbbr"`
	VisitorTeamAbbr   Category  `csv:"visitorTeamAbbr"`
	HomeFinalScore    NullInt64 `csv:"homeFinalScore"`
	VisitorFinalScore NullInt64 `csv:"visitorFinalScore"`
}

// Player is one row of players.csv. HeightIn is derived from Height.
type Player struct {
	NFLID       int64     `csv:"nflId"`
	Height      string    `csv:"height"`
	HeightIn    int       `csv:"-"`
	Weight      NullInt64 `csv:"weight"`
	BirthDate   string    `csv:"birthDate"`
	CollegeName Category  `csv:"collegeName"`
	Position    Category  `csv:"position"`
	DisplayName string    `csv:"displayName"`
}

// Play is one row of plays.csv. PlayNullifiedByPenalty is derived from the
// raw Y/N column, which is kept for the cache round trip.
type Play struct {
	GameID                     int64       `csv:"gameId" parquet:"gameId"`
	PlayID                     int64       `csv:"playId" parquet:"playId"`
	BallCarrierID              NullInt64   `csv:"ballCarrierId" parquet:"ballCarrierId"`
	BallCarrierDisplayName     string      `csv:"ballCarrierDisplayName" parquet:"ballCarrierDisplayName"`
	PlayDescription            string      `csv:"playDescription" parquet:"playDescription"`
	Quarter                    int         `csv:"quarter" parquet:"quarter"`
	Down                       int         `csv:"down" parquet:"down"`
	YardsToGo                  int         `csv:"yardsToGo" parquet:"yardsToGo"`
	PossessionTeam             Category    `csv:"possessionTeam" parquet:"possessionTeam"`
	DefensiveTeam              Category    `csv:"defensiveTeam" parquet:"defensiveTeam"`
	YardlineSide               string      `csv:"yardlineSide" parquet:"yardlineSide"`
	YardlineNumber             int         `csv:"yardlineNumber" parquet:"yardlineNumber"`
	GameClock                  string      `csv:"gameClock" parquet:"gameClock"`
	PreSnapHomeScore           NullInt64   `csv:"preSnapHomeScore" parquet:"preSnapHomeScore"`
	PreSnapVisitorScore        NullInt64   `csv:"preSnapVisitorScore" parquet:"preSnapVisitorScore"`
	PassResult                 Category    `csv:"passResult" parquet:"passResult"`
	PenaltyYards               NullInt64   `csv:"penaltyYards" parquet:"penaltyYards"`
	PrePenaltyPlayResult       NullInt64   `csv:"prePenaltyPlayResult" parquet:"prePenaltyPlayResult"`
	PlayResult                 NullInt64   `csv:"playResult" parquet:"playResult"`
	PlayNullifiedByPenaltyFlag string      `csv:"playNullifiedByPenalty" parquet:"playNullifiedByPenaltyFlag"`
	PlayNullifiedByPenalty     bool        `csv:"-" parquet:"playNullifiedByPenalty"`
	AbsoluteYardlineNumber     float64     `csv:"absoluteYardlineNumber" parquet:"absoluteYardlineNumber"`
	OffenseFormation           Category    `csv:"offenseFormation" parquet:"offenseFormation"`
	DefendersInTheBox          NullFloat64 `csv:"defendersInTheBox" parquet:"defendersInTheBox"`
}

// Tackle is one row of tackles.csv.
type Tackle struct {
	GameID          int64 `csv:"gameId" parquet:"gameId"`
	PlayID          int64 `csv:"playId" parquet:"playId"`
	NFLID           int64 `csv:"nflId" parquet:"nflId"`
	Tackle          int   `csv:"tackle" parquet:"tackle"`
	Assist          int   `csv:"assist" parquet:"assist"`
	ForcedFumble    int   `csv:"forcedFumble" parquet:"forcedFumble"`
	PFFMissedTackle int   `csv:"pff_missedTackle" parquet:"pff_missedTackle"`
}

// TrackingFrame is one row of tracking_week_<N>.csv: the position of a
// single entity (player or ball) at one frame of one play.
type TrackingFrame struct {
	GameID        int64       `csv:"gameId" parquet:"gameId"`
	PlayID        int64       `csv:"playId" parquet:"playId"`
	NFLID         NullInt64   `csv:"nflId" parquet:"nflId"`
	DisplayName   string      `csv:"displayName" parquet:"displayName"`
	FrameID       int         `csv:"frameId" parquet:"frameId"`
	Time          string      `csv:"time" parquet:"time"`
	JerseyNumber  NullInt64   `csv:"jerseyNumber" parquet:"jerseyNumber"`
	Club          Category    `csv:"club" parquet:"club"`
	PlayDirection Category    `csv:"playDirection" parquet:"playDirection"`
	X             float64     `csv:"x" parquet:"x"`
	Y             float64     `csv:"y" parquet:"y"`
	S             float64     `csv:"s" parquet:"s"`
	A             float64     `csv:"a" parquet:"a"`
	Dis           float64     `csv:"dis" parquet:"dis"`
	O             NullFloat64 `csv:"o" parquet:"o"`
	Dir           NullFloat64 `csv:"dir" parquet:"dir"`
	Event         Category    `csv:"event" parquet:"event"`
}

// IsBall reports whether the row tracks the football.
func (f TrackingFrame) IsBall() bool { return f.Club == FootballClub }

// BallCarrier identifies the ball carrier of one play.
type BallCarrier struct {
	GameID        int64
	PlayID        int64
	BallCarrierID NullInt64
}

// BallCarriers projects the ball carrier of every play.
func BallCarriers(plays []Play) []BallCarrier {
	out := make([]BallCarrier, 0, len(plays))
	for _, p := range plays {
		out = append(out, BallCarrier{GameID: p.GameID, PlayID: p.PlayID, BallCarrierID: p.BallCarrierID})
	}
	return out
}
