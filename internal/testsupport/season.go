package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture identifiers. Week 1 holds one BUF at LA play with two frames;
// week 2 holds one ARI at KC play with a single frame.
const (
	FixtureGameID     int64 = 2022090800
	FixturePlayID     int64 = 56
	FixtureWeek2Game  int64 = 2022091200
	FixtureWeek2Play  int64 = 101
	FixtureWeek1Rows        = 6
	FixtureWeek2Rows        = 3
	FixtureTotalPlays       = 3
)

const gamesCSV = `gameId,season,week,gameDate,gameTimeEastern,homeTeamAbbr,visitorTeamAbbr,homeFinalScore,visitorFinalScore
2022090800,2022,1,09/08/2022,20:20:00,LA,BUF,10,31
2022091200,2022,2,09/12/2022,20:15:00,KC,ARI,NA,NA
`

const playersCSV = `nflId,height,weight,birthDate,collegeName,position,displayName
25511,6-4,225,1977-08-03,Michigan,QB,Tom Brady
35459,5-11,NA,NA,NA,WR,Test Receiver
43294,6-0,195,1995-01-10,Florida State,CB,Test Defender
`

const playsCSV = `gameId,playId,ballCarrierId,ballCarrierDisplayName,playDescription,quarter,down,yardsToGo,possessionTeam,defensiveTeam,yardlineSide,yardlineNumber,gameClock,preSnapHomeScore,preSnapVisitorScore,passResult,penaltyYards,prePenaltyPlayResult,playResult,playNullifiedByPenalty,absoluteYardlineNumber,offenseFormation,defendersInTheBox
2022090800,56,35459,Test Receiver,"(10:10) J.Allen pass short right to S.Diggs to LA 45 for 12 yards (J.Ramsey).",1,2,7,BUF,LA,BUF,33,10:10,0,0,C,NA,12,12,N,43,SHOTGUN,6.0
2022090800,80,35459,Test Receiver,(9:30) run up the middle,1,1,10,BUF,LA,BUF,45,09:30,0,0,NA,5,NA,0,Y,55,NA,NA
2022091200,101,25511,Tom Brady,(15:00) kneel,1,1,10,KC,ARI,KC,25,15:00,0,0,NA,NA,-1,-1,N,35,I_FORM,7
`

const tacklesCSV = `gameId,playId,nflId,tackle,assist,forcedFumble,pff_missedTackle
2022090800,56,43294,1,0,0,0
2022090800,80,43294,0,1,0,0
`

const trackingWeek1CSV = `gameId,playId,nflId,displayName,frameId,time,jerseyNumber,club,playDirection,x,y,s,a,dis,o,dir,event
2022090800,56,35459,Test Receiver,1,2022-09-08 20:24:05.200000,14,BUF,left,88.37,27.27,0.34,0.74,0.04,NA,NA,NA
2022090800,56,NA,football,1,2022-09-08 20:24:05.200000,NA,football,left,88,26.5,0,0,0,NA,NA,NA
2022090800,56,43294,Test Defender,1,2022-09-08 20:24:05.200000,20,LA,left,85,26,1.1,0.5,0.1,270.5,90.1,ball_snap
2022090800,56,35459,Test Receiver,2,2022-09-08 20:24:05.300000,14,BUF,left,88.1,27.3,2,0.74,0.2,180,271,NA
2022090800,56,NA,football,2,2022-09-08 20:24:05.300000,NA,football,left,87.5,26.5,3,0,0.5,NA,NA,NA
2022090800,56,43294,Test Defender,2,2022-09-08 20:24:05.300000,20,LA,left,85.2,26.1,1.5,0.5,0.2,269,92,NA
`

const trackingWeek2CSV = `gameId,playId,nflId,displayName,frameId,time,jerseyNumber,club,playDirection,x,y,s,a,dis,o,dir,event
2022091200,101,25511,Tom Brady,1,2022-09-12 20:16:00.100000,12,KC,right,34,26.6,0,0,0,90,90,ball_snap
2022091200,101,NA,football,1,2022-09-12 20:16:00.100000,NA,football,right,35,26.6,0,0,0,NA,NA,ball_snap
2022091200,101,52000,Test Lineman,1,2022-09-12 20:16:00.100000,99,ARI,right,36,26,0,0,0,270,270,ball_snap
`

var seasonFiles = map[string]string{
	"games.csv":           gamesCSV,
	"players.csv":         playersCSV,
	"plays.csv":           playsCSV,
	"tackles.csv":         tacklesCSV,
	"tracking_week_1.csv": trackingWeek1CSV,
	"tracking_week_2.csv": trackingWeek2CSV,
}

// WriteSeason populates dir with the fixture season CSVs.
func WriteSeason(t testing.TB, dir string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir season dir: %v", err)
	}
	for name, body := range seasonFiles {
		WriteText(t, filepath.Join(dir, name), body)
	}
}

// WriteText writes body to path, creating parent directories.
func WriteText(t testing.TB, path, body string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
