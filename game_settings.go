package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerComputer
)

type GameSettings struct {
	DarkType   PlayerType `json:"-"`
	LightType  PlayerType `json:"-"`
	Difficulty Difficulty `json:"difficulty"`
	// Seed feeds the computer player's random source; 0 means time-seeded.
	Seed int64 `json:"seed"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		DarkType:   PlayerHuman,
		LightType:  PlayerComputer,
		Difficulty: DifficultyHard,
		Seed:       0,
	}
}
