package game

// Level is a difficulty setting. The only thing difficulty changes is
// how long the player gets per question.
type Level struct {
	Key             string
	Label           string
	TimePerQuestion int // seconds
}

// Levels is the fixed difficulty ladder, easiest first.
var Levels = []Level{
	{Key: "easy", Label: "Easy", TimePerQuestion: 8},
	{Key: "medium", Label: "Medium", TimePerQuestion: 6},
	{Key: "ninja", Label: "Ninja", TimePerQuestion: 4},
}

// DefaultLevel is the preselected difficulty.
var DefaultLevel = Levels[0]

// LevelByKey looks up a level by its key.
func LevelByKey(key string) (Level, bool) {
	for _, l := range Levels {
		if l.Key == key {
			return l, true
		}
	}
	return Level{}, false
}
