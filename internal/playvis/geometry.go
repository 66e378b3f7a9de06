package playvis

import (
	"strings"
	"unicode/utf8"
)

const (
	fieldLength = 120.0
	fieldWidth  = 53.3
	// sidelineY is the far sideline used for guide lines and endzone blocks.
	sidelineY = 53.5

	endzoneDepth = 10.0

	descriptionMaxWords = 15
	descriptionMaxChars = 115
	descriptionBreak    = "<br>"
)

// FirstDownMarker returns the yardline the offense must reach. Plays moving
// right add the yards to go; every other direction subtracts them.
func FirstDownMarker(lineOfScrimmage float64, yardsToGo int, direction string) float64 {
	if direction == "right" {
		return lineOfScrimmage + float64(yardsToGo)
	}
	return lineOfScrimmage - float64(yardsToGo)
}

// SplitDescription breaks a long play description into two lines after its
// sixteenth word. Descriptions of at most 15 words or at most 115 characters
// are returned unchanged.
func SplitDescription(description string) string {
	words := strings.Split(description, " ")
	if len(words) <= descriptionMaxWords || utf8.RuneCountInString(description) <= descriptionMaxChars {
		return description
	}
	return strings.Join(words[:descriptionMaxWords+1], " ") + descriptionBreak + strings.Join(words[descriptionMaxWords+1:], " ")
}

// yardNumbers returns the x positions and labels painted on the field:
// 10 through 50 and back down to 10.
func yardNumbers() ([]float64, []string) {
	labels := []string{"10", "20", "30", "40", "50", "40", "30", "20", "10"}
	xs := make([]float64, len(labels))
	for i := range labels {
		xs[i] = float64(20 + 10*i)
	}
	return xs, labels
}
