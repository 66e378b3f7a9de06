package playvis

import (
	"fmt"
	"strconv"
	"strings"
)

func buildLayout(anim *Animation, frameIDs []int, opts Options) Layout {
	tickVals := make([]float64, 0, 21)
	for x := 10; x <= 110; x += 5 {
		tickVals = append(tickVals, float64(x))
	}

	return Layout{
		Autosize: false,
		Width:    int(fieldLength) * opts.Scale,
		Height:   60 * opts.Scale,
		XAxis: Axis{
			Range:          [2]float64{0, fieldLength},
			AutoRange:      false,
			TickMode:       "array",
			TickVals:       tickVals,
			ShowTickLabels: false,
		},
		YAxis: Axis{
			Range:          [2]float64{0, fieldWidth},
			AutoRange:      false,
			ShowGrid:       boolPtr(false),
			ShowTickLabels: false,
		},
		PlotBGColor: fieldBackground,
		Title:       Title{Text: playTitle(anim)},
		UpdateMenus: []UpdateMenu{playbackMenu(opts)},
		Sliders:     []Slider{frameSlider(frameIDs, opts)},
		Annotations: annotations(anim),
	}
}

// playTitle puts the identifiers and clock at the top and pushes the
// description below the field.
func playTitle(anim *Animation) string {
	return fmt.Sprintf("GameId: %d, PlayId: %d<br>%s %dQ", anim.GameID, anim.PlayID, anim.GameClock, anim.Quarter) +
		strings.Repeat("<br>", titleLineBreaks) + anim.Description
}

func playbackMenu(opts Options) UpdateMenu {
	return UpdateMenu{
		Type: "buttons",
		Buttons: []Button{
			{
				Label:  "Play",
				Method: "animate",
				Args: []any{nil, AnimateOptions{
					Frame:       FrameTiming{Duration: opts.FrameDurationMS, Redraw: false},
					FromCurrent: true,
					Transition:  Transition{Duration: 0},
				}},
			},
			{
				Label:  "Pause",
				Method: "animate",
				Args: []any{[]any{nil}, AnimateOptions{
					Frame:      FrameTiming{Duration: 0, Redraw: false},
					Mode:       "immediate",
					Transition: Transition{Duration: 0},
				}},
			},
		},
		Direction:  "left",
		Pad:        Pad{R: 10, T: 87},
		ShowActive: false,
		X:          0.1,
		XAnchor:    "right",
		Y:          0,
		YAnchor:    "top",
	}
}

func frameSlider(frameIDs []int, opts Options) Slider {
	steps := make([]SliderStep, 0, len(frameIDs))
	for _, id := range frameIDs {
		name := strconv.Itoa(id)
		steps = append(steps, SliderStep{
			Label:  name,
			Method: "animate",
			Args: []any{[]string{name}, AnimateOptions{
				Frame:      FrameTiming{Duration: opts.FrameDurationMS, Redraw: false},
				Mode:       "immediate",
				Transition: Transition{Duration: 0},
			}},
		})
	}
	return Slider{
		Active:  0,
		XAnchor: "left",
		YAnchor: "top",
		CurrentValue: CurrentValue{
			Font:    Font{Size: 20},
			Prefix:  "Frame:",
			Visible: true,
			XAnchor: "right",
		},
		Transition: Transition{Duration: 300, Easing: "cubic-in-out"},
		Pad:        Pad{B: 10, T: 50},
		Len:        0.9,
		X:          0.1,
		Y:          0,
		Steps:      steps,
	}
}

// annotations marks the down at both ends of the first-down line and writes
// each club's code in its endzone, rotated to read from outside the field.
func annotations(anim *Animation) []Annotation {
	out := make([]Annotation, 0, 4)
	for _, y := range []float64{0, 53} {
		out = append(out, Annotation{
			X:           anim.FirstDownMarker,
			Y:           y,
			Text:        strconv.Itoa(anim.Down),
			ShowArrow:   false,
			Font:        Font{Family: fieldFont, Size: 16, Color: "black"},
			Align:       "center",
			BorderColor: "black",
			BorderWidth: 2,
			BorderPad:   4,
			BGColor:     "#ff7f0e",
			Opacity:     floatPtr(1),
		})
	}
	endzones := []struct {
		x     float64
		angle int
		team  string
	}{
		{endzoneDepth / 2, 270, anim.HomeTeam},
		{fieldLength - endzoneDepth/2, 90, anim.VisitorTeam},
	}
	for _, ez := range endzones {
		out = append(out, Annotation{
			X:         ez.x,
			Y:         sidelineY / 2,
			Text:      ez.team,
			ShowArrow: false,
			Font:      Font{Family: fieldFont, Size: 32, Color: "White"},
			TextAngle: ez.angle,
		})
	}
	return out
}
