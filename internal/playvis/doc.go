// Package playvis turns the tracking rows of a single play into an animated
// field diagram.
//
// Animate selects the play, resolves the two clubs and their marker colors,
// derives the line of scrimmage and first-down marker, and emits one Frame
// per tracking frame id with yard numbers, guide lines, endzones, and one
// marker trace per club. The result is a Plotly-compatible figure; the
// package never draws anything itself. WriteJSON and WriteHTML serialize it
// for an external Plotly runtime.
//
// ColorDistance, ColorPairs, FirstDownMarker, and SplitDescription are pure
// helpers and can be used without building an animation.
package playvis
