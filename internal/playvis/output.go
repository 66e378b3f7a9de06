package playvis

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("play").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="field"></div>
<script>
const figure = {{.Figure}};
Plotly.newPlot("field", figure.data, figure.layout).then(function () {
  Plotly.addFrames("field", figure.frames);
});
</script>
</body>
</html>
`))

// WriteJSON encodes the animation's Plotly figure as indented JSON.
func (a *Animation) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a.Figure()); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}

// WriteHTML writes a standalone page that loads plotly.js from plotlyURL and
// plays the animation.
func (a *Animation) WriteHTML(w io.Writer, plotlyURL string) error {
	payload, err := json.Marshal(a.Figure())
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	data := struct {
		Title     string
		PlotlyURL string
		Figure    template.JS
	}{
		Title:     fmt.Sprintf("Game %d Play %d", a.GameID, a.PlayID),
		PlotlyURL: plotlyURL,
		Figure:    template.JS(payload),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
