package playvis

// The types below mirror the subset of the Plotly figure schema the
// animation uses. Field names follow Plotly's JSON attribute names.

// Figure is a complete Plotly document.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames"`
}

// Frame is one animation snapshot.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Trace is a scatter trace.
type Trace struct {
	Type       string    `json:"type"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	Mode       string    `json:"mode,omitempty"`
	Name       string    `json:"name,omitempty"`
	Text       []string  `json:"text,omitempty"`
	TextFont   *Font     `json:"textfont,omitempty"`
	HoverText  []string  `json:"hovertext,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty"`
	ShowLegend *bool     `json:"showlegend,omitempty"`
	Line       *Line     `json:"line,omitempty"`
	Fill       string    `json:"fill,omitempty"`
	FillColor  string    `json:"fillcolor,omitempty"`
	Opacity    *float64  `json:"opacity,omitempty"`
	Marker     *Marker   `json:"marker,omitempty"`
}

// Font styles text in traces, annotations, and the slider label.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Line styles a trace path or a marker outline.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker draws one entity; Line is its outline.
type Marker struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
	Line  *Line  `json:"line,omitempty"`
}

// Layout is the static part of the figure.
type Layout struct {
	Autosize    bool         `json:"autosize"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	PlotBGColor string       `json:"plot_bgcolor"`
	Title       Title        `json:"title"`
	UpdateMenus []UpdateMenu `json:"updatemenus"`
	Sliders     []Slider     `json:"sliders"`
	Annotations []Annotation `json:"annotations"`
}

// Axis fixes one axis of the field to a range in yards.
type Axis struct {
	Range          [2]float64 `json:"range"`
	AutoRange      bool       `json:"autorange"`
	TickMode       string     `json:"tickmode,omitempty"`
	TickVals       []float64  `json:"tickvals,omitempty"`
	ShowTickLabels bool       `json:"showticklabels"`
	ShowGrid       *bool      `json:"showgrid,omitempty"`
}

// Title is the layout heading; Text may contain <br> line breaks.
type Title struct {
	Text string `json:"text"`
}

// Pad is padding in pixels around a menu or slider.
type Pad struct {
	T int `json:"t,omitempty"`
	R int `json:"r,omitempty"`
	B int `json:"b,omitempty"`
	L int `json:"l,omitempty"`
}

// Button is a Plotly updatemenu button; Args holds the positional
// arguments of the Plotly method it calls.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// UpdateMenu is a row of buttons, here the play and pause controls.
type UpdateMenu struct {
	Type       string   `json:"type"`
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	Pad        Pad      `json:"pad"`
	ShowActive bool     `json:"showactive"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
}

// AnimateOptions is the options object of Plotly.animate.
type AnimateOptions struct {
	Frame       FrameTiming `json:"frame"`
	Transition  Transition  `json:"transition"`
	Mode        string      `json:"mode,omitempty"`
	FromCurrent bool        `json:"fromcurrent,omitempty"`
}

// FrameTiming sets how long each frame is shown.
type FrameTiming struct {
	Duration int  `json:"duration"`
	Redraw   bool `json:"redraw"`
}

// Transition sets the tween between frames. Zero duration jumps.
type Transition struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// CurrentValue labels the slider with the active frame.
type CurrentValue struct {
	Font    Font   `json:"font"`
	Prefix  string `json:"prefix"`
	Visible bool   `json:"visible"`
	XAnchor string `json:"xanchor"`
}

// Slider scrubs through frames, one step per frame.
type Slider struct {
	Active       int          `json:"active"`
	XAnchor      string       `json:"xanchor"`
	YAnchor      string       `json:"yanchor"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Transition   Transition   `json:"transition"`
	Pad          Pad          `json:"pad"`
	Len          float64      `json:"len"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Steps        []SliderStep `json:"steps"`
}

// SliderStep jumps to the frame named in Args.
type SliderStep struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Annotation is a text box placed in data coordinates.
type Annotation struct {
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Text        string   `json:"text"`
	ShowArrow   bool     `json:"showarrow"`
	Font        Font     `json:"font"`
	Align       string   `json:"align,omitempty"`
	BorderColor string   `json:"bordercolor,omitempty"`
	BorderWidth int      `json:"borderwidth,omitempty"`
	BorderPad   int      `json:"borderpad,omitempty"`
	BGColor     string   `json:"bgcolor,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	TextAngle   int      `json:"textangle,omitempty"`
}

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }
