package model

type NoteBody struct {
	Pitch    int     `json:"pitch"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Velocity uint8   `json:"velocity,omitempty"`
	Channel  uint8   `json:"channel,omitempty"`
	String   *int    `json:"string,omitempty"`
	Fret     *int    `json:"fret,omitempty"`
}

type RehearsalBody struct {
	Measure int    `json:"measure"`
	Name    string `json:"name"`
}

type TrackBody struct {
	Name           string          `json:"name"`
	Notes          []NoteBody      `json:"notes"`
	MeasureIndices []int           `json:"measure_indices"`
	Rehearsals     []RehearsalBody `json:"rehearsals"`
}

type AnalyzeRequestBody struct {
	Track       TrackBody `json:"track"`
	Metric      string    `json:"metric"`
	Reducer     string    `json:"reducer"`
	Threshold   float64   `json:"threshold"`
	Depth       int       `json:"depth"`
	Colormap    string    `json:"colormap"`
	Granularity string    `json:"granularity"`
}

type AnalyzeResponse struct {
	Id       string      `json:"id"`
	Sections []Section   `json:"sections"`
	Colors   []string    `json:"colors"`
	Matrix   [][]float64 `json:"matrix,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func (b TrackBody) ToTrack() Track {
	t := Track{
		Name:           b.Name,
		MeasureIndices: b.MeasureIndices,
	}
	for _, n := range b.Notes {
		note := Note{
			Pitch:    n.Pitch,
			Start:    n.Start,
			End:      n.End,
			Velocity: n.Velocity,
			Channel:  n.Channel,
		}
		if n.String != nil && n.Fret != nil {
			note.String = *n.String
			note.Fret = *n.Fret
			note.HasStringFret = true
		}
		t.Notes = append(t.Notes, note)
	}
	for _, r := range b.Rehearsals {
		t.Rehearsals = append(t.Rehearsals, Rehearsal{Measure: r.Measure, Name: r.Name})
	}
	return t
}

func NewTrackBody(t Track) TrackBody {
	b := TrackBody{
		Name:           t.Name,
		Notes:          []NoteBody{},
		MeasureIndices: t.MeasureIndices,
		Rehearsals:     []RehearsalBody{},
	}
	for _, n := range t.Notes {
		note := NoteBody{
			Pitch:    n.Pitch,
			Start:    n.Start,
			End:      n.End,
			Velocity: n.Velocity,
			Channel:  n.Channel,
		}
		if n.HasStringFret {
			s, f := n.String, n.Fret
			note.String = &s
			note.Fret = &f
		}
		b.Notes = append(b.Notes, note)
	}
	for _, r := range t.Rehearsals {
		b.Rehearsals = append(b.Rehearsals, RehearsalBody{Measure: r.Measure, Name: r.Name})
	}
	return b
}
