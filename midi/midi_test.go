package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/barsim/model"
	"github.com/jsphweid/barsim/segment"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const tpq = 96

// three bars of 3/4 at 120bpm: C+E, D, C+E with markers on bars 0 and 2
func fixture(t *testing.T, meter bool) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(tpq)

	var conductor smf.Track
	if meter {
		conductor.Add(0, smf.MetaMeter(3, 4))
	}
	conductor.Add(0, smf.MetaMarker("Intro"))
	conductor.Add(2*3*tpq, smf.MetaMarker("Verse"))
	conductor.Close(0)
	assert.Nil(t, s.Add(conductor))

	var piano smf.Track
	piano.Add(0, smf.MetaTrackSequenceName("Piano"))
	piano.Add(0, gomidi.NoteOn(0, 60, 100))
	piano.Add(0, gomidi.NoteOn(0, 64, 90))
	piano.Add(tpq, gomidi.NoteOff(0, 60))
	piano.Add(0, gomidi.NoteOff(0, 64))
	piano.Add(2*tpq, gomidi.NoteOn(0, 62, 100))
	piano.Add(tpq, gomidi.NoteOff(0, 62))
	piano.Add(2*tpq, gomidi.NoteOn(0, 64, 100))
	piano.Add(0, gomidi.NoteOn(0, 60, 100))
	piano.Add(tpq, gomidi.NoteOff(0, 60))
	piano.Add(0, gomidi.NoteOff(0, 64))
	piano.Close(0)
	assert.Nil(t, s.Add(piano))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.Nil(t, err)
	res, err := smf.ReadFrom(&buf)
	assert.Nil(t, err)
	return res
}

func TestToPiece(t *testing.T) {
	piece, err := ToPiece("song", fixture(t, true))
	assert.Nil(t, err)
	assert.Equal(t, "song", piece.Name)
	// the conductor track has no notes
	assert.Len(t, piece.Tracks, 1)

	track := piece.Tracks[0]
	assert.Equal(t, "Piano", track.Name)
	assert.Equal(t, []model.Note{
		{Pitch: 60, Start: 0, End: 0.5, Velocity: 100},
		{Pitch: 64, Start: 0, End: 0.5, Velocity: 90},
		{Pitch: 62, Start: 1.5, End: 2, Velocity: 100},
		{Pitch: 60, Start: 3, End: 3.5, Velocity: 100},
		{Pitch: 64, Start: 3, End: 3.5, Velocity: 100},
	}, track.Notes)
	assert.Equal(t, []int{2, 3}, track.MeasureIndices)
	assert.Equal(t, []model.Rehearsal{
		{Measure: 0, Name: "Intro"},
		{Measure: 2, Name: "Verse"},
	}, track.Rehearsals)
}

func TestToPieceDefaultsToCommonTime(t *testing.T) {
	piece, err := ToPiece("song", fixture(t, false))
	assert.Nil(t, err)

	track := piece.Tracks[0]
	// bars start at 0 and 384 ticks, the last notes sit in the second bar
	assert.Equal(t, []int{3}, track.MeasureIndices)
	assert.Equal(t, []model.Rehearsal{
		{Measure: 0, Name: "Intro"},
		{Measure: 1, Name: "Verse"},
	}, track.Rehearsals)
}

func TestToPieceLeadingRestBar(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(tpq)

	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(4, 4))
	conductor.Add(4*tpq, smf.MetaMarker("A"))
	conductor.Add(4*tpq, smf.MetaMarker("B"))
	conductor.Close(0)
	assert.Nil(t, s.Add(conductor))

	// nothing sounds in the first bar
	var bass smf.Track
	bass.Add(4*tpq, gomidi.NoteOn(0, 60, 100))
	bass.Add(tpq, gomidi.NoteOff(0, 60))
	bass.Add(3*tpq, gomidi.NoteOn(0, 62, 100))
	bass.Add(tpq, gomidi.NoteOff(0, 62))
	bass.Close(0)
	assert.Nil(t, s.Add(bass))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.Nil(t, err)
	parsed, err := smf.ReadFrom(&buf)
	assert.Nil(t, err)

	piece, err := ToPiece("late", parsed)
	assert.Nil(t, err)
	track := piece.Tracks[0]

	assert := assert.New(t)
	assert.Equal([]int{0, 1}, track.MeasureIndices)
	assert.Equal(3, track.MeasureCount())

	measures, err := segment.Measures(track)
	assert.Nil(err)
	assert.Len(measures, 3)
	assert.Empty(measures[0])
	assert.Equal(60, measures[1][0].Pitch)
	assert.Equal(62, measures[2][0].Pitch)
	assert.Equal([]model.Section{
		{Name: "", StartMeasure: 0, EndMeasure: 0, Length: 1},
		{Name: "A", StartMeasure: 1, EndMeasure: 1, Length: 1},
		{Name: "B", StartMeasure: 2, EndMeasure: 2, Length: 1},
	}, segment.SectionInfo(track))
}

func TestBarStartsFollowsTimeSignatureChanges(t *testing.T) {
	sigs := []timeSig{{tick: 0, num: 4, denom: 4}, {tick: 2 * 4 * tpq, num: 2, denom: 4}}
	res := barStarts(sigs, tpq, 12*tpq)
	assert.Equal(t, []int64{0, 4 * tpq, 8 * tpq, 10 * tpq, 12 * tpq}, res)
}

func TestMeasureIndicesKeepsEmptyBars(t *testing.T) {
	notes := []tickedNote{{tick: 0}, {tick: 10}, {tick: 250}}
	assert.Equal(t, []int{2, 2}, measureIndices([]int64{0, 100, 200}, notes))
}

func TestReadPiece(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tune.mid")

	var buf bytes.Buffer
	_, err := fixture(t, true).WriteTo(&buf)
	assert.Nil(t, err)
	assert.Nil(t, os.WriteFile(path, buf.Bytes(), 0o644))

	piece, err := ReadPiece(path)
	assert.Nil(t, err)
	assert.Equal(t, "tune", piece.Name)
	assert.Len(t, piece.Tracks, 1)
}

func TestReadMidiFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadMidiFile(filepath.Join(dir, "missing.mid"))
	assert.NotNil(t, err)

	garbage := filepath.Join(dir, "garbage.mid")
	assert.Nil(t, os.WriteFile(garbage, []byte("not midi at all"), 0o644))
	s, err := ReadMidiFile(garbage)
	assert.NotNil(t, err)
	assert.Nil(t, s)
}
