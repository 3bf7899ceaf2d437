package midi

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/barsim/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrUnsupportedTimeFormat = errors.New("only metric time formats are supported")

type timeSig struct {
	tick       int64
	num, denom uint8
}

type marker struct {
	tick int64
	name string
}

type pending struct {
	tick     int64
	velocity uint8
}

type tickedNote struct {
	tick int64
	note model.Note
}

type noteKey struct {
	channel, key uint8
}

// ToPiece converts every track with notes into a model.Track. Measures
// follow the time signatures (4/4 until the first one) and markers or cue
// points become rehearsal marks.
func ToPiece(name string, s *smf.SMF) (model.MusicPiece, error) {
	piece := model.MusicPiece{Name: name}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return piece, fmt.Errorf("%w: %v", ErrUnsupportedTimeFormat, s.TimeFormat)
	}

	sigs, markers := scanMeta(s)
	seconds := func(tick int64) float64 {
		return float64(s.TimeAt(tick)) / 1e6
	}

	for i, track := range s.Tracks {
		trackName, notes := readTrack(track, seconds)
		if len(notes) == 0 {
			continue
		}
		if trackName == "" {
			trackName = fmt.Sprintf("Track %d", i+1)
		}

		bars := barStarts(sigs, int64(ticks), notes[len(notes)-1].tick)
		t := model.Track{
			Name:           trackName,
			MeasureIndices: measureIndices(bars, notes),
			Rehearsals:     rehearsals(bars, markers),
		}
		for _, n := range notes {
			t.Notes = append(t.Notes, n.note)
		}
		piece.Tracks = append(piece.Tracks, t)
	}
	return piece, nil
}

func scanMeta(s *smf.SMF) ([]timeSig, []marker) {
	sigs := []timeSig{{tick: 0, num: 4, denom: 4}}
	var markers []marker
	for _, track := range s.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			var num, denom, cpt, dsqpq uint8
			var text string
			switch {
			case ev.Message.GetMetaTimeSig(&num, &denom, &cpt, &dsqpq):
				if num > 0 && denom > 0 {
					sigs = append(sigs, timeSig{tick: tick, num: num, denom: denom})
				}
			case ev.Message.GetMetaMarker(&text), ev.Message.GetMetaCuepoint(&text):
				markers = append(markers, marker{tick: tick, name: text})
			}
		}
	}
	// the last signature at a tick wins
	sort.SliceStable(sigs, func(i, j int) bool { return sigs[i].tick < sigs[j].tick })
	var dedup []timeSig
	for _, sig := range sigs {
		if len(dedup) > 0 && dedup[len(dedup)-1].tick == sig.tick {
			dedup[len(dedup)-1] = sig
			continue
		}
		dedup = append(dedup, sig)
	}
	sort.SliceStable(markers, func(i, j int) bool { return markers[i].tick < markers[j].tick })
	return dedup, markers
}

func readTrack(track smf.Track, seconds func(int64) float64) (string, []tickedNote) {
	var name string
	var notes []tickedNote
	on := map[noteKey][]pending{}

	end := func(k noteKey, tick int64) {
		starts := on[k]
		if len(starts) == 0 {
			return
		}
		p := starts[0]
		on[k] = starts[1:]
		notes = append(notes, tickedNote{tick: p.tick, note: model.Note{
			Pitch:    int(k.key),
			Start:    seconds(p.tick),
			End:      seconds(tick),
			Velocity: p.velocity,
			Channel:  k.channel,
		}})
	}

	var tick int64
	for _, ev := range track {
		tick += int64(ev.Delta)
		var channel, key, velocity uint8
		var text string
		switch {
		case ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			k := noteKey{channel, key}
			on[k] = append(on[k], pending{tick: tick, velocity: velocity})
		case ev.Message.GetNoteOff(&channel, &key, &velocity), ev.Message.GetNoteOn(&channel, &key, &velocity):
			end(noteKey{channel, key}, tick)
		case ev.Message.GetMetaTrackName(&text):
			if name == "" {
				name = text
			}
		}
	}
	// anything still sounding ends with the track
	for k := range on {
		for len(on[k]) > 0 {
			end(k, tick)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return model.TimePitchLess(notes[i].note, notes[j].note)
	})
	return name, notes
}

// barStarts lists the first tick of every bar up to and including the bar
// holding lastTick. A time signature starting mid bar starts a new bar.
func barStarts(sigs []timeSig, ticksPerQuarter, lastTick int64) []int64 {
	var res []int64
	current := 0
	for tick := int64(0); tick <= lastTick; {
		res = append(res, tick)
		sig := sigs[current]
		next := tick + 4*ticksPerQuarter*int64(sig.num)/int64(sig.denom)
		if current+1 < len(sigs) && sigs[current+1].tick <= next {
			current++
			if sigs[current].tick > tick {
				next = sigs[current].tick
			}
		}
		if next <= tick {
			next = tick + 1
		}
		tick = next
	}
	return res
}

// measureIndices gives, for every bar after the first, the index of the
// first note starting in it.
func measureIndices(bars []int64, notes []tickedNote) []int {
	res := []int{}
	n := 0
	for _, start := range bars[1:] {
		for n < len(notes) && notes[n].tick < start {
			n++
		}
		res = append(res, n)
	}
	return res
}

func rehearsals(bars []int64, markers []marker) []model.Rehearsal {
	var res []model.Rehearsal
	for _, m := range markers {
		// bar containing the marker
		i := sort.Search(len(bars), func(i int) bool { return bars[i] > m.tick }) - 1
		if i < 0 {
			continue
		}
		res = append(res, model.Rehearsal{Measure: i, Name: m.name})
	}
	return res
}
