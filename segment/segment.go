// Package segment splits a track's notes into measures and sections.
package segment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/model"
)

var ErrMalformedTrack = errors.New("malformed track")

func sortByTimePitch(notes []model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return model.TimePitchLess(notes[i], notes[j])
	})
}

// Measures returns the notes of a track grouped by measure, each measure
// sorted by start time and pitch. The returned slices are copies.
func Measures(track model.Track) ([][]model.Note, error) {
	bounds := track.MeasureBoundaries()
	n := len(track.Notes)
	measures := make([][]model.Note, 0, len(bounds))
	for i, start := range bounds {
		end := n
		if i < len(bounds)-1 {
			end = bounds[i+1]
		}
		if start < 0 || end > n || start > end {
			return nil, fmt.Errorf("%w: measure %d spans notes [%d, %d) of %d", ErrMalformedTrack, i, start, end, n)
		}
		notes := make([]model.Note, end-start)
		copy(notes, track.Notes[start:end])
		sortByTimePitch(notes)
		measures = append(measures, notes)
	}
	return measures, nil
}

// SectionInfo returns the start and end measure of every section. The
// sections always cover all measures without gaps.
func SectionInfo(track model.Track) []model.Section {
	numMeasures := track.MeasureCount()
	if numMeasures == 0 {
		return []model.Section{}
	}
	last := numMeasures - 1

	var sections []model.Section
	for _, r := range track.Rehearsals {
		if r.Measure < 0 || r.Measure > last {
			logger.GetLogger().Debug("skipping rehearsal mark outside piece", "name", r.Name, "measure", r.Measure)
			continue
		}
		if len(sections) > 0 && r.Measure <= sections[len(sections)-1].StartMeasure {
			logger.GetLogger().Debug("skipping out of order rehearsal mark", "name", r.Name, "measure", r.Measure)
			continue
		}
		sections = append(sections, model.Section{Name: r.Name, StartMeasure: r.Measure})
	}

	if len(sections) == 0 {
		sections = append(sections, model.Section{Name: model.NoSectionsName, StartMeasure: 0})
	} else if sections[0].StartMeasure > 0 {
		sections = append([]model.Section{{Name: "", StartMeasure: 0}}, sections...)
	}

	for i := range sections {
		if i < len(sections)-1 {
			sections[i].EndMeasure = sections[i+1].StartMeasure - 1
		} else {
			sections[i].EndMeasure = last
		}
		sections[i].Length = sections[i].EndMeasure - sections[i].StartMeasure + 1
	}
	return sections
}

// Sections flattens the measures of each section into one note slice.
// Measures past the end of the piece are ignored.
func Sections(info []model.Section, measures [][]model.Note) [][]model.Note {
	res := make([][]model.Note, 0, len(info))
	for _, s := range info {
		notes := []model.Note{}
		for m := s.StartMeasure; m <= s.EndMeasure && m < len(measures); m++ {
			if m < 0 {
				continue
			}
			notes = append(notes, measures[m]...)
		}
		res = append(res, notes)
	}
	return res
}
