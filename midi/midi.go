package midi

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/barsim/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(path string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("parsing midi file %s: %v", path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file %s: %w", path, err)
	}
	return res, nil
}

// ReadPiece reads a midi file and converts it, naming the piece after the
// file.
func ReadPiece(path string) (model.MusicPiece, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return model.MusicPiece{}, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ToPiece(name, s)
}
