package note

import (
	"errors"
	"fmt"
	"strings"
)

const (
	HalfStep  = 1
	WholeStep = HalfStep * 2
	Octave    = HalfStep * 12

	MinIndex = 0
	MaxIndex = 127

	// octave numbers follow the YAMAHA convention: C-2=0, C3=60, G8=127
	MinOctave = -2
	MaxOctave = 8

	MaxOctaveShift = 10
)

var (
	ErrInvalidPitchIndex = errors.New("invalid pitch index")
	ErrOctaveOutOfRange  = errors.New("octave out of range")
)

// Pitch is an absolute note on the MIDI note-number grid. The zero value is C-2.
type Pitch struct {
	index uint8
}

func isIndex(n int) bool {
	return MinIndex <= n && n <= MaxIndex
}

func New(index int) (Pitch, error) {
	if !isIndex(index) {
		return Pitch{}, fmt.Errorf("%d is not in [%d, %d]: %w", index, MinIndex, MaxIndex, ErrInvalidPitchIndex)
	}
	return Pitch{index: uint8(index)}, nil
}

// MustNew is New for indexes known to be valid, e.g. package level tables.
func MustNew(index int) Pitch {
	p, err := New(index)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pitch) Index() int {
	return int(p.index)
}

func (p Pitch) Octave() int {
	return int(p.index)/Octave + MinOctave
}

func (p Pitch) Class() PitchClass {
	return PitchClass(p.index % Octave)
}

func (p Pitch) Name() string {
	return p.Class().Name()
}

// String renders the name with its octave number, e.g. "C3" or "C#3/D♭3".
func (p Pitch) String() string {
	oct := fmt.Sprint(p.Octave())
	name := p.Name()
	if !strings.ContainsAny(name, "#♭") {
		return name + oct
	}
	name = strings.ReplaceAll(name, "#", "#"+oct)
	return strings.ReplaceAll(name, "♭", "♭"+oct)
}

// SetOctave keeps the pitch class and moves it to octave n.
func (p Pitch) SetOctave(n int) (Pitch, error) {
	if n < MinOctave || n > MaxOctave {
		return Pitch{}, fmt.Errorf("octave %d is not in [%d, %d]: %w", n, MinOctave, MaxOctave, ErrOctaveOutOfRange)
	}
	return New((n-MinOctave)*Octave + int(p.Class()))
}

func (p Pitch) ShiftOctave(n int) (Pitch, error) {
	if n < -MaxOctaveShift || n > MaxOctaveShift {
		return Pitch{}, fmt.Errorf("octave shift %d is not in [%d, %d]: %w", n, -MaxOctaveShift, MaxOctaveShift, ErrOctaveOutOfRange)
	}
	return New(int(p.index) + n*Octave)
}

// ShiftSemitones fails for any n that would leave the note range. n is bounded
// before it is scaled so huge shifts can't wrap around into range.
func (p Pitch) ShiftSemitones(n int) (Pitch, error) {
	return p.shift(n, HalfStep)
}

func (p Pitch) ShiftWholeSteps(n int) (Pitch, error) {
	return p.shift(n, WholeStep)
}

func (p Pitch) shift(n, step int) (Pitch, error) {
	if n < -MaxIndex || n > MaxIndex {
		return Pitch{}, fmt.Errorf("shift of %d steps from %d: %w", n, p.index, ErrInvalidPitchIndex)
	}
	return New(int(p.index) + n*step)
}

// Interval returns the pitch the given interval above p.
func (p Pitch) Interval(iv Interval) (Pitch, error) {
	semitones, ok := Semitones(iv)
	if !ok {
		return Pitch{}, fmt.Errorf("%q: %w", iv, ErrUnknownInterval)
	}
	return p.ShiftSemitones(semitones)
}
