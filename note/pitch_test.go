package note

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctaveNumberForEveryIndex(t *testing.T) {
	for n := MinIndex; n <= MaxIndex; n++ {
		p, err := New(n)
		require.NoError(t, err)
		assert.Equal(t, n/12-2, p.Octave(), "index %d", n)
		assert.Equal(t, n, p.Index())
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 128, 1000} {
		_, err := New(n)
		assert.ErrorIs(t, err, ErrInvalidPitchIndex, "index %d", n)
	}
}

func TestYamahaOctaveConvention(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C-2", MustNew(0).String())
	assert.Equal("C3", MustNew(60).String())
	assert.Equal("G8", MustNew(127).String())
	assert.Equal("C#3/D♭3", MustNew(61).String())
	assert.Equal("A#-1/B♭-1", MustNew(22).String())
}

func TestNames(t *testing.T) {
	want := []string{"C", "C#/D♭", "D", "D#/E♭", "E", "F", "F#/G♭", "G", "G#/A♭", "A", "A#/B♭", "B"}
	for i, name := range want {
		assert.Equal(t, name, MustNew(i+48).Name())
		assert.Equal(t, PitchClass(i), MustNew(i+48).Class())
	}
}

func TestShiftSemitonesRoundTrip(t *testing.T) {
	for idx := MinIndex; idx <= MaxIndex; idx += 7 {
		p := MustNew(idx)
		for n := -130; n <= 130; n += 3 {
			shifted, err := p.ShiftSemitones(n)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidPitchIndex)
				continue
			}
			back, err := shifted.ShiftSemitones(-n)
			require.NoError(t, err)
			assert.Equal(t, p, back)
		}
	}
}

func TestShiftWholeSteps(t *testing.T) {
	p, err := MustNew(60).ShiftWholeSteps(3)
	require.NoError(t, err)
	assert.Equal(t, 66, p.Index())

	_, err = MustNew(120).ShiftWholeSteps(4)
	assert.ErrorIs(t, err, ErrInvalidPitchIndex)
}

func TestHugeShiftsDoNotWrap(t *testing.T) {
	for _, n := range []int{math.MinInt + 30, math.MaxInt - 30, math.MinInt, math.MaxInt, 128, -128} {
		_, err := MustNew(0).ShiftWholeSteps(n)
		assert.ErrorIs(t, err, ErrInvalidPitchIndex, n)
		_, err = MustNew(60).ShiftSemitones(n)
		assert.ErrorIs(t, err, ErrInvalidPitchIndex, n)
	}

	p, err := MustNew(127).ShiftSemitones(-127)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index())
}

func TestSetOctave(t *testing.T) {
	cases := []struct {
		index  int
		octave int
		want   int
		err    error
	}{
		{61, 0, 25, nil},
		{61, -2, 1, nil},
		{7, 8, 127, nil},
		{8, 8, 0, ErrInvalidPitchIndex},
		{60, 9, 0, ErrOctaveOutOfRange},
		{60, -3, 0, ErrOctaveOutOfRange},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d to octave %d", c.index, c.octave), func(t *testing.T) {
			p, err := MustNew(c.index).SetOctave(c.octave)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, p.Index())
			assert.Equal(t, c.octave, p.Octave())
		})
	}
}

func TestShiftOctave(t *testing.T) {
	p, err := MustNew(60).ShiftOctave(-5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index())

	_, err = MustNew(60).ShiftOctave(6)
	assert.ErrorIs(t, err, ErrInvalidPitchIndex)

	_, err = MustNew(0).ShiftOctave(11)
	assert.ErrorIs(t, err, ErrOctaveOutOfRange)
	assert.False(t, errors.Is(err, ErrInvalidPitchIndex))
}

func TestIntervalAliasesShareOffsets(t *testing.T) {
	root := MustNew(60)
	for alias, canonical := range aliases {
		a, err := root.Interval(alias)
		require.NoError(t, err)
		c, err := root.Interval(canonical)
		require.NoError(t, err)
		assert.Equal(t, c, a, "%s vs %s", alias, canonical)
	}

	p, err := root.Interval(MajorThirteenth)
	require.NoError(t, err)
	assert.Equal(t, 81, p.Index())

	_, err = MustNew(110).Interval(MajorThirteenth)
	assert.ErrorIs(t, err, ErrInvalidPitchIndex)

	_, err = root.Interval("eleventh-ish")
	assert.ErrorIs(t, err, ErrUnknownInterval)
}

func TestIntervalsAreOrdered(t *testing.T) {
	ivs := Intervals()
	require.Len(t, ivs, 22)
	for i, iv := range ivs {
		n, ok := Semitones(iv)
		require.True(t, ok)
		assert.Equal(t, i, n)
	}
}

func TestParseInterval(t *testing.T) {
	cases := []struct {
		in   string
		want Interval
	}{
		{"major third", MajorThird},
		{"Major-Third", MajorThird},
		{"augmented_ninth", AugmentedNinth},
		{"P5", PerfectFifth},
		{"m7", MinorSeventh},
		{"M7", MajorSeventh},
	}
	for _, c := range cases {
		got, err := ParseInterval(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseInterval("major fourth")
	assert.ErrorIs(t, err, ErrUnknownInterval)
}
