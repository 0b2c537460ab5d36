package note

// Unroll lays pcs out ascending and returns each note's offset from the first.
// A class that is not strictly above the previous one wraps into the next octave.
func Unroll(pcs []PitchClass) []int {
	res := make([]int, 0, len(pcs))
	var octave int
	for i, pc := range pcs {
		pc %= Octave
		if i > 0 && pc <= pcs[i-1]%Octave {
			octave++
		}
		res = append(res, octave*Octave+int(pc))
	}
	if len(res) == 0 {
		return res
	}
	first := res[0]
	for i := range res {
		res[i] -= first
	}
	return res
}

// Realize returns the ascending realization of pcs starting at base. The first
// class is expected to match base; base is used as-is either way.
func Realize(base Pitch, pcs []PitchClass) ([]Pitch, error) {
	res := make([]Pitch, 0, len(pcs))
	for _, offset := range Unroll(pcs) {
		p, err := base.ShiftSemitones(offset)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}
