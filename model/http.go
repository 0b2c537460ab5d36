package model

type RankRequestBody struct {
	Notes       []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	NoteNumbers []int    `json:"note_numbers,omitempty" yaml:"note_numbers,omitempty"`
}

type ScaleSimilarity struct {
	Name       string   `json:"name" yaml:"name"`
	Tonality   string   `json:"tonality" yaml:"tonality"`
	Notes      []string `json:"notes" yaml:"notes"`
	Similarity float64  `json:"similarity" yaml:"similarity"`
}

type RankResponse struct {
	PitchClasses []string          `json:"pitch_classes" yaml:"pitch_classes"`
	Major        []ScaleSimilarity `json:"major" yaml:"major"`
	NaturalMinor []ScaleSimilarity `json:"natural_minor" yaml:"natural_minor"`
	FileErrors   []FileError       `json:"file_errors,omitempty" yaml:"file_errors,omitempty"`
}

type FileError struct {
	Filename string `json:"filename" yaml:"filename"`
	Error    string `json:"error" yaml:"error"`
}

type Note struct {
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
	Octave int    `json:"octave" yaml:"octave"`
}

type Chord struct {
	Name  string `json:"name" yaml:"name"`
	Key   string `json:"key" yaml:"key"`
	Notes []Note `json:"notes" yaml:"notes"`
}

type Quality struct {
	Name      string   `json:"name" yaml:"name"`
	Suffix    string   `json:"suffix" yaml:"suffix"`
	Base      string   `json:"base,omitempty" yaml:"base,omitempty"`
	Omit      int      `json:"omit,omitempty" yaml:"omit,omitempty"`
	Intervals []string `json:"intervals" yaml:"intervals"`
}

type Scale struct {
	Name             string   `json:"name" yaml:"name"`
	Tonality         string   `json:"tonality" yaml:"tonality"`
	Key              string   `json:"key" yaml:"key"`
	Notes            []string `json:"notes" yaml:"notes"`
	DiatonicTriads   []Chord  `json:"diatonic_triads,omitempty" yaml:"diatonic_triads,omitempty"`
	DiatonicSevenths []Chord  `json:"diatonic_sevenths,omitempty" yaml:"diatonic_sevenths,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail" yaml:"detail"`
}
