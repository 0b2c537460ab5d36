//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/scalefinder/cmd"
	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	constants.Init()
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func readJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), string(data))
}

func TestRankCMajorTriadE2E(t *testing.T) {
	body, err := json.Marshal(model.RankRequestBody{NoteNumbers: []int{60, 64, 67}})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/rank", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var res model.RankResponse
	readJSON(t, resp, &res)
	assert.Equal(t, []string{"C", "E", "G"}, res.PitchClasses)
	// C, F and G major hold all three
	for i, name := range []string{"C Major", "F Major", "G Major"} {
		assert.Equal(t, name, res.Major[i].Name)
		assert.Equal(t, 0.43, res.Major[i].Similarity)
	}
	// D, E and A minor tie and D comes first in the catalog
	assert.Equal(t, "D Natural Minor", res.NaturalMinor[0].Name)
}

func TestRankMidiUploadE2E(t *testing.T) {
	var song bytes.Buffer
	var pitches []note.Pitch
	for _, n := range []int{57, 59, 60, 64, 65} {
		pitches = append(pitches, note.MustNew(n))
	}
	require.NoError(t, midi.Write(&song, pitches, true))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "am.mid")
	require.NoError(t, err)
	_, err = part.Write(song.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(server.URL+"/rank/midi", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.RankResponse
	readJSON(t, resp, &res)
	assert.Equal(t, []string{"C", "E", "F", "A", "B"}, res.PitchClasses)
	assert.Equal(t, "A Natural Minor", res.NaturalMinor[0].Name)
	assert.Equal(t, 0.71, res.NaturalMinor[0].Similarity)
	assert.Empty(t, res.FileErrors)
}

func TestChordThenRankE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/chords/G3/7")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var c model.Chord
	readJSON(t, resp, &c)
	assert.Equal(t, "G7", c.Name)

	var numbers []int
	for _, n := range c.Notes {
		numbers = append(numbers, n.Number)
	}
	assert.Equal(t, []int{67, 71, 74, 77}, numbers)

	body, err := json.Marshal(model.RankRequestBody{NoteNumbers: numbers})
	require.NoError(t, err)
	resp, err = http.Post(server.URL+"/rank", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	var res model.RankResponse
	readJSON(t, resp, &res)
	assert.Equal(t, "C Major", res.Major[0].Name)
	assert.Equal(t, 0.57, res.Major[0].Similarity)
}

func TestScaleE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/scales/F/major")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var s model.Scale
	readJSON(t, resp, &s)
	assert.Equal(t, "F Major", s.Name)
	assert.Equal(t, []string{"F", "G", "A", "A#/B♭", "C", "D", "E"}, s.Notes)
	assert.Equal(t, "A#/B♭", s.DiatonicTriads[3].Name)
	assert.Equal(t, "C7", s.DiatonicSevenths[4].Name)
}

func TestNotFoundE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/scales/C/dorian")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e model.ErrorResponse
	readJSON(t, resp, &e)
	assert.Contains(t, e.Error, "dorian")
}
