package live

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/scalefinder/note"
	"github.com/jsphweid/scalefinder/rank"
	"github.com/jsphweid/scalefinder/util"
	"golang.org/x/exp/maps"
)

// Session tracks the keys held down on a live input and re-ranks the scale
// catalog once the input settles. NoteOn and NoteOff are safe to call from
// the driver's callback goroutine.
type Session struct {
	mu        sync.Mutex
	held      map[uint8]bool
	heard     map[note.PitchClass]bool
	sticky    bool
	debounced func(func())
	onRank    func([]note.PitchClass, rank.Partitioned)
}

// NewSession calls onRank at most once per wait. With sticky set, released
// notes keep counting until Reset, which suits ranking a whole phrase.
func NewSession(wait time.Duration, sticky bool, onRank func([]note.PitchClass, rank.Partitioned)) *Session {
	return &Session{
		held:      make(map[uint8]bool),
		heard:     make(map[note.PitchClass]bool),
		sticky:    sticky,
		debounced: debounce.New(wait),
		onRank:    onRank,
	}
}

func (s *Session) NoteOn(key uint8) {
	s.mu.Lock()
	s.held[key] = true
	if p, err := note.New(int(key)); err == nil {
		s.heard[p.Class()] = true
	}
	s.mu.Unlock()
	s.debounced(s.rank)
}

func (s *Session) NoteOff(key uint8) {
	s.mu.Lock()
	delete(s.held, key)
	s.mu.Unlock()
	s.debounced(s.rank)
}

func (s *Session) Reset() {
	s.mu.Lock()
	s.held = make(map[uint8]bool)
	s.heard = make(map[note.PitchClass]bool)
	s.mu.Unlock()
}

// Held returns the keys currently down, lowest first.
func (s *Session) Held() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return util.GetKeys(s.held)
}

// PitchClasses is what gets ranked: the held keys, or everything heard since
// the last Reset when sticky.
func (s *Session) PitchClasses() []note.PitchClass {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sticky {
		return note.Dedupe(maps.Keys(s.heard))
	}
	var pcs []note.PitchClass
	for key := range s.held {
		if p, err := note.New(int(key)); err == nil {
			pcs = append(pcs, p.Class())
		}
	}
	return note.Dedupe(pcs)
}

func (s *Session) rank() {
	pcs := s.PitchClasses()
	if len(pcs) == 0 {
		return
	}
	s.onRank(pcs, rank.Catalog(pcs))
}
