// Package audio provides background music: a Jukebox that keeps a track
// playing from a music directory, over a pluggable playback Backend.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrNoTracks is returned when the music directory holds nothing playable.
	ErrNoTracks = errors.New("audio: no tracks available")
	// ErrUnknownTrack is returned by Play for a name that was not loaded.
	ErrUnknownTrack = errors.New("audio: unknown track")
)

// DefaultExtensions are the file types the ebiten backend can decode.
var DefaultExtensions = []string{".mp3", ".ogg", ".wav"}

// Backend plays one file at a time.
type Backend interface {
	// Play stops whatever is playing and starts path from the beginning.
	Play(path string) error
	// IsPlaying reports whether the last started track is still running.
	IsPlaying() bool
	// Stop halts playback and releases the current track.
	Stop()
}

// SelectionPolicy decides which track plays when the previous one ends.
type SelectionPolicy int

const (
	// Sequential walks the sorted track list and wraps around.
	Sequential SelectionPolicy = iota
	// Random picks uniformly, repeats allowed.
	Random
)

func (p SelectionPolicy) String() string {
	if p == Random {
		return "random"
	}
	return "sequential"
}

// Track is a playable file.
type Track struct {
	// Name is the file name without directory or extension.
	Name string
	Path string
}

// Options configure a Jukebox.
type Options struct {
	Dir        string
	Extensions []string
	Policy     SelectionPolicy
	Seed       int64
	Logger     *log.Logger
}

// Jukebox keeps background music going. It is polled from the game loop and
// is not safe for concurrent use.
type Jukebox struct {
	backend Backend
	opts    Options
	rng     *rand.Rand
	logger  *log.Logger

	tracks  []Track
	current int
	// failed holds the tracks that failed to start since the last success.
	failed map[int]bool
	gaveUp bool
}

// NewJukebox creates a jukebox with no tracks. Call Load to scan Dir.
func NewJukebox(backend Backend, opts Options) *Jukebox {
	if backend == nil {
		backend = NopBackend{}
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Jukebox{
		backend: backend,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		logger:  logger.With("component", "jukebox"),
		current: -1,
	}
}

// Load scans the music directory. Files are matched by extension,
// case-insensitively, and sorted by name.
func (j *Jukebox) Load() error {
	tracks, err := ScanDir(j.opts.Dir, j.opts.Extensions)
	if err != nil {
		return err
	}
	j.tracks = tracks
	j.current = -1
	j.failed = make(map[int]bool)
	j.gaveUp = false
	j.logger.Debug("tracks loaded", "dir", j.opts.Dir, "count", len(tracks))
	if len(tracks) == 0 {
		return fmt.Errorf("%w in %s", ErrNoTracks, j.opts.Dir)
	}
	return nil
}

// ScanDir lists the playable files in dir.
func ScanDir(dir string, extensions []string) ([]Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read music dir: %w", err)
	}

	var tracks []Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(extensions, ext) {
			continue
		}
		tracks = append(tracks, Track{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(tracks, func(a, b int) bool {
		return tracks[a].Path < tracks[b].Path
	})
	return tracks, nil
}

// Tracks returns the loaded tracks.
func (j *Jukebox) Tracks() []Track {
	return slices.Clone(j.tracks)
}

// Play starts the named track.
func (j *Jukebox) Play(name string) error {
	for i, t := range j.tracks {
		if t.Name == name {
			return j.start(i)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTrack, name)
}

// PlayNext starts the track chosen by the selection policy.
func (j *Jukebox) PlayNext() error {
	if len(j.tracks) == 0 {
		return ErrNoTracks
	}
	return j.start(j.pick())
}

// pick chooses the next track by policy, passing over tracks that already
// failed. It falls back to the plain choice when every track has failed.
func (j *Jukebox) pick() int {
	if j.opts.Policy == Random {
		var candidates []int
		for i := range j.tracks {
			if !j.failed[i] {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			return j.rng.Intn(len(j.tracks))
		}
		return candidates[j.rng.Intn(len(candidates))]
	}

	n := len(j.tracks)
	for step := 1; step <= n; step++ {
		i := (j.current + step) % n
		if !j.failed[i] {
			return i
		}
	}
	return (j.current + 1) % n
}

func (j *Jukebox) start(i int) error {
	j.current = i
	t := j.tracks[i]
	if err := j.backend.Play(t.Path); err != nil {
		return fmt.Errorf("play %s: %w", t.Name, err)
	}
	j.logger.Info("now playing", "track", t.Name)
	return nil
}

// IsPlaying reports whether a track is running.
func (j *Jukebox) IsPlaying() bool {
	return j.backend.IsPlaying()
}

// Current returns the display name of the last started track, or "".
func (j *Jukebox) Current() string {
	if j.current < 0 || j.current >= len(j.tracks) {
		return ""
	}
	return j.tracks[j.current].Name
}

// Check is called once per tick. When the backend is idle it starts the next
// track. It returns the name of the track playing, or "" when there is none.
//
// A track that fails to start is passed over until some track starts. Once
// every track has failed with no success in between, the jukebox stops
// retrying until the next Load.
func (j *Jukebox) Check() string {
	if len(j.tracks) == 0 || j.gaveUp {
		return ""
	}
	if j.backend.IsPlaying() {
		return j.Current()
	}

	if err := j.PlayNext(); err != nil {
		if j.failed == nil {
			j.failed = make(map[int]bool)
		}
		j.failed[j.current] = true
		j.logger.Warn("track failed", "err", err)
		if len(j.failed) >= len(j.tracks) {
			j.gaveUp = true
			j.logger.Error("no track could be played, music disabled")
		}
		return ""
	}
	clear(j.failed)
	return j.Current()
}

// Stop halts playback.
func (j *Jukebox) Stop() {
	j.backend.Stop()
}

// NopBackend never plays anything.
type NopBackend struct{}

func (NopBackend) Play(string) error { return nil }
func (NopBackend) IsPlaying() bool   { return false }
func (NopBackend) Stop()             {}
