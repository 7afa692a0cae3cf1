package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	played  []string
	playing bool
	fail    map[string]bool
	stopped int
}

func (f *fakeBackend) Play(path string) error {
	if f.fail[filepath.Base(path)] {
		f.playing = false
		return errors.New("decode failed")
	}
	f.played = append(f.played, filepath.Base(path))
	f.playing = true
	return nil
}

func (f *fakeBackend) IsPlaying() bool { return f.playing }

func (f *fakeBackend) Stop() {
	f.playing = false
	f.stopped++
}

func musicDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.ogg"), 0o755))
	return dir
}

func TestScanDirFiltersAndSorts(t *testing.T) {
	dir := musicDir(t, "b.ogg", "a.MP3", "notes.txt", "c.wav")

	tracks, err := ScanDir(dir, DefaultExtensions)
	require.NoError(t, err)

	var names []string
	for _, tr := range tracks {
		names = append(names, tr.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, filepath.Join(dir, "a.MP3"), tracks[0].Path)
}

func TestLoadEmptyDir(t *testing.T) {
	j := NewJukebox(&fakeBackend{}, Options{Dir: musicDir(t, "readme.md")})
	err := j.Load()
	assert.ErrorIs(t, err, ErrNoTracks)
	assert.Empty(t, j.Tracks())
	assert.Equal(t, "", j.Check())
}

func TestLoadMissingDir(t *testing.T) {
	j := NewJukebox(&fakeBackend{}, Options{Dir: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, j.Load())
	assert.Equal(t, "", j.Check())
}

func TestSequentialCheck(t *testing.T) {
	backend := &fakeBackend{}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg", "two.ogg"), Policy: Sequential})
	require.NoError(t, j.Load())

	assert.Equal(t, "one", j.Check())
	// Still playing: no restart.
	assert.Equal(t, "one", j.Check())
	assert.Equal(t, []string{"one.ogg"}, backend.played)

	backend.playing = false
	assert.Equal(t, "two", j.Check())
	backend.playing = false
	assert.Equal(t, "one", j.Check())
	assert.Equal(t, []string{"one.ogg", "two.ogg", "one.ogg"}, backend.played)
}

func TestRandomPolicyIsSeeded(t *testing.T) {
	dir := musicDir(t, "a.ogg", "b.ogg", "c.ogg", "d.ogg")

	run := func() []string {
		backend := &fakeBackend{}
		j := NewJukebox(backend, Options{Dir: dir, Policy: Random, Seed: 99})
		require.NoError(t, j.Load())
		for range 20 {
			j.Check()
			backend.playing = false
		}
		return backend.played
	}

	first := run()
	assert.Len(t, first, 20)
	assert.Equal(t, first, run())
}

func TestPlayByName(t *testing.T) {
	backend := &fakeBackend{}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg", "two.mp3")})
	require.NoError(t, j.Load())

	require.NoError(t, j.Play("two"))
	assert.Equal(t, "two", j.Current())
	assert.True(t, j.IsPlaying())

	err := j.Play("three")
	assert.ErrorIs(t, err, ErrUnknownTrack)
}

func TestFailingTrackIsSkipped(t *testing.T) {
	backend := &fakeBackend{fail: map[string]bool{"one.ogg": true}}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg", "two.ogg")})
	require.NoError(t, j.Load())

	assert.Equal(t, "", j.Check())
	assert.Equal(t, "two", j.Check())
}

func TestGivesUpWhenEveryTrackFails(t *testing.T) {
	backend := &fakeBackend{fail: map[string]bool{"one.ogg": true, "two.ogg": true}}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg", "two.ogg")})
	require.NoError(t, j.Load())

	for range 5 {
		assert.Equal(t, "", j.Check())
	}
	// Two attempts, then silence.
	assert.Len(t, j.failed, 2)
	assert.True(t, j.gaveUp)
	assert.Empty(t, backend.played)
}

func TestRandomPolicyKeepsPlayableTrack(t *testing.T) {
	dir := musicDir(t, "bad.ogg", "good.ogg")

	for seed := int64(1); seed <= 100; seed++ {
		backend := &fakeBackend{fail: map[string]bool{"bad.ogg": true}}
		j := NewJukebox(backend, Options{Dir: dir, Policy: Random, Seed: seed})
		require.NoError(t, j.Load())

		got := ""
		for range 2 {
			if got = j.Check(); got != "" {
				break
			}
		}
		require.Equal(t, "good", got, "seed %d", seed)
		assert.False(t, j.gaveUp, "seed %d", seed)

		// A finished track is followed by another attempt, never silence.
		backend.playing = false
		for range 10 {
			j.Check()
			backend.playing = false
		}
		assert.False(t, j.gaveUp, "seed %d", seed)
	}
}

func TestSequentialSkipsKnownBadTrack(t *testing.T) {
	backend := &fakeBackend{fail: map[string]bool{"two.ogg": true}}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg", "two.ogg", "three.ogg")})
	require.NoError(t, j.Load())

	// Sorted order is one, three, two.
	assert.Equal(t, "one", j.Check())
	backend.playing = false
	assert.Equal(t, "three", j.Check())
	backend.playing = false
	assert.Equal(t, "", j.Check())
	assert.Equal(t, "one", j.Check())
	assert.False(t, j.gaveUp)
}

func TestStop(t *testing.T) {
	backend := &fakeBackend{}
	j := NewJukebox(backend, Options{Dir: musicDir(t, "one.ogg")})
	require.NoError(t, j.Load())
	j.Check()
	j.Stop()
	assert.False(t, j.IsPlaying())
	assert.Equal(t, 1, backend.stopped)
}

func TestNilBackendIsSilent(t *testing.T) {
	j := NewJukebox(nil, Options{Dir: musicDir(t, "one.ogg")})
	require.NoError(t, j.Load())
	assert.NoError(t, j.PlayNext())
	assert.False(t, j.IsPlaying())
}

func TestSelectionPolicyString(t *testing.T) {
	assert.Equal(t, "sequential", Sequential.String())
	assert.Equal(t, "random", Random.String())
}
