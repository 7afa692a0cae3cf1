// Package ebitenaudio plays jukebox tracks through ebiten's audio context.
package ebitenaudio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tui-tetris/internal/audio"
)

var _ audio.Backend = (*Backend)(nil)

// SampleRate is the output rate of the shared audio context.
const SampleRate = 44100

// Backend plays music through ebiten's audio context. The same context
// serves the terminal and the window frontends.
type Backend struct {
	ctx    *ebaudio.Context
	volume float64

	player *ebaudio.Player
	file   *os.File
}

// NewBackend attaches to the process-wide audio context, creating it on
// first use. Volume is clamped to [0, 1].
func NewBackend(volume float64) *Backend {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	return &Backend{
		ctx:    ctx,
		volume: min(max(volume, 0), 1),
	}
}

// Play decodes path by extension and starts it.
func (b *Backend) Play(path string) error {
	b.Stop()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	stream, err := decode(b.ctx.SampleRate(), path, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	player, err := b.ctx.NewPlayer(stream)
	if err != nil {
		f.Close()
		return fmt.Errorf("create player: %w", err)
	}
	player.SetVolume(b.volume)
	player.Play()

	b.player = player
	b.file = f
	return nil
}

func decode(sampleRate int, path string, r io.ReadSeeker) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
}

// IsPlaying reports whether the current player is running.
func (b *Backend) IsPlaying() bool {
	return b.player != nil && b.player.IsPlaying()
}

// Stop closes the current player and its file.
func (b *Backend) Stop() {
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
	if b.file != nil {
		b.file.Close()
		b.file = nil
	}
}
