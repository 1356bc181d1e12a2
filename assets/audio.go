package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	mu      sync.Mutex
	cache   map[string][]byte // decoded PCM keyed by asset path
	context *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// Preload decodes a sound and caches it without creating a player.
func (l *AudioLoader) Preload(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.decode(path)
	return err
}

// Load returns a new player for a sound. Decoded bytes are cached so
// repeated plays start instantly.
func (l *AudioLoader) Load(path string) (*audio.Player, error) {
	l.mu.Lock()
	decoded, err := l.decode(path)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// LoadCry returns a player for a creature's battle cry.
func (l *AudioLoader) LoadCry(dex int) (*audio.Player, error) {
	return l.Load(Path(BattleCry{Dex: dex}))
}

// Invalidate drops every cached sound.
func (l *AudioLoader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string][]byte)
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	if cached, ok := l.cache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(FS(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.cache[path] = decoded
	return decoded, nil
}
