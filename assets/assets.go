package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:tilemaps all:graphics all:audio
	embeddedFS embed.FS

	sourceMu sync.RWMutex
	sourceFS fs.FS = embeddedFS
	// sourceDir is empty while the embedded assets are in use
	sourceDir string
)

// UseDir switches asset loading to an on-disk directory laid out like the
// embedded assets. An empty dir restores the embedded assets.
func UseDir(dir string) error {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	if dir == "" {
		sourceFS = embeddedFS
		sourceDir = ""
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s is not a directory", dir)
	}
	sourceFS = os.DirFS(dir)
	sourceDir = dir
	return nil
}

// FS returns the filesystem assets are currently read from.
func FS() fs.FS {
	sourceMu.RLock()
	defer sourceMu.RUnlock()
	return sourceFS
}

// Dir returns the on-disk asset directory, or "" for embedded assets.
func Dir() string {
	sourceMu.RLock()
	defer sourceMu.RUnlock()
	return sourceDir
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, Width, Height float64
}

// Spawn is where the player enters the map.
type Spawn struct {
	X, Y float64
}

// Map is a loaded Tiled map. Everything except Background is in world
// units, which are map pixels multiplied by Scale.
type Map struct {
	Background *ebiten.Image
	Solids     []Rect
	Spawn      Spawn
	Name       string
	Scale      float64
	Width      float64
	Height     float64
	TileWidth  int
	TileHeight int
}

// MapOptions names the object groups a map is read with.
type MapOptions struct {
	Scale           float64
	CollisionLayer  string
	SpawnLayer      string
	PlayerSpawnName string
}

type MapLoader struct {
	fsys fs.FS
	opts MapOptions
}

func NewMapLoader(fsys fs.FS, opts MapOptions) *MapLoader {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &MapLoader{fsys: fsys, opts: opts}
}

// LoadMap parses a TMX file and renders its visible tile layers.
func (l *MapLoader) LoadMap(mapPath string) (*Map, error) {
	tm, err := tiled.LoadFile(mapPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", mapPath, err)
	}

	m := ParseMap(tm, l.opts)
	m.Name = mapPath

	bg, err := l.renderBackground(tm)
	if err != nil {
		return nil, fmt.Errorf("failed to render map %s: %w", mapPath, err)
	}
	m.Background = bg

	return m, nil
}

// ParseMap reads collision rectangles, the player spawn and the map size.
// The spawn falls back to the map center when the map does not define one.
func ParseMap(tm *tiled.Map, opts MapOptions) *Map {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	m := &Map{
		Solids:     []Rect{},
		Scale:      scale,
		Width:      float64(tm.Width*tm.TileWidth) * scale,
		Height:     float64(tm.Height*tm.TileHeight) * scale,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}
	m.Spawn = Spawn{X: m.Width / 2, Y: m.Height / 2}

	for _, og := range tm.ObjectGroups {
		switch og.Name {
		case opts.CollisionLayer:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				m.Solids = append(m.Solids, Rect{
					X:      o.X * scale,
					Y:      o.Y * scale,
					Width:  o.Width * scale,
					Height: o.Height * scale,
				})
			}
		case opts.SpawnLayer:
			for _, o := range og.Objects {
				if o.Name != opts.PlayerSpawnName {
					continue
				}
				m.Spawn = Spawn{X: o.X * scale, Y: o.Y * scale}
				break
			}
		}
	}

	return m
}

func (l *MapLoader) renderBackground(tm *tiled.Map) (*ebiten.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(tm, l.fsys)
	if err != nil {
		return nil, err
	}

	bg := ebiten.NewImage(tm.Width*tm.TileWidth, tm.Height*tm.TileHeight)
	op := &ebiten.DrawImageOptions{}

	for i, layer := range tm.Layers {
		if !layer.Visible {
			continue
		}
		// Skip fully transparent layers
		if layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			renderer.Clear()
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		// Dispose temporary image to free GPU memory
		layerImage.Deallocate()
		renderer.Clear()
	}

	return bg, nil
}

// SheetLoader loads sprite sheets and caches the frames cut from them.
type SheetLoader struct {
	mu         sync.Mutex
	cache      map[string]*ebiten.Image
	frameCache map[string][]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string][]*ebiten.Image),
	}
}

func (l *SheetLoader) loadImage(imgPath string) (*ebiten.Image, error) {
	if img, ok := l.cache[imgPath]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(FS(), imgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", imgPath, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", imgPath, err)
	}

	l.cache[imgPath] = img
	return img, nil
}

// Frames cuts a sheet into columns x rows frames, indexed row-major.
func (l *SheetLoader) Frames(sheetPath string, columns, rows, frameWidth, frameHeight int) ([]*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := fmt.Sprintf("%s/%dx%d/%dx%d", sheetPath, columns, rows, frameWidth, frameHeight)
	if frames, ok := l.frameCache[key]; ok {
		return frames, nil
	}

	sheet, err := l.loadImage(sheetPath)
	if err != nil {
		return nil, err
	}
	b := sheet.Bounds()
	if b.Dx() < columns*frameWidth || b.Dy() < rows*frameHeight {
		return nil, fmt.Errorf("sheet %s is %dx%d, too small for %dx%d frames of %dx%d",
			sheetPath, b.Dx(), b.Dy(), columns, rows, frameWidth, frameHeight)
	}

	frames := make([]*ebiten.Image, 0, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			sx, sy := col*frameWidth, row*frameHeight
			srcRect := image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)
			frames = append(frames, sheet.SubImage(srcRect).(*ebiten.Image))
		}
	}

	l.frameCache[key] = frames
	return frames, nil
}

// Invalidate drops cached images under dir, or everything when dir is "".
func (l *SheetLoader) Invalidate(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir == "" {
		l.cache = make(map[string]*ebiten.Image)
		l.frameCache = make(map[string][]*ebiten.Image)
		return
	}
	for k := range l.cache {
		if path.Dir(k) == dir {
			delete(l.cache, k)
		}
	}
	for k := range l.frameCache {
		if matchesDir(k, dir) {
			delete(l.frameCache, k)
		}
	}
}

func matchesDir(key, dir string) bool {
	return len(key) > len(dir) && key[:len(dir)] == dir && key[len(dir)] == '/'
}

var sheetLoader = NewSheetLoader()

// Sheets is the shared sprite sheet loader.
func Sheets() *SheetLoader {
	return sheetLoader
}

// LoadCreatureFrames loads and cuts a creature's overworld walking sheet.
func LoadCreatureFrames(sprite OverworldSprite, columns, rows, frameWidth, frameHeight int) ([]*ebiten.Image, error) {
	return sheetLoader.Frames(Path(sprite), columns, rows, frameWidth, frameHeight)
}

// Exists reports whether the current asset source has a file at p.
func Exists(p string) bool {
	_, err := fs.Stat(FS(), p)
	return err == nil
}
