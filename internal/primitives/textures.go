package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/assets"
	"solar-system/internal/logger"
	"solar-system/internal/scene"
)

// Textures loads catalogue textures once and caches them. It implements scene.TextureSource.
// Must be used after the window exists.
type Textures struct {
	catalogue *assets.Catalogue
	log       *logger.Logger
	cache     map[string]*rl.Texture2D
	missing   map[string]bool
}

// NewTextures returns a texture cache backed by catalogue.
func NewTextures(catalogue *assets.Catalogue, log *logger.Logger) *Textures {
	return &Textures{
		catalogue: catalogue,
		log:       log,
		cache:     make(map[string]*rl.Texture2D),
		missing:   make(map[string]bool),
	}
}

// Texture returns the texture for name, or nil when it cannot be found or loaded.
// A missing file is reported once.
func (t *Textures) Texture(name string) scene.Texture {
	if tex, ok := t.cache[name]; ok {
		return tex
	}
	if t.missing[name] {
		return nil
	}
	path, err := t.catalogue.Resolve(name)
	if err != nil {
		t.missing[name] = true
		t.log.Warnf("%v", err)
		return nil
	}
	tex := rl.LoadTexture(path)
	if !rl.IsTextureValid(tex) {
		t.missing[name] = true
		t.log.Warnf("texture %q: could not load %s", name, path)
		return nil
	}
	t.cache[name] = &tex
	t.log.Debugf("texture %q loaded from %s", name, path)
	return &tex
}

// Unload releases every loaded texture.
func (t *Textures) Unload() {
	for name, tex := range t.cache {
		rl.UnloadTexture(*tex)
		delete(t.cache, name)
	}
}
