package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mandelview/internal/fractal"
)

// Screen presents frames through a streaming texture.
type Screen struct {
	tex    rl.Texture2D
	loaded bool
}

// Upload copies a frame into the texture, reallocating it when the frame
// size changed.
func (s *Screen) Upload(frame *fractal.Frame) {
	if !s.loaded || int(s.tex.Width) != frame.Width || int(s.tex.Height) != frame.Height {
		s.Unload()
		img := rl.GenImageColor(frame.Width, frame.Height, rl.Black)
		s.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		s.loaded = true
	}
	rl.UpdateTexture(s.tex, frame.Pix)
}

// Draw clears to opaque black, so transparent interior pixels from the
// gpu backend look the same as the cpu backend's black.
func (s *Screen) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	if s.loaded {
		rl.DrawTexture(s.tex, 0, 0, rl.White)
	}
	rl.EndDrawing()
}

func (s *Screen) Unload() {
	if s.loaded {
		rl.UnloadTexture(s.tex)
		s.loaded = false
	}
}
