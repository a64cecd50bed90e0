package video

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/arinoir/gbacore/core"
)

// EbitenFrameSink implements FrameSink by converting the PPU's BGR555
// framebuffer into an ebiten.Image each Present call.
//
// Grounded on gopsx/emulator/renderer.ebiten.go's EbitenRenderer, which
// likewise owns an *ebiten.Image tied to a GPU's draw data and feeds it
// from Draw(screen *ebiten.Image); this swaps that implementation's
// triangle-list GPU draw data for a flat 240x160 pixel blit, since the
// PPU stub here produces a plain framebuffer rather than polygon lists.
type EbitenFrameSink struct {
	image  *ebiten.Image
	pixels []byte
}

func NewEbitenFrameSink() *EbitenFrameSink {
	return &EbitenFrameSink{
		image:  ebiten.NewImage(core.FrameWidth, core.FrameHeight),
		pixels: make([]byte, core.FrameWidth*core.FrameHeight*4),
	}
}

// Present converts buf's BGR555 pixels to RGBA8888 and uploads them.
func (s *EbitenFrameSink) Present(buf *core.Frame) {
	for i, px := range buf {
		r := (px & 0x1f) << 3
		g := ((px >> 5) & 0x1f) << 3
		b := ((px >> 10) & 0x1f) << 3
		s.pixels[i*4+0] = byte(r)
		s.pixels[i*4+1] = byte(g)
		s.pixels[i*4+2] = byte(b)
		s.pixels[i*4+3] = 0xff
	}
	s.image.WritePixels(s.pixels)
}

// Draw blits the most recently presented frame onto screen.
func (s *EbitenFrameSink) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/core.FrameWidth, float64(sh)/core.FrameHeight)
	screen.DrawImage(s.image, op)
}
