package render

import (
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// drawSFX は効果音テキストを大文字化し、縁取り付きで描画します。
// テキストが空白のみなら何もしません。縁取りはオフセットを変えながら
// ハロー色で重ね書きし、最後にインク色で本体を一度だけ描くことで、
// 絵柄の上でも読める太い輪郭を合成します。
func (c *Compositor) drawSFX(dc *gg.Context, text string, x, y int, face font.Face) {
	if strings.TrimSpace(text) == "" {
		return
	}
	cfg := c.cfg

	upper := strings.ToUpper(text)
	dc.SetFontFace(face)
	fx := float64(x)
	fy := float64(y) + float64(face.Metrics().Ascent.Ceil())

	radius := cfg.SFXOutlineRadius
	dc.SetColor(cfg.SFXHalo)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			dc.DrawString(upper, fx+float64(dx), fy+float64(dy))
		}
	}

	dc.SetColor(cfg.Ink)
	dc.DrawString(upper, fx, fy)
}
