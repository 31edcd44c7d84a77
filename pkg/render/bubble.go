package render

import (
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// drawBubble はフキダシを1つ描画します。テキストが空白のみなら何もしません。
// アンカー座標 (x, y) にフキダシの中心を寄せますが、しっぽを含む全体が
// ページ内へ収まるよう位置を丸め込むため、アンカーがページ外でも
// はみ出すことはありません。
func (c *Compositor) drawBubble(dc *gg.Context, text string, x, y, maxWidth int, face font.Face) {
	if strings.TrimSpace(text) == "" {
		return
	}
	cfg := c.cfg

	// 「話者: セリフ」形式の話者ラベルは描画しない
	body := stripSpeakerPrefix(text)

	lines := WrapText(body, maxWidth, cfg.AvgCharWidth)

	textH := len(lines) * cfg.BubbleLineHeight
	textW := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > textW {
			textW = w
		}
	}

	pad := cfg.BubblePadding
	bw := textW + pad*2
	bh := textH + pad*2

	margin := cfg.BubbleClampMargin
	bx := clampInt(x-bw/2, margin, cfg.PageWidth-bw-margin)
	by := clampInt(y-bh/2, margin, cfg.PageHeight-bh-margin-cfg.TailHeight)

	fx, fy := float64(bx), float64(by)
	fw, fh := float64(bw), float64(bh)

	// 本体の角丸矩形
	dc.DrawRoundedRectangle(fx, fy, fw, fh, cfg.BubbleRadius)
	dc.SetColor(cfg.BubbleFill)
	dc.FillPreserve()
	dc.SetColor(cfg.BubbleBorder)
	dc.SetLineWidth(cfg.BubbleOutline)
	dc.Stroke()

	// 下向きのしっぽ
	tailX := fx + fw/2
	tailY := fy + fh
	half := float64(cfg.TailHalfWidth)
	dc.MoveTo(tailX-half, tailY-2)
	dc.LineTo(tailX+half, tailY-2)
	dc.LineTo(tailX, tailY+float64(cfg.TailHeight))
	dc.ClosePath()
	dc.SetColor(cfg.BubbleFill)
	dc.FillPreserve()
	dc.SetColor(cfg.BubbleBorder)
	dc.SetLineWidth(1)
	dc.Stroke()

	// しっぽ付け根の輪郭線を塗り潰し、本体と継ぎ目なく馴染ませる
	dc.SetColor(cfg.BubbleFill)
	dc.SetLineWidth(3)
	dc.DrawLine(tailX-half+2, tailY-1, tailX+half-2, tailY-1)
	dc.Stroke()

	// 各行を中央揃えで上から詰めていく
	dc.SetFontFace(face)
	dc.SetColor(cfg.Ink)
	ascent := float64(face.Metrics().Ascent.Ceil())
	ty := fy + float64(pad)
	for _, line := range lines {
		lw := float64(font.MeasureString(face, line).Ceil())
		dc.DrawString(line, fx+(fw-lw)/2, ty+ascent)
		ty += float64(cfg.BubbleLineHeight)
	}
}

// stripSpeakerPrefix は最初の ": " より前を話者ラベルとみなして取り除きます。
// 区切りが無ければそのまま返します。
func stripSpeakerPrefix(text string) string {
	if _, body, ok := strings.Cut(text, ": "); ok {
		return body
	}
	return text
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
