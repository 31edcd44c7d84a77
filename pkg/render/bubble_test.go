package render

import (
	"image/color"
	"testing"

	"github.com/shouni/go-manga-forge/pkg/fonts"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

func TestStripSpeakerPrefix(t *testing.T) {
	t.Run("最初の区切りより前の話者ラベルが取り除かれるのだ", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{"Kai: I won't let you pass!", "I won't let you pass!"},
			{"no separator here", "no separator here"},
			{"Kai: wait: not yet", "wait: not yet"},
			{": leading separator", "leading separator"},
		}
		for _, tc := range cases {
			if got := stripSpeakerPrefix(tc.in); got != tc.want {
				t.Errorf("入力 %q: 期待 %q, 実際 %q", tc.in, tc.want, got)
			}
		}
	})
}

// nonBackgroundBounds は背景色ではないピクセルの外接矩形を返します。
func nonBackgroundBounds(dc *gg.Context, bg color.Color) (minX, minY, maxX, maxY int, found bool) {
	img := dc.Image()
	bounds := img.Bounds()
	bgR, bgG, bgB, bgA := bg.RGBA()
	minX, minY = bounds.Max.X, bounds.Max.Y
	maxX, maxY = -1, -1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r == bgR && g == bgG && b == bgB && a == bgA {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY, found
}

func newTestCanvas(cfg Config) *gg.Context {
	dc := gg.NewContext(cfg.PageWidth, cfg.PageHeight)
	dc.SetColor(cfg.Background)
	dc.Clear()
	return dc
}

func TestDrawBubble_Clamp(t *testing.T) {
	cfg := DefaultConfig()
	comp := NewCompositor(cfg, fonts.NewEmbedded())

	// 輪郭線のアンチエイリアスが矩形の外へ数ピクセル滲むぶんの許容幅
	const slack = 3

	t.Run("ページ外の左上アンカーでもキャンバス内に収まるのだ", func(t *testing.T) {
		dc := newTestCanvas(cfg)
		comp.drawBubble(dc, "Stay back!", -9999, -9999, 280, mustFace(t, comp, fonts.StyleRegular, cfg.DialogueFontSize))

		minX, minY, _, _, found := nonBackgroundBounds(dc, cfg.Background)
		if !found {
			t.Fatal("フキダシが描かれていないのだ")
		}
		if minX < cfg.BubbleClampMargin-slack || minY < cfg.BubbleClampMargin-slack {
			t.Errorf("左上へはみ出しているのだ: min=(%d, %d)", minX, minY)
		}
	})

	t.Run("ページ外の右下アンカーでもしっぽ込みで収まるのだ", func(t *testing.T) {
		dc := newTestCanvas(cfg)
		comp.drawBubble(dc, "Stay back!", 99999, 99999, 280, mustFace(t, comp, fonts.StyleRegular, cfg.DialogueFontSize))

		_, _, maxX, maxY, found := nonBackgroundBounds(dc, cfg.Background)
		if !found {
			t.Fatal("フキダシが描かれていないのだ")
		}
		if maxX > cfg.PageWidth-cfg.BubbleClampMargin+slack {
			t.Errorf("右へはみ出しているのだ: maxX=%d", maxX)
		}
		if maxY > cfg.PageHeight-cfg.BubbleClampMargin+slack {
			t.Errorf("しっぽが下へはみ出しているのだ: maxY=%d", maxY)
		}
	})
}

func TestDrawBubble_BlankIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	comp := NewCompositor(cfg, fonts.NewEmbedded())

	t.Run("空白だけのセリフでは何も描かれないのだ", func(t *testing.T) {
		dc := newTestCanvas(cfg)
		face := mustFace(t, comp, fonts.StyleRegular, cfg.DialogueFontSize)

		comp.drawBubble(dc, "", 700, 700, 280, face)
		comp.drawBubble(dc, "   ", 700, 700, 280, face)

		if _, _, _, _, found := nonBackgroundBounds(dc, cfg.Background); found {
			t.Error("空のセリフでキャンバスが汚れているのだ")
		}
	})
}

func mustFace(t *testing.T, comp *Compositor, style fonts.Style, size float64) font.Face {
	t.Helper()
	face, err := comp.fonts.Face(style, size)
	if err != nil {
		t.Fatalf("フォント取得失敗なのだ: %v", err)
	}
	return face
}
