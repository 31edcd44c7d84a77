package render

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shouni/go-manga-forge/pkg/domain"
	"github.com/shouni/go-manga-forge/pkg/fonts"
	"github.com/shouni/go-manga-forge/pkg/layout"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	// PageFileFormat は合成ページのファイル名フォーマットです（page_01.png 等）。
	PageFileFormat = "page_%02d.png"
	// TitlePageFileName は表紙ページのファイル名です。
	TitlePageFileName = "page_00_title.png"
)

// Compositor は1ページ分の合成を担当します。レイアウト選択から
// パネルの敷き詰め、フキダシ・SFX・ページ番号の描画、PNG保存までを
// 直列に実行します。
type Compositor struct {
	cfg   Config
	fonts fonts.Provider
}

// NewCompositor は Compositor の新しいインスタンスを生成します。
func NewCompositor(cfg Config, provider fonts.Provider) *Compositor {
	return &Compositor{cfg: cfg, fonts: provider}
}

// Config はこのコンポジタが使用している設定値のコピーを返します。
func (c *Compositor) Config() Config {
	return c.cfg
}

// ComposePage はパネル画像と台本情報から1ページを合成して保存し、
// 保存先のパスを返します。images の長さが panels より短い場合や nil を
// 含む場合、そのスロットは枠線だけが描かれます。
func (c *Compositor) ComposePage(panels []domain.PanelSpec, images []image.Image, pageNumber int, outputDir string) (string, error) {
	cfg := c.cfg

	// 1. レイアウト選択
	regions := layout.RegionsFor(len(panels), pageNumber)

	// 2. 背景色で塗り潰したキャンバスを用意
	dc := gg.NewContext(cfg.PageWidth, cfg.PageHeight)
	dc.SetColor(cfg.Background)
	dc.Clear()

	// コンテンツ領域はページ番号のぶんだけ下端を空ける
	contentX := cfg.Margin
	contentY := cfg.Margin
	contentW := cfg.PageWidth - 2*cfg.Margin
	contentH := cfg.PageHeight - 2*cfg.Margin - cfg.PageNumberReserve

	dialogueFace, err := c.fonts.Face(fonts.StyleRegular, cfg.DialogueFontSize)
	if err != nil {
		return "", fmt.Errorf("セリフ用フォントの取得に失敗しました: %w", err)
	}
	sfxFace, err := c.fonts.Face(fonts.StyleBold, cfg.SFXFontSize)
	if err != nil {
		return "", fmt.Errorf("SFX用フォントの取得に失敗しました: %w", err)
	}

	// 3. スロットごとに 敷き詰め → 枠線 → フキダシ → SFX を直列に描く
	for i, panel := range panels {
		if i >= len(regions) {
			break
		}
		region := regions[i]

		px := contentX + int(region.X1*float64(contentW)) + cfg.Gutter/2
		py := contentY + int(region.Y1*float64(contentH)) + cfg.Gutter/2
		pw := int(region.Width()*float64(contentW)) - cfg.Gutter
		ph := int(region.Height()*float64(contentH)) - cfg.Gutter

		if pw < cfg.MinPanelSize || ph < cfg.MinPanelSize {
			continue
		}

		if i < len(images) && images[i] != nil {
			fitted := FitImage(images[i], pw, ph)
			dc.DrawImage(fitted, px, py)
		}

		dc.SetColor(cfg.Border)
		dc.SetLineWidth(float64(cfg.BorderWidth))
		dc.DrawRectangle(float64(px), float64(py), float64(pw), float64(ph))
		dc.Stroke()

		// フキダシは左から右へ段違いに並べる。スキップした項目も
		// 位置を消費するため、後続のフキダシがずれることはない。
		for j, dialogue := range panel.Dialogue {
			if j >= cfg.MaxBubblesPerPanel {
				break
			}
			if dialogue == "" || dialogue == cfg.NoDialogueSentinel {
				continue
			}
			anchorX := px + pw/3 + j*pw/3
			anchorY := py + cfg.BubbleAnchorOffsetY + j*cfg.BubbleAnchorStepY
			maxWidth := pw - cfg.BubbleWidthInset
			if maxWidth > cfg.BubbleMaxWidth {
				maxWidth = cfg.BubbleMaxWidth
			}
			c.drawBubble(dc, dialogue, anchorX, anchorY, maxWidth, dialogueFace)
		}

		for k, sfx := range panel.SFX {
			if k >= cfg.MaxSFXPerPanel {
				break
			}
			c.drawSFX(dc, sfx, px+pw-cfg.SFXInsetX, py+ph-cfg.SFXInsetY, sfxFace)
		}
	}

	// 4. ページ番号を下端中央に入れる
	if err := c.drawPageNumber(dc, pageNumber); err != nil {
		return "", err
	}

	// 5. PNGとして保存
	outPath := filepath.Join(outputDir, fmt.Sprintf(PageFileFormat, pageNumber))
	if err := dc.SavePNG(outPath); err != nil {
		return "", fmt.Errorf("ページ画像の保存に失敗しました (%s): %w", outPath, err)
	}

	sizeKB := int64(0)
	if info, err := os.Stat(outPath); err == nil {
		sizeKB = info.Size() / 1024
	}
	slog.Info("ページを合成しました", "page", pageNumber, "panels", len(panels), "path", outPath, "size_kb", sizeKB)

	return outPath, nil
}

// drawPageNumber はページ番号を下端余白の中央へ描画します。
func (c *Compositor) drawPageNumber(dc *gg.Context, pageNumber int) error {
	cfg := c.cfg

	face, err := c.fonts.Face(fonts.StyleRegular, cfg.PageNumberFontSize)
	if err != nil {
		return fmt.Errorf("ページ番号用フォントの取得に失敗しました: %w", err)
	}

	text := strconv.Itoa(pageNumber)
	width := float64(font.MeasureString(face, text).Ceil())
	ascent := float64(face.Metrics().Ascent.Ceil())

	dc.SetFontFace(face)
	dc.SetColor(cfg.PageNumberInk)
	dc.DrawString(text, float64(cfg.PageWidth)/2-width/2, float64(cfg.PageHeight-cfg.Margin+10)+ascent)
	return nil
}
