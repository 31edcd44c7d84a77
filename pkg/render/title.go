package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/shouni/go-manga-forge/pkg/fonts"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// RenderTitlePage は章タイトル・定型のサブタイトル・クレジットを中央揃えで
// 配置した表紙ページを保存し、そのパスを返します。
func (c *Compositor) RenderTitlePage(title, outputDir string) (string, error) {
	cfg := c.cfg

	dc := gg.NewContext(cfg.PageWidth, cfg.PageHeight)
	dc.SetColor(cfg.Background)
	dc.Clear()

	titleFace, err := c.fonts.Face(fonts.StyleBold, cfg.TitleFontSize)
	if err != nil {
		return "", fmt.Errorf("タイトル用フォントの取得に失敗しました: %w", err)
	}
	subtitleFace, err := c.fonts.Face(fonts.StyleRegular, cfg.SubtitleFontSize)
	if err != nil {
		return "", fmt.Errorf("サブタイトル用フォントの取得に失敗しました: %w", err)
	}

	centerX := float64(cfg.PageWidth) / 2
	middleY := float64(cfg.PageHeight) / 2

	drawCentered := func(face font.Face, text string, ink color.Color, topY float64) {
		dc.SetFontFace(face)
		dc.SetColor(ink)
		width := float64(font.MeasureString(face, text).Ceil())
		ascent := float64(face.Metrics().Ascent.Ceil())
		dc.DrawString(text, centerX-width/2, topY+ascent)
	}

	drawCentered(titleFace, title, cfg.Ink, middleY-80)
	drawCentered(subtitleFace, cfg.TitleSubtitle, cfg.SubtitleInk, middleY+20)
	drawCentered(subtitleFace, cfg.TitleCredit, cfg.CreditInk, middleY+80)

	outPath := filepath.Join(outputDir, TitlePageFileName)
	if err := dc.SavePNG(outPath); err != nil {
		return "", fmt.Errorf("表紙ページの保存に失敗しました (%s): %w", outPath, err)
	}

	slog.Info("表紙ページを作成しました", "title", title, "path", outPath)
	return outPath, nil
}
