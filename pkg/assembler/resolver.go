package assembler

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shouni/go-manga-forge/pkg/domain"

	"github.com/disintegration/imaging"
)

const (
	// placeholderSize は代替画像の一辺のピクセル数です。
	placeholderSize = 512
)

// placeholderColor は欠落パネルの代替に使うニュートラルグレーです。
var placeholderColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// PanelFileName はパネルIDから期待される画像ファイル名を導出します。
// ID中の "-" は "_" に置き換えられます（例: "p-1" → "panel_p_1.png"）。
func PanelFileName(id string) string {
	return "panel_" + strings.ReplaceAll(id, "-", "_") + ".png"
}

// loadPanelImages は各パネルの画像をパネルディレクトリから読み込みます。
// 見つからない・読めないパネルは警告を出した上でプレースホルダーに
// 差し替えるため、戻り値は常に panels と同じ長さで全要素が有効です。
func (a *Assembler) loadPanelImages(panels []domain.PanelSpec, panelsDir string) []image.Image {
	images := make([]image.Image, len(panels))
	for i, panel := range panels {
		name := PanelFileName(panel.ID)

		img, err := imaging.Open(filepath.Join(panelsDir, name))
		if err != nil {
			slog.Warn("パネル画像が見つからないため、プレースホルダーを使用します", "file", name, "error", err)
			img = imaging.New(placeholderSize, placeholderSize, placeholderColor)
		}
		images[i] = img
	}
	return images
}
