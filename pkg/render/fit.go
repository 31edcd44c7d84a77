package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// FitImage は元画像を対象矩形いっぱいに敷き詰めます（カバーフィット）。
// アスペクト比の差分は中央基準で切り落とし、Lanczos で対象サイズへ
// リサンプルするため、同じ入力からは常に同じ出力が得られます。
func FitImage(src image.Image, width, height int) *image.NRGBA {
	return imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)
}
