package assembler

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-manga-forge/pkg/domain"
	"github.com/shouni/go-manga-forge/pkg/render"
)

// Assembler は台本全体を1冊に仕立てます。パネル画像の解決、ページごとの
// 合成、表紙の生成、CBZアーカイブへの梱包までを担当します。
type Assembler struct {
	compositor *render.Compositor
}

// NewAssembler は Assembler の新しいインスタンスを生成します。
func NewAssembler(compositor *render.Compositor) *Assembler {
	return &Assembler{compositor: compositor}
}

// AssembleChapter は台本の全ページを合成し、表紙と台本JSONを含む
// CBZアーカイブを出力ディレクトリへ書き出して、そのパスを返します。
//
// ページの合成は台本の記載順に直列で進みます。キャンセルはページの
// 区切りでのみ反映され、合成途中のページが中断されることはありません。
func (a *Assembler) AssembleChapter(ctx context.Context, script *domain.Script, panelsDir, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗しました (%s): %w", outputDir, err)
	}

	slog.Info("チャプターの合成を開始します", "title", script.Title, "pages", len(script.Pages))

	// 1. 素材の事前確認（存在チェックのみ。ピクセルはページ合成時に読む）
	a.preflightPanels(ctx, script, panelsDir)

	// 2. ページを記載順に合成する
	composedPaths := make([]string, 0, len(script.Pages))
	for _, page := range script.Pages {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("章の合成が中断されました: %w", err)
		}

		// パネル画像はページごとに読み込み、合成が終わり次第手放す
		images := a.loadPanelImages(page.Panels, panelsDir)

		outPath, err := a.compositor.ComposePage(page.Panels, images, page.Number, outputDir)
		if err != nil {
			return "", fmt.Errorf("ページ %d の合成に失敗しました: %w", page.Number, err)
		}
		composedPaths = append(composedPaths, outPath)
	}

	// 3. 表紙ページ
	titlePath, err := a.compositor.RenderTitlePage(script.Title, outputDir)
	if err != nil {
		return "", err
	}

	// 4. CBZアーカイブに梱包する
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("アーカイブ作成前に中断されました: %w", err)
	}
	archivePath, err := a.writeArchive(script, titlePath, composedPaths, outputDir)
	if err != nil {
		return "", err
	}

	return archivePath, nil
}
