package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-manga-forge/internal/config"
	"github.com/shouni/go-manga-forge/pkg/assembler"
	"github.com/shouni/go-manga-forge/pkg/domain"
)

// ComposeRunner は、台本からページ画像とCBZアーカイブを組み上げるためのインターフェース。
type ComposeRunner interface {
	// Run は台本の全ページを合成し、生成したCBZアーカイブのパスを返す。
	Run(ctx context.Context) (string, error)
}

// ChapterComposeRunner は pkg/assembler を利用した標準実装です。
type ChapterComposeRunner struct {
	assembler *assembler.Assembler  // ページ合成とアーカイブ梱包を担当する実体
	options   config.ComposeOptions // CLI引数から渡された入出力パス
}

// NewChapterComposeRunner は、ChapterComposeRunnerの新しいインスタンスを生成して返す。
func NewChapterComposeRunner(asm *assembler.Assembler, options config.ComposeOptions) *ChapterComposeRunner {
	return &ChapterComposeRunner{
		assembler: asm,
		options:   options,
	}
}

// Run は台本の読み込みから章の組み上げまでを実行するメインロジックなのだ。
func (cr *ChapterComposeRunner) Run(ctx context.Context) (string, error) {
	// 1. 台本JSONを読み込むのだ
	script, err := domain.LoadScript(cr.options.ScriptPath)
	if err != nil {
		return "", fmt.Errorf("台本の読み込みに失敗したのだ: %w", err)
	}
	slog.Info("台本を読み込んだのだ", "title", script.Title, "pages", len(script.Pages), "panels", script.PanelCount())

	// 2. 全ページの合成とCBZへの梱包はアセンブラーに任せるのだ
	archivePath, err := cr.assembler.AssembleChapter(ctx, script, cr.options.PanelsDir, cr.options.OutputDir)
	if err != nil {
		return "", fmt.Errorf("チャプターの合成に失敗したのだ: %w", err)
	}

	return archivePath, nil
}
