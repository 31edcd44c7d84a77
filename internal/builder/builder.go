package builder

import (
	"github.com/shouni/go-manga-forge/internal/config"
	"github.com/shouni/go-manga-forge/internal/runner"

	"github.com/shouni/go-manga-forge/pkg/assembler"
	"github.com/shouni/go-manga-forge/pkg/fonts"
)

// BuildComposeRunner は台本からCBZ出力までの合成を担当する Runner を構築します。
func BuildComposeRunner(appCtx *AppContext) runner.ComposeRunner {
	chapterAssembler := assembler.NewAssembler(appCtx.Compositor)
	return runner.NewChapterComposeRunner(chapterAssembler, appCtx.Options)
}

// InitializeFontProvider は設定に応じたフォントプロバイダを初期化します。
// 同梱フォント指定のときはシステムフォントの探索を行いません。
func InitializeFontProvider(cfg *config.Config) fonts.Provider {
	if cfg.EmbeddedFonts {
		return fonts.NewEmbedded()
	}
	return fonts.NewResolver(cfg.FontRegular, cfg.FontBold)
}
