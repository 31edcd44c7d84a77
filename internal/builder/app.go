package builder

import (
	"github.com/shouni/go-manga-forge/internal/config"

	"github.com/shouni/go-manga-forge/pkg/fonts"
	"github.com/shouni/go-manga-forge/pkg/render"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config        // Configは、環境変数から読み込まれたグローバルな設定です（フォント名など）。
	Options    config.ComposeOptions // Optionsは、コマンドラインから渡された実行時の設定です（台本パス、出力先など）。
	Fonts      fonts.Provider        // Fontsは、描画に使う書体を解決するプロバイダです。
	Compositor *render.Compositor    // Compositorは、レイアウト決定から描画までを担うページ合成器です。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(cfg *config.Config) AppContext {
	provider := InitializeFontProvider(cfg)
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		Fonts:      provider,
		Compositor: render.NewCompositor(render.DefaultConfig(), provider),
	}
}
