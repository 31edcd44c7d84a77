package config

import (
	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultFontRegular = "DejaVuSans.ttf"      // 吹き出し・本文用のシステムフォント名なのだ
	DefaultFontBold    = "DejaVuSans-Bold.ttf" // SFXとタイトル用の太字フォント名なのだ
)

// Config はアプリケーション全体の環境設定（フォント解決まわり）を保持する構造体なのだ。
type Config struct {
	FontRegular   string
	FontBold      string
	EmbeddedFonts bool // trueならシステムフォントを探さず同梱フォントだけを使うのだ

	Options ComposeOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		FontRegular:   envutil.GetEnv("MANGA_FORGE_FONT", DefaultFontRegular),
		FontBold:      envutil.GetEnv("MANGA_FORGE_FONT_BOLD", DefaultFontBold),
		EmbeddedFonts: envutil.GetEnv("MANGA_FORGE_EMBEDDED_FONTS", "") != "",
	}
	return cfg
}

// ComposeOptions は CLI 引数から渡される実行時のパラメータなのだ。
type ComposeOptions struct {
	// 入出力関連
	ScriptPath string // 第1引数: 台本JSONのパス
	PanelsDir  string // 第2引数: パネル画像のディレクトリ
	OutputDir  string // 第3引数: ページとCBZの出力先
}
