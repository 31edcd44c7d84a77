package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-manga-forge/internal/builder"
	"github.com/shouni/go-manga-forge/internal/config"

	"github.com/spf13/cobra"
)

// rootCmd は、台本JSONからページ画像とCBZアーカイブを組み上げるメインコマンドなのだ。
var rootCmd = &cobra.Command{
	Use:   "manga-forge <script.json> <panels_dir> <output_dir>",
	Short: "漫画の台本からページを合成してCBZに梱包しますなのだ。",
	Long: `台本JSONとパネル画像を受け取り、コマ割り・吹き出し・SFXを描き込んだ
ページ画像と、表紙付きのCBZアーカイブを出力するのだよ。
パネル画像が欠けていてもプレースホルダーで補って最後まで組み上げるのだ。`,
	Args: cobra.ExactArgs(3),
	RunE: composeCommand,
}

func init() {
}

func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 引数が揃わないときは usage を出したいが、実行時エラーで毎回 usage を
	// 繰り返すのは煩いので、ここから先は抑制するのだ
	cmd.SilenceUsage = true

	// 1. 環境変数から基本設定をロードし、引数で入出力を確定するのだ
	cfg := config.LoadConfig()
	cfg.Options = config.ComposeOptions{
		ScriptPath: args[0],
		PanelsDir:  args[1],
		OutputDir:  args[2],
	}

	slog.Info("ページ合成パイプラインを起動するのだ！",
		"script", cfg.Options.ScriptPath,
		"panels", cfg.Options.PanelsDir,
		"output", cfg.Options.OutputDir)

	// 2. 依存関係を組み立てて Runner に処理を任せるのだ
	appCtx := builder.NewAppContext(cfg)
	composeRunner := builder.BuildComposeRunner(&appCtx)

	archivePath, err := composeRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("合成の実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての合成工程が完了したのだ！", "archive", archivePath)
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	rootCmd.AddCommand(layoutsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
