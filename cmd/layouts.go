package cmd

import (
	"fmt"

	"github.com/shouni/go-manga-forge/pkg/layout"

	"github.com/spf13/cobra"
)

// layoutsPageNumber は --page-number フラグの値を保持するのだ。
var layoutsPageNumber int

// layoutsCmd は、パネル数ごとに選ばれるコマ割りテンプレートを確認するためのコマンドなのだ。
var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "ページ番号ごとのコマ割りテンプレートを表示しますなのだ。",
	Long: `パネル数1〜7のそれぞれについて、指定したページ番号で選ばれる
正規化レイアウト（0〜1の矩形座標）を出力するのだ。
4パネル以下のテンプレートはページ番号によって巡回するのだよ。`,
	RunE: layoutsCommand,
}

func init() {
	layoutsCmd.Flags().IntVarP(&layoutsPageNumber, "page-number", "p", 1, "レイアウト選択に使うページ番号なのだ。")
}

func layoutsCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "4パネル系テンプレート: %d種類（ページ番号で巡回）\n\n", layout.TemplateCount())
	for n := 1; n <= 7; n++ {
		regions := layout.RegionsFor(n, layoutsPageNumber)
		fmt.Fprintf(out, "panels=%d page=%d:\n", n, layoutsPageNumber)
		for i, r := range regions {
			fmt.Fprintf(out, "  [%d] (%.2f, %.2f) - (%.2f, %.2f)\n", i, r.X1, r.Y1, r.X2, r.Y2)
		}
		fmt.Fprintln(out)
	}
	return nil
}
