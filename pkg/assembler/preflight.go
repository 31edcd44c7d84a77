package assembler

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/shouni/go-manga-forge/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// preflightPanels は合成に入る前に、期待される全パネル画像の有無を
// まとめて確認します。存在チェックだけを並列に行い、結果は集計ログと
// して報告します。欠落はここでは解決せず、ページ合成時に個別の警告と
// プレースホルダー差し替えで扱われます。
func (a *Assembler) preflightPanels(ctx context.Context, script *domain.Script, panelsDir string) {
	ids := script.PanelIDs()
	if len(ids) == 0 {
		return
	}

	var found int64
	eg, egCtx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return nil
			}
			if _, err := os.Stat(filepath.Join(panelsDir, PanelFileName(id))); err == nil {
				atomic.AddInt64(&found, 1)
			}
			return nil
		})
	}
	// 全ゴルーチンは nil を返すため Wait がエラーになることはない
	_ = eg.Wait()

	slog.Info("パネル素材を確認しました",
		"total", len(ids),
		"found", found,
		"missing", int64(len(ids))-found)
}
