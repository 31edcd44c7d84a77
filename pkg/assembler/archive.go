package assembler

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/go-manga-forge/pkg/domain"

	"github.com/klauspost/compress/flate"
)

const (
	// scriptEntryName はアーカイブへ埋め込む台本エントリの名前です。
	scriptEntryName = "script.json"
	// archiveSuffix はCBZファイル名の末尾に付く接尾辞です。
	archiveSuffix = "_composed.cbz"
)

// ArchiveName は章タイトルからCBZファイル名を導出します。
// タイトル中の空白は "_" に置き換えられます。
func ArchiveName(title string) string {
	return strings.ReplaceAll(title, " ", "_") + archiveSuffix
}

// writeArchive は表紙・各ページ・整形済み台本JSONを1つのCBZへ書き出します。
// アーカイブの書き込みに失敗した場合は章全体の失敗として扱います。
func (a *Assembler) writeArchive(script *domain.Script, titlePath string, pagePaths []string, outputDir string) (string, error) {
	archivePath := filepath.Join(outputDir, ArchiveName(script.Title))

	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("アーカイブの作成に失敗しました (%s): %w", archivePath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	// 標準のDeflateより高速な圧縮器に差し替える
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	if err := addFileEntry(zw, titlePath); err != nil {
		return "", fmt.Errorf("表紙ページのアーカイブ追加に失敗しました: %w", err)
	}
	for _, pagePath := range pagePaths {
		if err := addFileEntry(zw, pagePath); err != nil {
			return "", fmt.Errorf("ページ画像のアーカイブ追加に失敗しました (%s): %w", pagePath, err)
		}
	}

	pretty, err := script.PrettyJSON()
	if err != nil {
		return "", err
	}
	w, err := zw.Create(scriptEntryName)
	if err != nil {
		return "", fmt.Errorf("台本エントリの作成に失敗しました: %w", err)
	}
	if _, err := w.Write(pretty); err != nil {
		return "", fmt.Errorf("台本エントリの書き込みに失敗しました: %w", err)
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("アーカイブの確定に失敗しました: %w", err)
	}

	if info, err := os.Stat(archivePath); err == nil {
		slog.Info("CBZアーカイブを作成しました",
			"path", archivePath,
			"entries", len(pagePaths)+2,
			"size_mb", fmt.Sprintf("%.1f", float64(info.Size())/(1024*1024)))
	}
	return archivePath, nil
}

// addFileEntry はローカルファイルをベース名のままアーカイブへ追加します。
func addFileEntry(zw *zip.Writer, srcPath string) error {
	w, err := zw.Create(filepath.Base(srcPath))
	if err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(w, src)
	return err
}
