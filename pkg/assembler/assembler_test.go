package assembler

import (
	"archive/zip"
	"bytes"
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/go-manga-forge/pkg/domain"
	"github.com/shouni/go-manga-forge/pkg/fonts"
	"github.com/shouni/go-manga-forge/pkg/render"

	"github.com/disintegration/imaging"
)

const testScriptJSON = `{
	"title": "Test Chapter",
	"pages": [
		{
			"number": 1,
			"panels": [
				{"id": "p-1", "description": "路地裏の対峙", "dialogue": ["Kai: Let's go!", "Mira: Right behind you."]},
				{"id": "p-2", "description": "壁が砕ける", "sfx": ["CRASH"]},
				{"id": "p-3", "description": "沈黙", "dialogue": ["(no dialogue)"]},
				{"id": "p-4", "description": "走り去る影"}
			]
		}
	]
}`

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	compositor := render.NewCompositor(render.DefaultConfig(), fonts.NewEmbedded())
	return NewAssembler(compositor)
}

func mustParseScript(t *testing.T, data string) *domain.Script {
	t.Helper()
	script, err := domain.ParseScript([]byte(data))
	if err != nil {
		t.Fatalf("台本のパースに失敗したのだ: %v", err)
	}
	return script
}

// writeTestPanels はテスト用パネル画像を書き出します。ids に無いパネルは
// 欠損扱いとなり、プレースホルダー経路を通ります。
func writeTestPanels(t *testing.T, panelsDir string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		img := imaging.New(320, 240, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
		if err := imaging.Save(img, filepath.Join(panelsDir, PanelFileName(id))); err != nil {
			t.Fatalf("テスト用パネル画像の保存に失敗したのだ: %v", err)
		}
	}
}

func TestAssembleChapter(t *testing.T) {
	script := mustParseScript(t, testScriptJSON)
	panelsDir := t.TempDir()
	outputDir := t.TempDir()

	// p-3 だけ意図的に欠損させ、プレースホルダーで補われることを確かめる
	writeTestPanels(t, panelsDir, "p-1", "p-2", "p-4")

	assembler := newTestAssembler(t)
	archivePath, err := assembler.AssembleChapter(context.Background(), script, panelsDir, outputDir)
	if err != nil {
		t.Fatalf("章の合成に失敗したのだ: %v", err)
	}

	t.Run("アーカイブ名はタイトル由来なのだ", func(t *testing.T) {
		want := filepath.Join(outputDir, "Test_Chapter_composed.cbz")
		if archivePath != want {
			t.Errorf("アーカイブパスが違うのだ。期待: %s, 実際: %s", want, archivePath)
		}
	})

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		t.Fatalf("アーカイブが開けないのだ: %v", err)
	}
	defer r.Close()

	t.Run("エントリは表紙・ページ・台本の3つなのだ", func(t *testing.T) {
		got := map[string]bool{}
		for _, f := range r.File {
			got[f.Name] = true
		}
		want := []string{"page_00_title.png", "page_01.png", "script.json"}
		if len(r.File) != len(want) {
			t.Fatalf("エントリ数が違うのだ。期待: %d, 実際: %v", len(want), got)
		}
		for _, name := range want {
			if !got[name] {
				t.Errorf("エントリ %s が見つからないのだ", name)
			}
		}
	})

	t.Run("台本エントリは整形済みJSONと一致するのだ", func(t *testing.T) {
		want, err := script.PrettyJSON()
		if err != nil {
			t.Fatalf("整形失敗なのだ: %v", err)
		}
		for _, f := range r.File {
			if f.Name != scriptEntryName {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("台本エントリが開けないのだ: %v", err)
			}
			defer rc.Close()
			got, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("台本エントリの読み出しに失敗したのだ: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Error("台本エントリの内容が整形済みJSONと一致しないのだ")
			}
			return
		}
		t.Fatal("台本エントリが存在しないのだ")
	})
}

func TestAssembleChapter_Deterministic(t *testing.T) {
	script := mustParseScript(t, testScriptJSON)
	panelsDir := t.TempDir()
	writeTestPanels(t, panelsDir, "p-1", "p-2", "p-4")

	assembler := newTestAssembler(t)

	firstDir := t.TempDir()
	secondDir := t.TempDir()
	if _, err := assembler.AssembleChapter(context.Background(), script, panelsDir, firstDir); err != nil {
		t.Fatalf("1回目の合成に失敗したのだ: %v", err)
	}
	if _, err := assembler.AssembleChapter(context.Background(), script, panelsDir, secondDir); err != nil {
		t.Fatalf("2回目の合成に失敗したのだ: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(firstDir, "page_01.png"))
	if err != nil {
		t.Fatalf("1回目のページが読めないのだ: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(secondDir, "page_01.png"))
	if err != nil {
		t.Fatalf("2回目のページが読めないのだ: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("同じ入力から異なるページが生成されたのだ")
	}
}

func TestAssembleChapter_Cancelled(t *testing.T) {
	script := mustParseScript(t, testScriptJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assembler := newTestAssembler(t)
	if _, err := assembler.AssembleChapter(ctx, script, t.TempDir(), t.TempDir()); err == nil {
		t.Fatal("キャンセル済みコンテキストではエラーが返るはずなのだ")
	}
}

func TestArchiveName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"The Final Stand", "The_Final_Stand_composed.cbz"},
		{"Solo", "Solo_composed.cbz"},
		{"A  B", "A__B_composed.cbz"},
	}
	for _, c := range cases {
		if got := ArchiveName(c.title); got != c.want {
			t.Errorf("ArchiveName(%q) = %q, 期待: %q", c.title, got, c.want)
		}
	}
}

func TestPanelFileName(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"p-1", "panel_p_1.png"},
		{"intro", "panel_intro.png"},
		{"a-b-c", "panel_a_b_c.png"},
	}
	for _, c := range cases {
		if got := PanelFileName(c.id); got != c.want {
			t.Errorf("PanelFileName(%q) = %q, 期待: %q", c.id, got, c.want)
		}
	}
}
