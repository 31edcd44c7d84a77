package fonts

import "testing"

func TestEmbeddedResolver(t *testing.T) {
	t.Run("同梱フォントからFaceを取得できるのだ", func(t *testing.T) {
		provider := NewEmbedded()

		face, err := provider.Face(StyleRegular, 20)
		if err != nil {
			t.Fatalf("Face取得失敗なのだ: %v", err)
		}
		if face.Metrics().Ascent <= 0 {
			t.Error("アセントが正の値ではないのだ")
		}
	})

	t.Run("同じ指定なら同じFaceがキャッシュから返るのだ", func(t *testing.T) {
		provider := NewEmbedded()

		first, err := provider.Face(StyleBold, 32)
		if err != nil {
			t.Fatalf("1回目のFace取得失敗なのだ: %v", err)
		}
		second, err := provider.Face(StyleBold, 32)
		if err != nil {
			t.Fatalf("2回目のFace取得失敗なのだ: %v", err)
		}
		if first != second {
			t.Error("キャッシュが効いていれば同一のFaceが返るはずなのだ")
		}
	})

	t.Run("スタイルやサイズが違えば別のFaceになるのだ", func(t *testing.T) {
		provider := NewEmbedded()

		regular, err := provider.Face(StyleRegular, 20)
		if err != nil {
			t.Fatalf("Face取得失敗なのだ: %v", err)
		}
		bold, err := provider.Face(StyleBold, 20)
		if err != nil {
			t.Fatalf("Face取得失敗なのだ: %v", err)
		}
		if regular == bold {
			t.Error("RegularとBoldで同じFaceが返っているのだ")
		}
	})
}

func TestResolver_Fallback(t *testing.T) {
	t.Run("存在しない優先フォントを指定してもFaceは得られるのだ", func(t *testing.T) {
		provider := NewResolver("NoSuchFont-9999.ttf", "NoSuchFont-Bold-9999.ttf")

		face, err := provider.Face(StyleRegular, 18)
		if err != nil {
			t.Fatalf("フォールバックに失敗したのだ: %v", err)
		}
		if face == nil {
			t.Fatal("Faceがnilなのだ")
		}
	})
}
