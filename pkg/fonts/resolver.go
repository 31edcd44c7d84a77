package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/singleflight"
)

// システムフォントの探索候補。DejaVu → Liberation → Noto の順に探し、
// どれも使えなければ Go 同梱フォントへフォールバックします。
var (
	defaultRegularCandidates = []string{
		"DejaVuSans.ttf",
		"LiberationSans-Regular.ttf",
		"NotoSans-Regular.ttf",
	}
	defaultBoldCandidates = []string{
		"DejaVuSans-Bold.ttf",
		"LiberationSans-Bold.ttf",
		"NotoSans-Bold.ttf",
	}
)

// Resolver はシステムフォントを探索し、生成した font.Face をキャッシュする
// Provider の標準実装です。
type Resolver struct {
	regularCandidates []string
	boldCandidates    []string
	systemLookup      bool

	store *cache.Cache
	group singleflight.Group
}

// NewResolver は優先フォント名を先頭に積んだ探索順で Resolver を生成します。
// 優先名が空の場合は既定の候補だけで探索します。
func NewResolver(preferredRegular, preferredBold string) *Resolver {
	regular := defaultRegularCandidates
	if preferredRegular != "" {
		regular = append([]string{preferredRegular}, defaultRegularCandidates...)
	}
	bold := defaultBoldCandidates
	if preferredBold != "" {
		bold = append([]string{preferredBold}, defaultBoldCandidates...)
	}

	return &Resolver{
		regularCandidates: regular,
		boldCandidates:    bold,
		systemLookup:      true,
		store:             cache.New(cache.NoExpiration, 0),
	}
}

// NewEmbedded は同梱フォント（Go Regular / Go Bold）だけを使う Provider を返します。
// 実行環境にインストールされたフォントへ一切依存しないため、出力が環境間で一致します。
func NewEmbedded() *Resolver {
	return &Resolver{
		systemLookup: false,
		store:        cache.New(cache.NoExpiration, 0),
	}
}

// Face はスタイルとサイズに対応する font.Face を返します。
// 同じ組み合わせの Face は一度だけ生成され、以降はキャッシュが返ります。
func (r *Resolver) Face(style Style, points float64) (font.Face, error) {
	key := fmt.Sprintf("face:%d:%g", style, points)
	if cached, ok := r.store.Get(key); ok {
		return cached.(font.Face), nil
	}

	val, err, _ := r.group.Do(key, func() (interface{}, error) {
		// singleflight 待機中に他のゴルーチンが生成を終えている可能性があるため再確認します
		if cached, ok := r.store.Get(key); ok {
			return cached, nil
		}

		ft, err := r.fontFor(style)
		if err != nil {
			return nil, err
		}

		face := truetype.NewFace(ft, &truetype.Options{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		r.store.Set(key, face, cache.NoExpiration)
		return face, nil
	})
	if err != nil {
		return nil, err
	}

	face, ok := val.(font.Face)
	if !ok {
		return nil, fmt.Errorf("singleflightから予期しない型が返されました: %T", val)
	}
	return face, nil
}

// fontFor はスタイルに対応する TrueType フォントを解決します。パース結果もキャッシュします。
func (r *Resolver) fontFor(style Style) (*truetype.Font, error) {
	key := fmt.Sprintf("font:%d", style)
	if cached, ok := r.store.Get(key); ok {
		return cached.(*truetype.Font), nil
	}

	ft := (*truetype.Font)(nil)
	if r.systemLookup {
		ft = r.findSystemFont(style)
	}
	if ft == nil {
		parsed, err := truetype.Parse(r.embeddedTTF(style))
		if err != nil {
			return nil, fmt.Errorf("同梱フォントのパースに失敗しました: %w", err)
		}
		ft = parsed
	}

	r.store.Set(key, ft, cache.NoExpiration)
	return ft, nil
}

// findSystemFont は候補のフォントを順に探し、最初に読み込めたものを返します。
// 見つからない・読めない・壊れている候補は飛ばして次へ進みます。
func (r *Resolver) findSystemFont(style Style) *truetype.Font {
	for _, name := range r.candidatesFor(style) {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return ft
	}
	return nil
}

func (r *Resolver) candidatesFor(style Style) []string {
	if style == StyleBold {
		return r.boldCandidates
	}
	return r.regularCandidates
}

func (r *Resolver) embeddedTTF(style Style) []byte {
	if style == StyleBold {
		return gobold.TTF
	}
	return goregular.TTF
}
