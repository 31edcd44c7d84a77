package render

import "image/color"

// Config は1ページ分の描画ジオメトリと配色を保持する設定値です。
// コンポジタ生成時に値渡しされ、以降は不変として扱われます。
// 複数章を異なる判型で同時に合成する場合は、章ごとに別の Config を渡します。
type Config struct {
	// ページの判型（ピクセル）
	PageWidth  int
	PageHeight int

	// 余白・コマ間・枠線
	Margin            int // ページ外周の余白
	Gutter            int // 隣接パネル間の空き。半分ずつ各パネルが負担する
	BorderWidth       int // パネル枠線の太さ
	PageNumberReserve int // ページ番号のために下端へ確保する高さ
	MinPanelSize      int // これ未満の幅・高さになったスロットは描画しない

	// パネルあたりの注釈上限
	MaxBubblesPerPanel int
	MaxSFXPerPanel     int

	// フキダシまわり
	AvgCharWidth        int     // 折り返し幅の見積もりに使う平均文字幅（ピクセル）
	BubbleLineHeight    int     // 行送り
	BubblePadding       int     // テキストとフキダシ枠の間隔
	BubbleRadius        float64 // 角丸の半径
	BubbleOutline       float64 // フキダシ輪郭線の太さ
	BubbleClampMargin   int     // ページ端から必ず空ける距離
	BubbleMaxWidth      int     // フキダシ本文幅の上限
	BubbleWidthInset    int     // パネル幅から差し引く本文幅の余白
	BubbleAnchorOffsetY int     // スロット上端からの1つ目のアンカー位置
	BubbleAnchorStepY   int     // 2つ目以降のアンカーを下へずらす量
	TailHalfWidth       int     // しっぽ付け根の半幅
	TailHeight          int     // しっぽの高さ

	// SFXまわり
	SFXOutlineRadius int // 縁取りに使うオフセットの最大距離
	SFXInsetX        int // スロット右端からの距離
	SFXInsetY        int // スロット下端からの距離

	// フォントサイズ（ポイント）
	DialogueFontSize   float64
	SFXFontSize        float64
	PageNumberFontSize float64
	TitleFontSize      float64
	SubtitleFontSize   float64

	// 表紙ページの定型文
	TitleSubtitle string
	TitleCredit   string

	// このセリフ値は「セリフ無し」を意味し、フキダシを描きません
	NoDialogueSentinel string

	// 配色
	Background    color.Color
	Border        color.Color
	BubbleFill    color.Color
	BubbleBorder  color.Color
	Ink           color.Color
	SFXHalo       color.Color
	PageNumberInk color.Color
	SubtitleInk   color.Color
	CreditInk     color.Color
}

// DefaultConfig は標準的な単行本サイズ（300DPI相当 1500x2250）の設定を返します。
func DefaultConfig() Config {
	return Config{
		PageWidth:  1500,
		PageHeight: 2250,

		Margin:            60,
		Gutter:            24,
		BorderWidth:       3,
		PageNumberReserve: 40,
		MinPanelSize:      50,

		MaxBubblesPerPanel: 2,
		MaxSFXPerPanel:     1,

		AvgCharWidth:        12,
		BubbleLineHeight:    26,
		BubblePadding:       16,
		BubbleRadius:        12,
		BubbleOutline:       2,
		BubbleClampMargin:   10,
		BubbleMaxWidth:      280,
		BubbleWidthInset:    40,
		BubbleAnchorOffsetY: 30,
		BubbleAnchorStepY:   60,
		TailHalfWidth:       8,
		TailHeight:          14,

		SFXOutlineRadius: 2,
		SFXInsetX:        120,
		SFXInsetY:        60,

		DialogueFontSize:   20,
		SFXFontSize:        32,
		PageNumberFontSize: 18,
		TitleFontSize:      72,
		SubtitleFontSize:   28,

		TitleSubtitle: "Chapter 1",
		TitleCredit:   "Generated by MangaForge",

		NoDialogueSentinel: "(no dialogue)",

		Background:    color.White,
		Border:        color.Black,
		BubbleFill:    color.White,
		BubbleBorder:  color.Black,
		Ink:           color.Black,
		SFXHalo:       color.White,
		PageNumberInk: color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		SubtitleInk:   color.NRGBA{R: 80, G: 80, B: 80, A: 255},
		CreditInk:     color.NRGBA{R: 120, G: 120, B: 120, A: 255},
	}
}
