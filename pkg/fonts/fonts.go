package fonts

import "golang.org/x/image/font"

// Style はフォントのウェイト種別です。
type Style int

const (
	// StyleRegular はセリフやページ番号に使う通常ウェイトです。
	StyleRegular Style = iota
	// StyleBold はSFXやタイトルに使う太字ウェイトです。
	StyleBold
)

// Provider は描画コンポーネントへ注入されるフォント解決能力です。
// 実装はスタイルとポイントサイズから描画可能な font.Face を返します。
// どのフォントファイルを使うかの探索順序は実装側の責務です。
type Provider interface {
	Face(style Style, points float64) (font.Face, error)
}
