package render

import (
	"strings"
	"unicode/utf8"
)

// WrapText はテキストを平均文字幅ベースの見積もりで折り返します。
// 明示的な改行で区切られた各セグメントは独立に折り返され、結果は順に
// 連結されます。空のセグメントは空行として温存されるため、台本側の
// 行間調整の意図が保たれます。入力が空でも必ず1行以上を返します。
func WrapText(text string, maxWidth, avgCharWidth int) []string {
	cols := maxWidth / avgCharWidth
	if cols < 1 {
		cols = 1
	}

	var lines []string
	for _, part := range strings.Split(text, "\n") {
		wrapped := wrapColumns(part, cols)
		if len(wrapped) == 0 {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// wrapColumns は1セグメントを貪欲法で cols 文字幅に折り返します。
// 空白のみのセグメントは nil を返します。
func wrapColumns(s string, cols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		// 折り返し幅より長い単語は桁数で強制分割する
		if utf8.RuneCountInString(word) > cols {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > cols {
				lines = append(lines, string(runes[:cols]))
				runes = runes[cols:]
			}
			current = string(runes)
			continue
		}

		if current == "" {
			current = word
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= cols {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
