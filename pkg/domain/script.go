package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DefaultTitle はタイトルが未指定だった場合に使用される既定値です。
const DefaultTitle = "Untitled"

// Script は外部のスクリプト生成器が出力した章全体の台本です。
// 合成エンジンからは読み取り専用として扱います。
type Script struct {
	Title string `json:"title"`
	Pages []Page `json:"pages"`

	// raw は読み込み時のJSONバイト列。スキーマが持たないフィールドも
	// アーカイブへそのまま埋め込めるように保持します。
	raw []byte
}

// Page は物理的な1枚のページと、そこに載るパネルの並びを表します。
type Page struct {
	Number int         `json:"number,omitempty"`
	Panels []PanelSpec `json:"panels"`
}

// PanelSpec は1コマ分の構図指示、セリフ、効果音の指定を保持します。
type PanelSpec struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Dialogue    []string `json:"dialogue,omitempty"`
	SFX         []string `json:"sfx,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// LoadScript は指定されたパスの台本JSONを読み込み、既定値を補完して返します。
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("台本ファイルの読み込みに失敗しました (%s): %w", path, err)
	}

	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("台本ファイルの解析に失敗しました (%s): %w", path, err)
	}
	return script, nil
}

// ParseScript はJSONバイト列を台本として解析します。
// 欠けているフィールドはここで一度だけ既定値に正規化されるため、
// 以降の工程は省略可能フィールドの有無を気にせず台本を扱えます。
func ParseScript(data []byte) (*Script, error) {
	script := &Script{}
	if err := json.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("台本JSONのパースに失敗しました: %w", err)
	}
	script.raw = data
	script.applyDefaults()
	return script, nil
}

// applyDefaults は省略されたフィールドへ既定値を与えます。
// ページ番号は 1 始まりの位置、タイトルは DefaultTitle が補われます。
func (s *Script) applyDefaults() {
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Pages == nil {
		s.Pages = []Page{}
	}
	for i := range s.Pages {
		if s.Pages[i].Number <= 0 {
			s.Pages[i].Number = i + 1
		}
		if s.Pages[i].Panels == nil {
			s.Pages[i].Panels = []PanelSpec{}
		}
		for j := range s.Pages[i].Panels {
			panel := &s.Pages[i].Panels[j]
			if panel.Dialogue == nil {
				panel.Dialogue = []string{}
			}
			if panel.SFX == nil {
				panel.SFX = []string{}
			}
		}
	}
}

// PrettyJSON は台本を整形済みJSONとして返します。読み込み時の生バイトを
// 保持している場合はそれを整形するため、スキーマ外のフィールドも失われません。
func (s *Script) PrettyJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("台本JSONの生成に失敗しました: %w", err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, s.raw, "", "  "); err != nil {
		return nil, fmt.Errorf("台本JSONの整形に失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}
