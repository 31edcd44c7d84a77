package layout

// Region はページのコンテンツ領域に対する正規化矩形です。
// 各座標は [0,1] の範囲で、X2 > X1, Y2 > Y1 を満たします。
type Region struct {
	X1, Y1, X2, Y2 float64
}

// Width は正規化幅を返します。
func (r Region) Width() float64 { return r.X2 - r.X1 }

// Height は正規化高さを返します。
func (r Region) Height() float64 { return r.Y2 - r.Y1 }

// 4パネル以下のページ用テンプレート。ページ番号で巡回させることで、
// 連続するページに決定的な構図の変化を与えます。
var fourPanelTemplates = [][]Region{
	// Layout A: 2x2 グリッド
	{
		{X1: 0.0, Y1: 0.0, X2: 0.5, Y2: 0.5},
		{X1: 0.5, Y1: 0.0, X2: 1.0, Y2: 0.5},
		{X1: 0.0, Y1: 0.5, X2: 0.5, Y2: 1.0},
		{X1: 0.5, Y1: 0.5, X2: 1.0, Y2: 1.0},
	},
	// Layout B: 大きな左上 + 右上 + 下段2つ
	{
		{X1: 0.0, Y1: 0.0, X2: 0.65, Y2: 0.45},
		{X1: 0.65, Y1: 0.0, X2: 1.0, Y2: 0.45},
		{X1: 0.0, Y1: 0.45, X2: 0.5, Y2: 1.0},
		{X1: 0.5, Y1: 0.45, X2: 1.0, Y2: 1.0},
	},
	// Layout C: 横長の上段 + 縦長の左 + 右に2段
	{
		{X1: 0.0, Y1: 0.0, X2: 1.0, Y2: 0.35},
		{X1: 0.0, Y1: 0.35, X2: 0.45, Y2: 1.0},
		{X1: 0.45, Y1: 0.35, X2: 1.0, Y2: 0.65},
		{X1: 0.45, Y1: 0.65, X2: 1.0, Y2: 1.0},
	},
}

// 5パネルページ用の固定テンプレート。
var fivePanelTemplate = []Region{
	{X1: 0.0, Y1: 0.0, X2: 1.0, Y2: 0.3},
	{X1: 0.0, Y1: 0.3, X2: 0.5, Y2: 0.6},
	{X1: 0.5, Y1: 0.3, X2: 1.0, Y2: 0.6},
	{X1: 0.0, Y1: 0.6, X2: 0.55, Y2: 1.0},
	{X1: 0.55, Y1: 0.6, X2: 1.0, Y2: 1.0},
}

// TemplateCount は4パネル用テンプレートの数を返します。
// ページ番号によるローテーションの周期でもあります。
func TemplateCount() int { return len(fourPanelTemplates) }

// RegionsFor はパネル数に応じた正規化矩形の並びを返します。
//   - 1〜4パネル: ページ番号でテンプレートを巡回選択し、先頭から panelCount 個を使う
//   - 5パネル: 固定の5パネルテンプレート
//   - それ以外 (0 または 6以上): 2列 × ceil(n/2) 行の行優先グリッド
//
// どの panelCount でもエラーにはなりません。0 の場合は空の並びを返します。
func RegionsFor(panelCount, pageNumber int) []Region {
	switch {
	case panelCount > 0 && panelCount <= 4:
		idx := pageNumber % len(fourPanelTemplates)
		if idx < 0 {
			idx += len(fourPanelTemplates)
		}
		return append([]Region(nil), fourPanelTemplates[idx][:panelCount]...)

	case panelCount == 5:
		return append([]Region(nil), fivePanelTemplate...)

	default:
		cols := 2
		rows := (panelCount + 1) / 2
		regions := make([]Region, 0, panelCount)
		for i := 0; i < panelCount; i++ {
			r, c := i/cols, i%cols
			regions = append(regions, Region{
				X1: float64(c) / float64(cols),
				Y1: float64(r) / float64(rows),
				X2: float64(c+1) / float64(cols),
				Y2: float64(r+1) / float64(rows),
			})
		}
		return regions
	}
}
