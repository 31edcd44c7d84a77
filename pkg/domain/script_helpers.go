package domain

// PanelIDs は台本に登場する全パネルIDを登場順で返します。重複は除きます。
func (s *Script) PanelIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(s.Pages))
	for _, page := range s.Pages {
		for _, panel := range page.Panels {
			if panel.ID == "" {
				continue
			}
			if _, ok := seen[panel.ID]; ok {
				continue
			}
			seen[panel.ID] = struct{}{}
			ids = append(ids, panel.ID)
		}
	}
	return ids
}

// PanelCount は台本に含まれるパネルの総数を返します。
func (s *Script) PanelCount() int {
	total := 0
	for _, page := range s.Pages {
		total += len(page.Panels)
	}
	return total
}
