package domain

// TidyRow é uma observação (data, categoria, valor) em formato longo
type TidyRow struct {
	Date     Date   `json:"date"`
	Category string `json:"category"`
	Value    Number `json:"value"`
}

type TidyTable struct {
	CategoryName string    `json:"category_name"`
	ValueName    string    `json:"value_name"`
	Rows         []TidyRow `json:"rows"`
}

func (t *TidyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Categories retorna as categorias na ordem em que aparecem
func (t *TidyTable) Categories() []string {
	if t == nil {
		return nil
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, row := range t.Rows {
		if !seen[row.Category] {
			seen[row.Category] = true
			categories = append(categories, row.Category)
		}
	}
	return categories
}

// GroupMean é uma linha de agregação por grupo
type GroupMean struct {
	Label string `json:"label"`
	Mean  Number `json:"mean"`
}
