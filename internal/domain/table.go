package domain

// Table é o dataset limpo: uma coluna de datas e colunas numéricas nomeadas,
// todas com o mesmo número de linhas, na ordem entregue pela fonte.
type Table struct {
	DateField string
	Dates     []Date
	columns   map[string][]Number
	order     []string
}

func NewTable(dateField string, dates []Date) *Table {
	return &Table{
		DateField: dateField,
		Dates:     dates,
		columns:   make(map[string][]Number),
	}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Dates)
}

// SetColumn adiciona ou substitui uma coluna numérica; o tamanho precisa bater com Len
func (t *Table) SetColumn(name string, values []Number) {
	if len(values) != t.Len() {
		panic("domain: column " + name + " length does not match table length")
	}
	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.columns[name] = values
}

func (t *Table) Column(name string) ([]Number, bool) {
	if t == nil {
		return nil, false
	}
	values, ok := t.columns[name]
	return values, ok
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames retorna as colunas numéricas na ordem em que foram adicionadas
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}
