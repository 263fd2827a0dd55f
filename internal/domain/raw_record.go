package domain

// RawRecord é um item de página da API de dados abertos, sem validação de schema
type RawRecord map[string]any

// Has indica se o campo existe no registro, mesmo que nulo
func (r RawRecord) Has(field string) bool {
	_, ok := r[field]
	return ok
}
