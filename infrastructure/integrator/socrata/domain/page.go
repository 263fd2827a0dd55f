package socratadomain

// Parâmetros SoQL usados na paginação
const (
	ParamLimit  = "$limit"
	ParamOffset = "$offset"
	ParamOrder  = "$order"
)

// DefaultPageSize é o tamanho de página usado quando o dataset não define outro
const DefaultPageSize = 50000
