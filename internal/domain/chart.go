package domain

type ChartKind string

const (
	LineChart ChartKind = "line"
	BarChart  ChartKind = "bar"
)

// ReferenceLine é uma linha horizontal fixa com anotação
type ReferenceLine struct {
	Value      float64 `json:"value"`
	Dashed     bool    `json:"dashed"`
	Color      string  `json:"color"`
	Annotation string  `json:"annotation"`
}

// ChartRequest é tudo o que o renderizador de gráficos recebe
type ChartRequest struct {
	ID             string          `json:"id"`
	Kind           ChartKind       `json:"kind"`
	Title          string          `json:"title"`
	XAxisTitle     string          `json:"x_axis_title"`
	YAxisTitle     string          `json:"y_axis_title"`
	Data           *TidyTable      `json:"data,omitempty"`
	Bars           []GroupMean     `json:"bars,omitempty"`
	ReferenceLines []ReferenceLine `json:"reference_lines,omitempty"`
}
