package domain

type LandingPage struct {
	Title             string   `json:"title"`
	Intro             string   `json:"intro"`
	ResearchQuestions []string `json:"research_questions"`
	Credits           string   `json:"credits"`
}

// RidershipSelection é a escolha de serviços do usuário. Submitted falso
// significa que o usuário ainda não escolheu e o default deve ser usado.
type RidershipSelection struct {
	Services  []string
	Submitted bool
}

type RidershipPage struct {
	Title       string        `json:"title"`
	Summary     Summary       `json:"summary"`
	SummaryText string        `json:"summary_text"`
	Options     []string      `json:"options"`
	Selected    []string      `json:"selected"`
	Series      *ChartRequest `json:"series"`
	Recovery    *ChartRequest `json:"recovery"`
	Weekday     *ChartRequest `json:"weekday"`

	// WeekendShare resume o gráfico de dias úteis; vazio quando falta uma das médias
	WeekendShare string `json:"weekend_share,omitempty"`
}

type CaseCountPage struct {
	Title       string        `json:"title"`
	Intro       string        `json:"intro"`
	Summary     Summary       `json:"summary"`
	SummaryText string        `json:"summary_text"`
	Series      *ChartRequest `json:"series"`
	Connection  string        `json:"connection"`
}
