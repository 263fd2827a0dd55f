package gochart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// thousandsFormatter formata valores do eixo y como 1,250,000
func thousandsFormatter(v interface{}) string {
	switch value := v.(type) {
	case float64:
		if value == float64(int64(value)) {
			return printer.Sprintf("%d", int64(value))
		}
		return printer.Sprintf("%.1f", value)
	case int:
		return printer.Sprintf("%d", value)
	default:
		return printer.Sprint(v)
	}
}
