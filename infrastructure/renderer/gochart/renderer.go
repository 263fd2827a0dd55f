// Package gochart desenha ChartRequests em SVG com go-chart.
package gochart

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 420

	ContentType = "image/svg+xml"
)

var ErrEmptyChart = errors.New("chart has nothing to draw")

type Renderer interface {
	Render(w io.Writer, req *domain.ChartRequest) error
}

type SVGRenderer struct {
	Width  int
	Height int
}

func New() Renderer {
	return &SVGRenderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (r *SVGRenderer) Render(w io.Writer, req *domain.ChartRequest) error {
	if req == nil {
		return ErrEmptyChart
	}

	switch req.Kind {
	case domain.LineChart:
		return r.renderLine(w, req)
	case domain.BarChart:
		return r.renderBar(w, req)
	default:
		return fmt.Errorf("gochart: unsupported chart kind %q", req.Kind)
	}
}

func (r *SVGRenderer) renderLine(w io.Writer, req *domain.ChartRequest) error {
	var (
		series     []chart.Series
		minX, maxX time.Time
		minY, maxY float64
		points     int
	)

	for _, category := range req.Data.Categories() {
		ts := chart.TimeSeries{Name: category}

		for _, row := range req.Data.Rows {
			if row.Category != category || !row.Date.Valid || !row.Value.Valid {
				continue
			}

			x := row.Date.Time()
			ts.XValues = append(ts.XValues, x)
			ts.YValues = append(ts.YValues, row.Value.Value)

			if points == 0 || x.Before(minX) {
				minX = x
			}
			if points == 0 || x.After(maxX) {
				maxX = x
			}
			if points == 0 || row.Value.Value < minY {
				minY = row.Value.Value
			}
			if points == 0 || row.Value.Value > maxY {
				maxY = row.Value.Value
			}
			points++
		}

		if len(ts.XValues) > 0 {
			series = append(series, ts)
		}
	}

	if points == 0 {
		return ErrEmptyChart
	}

	// go-chart rejeita intervalo de largura zero; um único dia vira dois pontos
	if !maxX.After(minX) {
		maxX = minX.AddDate(0, 0, 1)
		for i, s := range series {
			ts := s.(chart.TimeSeries)
			ts.XValues = append(ts.XValues, maxX)
			ts.YValues = append(ts.YValues, ts.YValues[len(ts.YValues)-1])
			series[i] = ts
		}
	}

	for _, ref := range req.ReferenceLines {
		series = append(series, referenceSeries(ref, minX, maxX)...)
		minY = min(minY, ref.Value)
		maxY = max(maxY, ref.Value)
	}

	yAxis := chart.YAxis{
		Name:           req.YAxisTitle,
		ValueFormatter: thousandsFormatter,
	}
	if maxY == minY {
		yAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	ch := chart.Chart{
		Title:      req.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           req.XAxisTitle,
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis:  yAxis,
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("gochart: error rendering %q: %w", req.Title, err)
	}
	return nil
}

func (r *SVGRenderer) renderBar(w io.Writer, req *domain.ChartRequest) error {
	bars := make([]chart.Value, 0, len(req.Bars))
	maxY := 0.0
	for _, bar := range req.Bars {
		if !bar.Mean.Valid {
			continue
		}
		bars = append(bars, chart.Value{Label: bar.Label, Value: bar.Mean.Value})
		maxY = max(maxY, bar.Mean.Value)
	}

	if len(bars) == 0 {
		return ErrEmptyChart
	}
	if maxY <= 0 {
		maxY = 1
	}

	bc := chart.BarChart{
		Title:      req.Title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   120,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 56}},
		YAxis: chart.YAxis{
			Name:           req.YAxisTitle,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			ValueFormatter: thousandsFormatter,
		},
		Bars: bars,
	}
	if req.XAxisTitle != "" {
		bc.Elements = []chart.Renderable{xAxisTitle(req.XAxisTitle, r.Width, r.Height)}
	}

	if err := bc.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("gochart: error rendering %q: %w", req.Title, err)
	}
	return nil
}

// xAxisTitle escreve o título do eixo x centralizado abaixo dos rótulos das
// barras; o BarChart do go-chart não tem nome de eixo x
func xAxisTitle(title string, width, height int) chart.Renderable {
	return func(cr chart.Renderer, _ chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  chart.DefaultAxisFontSize,
			FontColor: chart.DefaultTextColor,
		}
		style.WriteTextOptionsToRenderer(cr)

		box := cr.MeasureText(title)
		cr.Text(title, (width-box.Width())/2, height-12)
	}
}

// referenceSeries desenha uma linha horizontal no intervalo do eixo x, com anotação no fim
func referenceSeries(ref domain.ReferenceLine, from, to time.Time) []chart.Series {
	style := chart.Style{
		StrokeColor: colorFor(ref.Color),
		StrokeWidth: 1.5,
	}
	if ref.Dashed {
		style.StrokeDashArray = []float64{6, 4}
	}

	name := ref.Annotation
	if name == "" {
		name = fmt.Sprintf("%g", ref.Value)
	}

	out := []chart.Series{chart.TimeSeries{
		Name:    name,
		Style:   style,
		XValues: []time.Time{from, to},
		YValues: []float64{ref.Value, ref.Value},
	}}

	if ref.Annotation != "" {
		out = append(out, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: chart.TimeToFloat64(to),
				YValue: ref.Value,
				Label:  ref.Annotation,
			}},
		})
	}

	return out
}

func colorFor(name string) drawing.Color {
	switch strings.ToLower(name) {
	case "", "gray", "grey":
		return chart.ColorAlternateGray
	case "black":
		return chart.ColorBlack
	case "red":
		return chart.ColorRed
	case "blue":
		return chart.ColorBlue
	case "green":
		return chart.ColorGreen
	default:
		return drawing.ColorFromHex(strings.TrimPrefix(name, "#"))
	}
}
