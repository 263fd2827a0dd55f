package dashboarding

import (
	"context"
	"fmt"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/charting"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
	"github.com/advanced-computing/bouncing-penguin/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Service struct {
	loader        TableLoader
	ridershipSpec domain.DatasetSpec
	caseCountSpec domain.DatasetSpec
	printer       *message.Printer
	newID         func() (string, error)
}

func NewService(loader TableLoader, cfg *config.Config) Dashboard {
	return &Service{
		loader:        loader,
		ridershipSpec: RidershipSpec(cfg),
		caseCountSpec: CaseCountSpec(cfg),
		printer:       message.NewPrinter(language.English),
		newID:         utils.GenerateID,
	}
}

func (s *Service) Datasets() []domain.DatasetSpec {
	return []domain.DatasetSpec{s.ridershipSpec, s.caseCountSpec}
}

func (s *Service) Landing() domain.LandingPage {
	questions := make([]string, len(researchQuestions))
	copy(questions, researchQuestions)

	return domain.LandingPage{
		Title:             landingTitle,
		Intro:             landingIntro,
		ResearchQuestions: questions,
		Credits:           landingCredits,
	}
}

func (s *Service) Ridership(ctx context.Context, selection domain.RidershipSelection) (*domain.RidershipPage, error) {
	selected := selection.Services
	if !selection.Submitted {
		selected = defaultSelection
	}

	table, err := s.loader.Load(ctx, s.ridershipSpec)
	if err != nil {
		return nil, err
	}

	summary := charting.Summarize(table)
	page := &domain.RidershipPage{
		Title:       ridershipTitle,
		Summary:     summary,
		SummaryText: s.printer.Sprintf("Data loaded: %d rows, from %s to %s", summary.Rows, summary.MinDate, summary.MaxDate),
		Options:     ServiceNames(),
		Selected:    append([]string{}, selected...),
	}

	if len(selected) > 0 {
		tidy, err := charting.Select(table, ridershipMetrics, selected, seriesCategory, seriesValue)
		if err != nil {
			return nil, err
		}

		page.Series, err = s.lineChart(seriesTitle, seriesYAxis, tidy)
		if err != nil {
			return nil, err
		}
	}

	recovery := charting.Recovery(table, recoveryMetrics, seriesCategory, recoveryValue)
	page.Recovery, err = s.lineChart(recoveryTitle, recoveryValue, recovery)
	if err != nil {
		return nil, err
	}
	page.Recovery.ReferenceLines = []domain.ReferenceLine{{
		Value:      100,
		Dashed:     true,
		Color:      referenceColor,
		Annotation: referenceAnnotation,
	}}

	means := charting.WeekdayWeekend(table, weekdayColumn)
	page.Weekday, err = s.barChart(weekdayTitle, weekdayXAxis, weekdayYAxis, means)
	if err != nil {
		return nil, err
	}
	page.WeekendShare = s.weekendShare(means)

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset":  RidershipDataset,
		"rows":     summary.Rows,
		"selected": selected,
	}).Debug("ridership: page built")

	return page, nil
}

func (s *Service) CaseCounts(ctx context.Context) (*domain.CaseCountPage, error) {
	table, err := s.loader.Load(ctx, s.caseCountSpec)
	if err != nil {
		return nil, err
	}

	tidy, err := charting.Select(table, caseCountMetrics, []string{caseCountSeries}, caseCountCategory, caseCountYAxis)
	if err != nil {
		return nil, err
	}

	series, err := s.lineChart(caseCountChartTitle, caseCountYAxis, tidy)
	if err != nil {
		return nil, err
	}

	summary := charting.Summarize(table)
	return &domain.CaseCountPage{
		Title:       caseCountTitle,
		Intro:       caseCountIntro,
		Summary:     summary,
		SummaryText: s.printer.Sprintf("Data: %d rows", summary.Rows),
		Series:      series,
		Connection:  caseCountConnection,
	}, nil
}

// weekendShare descreve a média do fim de semana como fração da média dos dias úteis
func (s *Service) weekendShare(means []domain.GroupMean) string {
	weekday, weekend := means[0].Mean, means[1].Mean
	if !weekday.Valid || !weekend.Valid || weekday.Value == 0 {
		return ""
	}

	share := utils.RoundWithTwoDecimalPlace(weekend.Value / weekday.Value * 100)
	return s.printer.Sprintf("Average weekend subway ridership is %.2f%% of the weekday average (%.0f vs %.0f).",
		share, weekend.Value, weekday.Value)
}

func (s *Service) lineChart(title, yAxis string, data *domain.TidyTable) (*domain.ChartRequest, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("dashboarding: error generating chart id: %w", err)
	}

	return &domain.ChartRequest{
		ID:         id,
		Kind:       domain.LineChart,
		Title:      title,
		XAxisTitle: dateAxis,
		YAxisTitle: yAxis,
		Data:       data,
	}, nil
}

func (s *Service) barChart(title, xAxis, yAxis string, bars []domain.GroupMean) (*domain.ChartRequest, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("dashboarding: error generating chart id: %w", err)
	}

	return &domain.ChartRequest{
		ID:         id,
		Kind:       domain.BarChart,
		Title:      title,
		XAxisTitle: xAxis,
		YAxisTitle: yAxis,
		Bars:       bars,
	}, nil
}
