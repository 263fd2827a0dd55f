package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/charting"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Ridership: config.Dataset{URL: "https://data.ny.gov/resource/vxuj-8kew.json", Order: "date"},
		CaseCount: config.Dataset{URL: "https://data.cityofnewyork.us/resource/rc75-m7u3.json", Order: "date_of_interest"},
		Socrata:   config.Socrata{PageSize: 50000},
	}
}

// ridershipTable cobre 2024-01-01 (segunda) até 2024-01-07 (domingo)
func ridershipTable() *domain.Table {
	dates := make([]domain.Date, 7)
	subways := make([]domain.Number, 7)
	pct := make([]domain.Number, 7)
	for i := range dates {
		dates[i] = domain.NewDate(2024, time.January, 1+i)
		subways[i] = domain.Num(float64(1000 * (i + 1)))
		pct[i] = domain.Num(0.5 + float64(i)/10)
	}

	table := domain.NewTable("date", dates)
	table.SetColumn("subways_total_estimated_ridership", subways)
	table.SetColumn("subways_pct_of_comparable_pre_pandemic_day", pct)
	table.SetColumn("buses_total_estimated_ridership", subways)
	return table
}

func newTestService(t *testing.T) (*mocks.MockTableLoader, Dashboard) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockTableLoader(ctrl)
	return loader, NewService(loader, testConfig())
}

func TestService_Ridership_DefaultSelection(t *testing.T) {
	loader, service := newTestService(t)
	loader.EXPECT().
		Load(gomock.Any(), RidershipSpec(testConfig())).
		Return(ridershipTable(), nil)

	page, err := service.Ridership(context.Background(), domain.RidershipSelection{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Subways"}, page.Selected)
	assert.Equal(t, []string{"Subways", "Buses", "LIRR", "Metro-North"}, page.Options)
	assert.Equal(t, "Data loaded: 7 rows, from 2024-01-01 to 2024-01-07", page.SummaryText)

	require.NotNil(t, page.Series)
	assert.Equal(t, domain.LineChart, page.Series.Kind)
	assert.Equal(t, "MTA Daily Ridership by Service", page.Series.Title)
	assert.Equal(t, "Date", page.Series.XAxisTitle)
	assert.Equal(t, "Estimated Ridership", page.Series.YAxisTitle)
	assert.Equal(t, []string{"Subways"}, page.Series.Data.Categories())
	assert.NotEmpty(t, page.Series.ID)

	require.NotNil(t, page.Recovery)
	assert.Equal(t, "% of Pre-Pandemic", page.Recovery.YAxisTitle)
	assert.Equal(t, []domain.ReferenceLine{{Value: 100, Dashed: true, Color: "gray", Annotation: "Pre-Pandemic Level"}}, page.Recovery.ReferenceLines)
	assert.Equal(t, []string{"Subways"}, page.Recovery.Data.Categories())
	assert.InDelta(t, 50.0, page.Recovery.Data.Rows[0].Value.Value, 1e-9)

	require.NotNil(t, page.Weekday)
	assert.Equal(t, domain.BarChart, page.Weekday.Kind)
	require.Len(t, page.Weekday.Bars, 2)
	assert.Equal(t, charting.WeekdayLabel, page.Weekday.Bars[0].Label)
	assert.Equal(t, domain.Num(3000), page.Weekday.Bars[0].Mean)
	assert.Equal(t, domain.Num(6500), page.Weekday.Bars[1].Mean)
	assert.Equal(t, "Average weekend subway ridership is 216.67% of the weekday average (6,500 vs 3,000).", page.WeekendShare)
}

func TestService_Ridership_SubmittedSelection(t *testing.T) {
	loader, service := newTestService(t)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ridershipTable(), nil)

	page, err := service.Ridership(context.Background(), domain.RidershipSelection{
		Services:  []string{"Buses", "Subways"},
		Submitted: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Buses", "Subways"}, page.Series.Data.Categories())
	assert.Equal(t, 14, page.Series.Data.Len())
}

func TestService_Ridership_EmptySelectionOmitsSeries(t *testing.T) {
	loader, service := newTestService(t)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ridershipTable(), nil)

	page, err := service.Ridership(context.Background(), domain.RidershipSelection{Submitted: true})
	require.NoError(t, err)

	assert.Nil(t, page.Series)
	assert.Empty(t, page.Selected)
	assert.NotNil(t, page.Recovery)
	assert.NotNil(t, page.Weekday)
}

func TestService_Ridership_UnknownService(t *testing.T) {
	loader, service := newTestService(t)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ridershipTable(), nil)

	page, err := service.Ridership(context.Background(), domain.RidershipSelection{
		Services:  []string{"Ferry"},
		Submitted: true,
	})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, charting.ErrUnknownService)
}

func TestService_LoadErrorAbortsPage(t *testing.T) {
	boom := errors.New("source unavailable")

	loader, service := newTestService(t)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, boom).Times(2)

	ridership, err := service.Ridership(context.Background(), domain.RidershipSelection{})
	assert.Nil(t, ridership)
	assert.ErrorIs(t, err, boom)

	cases, err := service.CaseCounts(context.Background())
	assert.Nil(t, cases)
	assert.ErrorIs(t, err, boom)
}

func TestService_CaseCounts(t *testing.T) {
	table := domain.NewTable("date_of_interest", []domain.Date{
		domain.NewDate(2020, time.February, 29),
		domain.NewDate(2020, time.March, 1),
	})
	table.SetColumn("case_count", []domain.Number{domain.Num(1), domain.Missing()})

	loader, service := newTestService(t)
	loader.EXPECT().
		Load(gomock.Any(), CaseCountSpec(testConfig())).
		Return(table, nil)

	page, err := service.CaseCounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Data: 2 rows", page.SummaryText)
	assert.Contains(t, page.Connection, "Connection to MTA Ridership")
	require.NotNil(t, page.Series)
	assert.Equal(t, "NYC Daily COVID-19 Cases", page.Series.Title)
	assert.Equal(t, "Case Count", page.Series.YAxisTitle)
	assert.Equal(t, 2, page.Series.Data.Len())
}

func TestService_Landing(t *testing.T) {
	_, service := newTestService(t)

	page := service.Landing()
	assert.Equal(t, "MTA Ridership Recovery Dashboard", page.Title)
	assert.Len(t, page.ResearchQuestions, 3)
	assert.Contains(t, page.Credits, "bouncing-penguin")
}

func TestDatasetSpecs(t *testing.T) {
	ridership := RidershipSpec(testConfig())
	assert.False(t, ridership.SinglePage)
	assert.Equal(t, "date", ridership.DateField)
	assert.Len(t, ridership.NumericColumns, 8)

	cases := CaseCountSpec(testConfig())
	assert.True(t, cases.SinglePage)
	assert.Equal(t, "date_of_interest", cases.OrderBy)
	assert.Equal(t, []string{"case_count"}, cases.NumericColumns)

	_, service := newTestService(t)
	assert.Equal(t, []domain.DatasetSpec{ridership, cases}, service.Datasets())
}
