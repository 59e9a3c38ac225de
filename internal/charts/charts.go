// Package charts renders PNG report graphics. It is a presentation
// collaborator: it only consumes analytics rows and never touches the
// ledger.
package charts

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"wallet/internal/model"
)

// CategoryPie renders the per-category share of one type as a pie
// chart PNG at path.
func CategoryPie(categories []model.CategorySummary, title, path string) error {
	if len(categories) == 0 {
		return fmt.Errorf("no data to chart")
	}

	values := make([]chart.Value, 0, len(categories))
	for _, c := range categories {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", c.Category, c.PercentOfTotal),
			Value: c.Total,
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  640,
		Height: 640,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}

// MonthlyTrend renders income, expense, and balance lines over the
// given months (trend order, oldest first) as a PNG at path.
func MonthlyTrend(months []model.MonthlySummary, path string) error {
	if len(months) == 0 {
		return fmt.Errorf("no data to chart")
	}

	xValues := make([]time.Time, len(months))
	incomeValues := make([]float64, len(months))
	expenseValues := make([]float64, len(months))
	balanceValues := make([]float64, len(months))
	for i, m := range months {
		t, err := time.Parse("2006-01", m.Month)
		if err != nil {
			return fmt.Errorf("bad month key %q: %w", m.Month, err)
		}
		xValues[i] = t
		incomeValues[i] = m.IncomeTotal
		expenseValues[i] = m.ExpenseTotal
		balanceValues[i] = m.Balance
	}

	graph := chart.Chart{
		Title:  "Monthly Trend",
		Width:  1024,
		Height: 512,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 06"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenseValues,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balanceValues,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2, StrokeDashArray: []float64{4, 4}},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering trend chart: %w", err)
	}
	return nil
}
