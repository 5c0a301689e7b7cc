package pointsservice

import (
	"bytes"
	"context"

	"github.com/wcharczuk/go-chart/v2"
)

// StandingsChart renders the current team standings as a PNG bar chart for
// the dashboard.
func (s *PointsService) StandingsChart(ctx context.Context) ([]byte, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		return renderNoDataPlaceholder()
	}

	bars := make([]chart.Value, len(standings))
	var maxPoints float64
	for i, team := range standings {
		bars[i] = chart.Value{
			Label: team.TeamName,
			Value: float64(team.TotalPoints),
		}
		if bars[i].Value > maxPoints {
			maxPoints = bars[i].Value
		}
	}
	if maxPoints == 0 {
		return renderNoDataPlaceholder()
	}

	graph := chart.BarChart{
		Title:    "Championship Standings",
		Width:    900,
		Height:   450,
		BarWidth: 48,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	graph := chart.BarChart{
		Title:    "Championship Standings (no finalized results yet)",
		Width:    900,
		Height:   450,
		BarWidth: 48,
		// A zero-height bar gives the renderer an empty value range.
		Bars: []chart.Value{{Label: "-", Value: 1}},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
