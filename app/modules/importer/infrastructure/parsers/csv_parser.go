package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser implements the Parser interface for CSV result files.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads CSV data and returns result rows.
// Expected format: first row contains column headers naming at least the
// competition, position, candidate and team columns. A mode/type column is
// optional.
func (p *CSVParser) Parse(fileData []byte, fileName string) ([]ResultRow, error) {
	reader := csv.NewReader(strings.NewReader(string(fileData)))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		rows = append(rows, record)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV must contain at least header and one data row")
	}

	return extractResultRows(rows)
}

// extractResultRows maps header columns to ResultRow fields and collects the
// data rows. Shared by the CSV and XLSX parsers.
func extractResultRows(rows [][]string) ([]ResultRow, error) {
	header := rows[0]

	competitionIdx := findColumn(header, []string{"competition", "competition_name", "program", "program_name", "event"})
	positionIdx := findColumn(header, []string{"position", "rank", "place"})
	candidateIdx := findColumn(header, []string{"candidate", "candidate_name", "participant", "name"})
	teamIdx := findColumn(header, []string{"team", "team_name"})
	modeIdx := findColumn(header, []string{"mode", "type", "program_type", "participant_type"})

	if competitionIdx < 0 || positionIdx < 0 || teamIdx < 0 {
		return nil, fmt.Errorf("missing required columns (need competition, position and team)")
	}

	var results []ResultRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= competitionIdx || len(row) <= positionIdx {
			continue
		}

		result := ResultRow{
			CompetitionName: strings.TrimSpace(cellAt(row, competitionIdx)),
			Position:        strings.TrimSpace(cellAt(row, positionIdx)),
			CandidateName:   strings.TrimSpace(cellAt(row, candidateIdx)),
			TeamName:        strings.TrimSpace(cellAt(row, teamIdx)),
			Mode:            strings.TrimSpace(cellAt(row, modeIdx)),
		}
		if result.CompetitionName == "" && result.Position == "" {
			continue
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no result rows found")
	}
	return results, nil
}

// findColumn returns the index of the first header cell matching any of the
// given names, ignoring case, spaces and underscores.
func findColumn(header []string, names []string) int {
	for i, col := range header {
		normalized := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(col)), " ", ""), "_", "")
		for _, name := range names {
			if normalized == strings.ReplaceAll(name, "_", "") {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
