package parsers

// ResultRow is one historical placement extracted from an import file.
// Position stays a raw string; the import service interprets "1", "I",
// "first" and friends.
type ResultRow struct {
	CompetitionName string
	Position        string
	CandidateName   string
	TeamName        string
	Mode            string
}

// Parser defines the interface for historical result parsers.
type Parser interface {
	// Parse reads result data and returns the extracted rows.
	// fileData should contain the raw file bytes.
	// fileName is optional and used for validation.
	Parse(fileData []byte, fileName string) ([]ResultRow, error)
}
