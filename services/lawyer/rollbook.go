package lawyer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"haki/models"
	"haki/utils"

	"go.uber.org/zap"
)

// Expected CSV header for roll book uploads.
var rollBookHeader = []string{"roll_number", "full_name", "admission_year", "status"}

// ImportRollBook parses a roll book CSV and upserts each valid row. Bad rows
// are reported per line; they never abort the batch.
func (s *DefaultLawyerService) ImportRollBook(r io.Reader, actorID, actorRole string) (*RollBookImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateRollBookHeader(header); err != nil {
		return nil, err
	}

	report := &RollBookImportReport{}
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Failed = append(report.Failed, RollBookRowErr{Line: line, Reason: err.Error()})
			continue
		}

		record, err := parseRollBookRow(row)
		if err != nil {
			report.Failed = append(report.Failed, RollBookRowErr{Line: line, Reason: err.Error()})
			continue
		}

		if err := s.RollBook.Upsert(record); err != nil {
			utils.GetLogger().Error("ImportRollBook: upsert failed",
				zap.String("rollNumber", record.RollNumber), zap.Error(err))
			report.Failed = append(report.Failed, RollBookRowErr{Line: line, Reason: "failed to store record"})
			continue
		}
		report.Imported++
	}

	s.Audit.Record(actorID, actorRole, "rollbook.import", "roll_book", "",
		fmt.Sprintf("imported %d rows, %d failed", report.Imported, len(report.Failed)))

	return report, nil
}

func validateRollBookHeader(header []string) error {
	if len(header) < len(rollBookHeader) {
		return fmt.Errorf("invalid CSV header: expected %v", rollBookHeader)
	}
	for i, want := range rollBookHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("invalid CSV header: column %d must be %q", i+1, want)
		}
	}
	return nil
}

func parseRollBookRow(row []string) (*models.BarRollRecord, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d", len(row))
	}

	rollNumber := strings.TrimSpace(row[0])
	fullName := strings.TrimSpace(row[1])
	if rollNumber == "" {
		return nil, fmt.Errorf("roll_number is empty")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full_name is empty")
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid admission_year %q", row[2])
	}

	status := strings.TrimSpace(strings.ToLower(row[3]))
	switch status {
	case models.RollStatusActive, models.RollStatusSuspended, models.RollStatusStruckOff:
	default:
		return nil, fmt.Errorf("invalid status %q", row[3])
	}

	return &models.BarRollRecord{
		RollNumber:     rollNumber,
		NormalizedRoll: NormalizeRollNumber(rollNumber),
		FullName:       fullName,
		AdmissionYear:  year,
		Status:         status,
	}, nil
}
