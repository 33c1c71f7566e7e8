package lawyer

import (
	"strings"

	"haki/models"
)

// Roll match outcomes stored on the application for the reviewer.
const (
	RollMatchMatched      = "matched"
	RollMatchNameMismatch = "name_mismatch"
	RollMatchNotFound     = "not_found"
	RollMatchInactive     = "inactive"
)

// NormalizeRollNumber reduces a roll number to uppercase alphanumerics so
// that "P.105/4321" and "p105 4321" compare equal.
func NormalizeRollNumber(roll string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(roll) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeName lowercases and collapses whitespace.
func normalizeName(name string) []string {
	return strings.Fields(strings.ToLower(name))
}

// namesMatch reports whether one name's tokens are a subset of the other's.
// Middle names routinely differ between the roll book and what applicants
// type, so containment in either direction counts as a match.
func namesMatch(a, b string) bool {
	ta, tb := normalizeName(a), normalizeName(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	shorter, longer := ta, tb
	if len(tb) < len(ta) {
		shorter, longer = tb, ta
	}
	set := make(map[string]bool, len(longer))
	for _, tok := range longer {
		set[tok] = true
	}
	for _, tok := range shorter {
		if !set[tok] {
			return false
		}
	}
	return true
}

// MatchRoll evaluates an applicant's claim against the roll book record
// found for their normalized roll number (nil when absent).
func MatchRoll(record *models.BarRollRecord, fullName string) string {
	if record == nil {
		return RollMatchNotFound
	}
	if record.Status != models.RollStatusActive {
		return RollMatchInactive
	}
	if !namesMatch(record.FullName, fullName) {
		return RollMatchNameMismatch
	}
	return RollMatchMatched
}

// matchAgainstRollBook looks up and evaluates the applicant's roll number.
func (s *DefaultLawyerService) matchAgainstRollBook(rollNumber, fullName string) (string, error) {
	record, err := s.RollBook.GetByNormalizedRoll(NormalizeRollNumber(rollNumber))
	if err != nil {
		return "", err
	}
	return MatchRoll(record, fullName), nil
}
