package lawyer

import (
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRollNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"P105/4321", "P1054321"},
		{"p.105/4321", "P1054321"},
		{" p 105-4321 ", "P1054321"},
		{"LSK/2010/0042", "LSK20100042"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRollNumber(tt.in), "input %q", tt.in)
	}
}

func TestMatchRoll(t *testing.T) {
	active := &models.BarRollRecord{
		RollNumber:     "P105/4321",
		NormalizedRoll: "P1054321",
		FullName:       "Wanjiku Njeri Kamau",
		AdmissionYear:  2010,
		Status:         models.RollStatusActive,
	}

	tests := []struct {
		name     string
		record   *models.BarRollRecord
		fullName string
		want     string
	}{
		{"missing record", nil, "Wanjiku Kamau", RollMatchNotFound},
		{"exact name", active, "Wanjiku Njeri Kamau", RollMatchMatched},
		{"case-insensitive", active, "wanjiku njeri kamau", RollMatchMatched},
		{"middle name dropped", active, "Wanjiku Kamau", RollMatchMatched},
		{"different person", active, "Atieno Odhiambo", RollMatchNameMismatch},
		{"empty name", active, "", RollMatchNameMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchRoll(tt.record, tt.fullName))
		})
	}
}

func TestMatchRollInactiveRecord(t *testing.T) {
	for _, status := range []string{models.RollStatusSuspended, models.RollStatusStruckOff} {
		record := &models.BarRollRecord{
			NormalizedRoll: "P1054321",
			FullName:       "Wanjiku Njeri Kamau",
			Status:         status,
		}
		assert.Equal(t, RollMatchInactive, MatchRoll(record, "Wanjiku Njeri Kamau"),
			"status %q must report inactive even when the name matches", status)
	}
}
