package lawyer

import (
	"strings"
	"testing"

	"haki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRollBook struct {
	records map[string]*models.BarRollRecord
	failOn  string
}

func newFakeRollBook() *fakeRollBook {
	return &fakeRollBook{records: make(map[string]*models.BarRollRecord)}
}

func (f *fakeRollBook) Upsert(record *models.BarRollRecord) error {
	if f.failOn != "" && record.NormalizedRoll == f.failOn {
		return assert.AnError
	}
	f.records[record.NormalizedRoll] = record
	return nil
}

func (f *fakeRollBook) GetByNormalizedRoll(normalized string) (*models.BarRollRecord, error) {
	return f.records[normalized], nil
}

func (f *fakeRollBook) Count() (int64, error) {
	return int64(len(f.records)), nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(actorID, actorRole, action, targetType, targetID, detail string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) List(q models.AuditQuery) ([]models.AuditEntry, error) {
	return nil, nil
}

func TestImportRollBook(t *testing.T) {
	rollBook := newFakeRollBook()
	auditLog := &fakeAudit{}
	svc := &DefaultLawyerService{RollBook: rollBook, Audit: auditLog}

	csvData := strings.Join([]string{
		"roll_number,full_name,admission_year,status",
		"P105/4321,Wanjiku Njeri Kamau,2010,active",
		"P106/0007,Atieno Odhiambo,2015,suspended",
		",Missing Roll,2012,active",
		"P107/0011,No Year,not-a-year,active",
		"P108/0022,Bad Status,2018,vacationing",
		"P109/0033,Omondi Otieno,2020,struck_off",
	}, "\n")

	report, err := svc.ImportRollBook(strings.NewReader(csvData), "admin-1", models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Imported)
	require.Len(t, report.Failed, 3)
	assert.Equal(t, 4, report.Failed[0].Line)
	assert.Equal(t, 5, report.Failed[1].Line)
	assert.Equal(t, 6, report.Failed[2].Line)

	// Imported rows are keyed by normalized roll number.
	rec, err := rollBook.GetByNormalizedRoll("P1054321")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Wanjiku Njeri Kamau", rec.FullName)
	assert.Equal(t, models.RollStatusActive, rec.Status)

	assert.Contains(t, auditLog.actions, "rollbook.import")
}

func TestImportRollBookRejectsBadHeader(t *testing.T) {
	svc := &DefaultLawyerService{RollBook: newFakeRollBook(), Audit: &fakeAudit{}}

	_, err := svc.ImportRollBook(strings.NewReader("name,roll\nfoo,bar"), "admin-1", models.RoleAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CSV header")
}

func TestImportRollBookStorageFailureIsPerRow(t *testing.T) {
	rollBook := newFakeRollBook()
	rollBook.failOn = "P1054321"
	svc := &DefaultLawyerService{RollBook: rollBook, Audit: &fakeAudit{}}

	csvData := strings.Join([]string{
		"roll_number,full_name,admission_year,status",
		"P105/4321,Wanjiku Njeri Kamau,2010,active",
		"P106/0007,Atieno Odhiambo,2015,active",
	}, "\n")

	report, err := svc.ImportRollBook(strings.NewReader(csvData), "admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 2, report.Failed[0].Line)
}
