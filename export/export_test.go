package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/etnz/savings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var at = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

func goals() []savings.Goal {
	return []savings.Goal{
		{
			ID: "g1", Title: "Trip", Icon: "✈️", Currency: "EUR",
			TargetAmount: decimal.NewFromInt(1000), SavedAmount: decimal.NewFromInt(250),
			Deadline: "2025-12-01", CreatedAt: at, UpdatedAt: at,
			Transactions: []savings.Transaction{
				{ID: "t1", Amount: decimal.NewFromInt(300), Type: savings.Debit, Date: at},
				{ID: "t2", Amount: decimal.NewFromInt(50), Type: savings.Credit, Date: at.Add(time.Hour)},
			},
		},
		{
			ID: "g2", Title: "Phone", Icon: "📱", Currency: "USD",
			TargetAmount: decimal.NewFromInt(800), CreatedAt: at, UpdatedAt: at,
			Transactions: []savings.Transaction{},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, goals()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{GoalsSheet, HistorySheet}, f.GetSheetList())

	rows, err := f.GetRows(GoalsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, []string{"g1", "Trip", "✈️", "EUR", "1000", "250", "750", "25", "2025-12-01"}, rows[1][:9])
	assert.Equal(t, "2025-03-01 09:30:00", rows[1][10])
	assert.Equal(t, "g2", rows[2][0])

	history, err := f.GetRows(HistorySheet)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"g1", "Trip", "t1", "debit", "300", "EUR", "2025-03-01 09:30:00"}, history[1])
	assert.Equal(t, []string{"g1", "Trip", "t2", "credit", "-50", "EUR", "2025-03-01 10:30:00"}, history[2])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(GoalsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the header")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, goals()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Goal ID", records[0][0])
	assert.Equal(t, []string{"g1", "Trip", "t2", "credit", "-50", "EUR", "2025-03-01 10:30:00"}, records[2])
}
