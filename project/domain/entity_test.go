package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEntry() LedgerEntry {
	return LedgerEntry{
		TimestampUTC:    "2024-04-05T19:34:38Z",
		DateLocal:       "4/6/2024",
		TimeLocal:       "2:34:38 AM",
		SourceBank:      "BRI",
		BeneficiaryBank: "BCA",
		Total:           "9000",
		FFBQuantity:     "5",
		Notes:           "Insufficient balance",
		Permalink:       "https://acme.slack.com/archives/C12345/p1712345678901234",
	}
}

// Columns は常に9列を固定順で返す
func TestLedgerEntryColumns(t *testing.T) {
	e := validEntry()

	cols := e.Columns()
	assert.Equal(t, []interface{}{
		"2024-04-05T19:34:38Z",
		"4/6/2024",
		"2:34:38 AM",
		"BRI",
		"BCA",
		"9000",
		"5",
		"Insufficient balance",
		"https://acme.slack.com/archives/C12345/p1712345678901234",
	}, cols)
}

func TestLedgerEntryValidate(t *testing.T) {
	assert.NoError(t, validEntry().Validate())

	// 抽出フィールドは番兵値でも有効
	e := validEntry()
	e.SourceBank = NotAvailable
	e.BeneficiaryBank = NotAvailable
	e.Total = NotAvailable
	e.FFBQuantity = NotAvailable
	e.Notes = NotAvailable
	assert.NoError(t, e.Validate())

	// タイムスタンプとパーマリンクは必須
	e = validEntry()
	e.TimestampUTC = ""
	assert.ErrorIs(t, e.Validate(), ErrInvalid)

	e = validEntry()
	e.Permalink = " "
	assert.ErrorIs(t, e.Validate(), ErrInvalid)
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, "C12345:1712345678.901234", EventKey("C12345", "1712345678.901234"))
}

func TestProcessedEventValidate(t *testing.T) {
	p := ProcessedEvent{ChannelID: "C1", MessageTS: "1.2", ProcessedAt: 100}
	assert.NoError(t, p.Validate())

	p.ChannelID = ""
	assert.ErrorIs(t, p.Validate(), ErrInvalid)

	p = ProcessedEvent{ChannelID: "C1", MessageTS: "1.2"}
	assert.ErrorIs(t, p.Validate(), ErrInvalid)
}
