package service

import (
	"testing"

	"ledger-bot/project/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtractSourceBank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"基本形", "H2H BRI to BCA Total 9000", "BRI"},
		{"アンカーは大文字小文字を区別しない", "h2h Mandiri to BNI Total 100", "Mandiri"},
		{"空白なしでも直後の単語を取る", "H2HBRI to BCA", "BRI"},
		{"アンカーなしは番兵値", "BRI to BCA Total 9000", domain.NotAvailable},
		{"単語内のh2hには反応しない", "Math2house to BCA", domain.NotAvailable},
		{"行はまたがない", "H2H\nBRI", domain.NotAvailable},
		{"空文字列", "", domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSourceBank(tt.text))
		})
	}
}

func TestExtractBeneficiaryBank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"基本形", "H2H BRI to BCA Total 9000", "BCA"},
		{"改行をまたぐ", "H2H BRI to BCA\nSyariah\nTotal 9000", "BCA\nSyariah"},
		{"前後の空白を除去", "H2H BRI to   BNI   total 100", "BNI"},
		{"Totalという語の内部のtoには反応しない", "transfer Total 9000", domain.NotAvailable},
		{"アンカーなしは番兵値", "H2H BRI Total 9000", domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBeneficiaryBank(tt.text))
		})
	}
}

func TestExtractTotal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"基本形", "to BCA Total 9000 (5 ffb)", "9000"},
		{"コロン付き", "Total: 1500000", "1500000"},
		{"小文字アンカー", "total 42", "42"},
		{"行はまたがない", "Total\n9000", domain.NotAvailable},
		{"アンカーなしは番兵値", "to BCA 9000", domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTotal(tt.text))
		})
	}
}

func TestExtractFFBQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"基本形", "Total 9000 (5 ffb)", "5"},
		{"空白なし", "12ffb", "12"},
		{"大文字アンカー", "3 FFB", "3"},
		{"行はまたがない", "5\nffb", domain.NotAvailable},
		{"アンカーなしは番兵値", "Total 9000", domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFFBQuantity(tt.text))
		})
	}
}

func TestExtractNotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"基本形", "Total 9000 notes Insufficient balance", "Insufficient balance"},
		{"次の行で打ち切る", "notes first line\nsecond line", "first line"},
		{"アンカー直後の改行を読み飛ばす", "notes\nInsufficient balance", "Insufficient balance"},
		{"コロン付き", "Notes: pending review", "pending review"},
		{"単語内のnotesには反応しない", "keynotes of the meeting", domain.NotAvailable},
		{"アンカーなしは番兵値", "Total 9000", domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNotes(tt.text))
		})
	}
}

// 1メッセージから5フィールドすべてを抽出するシナリオ
func TestExtractAllFields(t *testing.T) {
	text := "H2H BRI to BCA Total 9000 (5 ffb) notes Insufficient balance"

	assert.Equal(t, "BRI", ExtractSourceBank(text))
	assert.Equal(t, "BCA", ExtractBeneficiaryBank(text))
	assert.Equal(t, "9000", ExtractTotal(text))
	assert.Equal(t, "5", ExtractFFBQuantity(text))
	assert.Equal(t, "Insufficient balance", ExtractNotes(text))
}

// アンカーが1つもないメッセージは全フィールドが番兵値になる
func TestExtractAllFieldsMissing(t *testing.T) {
	text := "lunch at 12"

	assert.Equal(t, domain.NotAvailable, ExtractSourceBank(text))
	assert.Equal(t, domain.NotAvailable, ExtractBeneficiaryBank(text))
	assert.Equal(t, domain.NotAvailable, ExtractTotal(text))
	assert.Equal(t, domain.NotAvailable, ExtractFFBQuantity(text))
	assert.Equal(t, domain.NotAvailable, ExtractNotes(text))
}

func TestBuildPermalink(t *testing.T) {
	// 小数点を除去して連結する。他の文字は変更しない
	got := BuildPermalink("https://acme.slack.com", "C12345", "1712345678.901234")
	assert.Equal(t, "https://acme.slack.com/archives/C12345/p1712345678901234", got)

	// 末尾スラッシュは重複させない
	got = BuildPermalink("https://acme.slack.com/", "C12345", "1712345678.901234")
	assert.Equal(t, "https://acme.slack.com/archives/C12345/p1712345678901234", got)

	// 純粋関数: 同じ入力は常に同じ出力
	again := BuildPermalink("https://acme.slack.com", "C12345", "1712345678.901234")
	assert.Equal(t, got, again)
}
