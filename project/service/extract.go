package service

import (
	"fmt"
	"regexp"
	"strings"

	"ledger-bot/project/domain"
)

// 各フィールドのアンカー付きパターン。アンカーはすべて大文字小文字を区別しません
// 抽出器同士は状態を共有せず、1つのフィールドの欠落が他へ影響することはありません
var (
	// "H2H" 直後の単語。行をまたぎません
	reSourceBank = regexp.MustCompile(`(?i)\bh2h[ \t]*(\w+)`)

	// "to" と "Total" の間のテキスト。改行を含むことがあります
	reBeneficiaryBank = regexp.MustCompile(`(?is)\bto\b(.*?)\btotal\b`)

	// "Total" 以降、同一行内の最初の数字列
	reTotal = regexp.MustCompile(`(?i)total[^0-9\r\n]*([0-9]+)`)

	// "ffb" 直前の数字列。行をまたぎません
	reFFBQuantity = regexp.MustCompile(`(?i)([0-9]+)[ \t]*ffb`)

	// "notes" 以降、次の改行または入力末尾までのテキスト
	// アンカーと値の間の空白（改行含む）は読み飛ばします
	reNotes = regexp.MustCompile(`(?i)\bnotes[ \t:]*\s*([^\r\n]+)`)
)

// ExtractSourceBank は "H2H" 直後の単語を送金元銀行として抽出します
// 見つからない場合は番兵値 N/A を返します
func ExtractSourceBank(text string) string {
	m := reSourceBank.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	return m[1]
}

// ExtractBeneficiaryBank は "to" と "Total" の間のテキストを受取銀行として抽出します
// 値は改行をまたぐことがあるため、前後の空白を落として返します
func ExtractBeneficiaryBank(text string) string {
	m := reBeneficiaryBank.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	return strings.TrimSpace(m[1])
}

// ExtractTotal は "Total" 以降の最初の数字列を送金額として抽出します
// 数値へのパースは行わず、数字列のまま返します
func ExtractTotal(text string) string {
	m := reTotal.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	return m[1]
}

// ExtractFFBQuantity は "ffb" 直前の数字列をFFB数量として抽出します
func ExtractFFBQuantity(text string) string {
	m := reFFBQuantity.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	return m[1]
}

// ExtractNotes は "notes" 以降のテキストを行末まで備考として抽出します
func ExtractNotes(text string) string {
	m := reNotes.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	return strings.TrimSpace(m[1])
}

// BuildPermalink はチャンネルIDとメッセージTSからパーマリンクを組み立てます
// TSの小数点を除去し、ワークスペースのベースURLに連結する純粋な文字列変換です
// チャンネル形式の検証は行いません
func BuildPermalink(baseURL, channelID, messageTS string) string {
	compact := strings.ReplaceAll(messageTS, ".", "")
	return fmt.Sprintf("%s/archives/%s/p%s", strings.TrimSuffix(baseURL, "/"), channelID, compact)
}
