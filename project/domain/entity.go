package domain

import (
	"fmt"
	"strings"
)

// NotAvailable はアンカーが見つからなかったフィールドに入る番兵値です
const NotAvailable = "N/A"

// H2H送金メッセージから組み立てた台帳レコード
// 抽出フィールド（SourceBank〜Notes）はそれぞれ独立に欠落を許容し、
// 欠落時は NotAvailable が入ります。Permalink と各タイムスタンプは常に存在します
type LedgerEntry struct {
	// TimestampUTC はイベントTSをUTCで表したISO文字列（RFC3339）
	TimestampUTC string

	// DateLocal はローカルタイムゾーン（既定 UTC+7）の日付文字列（M/D/YYYY）
	DateLocal string

	// TimeLocal はローカルタイムゾーンの12時間制時刻文字列
	TimeLocal string

	// SourceBank は送金元銀行（"H2H" 直後の単語）
	SourceBank string

	// BeneficiaryBank は受取銀行（"to" と "Total" の間のテキスト）
	BeneficiaryBank string

	// Total は送金額の数字列（数値としての検証は行いません）
	Total string

	// FFBQuantity はFFB数量（"ffb" 直前の数字列）
	FFBQuantity string

	// Notes は備考（"notes" 以降の行末までのテキスト）
	Notes string

	// Permalink は元メッセージへのパーマリンク
	Permalink string
}

// Columns はスプレッドシートへ追記する9列を固定順で返します
func (e LedgerEntry) Columns() []interface{} {
	return []interface{}{
		e.TimestampUTC,
		e.DateLocal,
		e.TimeLocal,
		e.SourceBank,
		e.BeneficiaryBank,
		e.Total,
		e.FFBQuantity,
		e.Notes,
		e.Permalink,
	}
}

// Validate はLedgerEntryの必須項目を検証します
// 抽出フィールドは番兵値を許容するため対象外です
func (e LedgerEntry) Validate() error {
	if strings.TrimSpace(e.TimestampUTC) == "" {
		return fmt.Errorf("%w: TimestampUTCは必須項目です", ErrInvalid)
	}
	if strings.TrimSpace(e.DateLocal) == "" {
		return fmt.Errorf("%w: DateLocalは必須項目です", ErrInvalid)
	}
	if strings.TrimSpace(e.TimeLocal) == "" {
		return fmt.Errorf("%w: TimeLocalは必須項目です", ErrInvalid)
	}
	if strings.TrimSpace(e.Permalink) == "" {
		return fmt.Errorf("%w: Permalinkは必須項目です", ErrInvalid)
	}
	return nil
}

// 重複配信の検知に使う処理済みイベント
type ProcessedEvent struct {
	// ChannelID はイベントが発生したチャンネルのID
	ChannelID string

	// MessageTS はメッセージのタイムスタンプ
	MessageTS string

	// ProcessedAt はレコードの作成日時（Unix秒）
	ProcessedAt int64
}

// EventKey は処理済みイベントの一意キーを生成します
// 形式: "channel:ts"（チャンネル+TSがSlackイベントの行キーに相当）
func EventKey(channelID, messageTS string) string {
	return fmt.Sprintf("%s:%s", channelID, messageTS)
}

// Validate はProcessedEventの必須項目を検証します
func (p ProcessedEvent) Validate() error {
	if strings.TrimSpace(p.ChannelID) == "" {
		return fmt.Errorf("%w: ChannelIDは必須項目です", ErrInvalid)
	}
	if strings.TrimSpace(p.MessageTS) == "" {
		return fmt.Errorf("%w: MessageTSは必須項目です", ErrInvalid)
	}
	if p.ProcessedAt <= 0 {
		return fmt.Errorf("%w: ProcessedAtは0より大きい必要があります", ErrInvalid)
	}
	return nil
}
