package domain

import (
	"context"
)

// LedgerRepository は台帳レコードの永続化を担当します
type LedgerRepository interface {
	// Append は台帳レコードを対象シートの末尾に1行追記します
	// 追記順は到着順であり、イベントTS順の並び替えは行いません
	// バリデーションエラー時は domain.ErrInvalid を返します
	Append(ctx context.Context, e *LedgerEntry) error
}

// EventRepository は処理済みイベントの記録を担当します（重複配信の検知用）
type EventRepository interface {
	// MarkProcessed はイベントを処理済みとして記録します
	// すでに同一キー(channel:ts)の記録がある場合は seen=true を返し、
	// 記録自体は初回のものを保持します（冪等）
	// バリデーションエラー時は domain.ErrInvalid を返します
	MarkProcessed(ctx context.Context, p *ProcessedEvent) (seen bool, err error)
}
