package service

import (
	"context"
	"fmt"

	"ledger-bot/project/domain"
	"ledger-bot/project/infrastructure/config"

	"go.uber.org/zap"
)

// LedgerService はメンション検知から台帳追記までのパイプラインを管理するサービスです
type LedgerService interface {
	// OnMention はapp_mention検知時に呼ばれ、フィールド抽出・行組み立て・追記を行います
	// 各段階のエラーはラップして返します。常時200応答の判断は呼び出し側（ハンドラー）が行います
	OnMention(ctx context.Context, ev *MentionEvent) error
}

// ledgerService は LedgerService の実装です
type ledgerService struct {
	cfg *config.Config
	lr  domain.LedgerRepository
	er  domain.EventRepository // nilの場合は重複検知を行いません
	sp  SlackPort              // nilの場合はスレッド確認返信を行いません
	log *zap.Logger
}

// NewLedgerService は LedgerService のインスタンスを作成します
func NewLedgerService(
	cfg *config.Config,
	lr domain.LedgerRepository,
	er domain.EventRepository,
	sp SlackPort,
	log *zap.Logger,
) LedgerService {
	return &ledgerService{
		cfg: cfg,
		lr:  lr,
		er:  er,
		sp:  sp,
		log: log,
	}
}

// OnMention はメンションメッセージから台帳レコードを組み立てて追記します
func (ls *ledgerService) OnMention(ctx context.Context, ev *MentionEvent) error {
	// タイムスタンプ変換
	instant, err := ParseSlackTimestamp(ev.MessageTS)
	if err != nil {
		return fmt.Errorf("OnMention: タイムスタンプ変換失敗: %w", err)
	}
	loc := LocalZone(ls.cfg.LocalUTCOffsetHours)

	// 各フィールドを独立に抽出（順序は結果に影響しません）
	entry := &domain.LedgerEntry{
		TimestampUTC:    FormatUTC(instant),
		DateLocal:       FormatLocalDate(instant, loc),
		TimeLocal:       FormatLocalTime(instant, loc),
		SourceBank:      ExtractSourceBank(ev.Text),
		BeneficiaryBank: ExtractBeneficiaryBank(ev.Text),
		Total:           ExtractTotal(ev.Text),
		FFBQuantity:     ExtractFFBQuantity(ev.Text),
		Notes:           ExtractNotes(ev.Text),
		Permalink:       BuildPermalink(ls.cfg.WorkspaceBaseURL, ev.ChannelID, ev.MessageTS),
	}

	ls.log.Info("フィールド抽出完了",
		zap.String("channel", ev.ChannelID),
		zap.String("ts", ev.MessageTS),
		zap.String("source_bank", entry.SourceBank),
		zap.String("beneficiary_bank", entry.BeneficiaryBank),
		zap.String("total", entry.Total),
		zap.String("ffb_quantity", entry.FFBQuantity),
		zap.String("notes", entry.Notes),
		zap.String("permalink", entry.Permalink),
	)

	// バリデーション
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("OnMention: 台帳レコード検証失敗: %w", err)
	}

	// 重複配信の検知（有効時のみ）
	if ls.er != nil {
		p := &domain.ProcessedEvent{
			ChannelID:   ev.ChannelID,
			MessageTS:   ev.MessageTS,
			ProcessedAt: ev.NowUnix,
		}
		seen, err := ls.er.MarkProcessed(ctx, p)
		if err != nil {
			return fmt.Errorf("OnMention: 処理済み記録失敗: %w", err)
		}
		if seen {
			// 再配信イベント。追記せずにスキップ
			ls.log.Info("重複イベントをスキップ",
				zap.String("key", domain.EventKey(ev.ChannelID, ev.MessageTS)))
			return nil
		}
	}

	// スプレッドシート追記
	if err := ls.lr.Append(ctx, entry); err != nil {
		return fmt.Errorf("OnMention: 台帳追記失敗: %w", err)
	}

	// スレッド確認返信（有効時のみ、失敗してもログのみ）
	if ls.sp != nil {
		text := fmt.Sprintf("記録しました: %s → %s, Total %s", entry.SourceBank, entry.BeneficiaryBank, entry.Total)
		if err := ls.sp.PostThreadMessage(ctx, ev.ChannelID, ev.MessageTS, text); err != nil {
			ls.log.Warn("スレッド確認返信失敗", zap.Error(err))
		}
	}

	return nil
}
