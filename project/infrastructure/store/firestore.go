package store

import (
	"context"
	"fmt"

	"ledger-bot/project/domain"
	"ledger-bot/project/infrastructure/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isAlreadyExists は Firestore の AlreadyExists エラーを判定するヘルパー関数です
func isAlreadyExists(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.AlreadyExists
}

// FirestoreRepo は domain.EventRepository の Firestore 実装です
// 再配信されたSlackイベントを channel:ts キーで検知します
type FirestoreRepo struct {
	cli       *firestore.Client
	eventsCol string
}

// NewFirestoreRepo は Firestore リポジトリを初期化します
func NewFirestoreRepo(ctx context.Context, cfg *config.Config) (*FirestoreRepo, error) {
	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		return nil, fmt.Errorf("firestore: クライアント初期化失敗: %w", err)
	}

	return &FirestoreRepo{
		cli:       client,
		eventsCol: cfg.CollectionEvents,
	}, nil
}

// MarkProcessed はイベントを処理済みとして記録します
// Create は既存ドキュメントがあると AlreadyExists を返すため、
// それを「既読」の判定に使います（初回の記録が常に保持されます）
func (repo *FirestoreRepo) MarkProcessed(ctx context.Context, p *domain.ProcessedEvent) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, fmt.Errorf("firestore: MarkProcessed検証失敗: %w", err)
	}

	docID := domain.EventKey(p.ChannelID, p.MessageTS)
	docRef := repo.cli.Collection(repo.eventsCol).Doc(docID)

	// Firestore保存用のマップ
	data := map[string]interface{}{
		"channel_id":   p.ChannelID,
		"message_ts":   p.MessageTS,
		"processed_at": p.ProcessedAt,
	}

	if _, err := docRef.Create(ctx, data); err != nil {
		if isAlreadyExists(err) {
			return true, nil
		}
		return false, fmt.Errorf("firestore: 処理済み記録失敗 (docID=%s): %w", docID, err)
	}

	return false, nil
}

// Close は Firestore クライアントを閉じます
func (repo *FirestoreRepo) Close() error {
	if repo.cli != nil {
		return repo.cli.Close()
	}
	return nil
}
