package sheets

import (
	"context"
	"fmt"

	"ledger-bot/project/domain"
	"ledger-bot/project/infrastructure/config"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// SheetsRepo は domain.LedgerRepository の Google Sheets 実装です
// 起動時に一度だけ作成し、ハンドラーへ注入して使います
type SheetsRepo struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsRepo は Sheets リポジトリを初期化します
// 認証は Application Default Credentials を使用します
func NewSheetsRepo(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*SheetsRepo, error) {
	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: サービス初期化失敗: %w", err)
	}

	return &SheetsRepo{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// Append は台帳レコードを対象シートの末尾に1行追記します
func (repo *SheetsRepo) Append(ctx context.Context, e *domain.LedgerEntry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("sheets: Append検証失敗: %w", err)
	}

	// 9列固定の1行。値はすべて文字列のまま（RAW）で書き込む
	vr := &sheetsv4.ValueRange{
		Values: [][]interface{}{e.Columns()},
	}

	_, err := repo.svc.Spreadsheets.Values.
		Append(repo.spreadsheetID, repo.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: 行追記失敗 (spreadsheet=%s, sheet=%s): %w", repo.spreadsheetID, repo.sheetName, err)
	}

	return nil
}
