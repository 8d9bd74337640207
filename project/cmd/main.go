package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"ledger-bot/project/domain"
	"ledger-bot/project/handler"
	"ledger-bot/project/infrastructure/config"
	"ledger-bot/project/infrastructure/secret"
	"ledger-bot/project/infrastructure/sheets"
	slackinfra "ledger-bot/project/infrastructure/slack"
	"ledger-bot/project/infrastructure/store"
	"ledger-bot/project/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// ローカル実行用の .env（存在しなくてもよい）
	_ = godotenv.Load()

	// 1. ロガーを初期化
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("ロガー初期化失敗: %v", err))
	}
	defer logger.Sync()

	// 2. 設定を読み込む
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		logger.Fatal("設定読み込み失敗", zap.Error(err))
	}

	// 3. 依存関係を初期化
	// Secret Manager
	secretMgr, err := secret.NewManager(ctx, cfg.GcpProject)
	if err != nil {
		logger.Fatal("Secret Manager 初期化失敗", zap.Error(err))
	}
	defer secretMgr.Close()

	// Google Sheets リポジトリ（台帳の追記先）
	ledgerRepo, err := sheets.NewSheetsRepo(ctx, cfg)
	if err != nil {
		logger.Fatal("Sheets 初期化失敗", zap.Error(err))
	}

	// Firestore リポジトリ（重複検知有効時のみ）
	var eventRepo domain.EventRepository
	if cfg.DedupeEvents {
		fsRepo, err := store.NewFirestoreRepo(ctx, cfg)
		if err != nil {
			logger.Fatal("Firestore 初期化失敗", zap.Error(err))
		}
		defer fsRepo.Close()
		eventRepo = fsRepo
	}

	// Slack API ポート実装（確認返信有効時のみ）
	var slackPort service.SlackPort
	if cfg.PostAck {
		slackPort = slackinfra.NewSlackClient(secretMgr, cfg.BotTokenSecretName)
	}

	// 4. サービス層を初期化
	ledgerService := service.NewLedgerService(cfg, ledgerRepo, eventRepo, slackPort, logger)

	// 5. HTTP ハンドラーを設定
	mux := http.NewServeMux()

	// Slack イベント受信
	mux.Handle("/slack/events", handler.NewEventsHandler(cfg.SlackSigningSecret, ledgerService, logger))

	// ヘルスチェック
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// 6. サーバー起動
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("サーバー起動", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		logger.Fatal("サーバーエラー", zap.Error(err))
	}
}
