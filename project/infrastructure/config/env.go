package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Config は環境変数から読み込まれるアプリケーション設定を表します
type Config struct {
	// 基本設定
	GcpProject       string
	WorkspaceBaseURL string // パーマリンクのベースURL（例: https://example.slack.com）

	// スプレッドシート設定
	SpreadsheetID string
	SheetName     string

	// Firestore設定（重複検知有効時のみ使用）
	FirestoreProjectID string
	CollectionEvents   string

	// Slack API設定
	SlackSigningSecret string // Secret Manager から読み込み。空の場合は署名検証なし
	BotTokenSecretName string // スレッド確認返信用のBotトークンのシークレット名
	PostAck            bool   // 追記成功時にスレッドへ確認返信を行うか
	DedupeEvents       bool   // channel:ts キーで重複配信を検知するか

	// タイムゾーン設定
	LocalUTCOffsetHours int // ローカル表記の固定UTCオフセット（既定 7）
}

// NewConfig は環境変数から設定を読み込み、Config構造体を返します
// センシティブな情報（Slack署名シークレット）はSecret Managerから取得します
func NewConfig(ctx context.Context) (*Config, error) {
	gcpProject := mustGetEnv("GCP_PROJECT")

	offsetHours := 7 // 既定はUTC+7
	if v := os.Getenv("LOCAL_UTC_OFFSET_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOCAL_UTC_OFFSET_HOURS: %v", err)
		}
		offsetHours = parsed
	}

	dedupeEvents, err := getBoolEnv("DEDUPE_EVENTS")
	if err != nil {
		return nil, err
	}

	postAck, err := getBoolEnv("POST_ACK")
	if err != nil {
		return nil, err
	}

	// Secret Manager から署名シークレットを取得（名前未設定の場合はスキップ）
	slackSigningSecret := ""
	if secretName := os.Getenv("SLACK_SIGNING_SECRET_NAME"); secretName != "" {
		secretClient, err := secretmanager.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("Secret Manager クライアント初期化失敗: %v", err)
		}
		defer secretClient.Close()

		slackSigningSecret, err = getSecretFromManager(ctx, secretClient, gcpProject, secretName)
		if err != nil {
			return nil, fmt.Errorf("署名シークレット取得失敗: %v", err)
		}
	}

	config := &Config{
		// 基本設定
		GcpProject:       gcpProject,
		WorkspaceBaseURL: mustGetEnv("WORKSPACE_BASE_URL"),

		// スプレッドシート設定
		SpreadsheetID: mustGetEnv("SPREADSHEET_ID"),
		SheetName:     getEnvOrDefault("SHEET_NAME", "Sheet1"),

		// Firestore設定
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		CollectionEvents:   getEnvOrDefault("FS_COLLECTION_EVENTS", "processed_events"),

		// Slack API設定
		SlackSigningSecret: slackSigningSecret,
		BotTokenSecretName: os.Getenv("SLACK_BOT_TOKEN_SECRET_NAME"),
		PostAck:            postAck,
		DedupeEvents:       dedupeEvents,

		// タイムゾーン設定
		LocalUTCOffsetHours: offsetHours,
	}

	// 重複検知有効時は Firestore 設定が必須
	if config.DedupeEvents && config.FirestoreProjectID == "" {
		return nil, fmt.Errorf("DEDUPE_EVENTS 有効時は FIRESTORE_PROJECT_ID が必須です")
	}

	// 確認返信有効時はBotトークンのシークレット名が必須
	if config.PostAck && config.BotTokenSecretName == "" {
		return nil, fmt.Errorf("POST_ACK 有効時は SLACK_BOT_TOKEN_SECRET_NAME が必須です")
	}

	return config, nil
}

// getSecretFromManager は Secret Manager から指定されたシークレットを取得します
func getSecretFromManager(ctx context.Context, client *secretmanager.Client, projectID, secretName string) (string, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)

	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	}

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Secret Manager からの取得失敗 (name=%s): %w", secretName, err)
	}

	secret := string(result.Payload.Data)
	if secret == "" {
		return "", fmt.Errorf("Secret Manager のシークレット値が空です (name=%s)", secretName)
	}

	return secret, nil
}

// getBoolEnv は環境変数を bool として取得します。未設定時は false です
func getBoolEnv(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}

// getEnvOrDefault は環境変数を取得し、未設定の場合は既定値を返します
func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mustGetEnv は環境変数を取得し、存在しない場合はパニックします
func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable not set: %s", key))
	}
	return value
}
