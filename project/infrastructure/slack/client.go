package slack

import (
	"context"
	"fmt"
	"sync"

	"ledger-bot/project/infrastructure/secret"

	"github.com/slack-go/slack"
)

// SlackClient は service.SlackPort の Slack SDK 実装です
// BotトークンはSecret Managerから初回利用時に取得してキャッシュします
type SlackClient struct {
	secretMgr       *secret.Manager
	tokenSecretName string

	mu  sync.Mutex
	cli *slack.Client
}

// NewSlackClient は Slack クライアントを初期化します
func NewSlackClient(secretMgr *secret.Manager, tokenSecretName string) *SlackClient {
	return &SlackClient{
		secretMgr:       secretMgr,
		tokenSecretName: tokenSecretName,
	}
}

// getSlackClient は Slack API クライアントを取得します
func (sc *SlackClient) getSlackClient(ctx context.Context) (*slack.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.cli != nil {
		return sc.cli, nil
	}

	// Secret Manager からトークンを取得
	token, err := sc.secretMgr.GetSecret(ctx, sc.tokenSecretName)
	if err != nil {
		return nil, fmt.Errorf("slack: トークン取得失敗 (secret=%s): %w", sc.tokenSecretName, err)
	}

	sc.cli = slack.New(token)
	return sc.cli, nil
}

// PostThreadMessage は元メッセージのスレッドにメッセージを投稿します
func (sc *SlackClient) PostThreadMessage(ctx context.Context, channelID, messageTS, text string) error {
	cli, err := sc.getSlackClient(ctx)
	if err != nil {
		return err
	}

	_, _, err = cli.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(messageTS),
	)
	if err != nil {
		return fmt.Errorf("slack: スレッドメッセージ投稿失敗 (channel=%s, ts=%s): %w", channelID, messageTS, err)
	}

	return nil
}
