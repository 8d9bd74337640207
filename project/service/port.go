package service

import "context"

// SlackPort は Slack API 呼び出しのポートです
type SlackPort interface {
	// PostThreadMessage は元メッセージのスレッドにメッセージを投稿します
	PostThreadMessage(ctx context.Context, channelID, messageTS, text string) error
}
