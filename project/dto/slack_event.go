package dto

// SlackEventRequest は Slack Events API のリクエスト全体を表します
type SlackEventRequest struct {
	Token          string               `json:"token"`
	TeamID         string               `json:"team_id"`
	APIAppID       string               `json:"api_app_id"`
	Event          SlackEvent           `json:"event"`
	Type           string               `json:"type"` // "event_callback", "url_verification"
	EventID        string               `json:"event_id"`
	EventTime      int64                `json:"event_time"`
	Challenge      string               `json:"challenge,omitempty"` // URL検証時のみ
	Authorizations []SlackAuthorization `json:"authorizations,omitempty"`
}

// SlackEvent は様々なSlackイベントを表現する汎用構造体です
type SlackEvent struct {
	Type      string `json:"type"`                // "message", "app_mention" など
	User      string `json:"user"`                // イベント発生者（メッセージ送信者）
	Text      string `json:"text"`                // メッセージ本文（フィールド抽出の入力）
	Channel   string `json:"channel"`             // チャンネルID
	Timestamp string `json:"ts"`                  // メッセージTS（小数点付きエポック秒文字列）
	ThreadTs  string `json:"thread_ts,omitempty"` // スレッドTS（スレッド内の場合）
	BotID     string `json:"bot_id,omitempty"`    // Bot投稿の場合
	SubType   string `json:"subtype,omitempty"`   // "bot_message"など
}

// SlackAuthorization は OAuth 認可情報を表します
type SlackAuthorization struct {
	EnterpriseID string `json:"enterprise_id,omitempty"`
	TeamID       string `json:"team_id"`
	UserID       string `json:"user_id"`
	IsBot        bool   `json:"is_bot"`
}

// ChallengeResponse は url_verification への応答ボディです
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// AckResponse はハンドシェイク以外のすべての経路で返す応答ボディです
// 下流の失敗有無にかかわらず success: true を返します
type AckResponse struct {
	Success bool `json:"success"`
}
