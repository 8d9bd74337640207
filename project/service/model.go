package service

// MentionEvent はSlackメンションイベントを表します
type MentionEvent struct {
	// ChannelID はメンションが投稿されたチャンネルのID
	ChannelID string

	// MessageTS はメッセージのタイムスタンプ（小数点付きエポック秒文字列）
	MessageTS string

	// Text はメッセージのテキスト（フィールド抽出の唯一の入力）
	Text string

	// UserID はメッセージを投稿したユーザーID（ログ用）
	UserID string

	// NowUnix はイベント受信時刻（Unix秒、重複検知レコード用）
	NowUnix int64
}
