package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ledger-bot/project/dto"
	"ledger-bot/project/infrastructure/httpsec"
	"ledger-bot/project/service"

	"go.uber.org/zap"
)

// EventsHandler は Slack Events API からのイベントを処理します
// ハンドシェイク（url_verification）以外のすべての経路で {"success": true} を
// HTTP 200 で返します。下流の失敗はログに記録するだけで応答には反映しません
type EventsHandler struct {
	signingSecret string // 空の場合は署名検証をスキップ
	ledgerService service.LedgerService
	log           *zap.Logger
}

// NewEventsHandler はイベントハンドラーを作成します
func NewEventsHandler(signingSecret string, ledgerService service.LedgerService, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		signingSecret: signingSecret,
		ledgerService: ledgerService,
		log:           log,
	}
}

// ServeHTTP は Slack イベント受信エンドポイントです
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// リクエスト本体を読み込む
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn("リクエスト本体の読み込み失敗", zap.Error(err))
		h.respondAck(w)
		return
	}
	defer r.Body.Close()

	h.log.Debug("イベント受信", zap.ByteString("body", body))

	// まず url_verification かどうかを確認（署名検証の前に）
	var preCheck struct {
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(body, &preCheck); err == nil {
		if preCheck.Type == "url_verification" {
			// エンドポイント登録時の一度きりのハンドシェイク。challenge をそのまま返す
			h.respondJSON(w, dto.ChallengeResponse{Challenge: preCheck.Challenge})
			return
		}
	}

	// Slack 署名検証（シークレット設定時のみ）
	if h.signingSecret != "" {
		signature := r.Header.Get("X-Slack-Signature")
		timestamp := r.Header.Get("X-Slack-Request-Timestamp")
		if err := httpsec.VerifySlackSignature(h.signingSecret, signature, timestamp, string(body)); err != nil {
			h.log.Warn("署名検証失敗", zap.Error(err))
			http.Error(w, "signature verification failed", http.StatusUnauthorized)
			return
		}
	}

	// JSON パース（完全版）
	// パース失敗も飲み込み、応答は成功のままにする
	var req dto.SlackEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("JSON パース失敗", zap.Error(err))
		h.respondAck(w)
		return
	}

	h.log.Debug("イベント解析完了",
		zap.String("type", req.Type),
		zap.String("event_type", req.Event.Type),
		zap.String("channel", req.Event.Channel),
		zap.String("ts", req.Event.Timestamp),
	)

	// event_callback、またはラッパーなしの素のイベントのみ処理
	// Slack は通常 type=event_callback で包むが、event.type だけを持つボディも受理する
	if req.Type != "" && req.Type != "event_callback" {
		h.respondAck(w)
		return
	}

	// イベント処理。失敗はログのみで、応答は常に成功
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.handleEvent(ctx, req); err != nil {
		h.log.Error("イベント処理エラー", zap.Error(err))
	}

	h.respondAck(w)
}

// handleEvent は個別のイベントを処理します
func (h *EventsHandler) handleEvent(ctx context.Context, req dto.SlackEventRequest) error {
	// app_mention イベントのみ対象
	if req.Event.Type != "app_mention" {
		return nil
	}

	// Bot 自身のメッセージや bot_message は無視
	if req.Event.BotID != "" || req.Event.SubType == "bot_message" {
		return nil
	}

	event := service.MentionEvent{
		ChannelID: req.Event.Channel,
		MessageTS: req.Event.Timestamp,
		Text:      req.Event.Text,
		UserID:    req.Event.User,
		NowUnix:   time.Now().Unix(),
	}

	return h.ledgerService.OnMention(ctx, &event)
}

// respondAck は成功応答 {"success": true} を書き込みます
func (h *EventsHandler) respondAck(w http.ResponseWriter) {
	h.respondJSON(w, dto.AckResponse{Success: true})
}

// respondJSON は任意のボディを JSON として HTTP 200 で書き込みます
func (h *EventsHandler) respondJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Warn("応答書き込み失敗", zap.Error(err))
	}
}
