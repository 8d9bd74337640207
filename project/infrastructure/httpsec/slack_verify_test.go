package httpsec

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sign(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("v0:%s:%s", timestamp, body)))
	return fmt.Sprintf("v0=%x", mac.Sum(nil))
}

func TestVerifySlackSignature(t *testing.T) {
	const secret = "8f742231b10e8888abcd99yyyzzz85a5"
	body := `{"type":"event_callback"}`
	ts := fmt.Sprintf("%d", time.Now().Unix())

	assert.NoError(t, VerifySlackSignature(secret, sign(secret, ts, body), ts, body))
}

func TestVerifySlackSignatureMismatch(t *testing.T) {
	const secret = "secret-a"
	body := `{"type":"event_callback"}`
	ts := fmt.Sprintf("%d", time.Now().Unix())

	// 別のシークレットで計算した署名は拒否される
	err := VerifySlackSignature(secret, sign("secret-b", ts, body), ts, body)
	assert.Error(t, err)

	// 本文の改ざんも拒否される
	err = VerifySlackSignature(secret, sign(secret, ts, body), ts, body+"x")
	assert.Error(t, err)
}

func TestVerifySlackSignatureStaleTimestamp(t *testing.T) {
	const secret = "secret"
	body := "{}"

	// 5分より古いタイムスタンプはリプレイとして拒否される
	stale := fmt.Sprintf("%d", time.Now().Add(-10*time.Minute).Unix())
	err := VerifySlackSignature(secret, sign(secret, stale, body), stale, body)
	assert.Error(t, err)
}

func TestVerifySlackSignatureBadTimestamp(t *testing.T) {
	err := VerifySlackSignature("secret", "v0=00", "not-a-number", "{}")
	assert.Error(t, err)
}
