package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSlackTimestamp は "1712345678.901234" 形式のSlackメッセージTSを時刻に変換します
// 小数部はマイクロ秒精度で、float経由の精度劣化を避けるため文字列のまま分解します
func ParseSlackTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("タイムスタンプ形式が不正です (ts=%s): %w", ts, err)
	}

	var nsec int64
	if fracPart != "" {
		// 9桁に0詰めしてナノ秒へ
		padded := (fracPart + "000000000")[:9]
		nsec, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("タイムスタンプ小数部が不正です (ts=%s): %w", ts, err)
		}
	}

	return time.Unix(sec, nsec).UTC(), nil
}

// LocalZone は固定オフセットのタイムゾーンを返します（既定は UTC+7）
func LocalZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
}

// FormatUTC は時刻をUTCのISO文字列（RFC3339）で返します
func FormatUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatLocalDate は時刻を指定ゾーンの M/D/YYYY 形式で返します
func FormatLocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("1/2/2006")
}

// FormatLocalTime は時刻を指定ゾーンの12時間制（AM/PM付き）で返します
func FormatLocalTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04:05 PM")
}
