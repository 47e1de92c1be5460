package respond

import (
	"regexp"
)

var (
	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)

	// Bearer トークンと JWT のマスク
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9-_.]+`)
	jwtPattern    = regexp.MustCompile(`eyJ[a-zA-Z0-9-_]+\.[a-zA-Z0-9-_]+\.[a-zA-Z0-9-_]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = jwtPattern.ReplaceAllString(msg, "****")

	return msg
}
