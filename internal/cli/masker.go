package cli

import "regexp"

var keyPrefixPattern = regexp.MustCompile(`^(sk-ant-|sk-|AIza|gsk_)`)

// MaskKey는 API 키를 출력용으로 마스킹한다. 알려진 접두사는 접두사만 남기고,
// 그 외에는 앞 4자만 남긴다.
func MaskKey(s string) string {
	if s == "" {
		return ""
	}
	if prefix := keyPrefixPattern.FindString(s); prefix != "" {
		return prefix + "****"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
