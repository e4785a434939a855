// Package assistant maps free-text utterances to canned, localized
// responses for the NLT help widget.
package assistant

import (
	"strings"

	"golang.org/x/text/language"
)

type ResponseKey string

const (
	KeyGreeting   ResponseKey = "greeting"
	KeyAttendance ResponseKey = "attendance"
	KeyEmployee   ResponseKey = "employee"
	KeyTeam       ResponseKey = "team"
	KeyBlacklist  ResponseKey = "blacklist"
	KeySettings   ResponseKey = "settings"
	KeyFallback   ResponseKey = "fallback"
)

type intentRule struct {
	key      ResponseKey
	keywords []string
}

// intentRules is evaluated top to bottom; the first rule with any keyword
// contained in the lowercased utterance wins. English and Vietnamese
// keywords are checked together regardless of the active locale; only the
// response text is locale-specific.
var intentRules = []intentRule{
	{key: KeyGreeting, keywords: []string{"hello", "hi", "xin chào", "chào"}},
	{key: KeyAttendance, keywords: []string{"attendance", "chấm công"}},
	{key: KeyEmployee, keywords: []string{"employee", "thành viên", "staff", "nhân viên"}},
	{key: KeyTeam, keywords: []string{"team", "nhóm"}},
	{key: KeyBlacklist, keywords: []string{"blacklist", "danh sách đen"}},
	{key: KeySettings, keywords: []string{"settings", "cài đặt", "preference", "tùy chỉnh"}},
}

// Resolve returns the response key for an utterance. It is total: unmatched
// input resolves to KeyFallback. Matching is substring containment, so
// "hires" matches a rule keyed on "hire".
func Resolve(utterance string, _ language.Tag) ResponseKey {
	lowered := strings.ToLower(utterance)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.key
			}
		}
	}
	return KeyFallback
}
