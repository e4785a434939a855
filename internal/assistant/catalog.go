package assistant

import (
	"fmt"

	"golang.org/x/text/language"
)

var DefaultLocale = language.English

func SupportedLocales() []language.Tag {
	return []language.Tag{language.English, language.Vietnamese}
}

// ParseLocale maps a user-supplied language code to a supported locale.
func ParseLocale(raw string) (language.Tag, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Tag{}, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	for _, supported := range SupportedLocales() {
		if tag == supported {
			return tag, nil
		}
	}
	return language.Tag{}, fmt.Errorf("unsupported locale %q", raw)
}

func responseKeys() []ResponseKey {
	return []ResponseKey{
		KeyGreeting,
		KeyAttendance,
		KeyEmployee,
		KeyTeam,
		KeyBlacklist,
		KeySettings,
		KeyFallback,
	}
}

var catalog = map[language.Tag]map[ResponseKey]string{
	language.English: {
		KeyGreeting:   "Hello! I'm your NLT Assistant. How can I help you today?",
		KeyAttendance: "To mark attendance, go to the Attendance page, select the date and team, then you can mark each employee as present, late, or absent.",
		KeyEmployee:   "You can manage employees through the Employees page. Here you can add, edit, or remove team members, and view their details.",
		KeyTeam:       "Teams can be managed through the Teams page. You can create new teams, assign leaders and co-leaders, and add members to teams.",
		KeyBlacklist:  "The Blacklist feature allows you to restrict access for former members who violated rules. Go to the Blacklist page to manage these records.",
		KeySettings:   "You can change your settings, including language and theme preferences, in the Settings page accessible from the sidebar.",
		KeyFallback:   "I'm not sure about that. Could you provide more details or try asking something else about the NLT System?",
	},
	language.Vietnamese: {
		KeyGreeting:   "Xin chào! Tôi là Trợ lý NLT. Tôi có thể giúp gì cho bạn hôm nay?",
		KeyAttendance: "Để chấm công, hãy đi đến trang Chấm Công, chọn ngày và nhóm, sau đó bạn có thể đánh dấu từng nhân viên là có mặt, đi trễ hoặc vắng mặt.",
		KeyEmployee:   "Bạn có thể quản lý thành viên thông qua trang Thành Viên. Tại đây bạn có thể thêm, sửa hoặc xóa thành viên và xem thông tin chi tiết của họ.",
		KeyTeam:       "Các nhóm có thể được quản lý thông qua trang Nhóm. Bạn có thể tạo nhóm mới, chỉ định trưởng nhóm và phó nhóm, và thêm thành viên vào nhóm.",
		KeyBlacklist:  "Tính năng Danh Sách Đen cho phép bạn hạn chế quyền truy cập cho các thành viên cũ vi phạm quy tắc. Đi đến trang Danh Sách Đen để quản lý những bản ghi này.",
		KeySettings:   "Bạn có thể thay đổi cài đặt của mình, bao gồm ngôn ngữ và chủ đề, trong trang Cài Đặt có thể truy cập từ thanh bên.",
		KeyFallback:   "Tôi không chắc về điều đó. Bạn có thể cung cấp thêm chi tiết hoặc thử hỏi điều gì đó khác về Hệ thống NLT không?",
	},
}

// Lookup returns the canned response for key in locale. Unknown locales fall
// back to the default locale's table; a missing key degrades to the key name
// rather than failing.
func Lookup(locale language.Tag, key ResponseKey) string {
	table, ok := catalog[locale]
	if !ok {
		table = catalog[DefaultLocale]
	}
	if response, ok := table[key]; ok {
		return response
	}
	return string(key)
}

// ValidateCatalog asserts every response key has an entry in every supported
// locale. Run at wire time so a gap is caught at startup, not by the
// key-name fallback in front of a user.
func ValidateCatalog() error {
	for _, locale := range SupportedLocales() {
		table, ok := catalog[locale]
		if !ok {
			return fmt.Errorf("response catalog missing locale %s", locale)
		}
		for _, key := range responseKeys() {
			if _, ok := table[key]; !ok {
				return fmt.Errorf("response catalog missing key %q for locale %s", key, locale)
			}
		}
	}
	return nil
}
