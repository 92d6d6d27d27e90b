// Package i18n provides the settings panel labels in the supported languages.
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported panel language.
type Language int

const (
	English Language = iota
	Korean
)

// Languages lists the supported languages in toggle order.
var Languages = []Language{English, Korean}

var tags = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(tags)

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	if int(l) < 0 || int(l) >= len(tags) {
		return language.Korean
	}
	return tags[l]
}

// Code returns the short code persisted in settings.
func (l Language) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

// Name returns the language's name in its own script, for the toggle buttons.
func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	default:
		return "한국어"
	}
}

// Parse returns the language for a settings code or locale string such as
// "en", "ko" or "ko_KR.UTF-8". Unknown or empty input yields Korean, the
// language the panel has always opened in.
func Parse(s string) Language {
	if s == "" {
		return Korean
	}
	tag, err := language.Parse(normalizeLocale(s))
	if err != nil {
		return Korean
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Korean
	}
	return Language(idx)
}

// normalizeLocale turns POSIX locale names into something language.Parse
// accepts.
func normalizeLocale(s string) string {
	for i, r := range s {
		if r == '.' || r == '@' {
			s = s[:i]
			break
		}
	}
	b := []byte(s)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

// Key identifies a translatable label.
type Key int

const (
	PhotoPath Key = iota
	GIFWarn
	ApplyImage
	Browse
	ResolutionSettings
	MaxWidth
	MaxHeight
	ApplyResolution
	StatusLoaded
	StatusNotFound
	StatusDecode
	StatusInvalidNumber
	StatusSaved
	StatusDisabled
	Hint
)

var texts = map[Language]map[Key]string{
	English: {
		PhotoPath:           "Enter photo path:",
		GIFWarn:             "GIFs are supported, but the overlay may briefly freeze when applied.\nThey can also strain the CPU; avoid GIFs on low-spec PCs.",
		ApplyImage:          "Apply",
		Browse:              "Browse",
		ResolutionSettings:  "Overlay Max Size Settings",
		MaxWidth:            "Max Width:",
		MaxHeight:           "Max Height:",
		ApplyResolution:     "Apply",
		StatusLoaded:        "Loaded",
		StatusNotFound:      "File not found",
		StatusDecode:        "Could not read image",
		StatusInvalidNumber: "Numbers only; kept previous value",
		StatusSaved:         "Saved",
		StatusDisabled:      "Overlay is off (F2)",
		Hint:                "F1 panel  F2 overlay  Esc quit",
	},
	Korean: {
		PhotoPath:           "사진 경로 입력:",
		GIFWarn:             "GIF를 지원하지만 적용 시 잠시 멈출 수 있습니다.\nCPU에 부담이 있으니 저사양 PC에서는 권장하지 않습니다.",
		ApplyImage:          "적용",
		Browse:              "찾아보기",
		ResolutionSettings:  "오버레이 최대 크기 설정",
		MaxWidth:            "최대 너비:",
		MaxHeight:           "최대 높이:",
		ApplyResolution:     "적용",
		StatusLoaded:        "불러옴",
		StatusNotFound:      "파일을 찾을 수 없습니다",
		StatusDecode:        "이미지를 읽을 수 없습니다",
		StatusInvalidNumber: "숫자만 입력하세요; 이전 값 유지",
		StatusSaved:         "저장됨",
		StatusDisabled:      "오버레이 꺼짐 (F2)",
		Hint:                "F1 패널  F2 오버레이  Esc 종료",
	},
}

// Text returns the label for k in l, falling back to English.
func Text(l Language, k Key) string {
	if s, ok := texts[l][k]; ok {
		return s
	}
	return texts[English][k]
}
