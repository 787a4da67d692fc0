package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "shape" or "text").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.lookup(code)
	if shape := data["shape"]; shape != "" && msg != code {
		if t.lang == "ja" {
			return msg + " (" + shape + ")"
		}
		return msg + " as " + shape
	}
	return msg
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_argument":
			return "引数が不正です"
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "overflow":
			return "値が範囲外です"
		case "invalid_format":
			return "形式が不正です"
		case "invalid_enum":
			return "許可されていない値です"
		case "unsupported":
			return "文字列から変換できない型です"
		}
	default: // "en"
		switch code {
		case "invalid_argument":
			return "invalid argument"
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "cannot parse value"
		case "overflow":
			return "value out of range"
		case "invalid_format":
			return "invalid format"
		case "invalid_enum":
			return "value not in enumeration"
		case "unsupported":
			return "no text conversion available"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
