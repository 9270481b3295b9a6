package domain

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhone возвращает номер в международном формате для отображения.
// Если номер не распознан, он возвращается без изменений.
func FormatPhone(raw string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return raw
	}
	if !strings.HasPrefix(candidate, "+") {
		candidate = "+" + candidate
	}

	num, err := phonenumbers.Parse(candidate, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// PhoneRegion возвращает ISO код страны номера или пустую строку
func PhoneRegion(raw string) string {
	candidate := strings.TrimSpace(raw)
	if !strings.HasPrefix(candidate, "+") {
		candidate = "+" + candidate
	}
	num, err := phonenumbers.Parse(candidate, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}
