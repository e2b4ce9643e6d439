package utils

import "time"

// Layout used when rendering trip dates inside emails, e.g. "July 14, 2026".
const mailDateLayout = "January 2, 2006"

func FormatMailDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(mailDateLayout)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
