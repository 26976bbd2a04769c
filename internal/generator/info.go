package generator

import "regexp"

var (
	urlPattern   = regexp.MustCompile(`^https?://.+`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[1-9][\d\s\-()]{7,}$`)
)

// Info describes what kind of content a text looks like.
type Info struct {
	Category string `json:"category"`
	IsURL    bool   `json:"isUrl"`
}

// Classify labels text as URL, Email, Phone or Text.
func Classify(text string) Info {
	isURL := urlPattern.MatchString(text)
	switch {
	case isURL:
		return Info{Category: "URL", IsURL: true}
	case emailPattern.MatchString(text):
		return Info{Category: "Email"}
	case phonePattern.MatchString(text):
		return Info{Category: "Phone"}
	}
	return Info{Category: "Text"}
}

// Example is a ready-made payload shown next to the quick generator.
type Example struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var quickExamples = []Example{
	{Label: "Website URL", Value: "https://www.example.com"},
	{Label: "Email Address", Value: "mailto:hello@example.com"},
	{Label: "Phone Number", Value: "tel:+1234567890"},
	{Label: "SMS Message", Value: "sms:+1234567890?body=Hello World"},
	{Label: "WiFi Network", Value: "WIFI:T:WPA;S:MyNetwork;P:MyPassword;;"},
	{Label: "Contact vCard", Value: "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nORG:Example Corp\nTEL:+1234567890\nEMAIL:john@example.com\nEND:VCARD"},
	{Label: "WhatsApp Message", Value: "https://wa.me/1234567890?text=Hello%20World"},
	{Label: "YouTube Video", Value: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
}

// QuickExamples returns a copy of the example payloads.
func QuickExamples() []Example {
	out := make([]Example, len(quickExamples))
	copy(out, quickExamples)
	return out
}
