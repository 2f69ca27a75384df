package api

import "strings"

// BuildURL substitutes {name} placeholders in a path template. Every
// occurrence of a supplied name is replaced with the value's string form.
// Placeholders with no supplied value are left intact rather than stripped,
// so a missing parameter shows up verbatim in the dispatched path.
func BuildURL(template string, params map[string]string) string {
	url := template
	for key, value := range params {
		url = strings.ReplaceAll(url, "{"+key+"}", value)
	}
	return url
}
