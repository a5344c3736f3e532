package twodo

import "strings"

// encodeMode selects how a field value is placed into the query string.
type encodeMode int

const (
	// modeQuote percent-encodes the value.
	modeQuote encodeMode = iota
	// modeRaw emits the value as-is (already-safe flag values like "1").
	modeRaw
)

// addField is one entry of the add-URL field table. An empty value means
// the field is omitted entirely so 2Do applies its own default.
type addField struct {
	key   string
	value string
	mode  encodeMode
}

// BuildAddURL encodes a TaskInput into a complete twodo://x-callback-url/add
// URL. Field order is stable, and defaults (Task type, None priority, false
// flags) are omitted rather than sent as explicit zeroes.
func BuildAddURL(base string, in TaskInput) string {
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return ""
	}

	fields := []addField{
		{"type", nonDefault(in.Type.Code(), TaskTypeTask.Code()), modeRaw},
		{"forlist", in.ForList, modeQuote},
		{"note", in.Note, modeQuote},
		{"subtasks", in.Subtasks, modeQuote},
		{"priority", nonDefault(in.Priority.Code(), PriorityNone.Code()), modeRaw},
		{"starred", flag(in.Starred), modeRaw},
		{"tags", in.Tags, modeQuote},
		{"locations", in.Locations, modeQuote},
		{"due", in.Due, modeQuote},
		{"dueTime", in.DueTime, modeQuote},
		{"start", in.Start, modeQuote},
		{"repeat", nonDefault(in.Repeat.Code(), RepeatNone.Code()), modeRaw},
		{"action", in.Action, modeQuote},
		{"forParentName", in.ForParentName, modeQuote},
		{"forParentTask", in.ForParentTask, modeQuote},
		{"ignoreDefaults", flag(in.IgnoreDefaults), modeRaw},
		{"saveInClipboard", flag(in.SaveInClipboard), modeRaw},
		{"edit", flag(in.Edit), modeRaw},
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/")
	b.WriteString(string(OpAdd))
	b.WriteString("?task=")
	b.WriteString(Encode(in.Task))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString("&")
		b.WriteString(f.key)
		b.WriteString("=")
		if f.mode == modeQuote {
			b.WriteString(Encode(f.value))
		} else {
			b.WriteString(f.value)
		}
	}
	return b.String()
}

// nonDefault returns v unless it equals def, in which case the empty string
// marks the field as omitted.
func nonDefault(v, def string) string {
	if v == def {
		return ""
	}
	return v
}

// BuildPasteURL encodes a paste operation.
func BuildPasteURL(base string, in PasteInput) string {
	return base + "/" + string(OpPaste) +
		"?text=" + Encode(in.Text) +
		"&inProject=" + Encode(in.InProject) +
		"&forList=" + Encode(in.ForList)
}

// BuildGetTaskIDURL encodes a UID lookup. saveInClipboard is always forced
// on since the clipboard is the only way the result comes back.
func BuildGetTaskIDURL(base string, in TaskIDInput) string {
	return base + "/" + string(OpGetTaskID) +
		"?task=" + Encode(in.Task) +
		"&forList=" + Encode(in.ForList) +
		"&saveInClipboard=1"
}

// BuildShowListURL encodes a list navigation.
func BuildShowListURL(base, name string) string {
	return base + "/" + string(OpShowList) + "?name=" + Encode(name)
}

// BuildViewURL encodes a parameterless built-in view navigation.
func BuildViewURL(base string, view View) string {
	return base + "/" + string(viewOps[view])
}

// BuildSearchURL encodes a search.
func BuildSearchURL(base, text string) string {
	return base + "/" + string(OpSearch) + "?text=" + Encode(text)
}

// Encode percent-encodes s for use in an x-callback-url query value.
//
// 2Do's parser wants spaces as %20 (not "+") and forward slashes left
// alone (action URLs like "url:https://example.com" keep their slashes),
// while ":" "," "&" "=" and newlines must be escaped. Neither
// url.QueryEscape nor url.PathEscape produces this combination, so the
// unreserved set is applied byte by byte: RFC 3986 unreserved plus "/".
func Encode(s string) string {
	const upperhex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '.' || c == '_' || c == '~' || c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
