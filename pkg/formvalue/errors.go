package formvalue

import (
	"strconv"
	"strings"
)

// ApplyErrors attaches a server error payload to registered paths. Keys may
// be dotted paths, JSON pointers ("/body/owner/email"), JSONPath-ish
// ("$.body.tags[0]") or go-errors style locations; wrapper segments such as
// body/request/payload and numeric indices are ignored when matching. Keys
// that match no registered path, or that denote the whole form, are kept as
// form-level errors. Existing errors are replaced.
func (s *Store) ApplyErrors(payload map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = make(map[string][]string)
	s.formErrors = nil

	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		mapped, formLevel := s.mapErrorPath(rawPath)
		if formLevel {
			s.formErrors = append(s.formErrors, normalized...)
			continue
		}
		s.errors[mapped] = normalizeMessages(append(s.errors[mapped], normalized...))
	}
	s.formErrors = normalizeMessages(s.formErrors)
}

// MergeFormErrors concatenates form-level error slices, trimming whitespace
// and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func (s *Store) mapErrorPath(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}
	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	best := ""
	for _, variant := range segmentVariants(segments) {
		path := s.longestRegisteredPath(variant)
		if path == "" {
			continue
		}
		if best == "" || strings.Count(path, ".") > strings.Count(best, ".") {
			best = path
		}
	}
	if best == "" {
		return "", true
	}
	return best, false
}

func (s *Store) longestRegisteredPath(segments []string) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := s.schemas[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for _, prefix := range []string{"#/", "$/", "$."} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	clean = strings.TrimLeft(clean, "#/.$")

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func segmentVariants(segments []string) [][]string {
	trimmed := segments
	for len(trimmed) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(trimmed[0])]; !ok {
			break
		}
		trimmed = trimmed[1:]
	}
	return [][]string{
		segments,
		trimmed,
		stripNumeric(segments),
		stripNumeric(trimmed),
	}
}

func stripNumeric(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
