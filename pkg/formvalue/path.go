package formvalue

import (
	"fmt"
	"strconv"
	"strings"
)

func seedValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		if strings.Contains(key, ".") {
			if err := setPath(out, key, deepCopy(value)); err == nil {
				continue
			}
		}
		out[key] = deepCopy(value)
	}
	return out
}

func cloneValues(src map[string]any) map[string]any {
	if len(src) == 0 {
		return make(map[string]any)
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = deepCopy(v)
	}
	return out
}

func cloneErrors(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for k, v := range src {
		if messages := normalizeMessages(v); len(messages) > 0 {
			out[k] = messages
		}
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	default:
		return typed
	}
}

func getPath(root map[string]any, path string) (any, bool) {
	if root == nil || path == "" {
		return nil, false
	}
	current := any(root)
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// setPath writes value at a dotted path, creating intermediate maps and
// growing slices for numeric segments.
func setPath(root map[string]any, path string, value any) error {
	if root == nil {
		return fmt.Errorf("formvalue: root map is nil")
	}
	segments := strings.Split(path, ".")
	return setSegments(root, segments, value, path)
}

func setSegments(node map[string]any, segments []string, value any, path string) error {
	head := segments[0]
	if head == "" {
		return fmt.Errorf("formvalue: empty segment in path %q", path)
	}
	if len(segments) == 1 {
		node[head] = value
		return nil
	}

	next := segments[1]
	if idx, err := strconv.Atoi(next); err == nil {
		if idx < 0 {
			return fmt.Errorf("formvalue: negative index in path %q", path)
		}
		list, _ := node[head].([]any)
		if len(list) <= idx {
			list = append(list, make([]any, idx+1-len(list))...)
		}
		node[head] = list
		if len(segments) == 2 {
			list[idx] = value
			return nil
		}
		child, ok := list[idx].(map[string]any)
		if !ok || child == nil {
			child = make(map[string]any)
			list[idx] = child
		}
		return setSegments(child, segments[2:], value, path)
	}

	child, ok := node[head].(map[string]any)
	if !ok || child == nil {
		child = make(map[string]any)
		node[head] = child
	}
	return setSegments(child, segments[1:], value, path)
}
