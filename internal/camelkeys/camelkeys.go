package camelkeys

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SnakeToCamel переводит snake_case в camelCase: "avatar_url" → "avatarUrl".
// Уже camelCase-ключи возвращаются как есть.
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	upper := false
	for i, r := range s {
		if r == '_' && i > 0 && i < len(s)-1 {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
		} else {
			b.WriteRune(r)
		}
		upper = false
	}

	return b.String()
}

// Convert рекурсивно переписывает ключи декодированного JSON-значения.
// Массивы обходятся с сохранением порядка, всё прочее возвращается без изменений.
// Вход не мутируется.
func Convert(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Convert(item)
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[SnakeToCamel(k)] = Convert(item)
		}
		return out

	default:
		return v
	}
}

// Marshal кодирует любое Go-значение в JSON с camelCase-ключами.
// Записи со snake_case json-тегами уходят наружу уже в camelCase.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}

	return json.Marshal(Convert(decoded))
}
