package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeMaybeJSON menerima sub-field yang bisa datang sebagai nilai JSON
// langsung ATAU string berisi JSON (kiriman multipart/form lama), lalu
// decode ke dst. String kosong dianggap tidak ada (dst tidak disentuh).
func DecodeMaybeJSON(raw []byte, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	// string JSON → unwrap dulu
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return fmt.Errorf("unwrap string JSON: %w", err)
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return nil
		}
		raw = []byte(inner)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

// DecodeMaybeJSONString versi untuk nilai form (string biasa).
func DecodeMaybeJSONString(raw string, dst any) error {
	return DecodeMaybeJSON([]byte(raw), dst)
}

/* ===============================
   Koersi nilai form (string → angka/bool)
=================================*/

// ParseFormInt: string kosong → (0, false, nil); invalid → error.
func ParseFormInt(field, raw string) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("field %s harus angka bulat, dapat %q", field, raw)
	}
	return n, true, nil
}

// ParseFormFloat: string kosong → (0, false, nil); invalid → error.
func ParseFormFloat(field, raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("field %s harus angka, dapat %q", field, raw)
	}
	return f, true, nil
}

// ParseFormBool: hanya literal "true" yang dianggap true.
func ParseFormBool(raw string) bool {
	return strings.TrimSpace(raw) == "true"
}
