package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\p{Arabic}]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify mengubah teks bebas jadi slug, hilangkan diakritik,
// kompres "-", trim ujung, enforce maxLen (default 160 jika <=0).
// Huruf Arab dipertahankan supaya slug_ar tetap terbaca.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diakritik (é → e, dll)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // mark nonspacing
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	return s
}

// EnsureUniqueSlug memastikan slug unik (case-insensitive) terhadap SEMUA
// kolom yang diberikan — slug en/ar saling eksklusif, jadi kandidat harus
// bebas di kedua kolom. excludeCol/excludeID boleh kosong; dipakai saat
// update supaya row sendiri tidak dihitung bentrok. Bentrok → coba suffix
// -2, -3, ... lalu fallback random pendek berbasis waktu.
func EnsureUniqueSlug(db *gorm.DB, table string, columns []string, baseSlug, excludeCol string, excludeID any) (string, error) {
	if baseSlug == "" {
		baseSlug = "item"
	}
	slug := baseSlug

	for i := 0; i < 25; i++ {
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER(?)", col))
			args = append(args, slug)
		}
		q := db.Table(table).Where(strings.Join(conds, " OR "), args...)
		if excludeCol != "" && excludeID != nil {
			q = q.Where(fmt.Sprintf("%s <> ?", excludeCol), excludeID)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, i+2)
	}

	return fmt.Sprintf("%s-%x", baseSlug, time.Now().UnixNano()&0xffff), nil
}
