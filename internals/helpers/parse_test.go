package helper

import (
	"reflect"
	"testing"
)

type liText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

func TestDecodeMaybeJSON(t *testing.T) {
	t.Run("kosong tidak menyentuh dst", func(t *testing.T) {
		dst := []liText{{En: "sebelumnya"}}
		if err := DecodeMaybeJSON(nil, &dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dst) != 1 || dst[0].En != "sebelumnya" {
			t.Errorf("dst berubah: %+v", dst)
		}
	})

	t.Run("null tidak menyentuh dst", func(t *testing.T) {
		dst := liText{En: "tetap"}
		if err := DecodeMaybeJSON([]byte("null"), &dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dst.En != "tetap" {
			t.Errorf("dst berubah: %+v", dst)
		}
	})

	t.Run("string kosong dianggap tidak ada", func(t *testing.T) {
		var dst []liText
		if err := DecodeMaybeJSON([]byte(`""`), &dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dst != nil {
			t.Errorf("dst terisi: %+v", dst)
		}
	})

	t.Run("JSON langsung dan string JSON hasilnya sama", func(t *testing.T) {
		native := []byte(`[{"en":"Visa","ar":"تأشيرة"}]`)
		wrapped := []byte(`"[{\"en\":\"Visa\",\"ar\":\"تأشيرة\"}]"`)

		var a, b []liText
		if err := DecodeMaybeJSON(native, &a); err != nil {
			t.Fatalf("native: %v", err)
		}
		if err := DecodeMaybeJSON(wrapped, &b); err != nil {
			t.Fatalf("wrapped: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("hasil beda: native=%+v wrapped=%+v", a, b)
		}
	})

	t.Run("JSON rusak error", func(t *testing.T) {
		var dst []liText
		if err := DecodeMaybeJSON([]byte(`[{`), &dst); err == nil {
			t.Error("expected error untuk JSON rusak")
		}
	})

	t.Run("string berisi JSON rusak error", func(t *testing.T) {
		var dst []liText
		if err := DecodeMaybeJSON([]byte(`"[{"`), &dst); err == nil {
			t.Error("expected error untuk string JSON rusak")
		}
	})
}

func TestParseFormInt(t *testing.T) {
	if _, present, err := ParseFormInt("nights", ""); err != nil || present {
		t.Errorf("string kosong harus (0, false, nil), dapat present=%v err=%v", present, err)
	}
	if n, present, err := ParseFormInt("nights", " 7 "); err != nil || !present || n != 7 {
		t.Errorf("dapat n=%d present=%v err=%v", n, present, err)
	}
	if _, _, err := ParseFormInt("nights", "tujuh"); err == nil {
		t.Error("expected error untuk non-angka")
	}
}

func TestParseFormFloat(t *testing.T) {
	if _, present, err := ParseFormFloat("rating", ""); err != nil || present {
		t.Errorf("string kosong harus (0, false, nil), dapat present=%v err=%v", present, err)
	}
	if f, present, err := ParseFormFloat("rating", "4.5"); err != nil || !present || f != 4.5 {
		t.Errorf("dapat f=%v present=%v err=%v", f, present, err)
	}
	if _, _, err := ParseFormFloat("rating", "empat"); err == nil {
		t.Error("expected error untuk non-angka")
	}
}

func TestParseFormBool(t *testing.T) {
	cases := map[string]bool{
		"true":   true,
		" true ": true,
		"TRUE":   false,
		"1":      false,
		"false":  false,
		"":       false,
	}
	for in, want := range cases {
		if got := ParseFormBool(in); got != want {
			t.Errorf("ParseFormBool(%q) = %v, want %v", in, got, want)
		}
	}
}
