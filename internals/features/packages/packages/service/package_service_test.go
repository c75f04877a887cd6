package service

import (
	"encoding/json"
	"testing"
	"time"

	"tenderoutes_backend/internals/features/packages/packages/dto"
	"tenderoutes_backend/internals/features/packages/packages/model"
)

func ptr[T any](v T) *T { return &v }

func fullInput() PackageInput {
	return PackageInput{
		PackageType:    ptr(model.PackageTypePremium),
		TitleEn:        ptr("AlUla Heritage Escape"),
		TitleAr:        ptr("رحلة تراث العلا"),
		DescriptionEn:  ptr("Four days in AlUla."),
		DescriptionAr:  ptr("أربعة أيام في العلا."),
		DestinationsEn: ptr("AlUla, Hegra"),
		DestinationsAr: ptr("العلا، الحِجر"),
		Nights:         ptr(3),
		Days:           ptr(4),
	}
}

func TestFromPayloadPolicy(t *testing.T) {
	t.Run("detail struktural rusak fail-hard", func(t *testing.T) {
		p := dto.PackagePayload{
			Itinerary:  json.RawMessage(`[{`),
			Inclusions: json.RawMessage(`not json`),
		}
		_, fieldErrs := FromPayload(p)
		if len(fieldErrs["itinerary"]) == 0 {
			t.Error("itinerary rusak harus masuk fieldErrs")
		}
		if len(fieldErrs["inclusions"]) == 0 {
			t.Error("inclusions rusak harus masuk fieldErrs")
		}
	})

	t.Run("field deskriptif rusak fail-soft", func(t *testing.T) {
		p := dto.PackagePayload{
			Highlights: json.RawMessage(`[{`),
			Overview:   json.RawMessage(`{bad`),
			MetaTitle:  json.RawMessage(`[[`),
		}
		in, fieldErrs := FromPayload(p)
		if len(fieldErrs) != 0 {
			t.Errorf("fail-soft tidak boleh isi fieldErrs: %v", fieldErrs)
		}
		if in.Highlights != nil || in.Overview != nil || in.MetaTitle != nil {
			t.Error("field rusak harus dianggap tidak hadir")
		}
	})

	t.Run("JSON langsung dan string JSON hasilnya sama", func(t *testing.T) {
		native := dto.PackagePayload{
			Itinerary: json.RawMessage(`[{"day":1,"title":{"en":"Hegra","ar":"الحِجر"},"description":{"en":"","ar":""},"activities":[]}]`),
		}
		wrapped := dto.PackagePayload{
			Itinerary: json.RawMessage(`"[{\"day\":1,\"title\":{\"en\":\"Hegra\",\"ar\":\"الحِجر\"},\"description\":{\"en\":\"\",\"ar\":\"\"},\"activities\":[]}]"`),
		}

		inA, errsA := FromPayload(native)
		inB, errsB := FromPayload(wrapped)
		if len(errsA) != 0 || len(errsB) != 0 {
			t.Fatalf("unexpected fieldErrs: %v %v", errsA, errsB)
		}
		if inA.Itinerary == nil || inB.Itinerary == nil {
			t.Fatal("itinerary tidak ter-decode")
		}
		if (*inA.Itinerary)[0].Day != 1 || (*inB.Itinerary)[0].Day != 1 {
			t.Error("isi itinerary beda antara native dan wrapped")
		}
		if (*inA.Itinerary)[0].Title.En != (*inB.Itinerary)[0].Title.En {
			t.Error("title beda antara native dan wrapped")
		}
	})
}

func TestValidateRequired(t *testing.T) {
	t.Run("input kosong semua field wajib dilaporkan", func(t *testing.T) {
		errs := ValidateRequired(PackageInput{})
		wantKeys := []string{
			"packageType", "titleEn", "titleAr",
			"descriptionEn", "descriptionAr",
			"destinationsEn", "destinationsAr",
			"nights", "days",
		}
		for _, k := range wantKeys {
			if len(errs[k]) == 0 {
				t.Errorf("field %s harus dilaporkan wajib", k)
			}
		}
		if len(errs) != len(wantKeys) {
			t.Errorf("jumlah field error = %d, want %d: %v", len(errs), len(wantKeys), errs)
		}
	})

	t.Run("string whitespace dianggap kosong", func(t *testing.T) {
		in := fullInput()
		in.TitleEn = ptr("   ")
		errs := ValidateRequired(in)
		if len(errs["titleEn"]) == 0 {
			t.Error("titleEn whitespace harus dilaporkan wajib")
		}
	})

	t.Run("input lengkap lolos", func(t *testing.T) {
		if errs := ValidateRequired(fullInput()); len(errs) != 0 {
			t.Errorf("unexpected errs: %v", errs)
		}
	})
}

func TestValidateRanges(t *testing.T) {
	in := fullInput()
	in.PackageType = ptr("diamond")
	in.Nights = ptr(-1)
	in.Rating = ptr(5.5)
	in.ReviewsCount = ptr(-3)

	errs := ValidateRanges(in)
	for _, k := range []string{"packageType", "nights", "rating", "reviewsCount"} {
		if len(errs[k]) == 0 {
			t.Errorf("field %s harus dilaporkan invalid", k)
		}
	}

	if errs := ValidateRanges(fullInput()); len(errs) != 0 {
		t.Errorf("input valid tidak boleh error: %v", errs)
	}
}

func TestBuildPackage(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("koleksi absen jadi array kosong", func(t *testing.T) {
		m, err := BuildPackage(fullInput(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for name, raw := range map[string][]byte{
			"itinerary":  m.PackageItinerary,
			"inclusions": m.PackageInclusions,
			"exclusions": m.PackageExclusions,
			"highlights": m.PackageHighlights,
			"faqs":       m.PackageFaqs,
		} {
			if string(raw) != "[]" {
				t.Errorf("%s = %s, want []", name, raw)
			}
		}
		if !m.PackageCreatedAt.Equal(now) || !m.PackageUpdatedAt.Equal(now) {
			t.Error("createdAt dan updatedAt harus sama dengan now")
		}
	})

	t.Run("koleksi terisi di-serialize", func(t *testing.T) {
		in := fullInput()
		in.Inclusions = ptr([]model.LocalizedText{{En: "Visa", Ar: "تأشيرة"}})
		m, err := BuildPackage(in, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got []model.LocalizedText
		if err := json.Unmarshal(m.PackageInclusions, &got); err != nil {
			t.Fatalf("inclusions bukan JSON valid: %v", err)
		}
		if len(got) != 1 || got[0].En != "Visa" {
			t.Errorf("inclusions = %+v", got)
		}
	})
}

func TestApplyUpdate(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	base, err := BuildPackage(fullInput(), now)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	base.PackageSlugEn = "alula-heritage-escape"
	base.PackageSlugAr = "رحلة-تراث-العلا"

	t.Run("partial update hanya sentuh field hadir", func(t *testing.T) {
		m := base
		later := now.Add(time.Hour)
		in := PackageInput{TitleEn: ptr("AlUla Deluxe Escape")}
		if err := ApplyUpdate(&m, in, later); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.PackageTitleEn != "AlUla Deluxe Escape" {
			t.Errorf("titleEn = %q", m.PackageTitleEn)
		}
		if m.PackageTitleAr != base.PackageTitleAr {
			t.Error("titleAr tidak boleh berubah")
		}
		if m.PackageSlugEn != base.PackageSlugEn {
			t.Error("slug tidak boleh berubah tanpa input slug")
		}
		if !m.PackageUpdatedAt.After(base.PackageUpdatedAt) {
			t.Error("updatedAt harus naik")
		}
		if !m.PackageCreatedAt.Equal(base.PackageCreatedAt) {
			t.Error("createdAt tidak boleh berubah")
		}
	})

	t.Run("updatedAt tetap naik tanpa field lain", func(t *testing.T) {
		m := base
		later := now.Add(time.Minute)
		if err := ApplyUpdate(&m, PackageInput{}, later); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.PackageUpdatedAt.Equal(later) {
			t.Errorf("updatedAt = %v, want %v", m.PackageUpdatedAt, later)
		}
	})

	t.Run("koleksi diganti utuh bukan merge", func(t *testing.T) {
		m := base
		in := PackageInput{
			Inclusions: ptr([]model.LocalizedText{{En: "Breakfast", Ar: "الإفطار"}}),
		}
		if err := ApplyUpdate(&m, in, now.Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got []model.LocalizedText
		if err := json.Unmarshal(m.PackageInclusions, &got); err != nil {
			t.Fatalf("inclusions bukan JSON valid: %v", err)
		}
		if len(got) != 1 || got[0].En != "Breakfast" {
			t.Errorf("inclusions = %+v", got)
		}
		if string(m.PackageExclusions) != string(base.PackageExclusions) {
			t.Error("exclusions tidak boleh ikut berubah")
		}
	})
}
