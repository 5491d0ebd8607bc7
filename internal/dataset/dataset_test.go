package dataset

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func open(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(testdataPath(t, name))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func quietLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestParseConsonants(t *testing.T) {
	t.Parallel()

	got, err := ParseConsonants(open(t, "consonants.csv"))
	if err != nil {
		t.Fatalf("ParseConsonants: %v", err)
	}

	want := []domain.GlyphRule{
		{Pattern: "က", Replacement: "क", Alternate: "ग", Gloss: "k"},
		{Pattern: "ခ", Gloss: "kh"},
		{Pattern: "ဂ", Replacement: "ग", Gloss: "g"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rules, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseVowels_ColumnFallbacks(t *testing.T) {
	t.Parallel()

	got, err := ParseVowels(open(t, "vowels.csv"))
	if err != nil {
		t.Fatalf("ParseVowels: %v", err)
	}

	want := map[string]string{"ါ": "ा2", "ား": "ा3", "ီး": "ि3", "ာ": "ा9"}
	if len(got) != len(want) {
		t.Fatalf("got %d rules, want %d: %+v", len(got), len(want), got)
	}
	for _, r := range got {
		if want[r.Pattern] != r.Replacement {
			t.Errorf("%q = %q, want %q", r.Pattern, r.Replacement, want[r.Pattern])
		}
		if r.Pattern == "◌" {
			t.Error("placeholder must be skipped")
		}
	}
}

func TestParseMedials_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	got, err := ParseMedials(open(t, "medials.csv"))
	if err != nil {
		t.Fatalf("ParseMedials: %v", err)
	}

	if len(got) != 2 || got[0].Pattern != "ကျ" || got[1].Replacement != "ज्ज" {
		t.Errorf("got %+v", got)
	}
}

func TestParseSpecialCases(t *testing.T) {
	t.Parallel()

	got, err := ParseSpecialCases(open(t, "special_cases.csv"))
	if err != nil {
		t.Fatalf("ParseSpecialCases: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d special cases, want 2", len(got))
	}
	if got[0].Phrase != "ကျေးဇူးတင်ပါတယ်" || got[0].Replacement != "धन्यवाद" {
		t.Errorf("first = %+v", got[0])
	}
}

func TestParseConversations(t *testing.T) {
	t.Parallel()

	got, err := ParseConversations(open(t, "conversations.csv"))
	if err != nil {
		t.Fatalf("ParseConversations: %v", err)
	}

	want := []struct {
		seq int
		tag domain.RowTag
	}{
		{1, domain.RowTagTitle},
		{2, domain.RowTagDescription},
		{3, domain.RowTagBot},
		{4, domain.RowTagUser},
		{6, domain.RowTagBot},
		{8, domain.RowTagEnd},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].SequenceNo != w.seq || got[i].Tag != w.tag {
			t.Errorf("row %d = %d %q, want %d %q", i, got[i].SequenceNo, got[i].Tag, w.seq, w.tag)
		}
	}
	if got[1].EnglishText != "Buying fruit, politely" {
		t.Errorf("quoted comma lost: %q", got[1].EnglishText)
	}
}

func TestParseConversations_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := ParseConversations(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("got (%v, %v), want no rows and no error", got, err)
	}
}

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 7 ", 7},
		{"3.0", 3},
		{"15a", 15},
		{"", 0},
		{"x", 0},
		{"-4", 0},
	}
	for _, tt := range tests {
		if got := leadingInt(tt.in); got != tt.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	ds, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() unexpected error: %v", err)
	}
	if len(ds.Conversations) != 24 {
		t.Errorf("got %d default rows, want 24", len(ds.Conversations))
	}
	if len(ds.Rules.Consonants) != 35 || len(ds.Rules.Vowels) != 48 || len(ds.Rules.Medials) != 110 {
		t.Errorf("default tiers = %d/%d/%d", len(ds.Rules.Consonants), len(ds.Rules.Vowels), len(ds.Rules.Medials))
	}
}

func TestBuiltIn_BrokenSheetIsAnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	if _, err := builtIn(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("builtIn() err = %v, want %v", err, boom)
	}
}

func TestLoad_NoSourcesKeepsDefaults(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), quietLogger(), Sources{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Rules.Consonants) != 35 || len(ds.Conversations) != 24 {
		t.Errorf("defaults changed: %d consonants, %d rows", len(ds.Rules.Consonants), len(ds.Conversations))
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), quietLogger(), Sources{
		Consonants:    testdataPath(t, "consonants.csv"),
		Vowels:        testdataPath(t, "vowels.csv"),
		Medials:       testdataPath(t, "medials.csv"),
		SpecialCases:  testdataPath(t, "special_cases.csv"),
		Conversations: testdataPath(t, "conversations.csv"),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(ds.Rules.Consonants) != 3 {
		t.Errorf("consonants should be replaced, got %d", len(ds.Rules.Consonants))
	}
	if len(ds.Rules.Vowels) != 48 {
		t.Errorf("vowels should merge by key, got %d", len(ds.Rules.Vowels))
	}
	if got := find(ds.Rules.Vowels, "ာ"); got != "ा9" {
		t.Errorf("vowel ာ = %q, want override ा9", got)
	}
	if got := find(ds.Rules.Medials, "ဂျ"); got != "ज्ज" {
		t.Errorf("medial ဂျ = %q, want override ज्ज", got)
	}
	if len(ds.Rules.SpecialCases) != 3 {
		t.Errorf("special cases = %d, want 3", len(ds.Rules.SpecialCases))
	}
	for _, sc := range ds.Rules.SpecialCases {
		if sc.Phrase == "မင်္ဂလာပါ" && sc.Replacement != "नमस्ते" {
			t.Errorf("special case not overridden: %q", sc.Replacement)
		}
	}
	if len(ds.Conversations) != 6 {
		t.Errorf("conversations should be replaced, got %d rows", len(ds.Conversations))
	}
}

func TestLoad_MissingSheet(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.csv")

	ds, err := Load(context.Background(), quietLogger(), Sources{Vowels: missing})
	if err != nil {
		t.Fatalf("lenient Load: %v", err)
	}
	if len(ds.Rules.Vowels) != 48 {
		t.Errorf("vowels = %d, want defaults", len(ds.Rules.Vowels))
	}

	_, err = Load(context.Background(), quietLogger(), Sources{Vowels: missing, Strict: true})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("strict Load error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, quietLogger(), Sources{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func find(rules []domain.GlyphRule, pattern string) string {
	for _, r := range rules {
		if r.Pattern == pattern {
			return r.Replacement
		}
	}
	return ""
}
