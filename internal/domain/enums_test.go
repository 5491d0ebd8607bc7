package domain

import "testing"

func TestParseRowTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   RowTag
		wantOK bool
	}{
		{"Title", RowTagTitle, true},
		{"  bot ", RowTagBot, true},
		{"USER", RowTagUser, true},
		{"Description", RowTagDescription, true},
		{"End", RowTagEnd, true},
		{"", "", false},
		{"Narrator", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseRowTag(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRowTag(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRowTag_Role(t *testing.T) {
	t.Parallel()

	if r, ok := RowTagBot.Role(); !ok || r != RoleBot {
		t.Errorf("Bot.Role() = (%q, %v)", r, ok)
	}
	if r, ok := RowTagUser.Role(); !ok || r != RoleUser {
		t.Errorf("User.Role() = (%q, %v)", r, ok)
	}
	if _, ok := RowTagTitle.Role(); ok {
		t.Error("Title.Role() should not map to a role")
	}
}

func TestQuizMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode QuizMode
		want bool
	}{
		{QuizModeRecognition, true},
		{QuizModeRecall, true},
		{QuizModeProduction, true},
		{QuizMode("easy"), false},
		{QuizMode(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			if got := tt.mode.IsValid(); got != tt.want {
				t.Errorf("QuizMode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestEmptyTopicPolicy_IsValid(t *testing.T) {
	t.Parallel()

	if !EmptyTopicDrop.IsValid() || !EmptyTopicKeep.IsValid() {
		t.Error("drop and keep must be valid")
	}
	if EmptyTopicPolicy("purge").IsValid() {
		t.Error("purge must be invalid")
	}
}

func TestRuleTier_String(t *testing.T) {
	t.Parallel()

	if got := TierMedial.String(); got != "medial" {
		t.Errorf("got %q, want medial", got)
	}
	if got := RuleTier(0).String(); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}
