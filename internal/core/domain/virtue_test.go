package domain

import "testing"

func TestVirtueName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"courage", "Courage"},
		{"growth_mindset", "Growth Mindset"},
		{"patience", "Patience"}, // unknown: capitalized as-is
		{"", ""},
	}

	for _, tc := range cases {
		if got := VirtueName(tc.in); got != tc.want {
			t.Errorf("VirtueName(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFeedbackFor_KnownVirtue(t *testing.T) {
	got := FeedbackFor("courage")
	want := "It takes strength to face challenges. You showed great courage!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFeedbackFor_CaseInsensitive(t *testing.T) {
	if FeedbackFor("Wisdom") != FeedbackFor("wisdom") {
		t.Error("lookup must be case-insensitive")
	}
}

func TestFeedbackFor_UnknownVirtue(t *testing.T) {
	got := FeedbackFor("patience")
	want := "Great job practicing patience!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
