package defuse

import "testing"

func TestDefuse(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Максутова", "0JzQsNC60YHRg9GC0L7QstCw"},
		{"", ""},
		{"ORWO ZU-21", "T1JXTyBaVS0yMQ=="},
	}

	for _, tt := range tests {
		if got := Defuse(tt.text); got != tt.expected {
			t.Errorf("Defuse(%q): expected %s, got %s", tt.text, tt.expected, got)
		}
	}
}

func TestUndefuseRoundTrip(t *testing.T) {
	for _, text := range []string{"Максутова", "", "пластинка с дефектом; see notes", "日本語", "a\x00b"} {
		token := Defuse(text)
		got, err := Undefuse(token)
		if err != nil {
			t.Fatalf("Undefuse(%q) failed: %v", token, err)
		}
		if got != text {
			t.Errorf("Round trip changed %q into %q", text, got)
		}
	}
}

func TestUndefuseInvalid(t *testing.T) {
	if _, err := Undefuse("not base64!"); err == nil {
		t.Error("Expected error for invalid token")
	}
}
