package delegate

import "testing"

func TestReverseRuneReader(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"λ", "λ"},
		{"abc", "cba"},
		{"狐b犬c", "c犬b狐"},
		{"😈imp", "pmi😈"},
		{"←→↑↓", "↓↑→←"},
	}

	for _, test := range tests {
		r := newReverseRuneReader(test.s)
		for _, want := range test.want {
			have, _, _ := r.ReadRune()
			if have != want {
				t.Fatalf("test(%q) failed: want %c, got %c", test.s, want, have)
			}
		}
		if _, _, err := r.ReadRune(); err == nil {
			t.Fatalf("test(%q): expected EOF after exhausting input", test.s)
		}
	}
}
