package document

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "line break and tag", in: "Line1<br>Line2<b>bold</b>", want: "Line1\nLine2bold"},
		{name: "self closing breaks", in: "a<br/>b<br />c", want: "a\nb\nc"},
		{name: "plain text untouched", in: "keine Tags", want: "keine Tags"},
		{name: "nested tags stripped", in: "<p><em>kursiv</em></p>", want: "kursiv"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
