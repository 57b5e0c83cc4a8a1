package main

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "下列何者正確",
			want: "下列何者正確",
		},
		{
			name: "whitespace run collapses",
			in:   "a  b\t\nc",
			want: "a b c",
		},
		{
			name: "full-width space collapses",
			in:   "甲　　乙",
			want: "甲 乙",
		},
		{
			name: "no-break space collapses",
			in:   "a\u00a0b",
			want: "a b",
		},
		{
			name: "leading and trailing trimmed",
			in:   "  abc  ",
			want: "abc",
		},
		{
			name: "trailing period stripped",
			in:   "abc.",
			want: "abc",
		},
		{
			name: "trailing ideographic stop stripped",
			in:   "正確。",
			want: "正確",
		},
		{
			name: "trailing full-width period stripped",
			in:   "abc．",
			want: "abc",
		},
		{
			name: "space before terminator stripped too",
			in:   "abc .",
			want: "abc",
		},
		{
			name: "interior terminator kept",
			in:   "a.b",
			want: "a.b",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \t　 ",
			want: "",
		},
		{
			name: "terminator only",
			in:   "。",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeText(got); again != got {
				t.Errorf("NormalizeText not idempotent: %q -> %q", got, again)
			}
		})
	}
}
