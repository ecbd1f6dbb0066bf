package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
		want []string
	}{
		{
			name: "english contraction stays one token",
			text: "I don't know",
			code: "en",
			want: []string{"I", "don't", "know"},
		},
		{
			name: "english curly apostrophe folded",
			text: "I don’t know",
			code: "en",
			want: []string{"I", "don't", "know"},
		},
		{
			name: "italian elision stays one token",
			text: "l'acqua è fredda",
			code: "it",
			want: []string{"l'acqua", "fredda"},
		},
		{
			name: "french elision",
			text: "j'ai mangé",
			code: "fr",
			want: []string{"j'ai", "mang"},
		},
		{
			name: "default class keeps accented runs whole",
			text: "el niño pequeño",
			code: "es",
			want: []string{"el", "niño", "pequeño"},
		},
		{
			name: "punctuation dropped",
			text: "Hello, world!",
			code: "en",
			want: []string{"Hello", "world"},
		},
		{
			name: "empty input",
			text: "",
			code: "en",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text, tt.code))
		})
	}
}

func TestTokenizeElisionDropsBareCommas(t *testing.T) {
	// The elision splitter emits punctuation runs too; tokens without a
	// word character must be filtered out.
	got := Tokenize("ciao, come stai?", "it")
	assert.Equal(t, []string{"ciao", "come", "stai"}, got)
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, ClassElision, ClassFor("it"))
	assert.Equal(t, ClassElision, ClassFor("fr"))
	assert.Equal(t, ClassElision, ClassFor("ca"))
	assert.Equal(t, ClassSeparator, ClassFor("en"))
	assert.Equal(t, ClassDefault, ClassFor("es"))
	assert.Equal(t, ClassDefault, ClassFor(""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Hello World", "hello world"},
		{"diacritics stripped", "Café crème", "cafe creme"},
		{"punctuation removed", "Hello, world!", "hello world"},
		{"apostrophe kept", "don't", "don't"},
		{"curly apostrophe folded", "don’t", "don't"},
		{"trimmed", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "nino", NormalizeWord("Niño"))
	assert.Equal(t, "l'eau", NormalizeWord("L’eau"))
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "aeiou", StripDiacritics("áéíóú"))
	assert.Equal(t, "Uber", StripDiacritics("Über"))
	assert.Equal(t, "plain", StripDiacritics("plain"))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"cat", "cut", 1},
		{"cat", "cats", 1},
		{"niño", "nino", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "English", Name("en"))
	assert.Equal(t, "Spanish", Name("es"))
	assert.Equal(t, "XX", Name("xx"))
}
