package helpers

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Félire Óengusso",
			want:  "Félire Óengusso",
		},
		{
			name:  "inline markup flattened in document order",
			input: `Vita <persName ref="#colmcille">S. Columbae</persName>, imperfect`,
			want:  "Vita S. Columbae, imperfect",
		},
		{
			name:  "entities decoded after tag removal",
			input: "Annals &amp; fragments <hi rend=\"italic\">anno 1014</hi>",
			want:  "Annals & fragments anno 1014",
		},
		{
			name:  "comments dropped",
			input: "Psalter <!-- checked 2019 --> of Cashel",
			want:  "Psalter of Cashel",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
