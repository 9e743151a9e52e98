package query

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		input string
		want  Mode
	}{
		{"AAPL", ModeSymbolic},
		{"RELIANCE.NS", ModeSymbolic},
		{"TCS.BO", ModeSymbolic},
		{"BRK.B", ModeSymbolic},
		{"GOOGL", ModeSymbolic},
		// Keywords inside a longer token are not intent words.
		{"ISRG", ModeSymbolic},
		{"WORTHINGTON", ModeSymbolic},

		// Whitespace always means a question.
		{"Should I invest in Tesla?", ModeNaturalLanguage},
		{"reliance or tcs", ModeNaturalLanguage},
		// Single-token intent keywords, any case.
		{"buy", ModeNaturalLanguage},
		{"SELL", ModeNaturalLanguage},
		{"invest", ModeNaturalLanguage},
		{"worth", ModeNaturalLanguage},
		// Keyword attached to punctuation still matches.
		{"buy?", ModeNaturalLanguage},
	}

	for _, tc := range cases {
		if got := Classify(tc.input); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	inputs := []string{"AAPL", "should I buy apple", "buy", "INFY.NS"}
	for _, input := range inputs {
		first := Classify(input)
		for i := 0; i < 3; i++ {
			if got := Classify(input); got != first {
				t.Fatalf("Classify(%q) changed between calls: %s then %s", input, first, got)
			}
		}
	}
}
