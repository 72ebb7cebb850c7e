package capitalize

import "testing"

func TestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Cap
	}{
		{"empty", "", No},
		{"all lowercase", "paris", No},
		{"init cap", "Paris", Init},
		{"all caps", "PARIS", All},
		{"huh mixed lower-first", "mcDonald", Huh},
		{"huh-init mixed upper-first", "McDonald", HuhInit},
		{"single upper letter", "A", All},
		{"single lower letter", "a", No},
		{"digits only", "123", No},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Guess(tt.input); got != tt.want {
				t.Errorf("Guess(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no case", "paris", []string{"paris"}},
		{"init case includes lowercase", "Paris", []string{"Paris", "paris"}},
		{"all caps includes lower and title", "PARIS", []string{"PARIS", "paris", "Paris"}},
		{"huh-init includes lowercase", "McDonald", []string{"McDonald", "mcdonald"}},
		{"huh keeps only itself", "mcDonald", []string{"mcDonald"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, got := Variants(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Variants(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Variants(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestVariantsOfVariantsNonEmpty checks that every case-form Variants
// produces can itself be passed back to Variants and still yields a
// non-empty variant list.
func TestVariantsOfVariantsNonEmpty(t *testing.T) {
	t.Parallel()

	words := []string{"paris", "Paris", "PARIS", "mcDonald", "McDonald"}
	for _, w := range words {
		_, variants := Variants(w)
		for _, v := range variants {
			_, variants2 := Variants(v)
			if len(variants2) == 0 {
				t.Errorf("Variants(%q) produced empty variant list for %q", w, v)
			}
		}
	}
}
