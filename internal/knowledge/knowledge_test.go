package knowledge

import "testing"

func TestSearch(t *testing.T) {
	t.Run("ncd question finds ncd entries", func(t *testing.T) {
		results := Search("what is ncd")
		if len(results) == 0 {
			t.Fatal("expected results for ncd query")
		}
		if results[0].Category != "NCD" {
			t.Errorf("top result category = %s, want NCD", results[0].Category)
		}
	})

	t.Run("at most three results", func(t *testing.T) {
		results := Search("insurance claim coverage")
		if len(results) > 3 {
			t.Errorf("got %d results, want at most 3", len(results))
		}
	})

	t.Run("results sorted by score", func(t *testing.T) {
		results := Search("flood coverage special perils")
		for i := 1; i < len(results); i++ {
			if results[i].Score > results[i-1].Score {
				t.Errorf("results not sorted by score: %v before %v", results[i-1].Score, results[i].Score)
			}
		}
		if len(results) == 0 || results[0].ID != "flood-coverage" {
			t.Errorf("expected flood-coverage as top result, got %+v", results)
		}
	})

	t.Run("short words ignored", func(t *testing.T) {
		if results := Search("is it ok"); len(results) != 0 {
			t.Errorf("two-letter words must not score, got %d results", len(results))
		}
	})

	t.Run("no match", func(t *testing.T) {
		if results := Search("zzzzzz"); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})
}

func TestByCategory(t *testing.T) {
	claims := ByCategory("claims")
	if len(claims) == 0 {
		t.Fatal("expected claims entries")
	}
	for _, e := range claims {
		if e.Category != "Claims" {
			t.Errorf("entry %s category = %s", e.ID, e.Category)
		}
	}
}

func TestCategories(t *testing.T) {
	categories := Categories()
	want := map[string]bool{"NCD": false, "Coverage": false, "Claims": false, "Add-ons": false, "Road Tax": false, "General": false}
	for _, c := range categories {
		if _, ok := want[c]; ok {
			want[c] = true
		}
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("missing category %s", c)
		}
	}
}
