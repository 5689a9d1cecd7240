package catalog

import (
	"math"
	"strings"
	"testing"
)

func openCriteria() Criteria {
	return Criteria{
		Location: LocationAll,
		MinPrice: 0,
		MaxPrice: math.MaxInt,
		SortBy:   SortRecommended,
	}
}

func TestFilterOpenCriteriaReturnsFullCatalog(t *testing.T) {
	got := Filter(All(), openCriteria())
	if len(got) != len(accommodations) {
		t.Fatalf("got %d results, want %d", len(got), len(accommodations))
	}
}

func TestFilterSearchMatchesNameLocationOrDescription(t *testing.T) {
	queries := []string{"해운대", "펫", "제주", "리조트", "한옥"}
	for _, q := range queries {
		c := openCriteria()
		c.Search = q
		for _, a := range Filter(All(), c) {
			hay := strings.ToLower(a.Name + a.Location + a.Description)
			if !strings.Contains(hay, strings.ToLower(q)) {
				t.Errorf("query %q returned id=%d without a matching field", q, a.ID)
			}
		}
	}
}

func TestFilterSearchExcludesNonMatches(t *testing.T) {
	c := openCriteria()
	c.Search = "해운대"
	got := Filter(All(), c)
	matched := map[int]bool{}
	for _, a := range got {
		matched[a.ID] = true
	}
	for _, a := range All() {
		hay := strings.ToLower(a.Name + a.Location + a.Description)
		if strings.Contains(hay, "해운대") != matched[a.ID] {
			t.Errorf("id=%d inclusion mismatch for query %q", a.ID, c.Search)
		}
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	// The seed catalog has no latin letters in searchable fields, so case
	// folding is exercised against a synthetic list.
	list := []Accommodation{
		{ID: 100, Name: "Seaside Pet Lodge", Location: "Busan", Description: "Beachfront stay", MaxPets: 1},
		{ID: 101, Name: "숲속 쉼터", Location: "가평", Description: "산책로", MaxPets: 1},
	}
	c := openCriteria()
	c.Search = "sEaSiDe"
	if got := Filter(list, c); len(got) != 1 || got[0].ID != 100 {
		t.Fatalf("search %q: got %v, want exactly id=100", c.Search, ids(got))
	}
	c.Search = "BUSAN"
	if got := Filter(list, c); len(got) != 1 || got[0].ID != 100 {
		t.Fatalf("search %q: got %v, want exactly id=100", c.Search, ids(got))
	}
}

func TestFilterMinGreaterThanMaxYieldsEmpty(t *testing.T) {
	c := openCriteria()
	c.MinPrice = 300000
	c.MaxPrice = 200000
	if got := Filter(All(), c); len(got) != 0 {
		t.Fatalf("got %d results, want 0", len(got))
	}
}

func TestFilterPriceRangeScenario(t *testing.T) {
	c := openCriteria()
	c.MinPrice = 200000
	c.MaxPrice = 300000
	got := Filter(All(), c)
	want := map[int]bool{2: true, 7: true, 11: true}
	if len(got) != len(want) {
		t.Fatalf("got ids %v, want {2,7,11}", ids(got))
	}
	for _, a := range got {
		if !want[a.ID] {
			t.Errorf("unexpected id %d in result %v", a.ID, ids(got))
		}
	}
}

func TestFilterHaeundaeScenario(t *testing.T) {
	c := Criteria{
		Search:   "해운대",
		Location: LocationAll,
		MinPrice: 0,
		MaxPrice: 500000,
		SortBy:   SortRecommended,
	}
	got := Filter(All(), c)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("got ids %v, want exactly [7]", ids(got))
	}
	if got[0].PricePerNight != 280000 || got[0].Rating != 4.9 {
		t.Errorf("id=7 snapshot changed: price=%d rating=%v", got[0].PricePerNight, got[0].Rating)
	}
}

func TestFilterLocationSubstring(t *testing.T) {
	c := openCriteria()
	c.Location = "강원도"
	got := Filter(All(), c)
	if len(got) != 3 {
		t.Fatalf("got ids %v, want the three 강원도 records", ids(got))
	}
	for _, a := range got {
		if !strings.Contains(a.Location, "강원도") {
			t.Errorf("id=%d location %q does not contain 강원도", a.ID, a.Location)
		}
	}
}

func TestFilterMinRating(t *testing.T) {
	c := openCriteria()
	c.MinRating = 4.9
	for _, a := range Filter(All(), c) {
		if a.Rating < 4.9 {
			t.Errorf("id=%d rating %v below threshold", a.ID, a.Rating)
		}
	}
}

func TestPetSizeCriterionIsNoOp(t *testing.T) {
	base := Filter(All(), openCriteria())
	c := openCriteria()
	c.PetSize = "large"
	got := Filter(All(), c)
	if len(got) != len(base) {
		t.Fatalf("pet size altered result count: %d vs %d", len(got), len(base))
	}
	for i := range got {
		if got[i].ID != base[i].ID {
			t.Fatalf("pet size altered ordering at %d: %d vs %d", i, got[i].ID, base[i].ID)
		}
	}
}

func TestSortPriceAscendingAndDescending(t *testing.T) {
	c := openCriteria()
	c.SortBy = SortPriceLow
	got := Filter(All(), c)
	for i := 1; i < len(got); i++ {
		if got[i-1].PricePerNight > got[i].PricePerNight {
			t.Fatalf("price_low not ascending at %d", i)
		}
	}
	c.SortBy = SortPriceHigh
	got = Filter(All(), c)
	for i := 1; i < len(got); i++ {
		if got[i-1].PricePerNight < got[i].PricePerNight {
			t.Fatalf("price_high not descending at %d", i)
		}
	}
}

func TestSortReviewsMatchesRating(t *testing.T) {
	c := openCriteria()
	c.SortBy = SortRating
	byRating := Filter(All(), c)
	c.SortBy = SortReviews
	byReviews := Filter(All(), c)
	if len(byRating) != len(byReviews) {
		t.Fatalf("lengths differ: %d vs %d", len(byRating), len(byReviews))
	}
	for i := range byRating {
		if byRating[i].ID != byReviews[i].ID {
			t.Errorf("order differs at %d: rating=%d reviews=%d", i, byRating[i].ID, byReviews[i].ID)
		}
	}
}

func TestSortIsIdempotentAndStable(t *testing.T) {
	c := openCriteria()
	c.SortBy = SortRating
	once := Filter(All(), c)
	twice := Filter(once, c)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("re-sorting changed order at %d", i)
		}
	}
	// Equal ratings keep catalog order: ids 1 and 7 are both 4.9 and 1 < 7.
	var first, second = -1, -1
	for i, a := range once {
		if a.ID == 1 {
			first = i
		}
		if a.ID == 7 {
			second = i
		}
	}
	if first == -1 || second == -1 || first > second {
		t.Errorf("stable tie-break violated: pos(id=1)=%d pos(id=7)=%d", first, second)
	}
}

func TestUnknownSortFallsBackToRecommended(t *testing.T) {
	c := openCriteria()
	c.SortBy = Sort("bogus")
	got := Filter(All(), c)
	c.SortBy = SortRecommended
	want := Filter(All(), c)
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("unknown sort diverged from recommended at %d", i)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := All()
	firstID := in[0].ID
	c := openCriteria()
	c.SortBy = SortPriceHigh
	Filter(in, c)
	if in[0].ID != firstID {
		t.Fatal("Filter reordered its input slice")
	}
}

func TestByID(t *testing.T) {
	a, ok := ByID(7)
	if !ok || a.Name != "해운대 펫 리조트" {
		t.Fatalf("ByID(7) = %+v, %v", a, ok)
	}
	if _, ok := ByID(99); ok {
		t.Fatal("ByID(99) should not exist")
	}
}

func ids(list []Accommodation) []int {
	out := make([]int, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}
