package guide

import (
	"testing"

	"github.com/senxilab/senxi-backend/internal/catalog"
)

func productByID(t *testing.T, c *catalog.Catalog, id string) catalog.Product {
	t.Helper()
	p, ok := c.ByID(id)
	if !ok {
		t.Fatalf("catalog missing product %s", id)
	}
	return p
}

func TestRecommendRanksBestMatchFirst(t *testing.T) {
	c := catalog.New()
	e := New(c)
	profile := Profile{
		Area:      30,
		Region:    "north",
		Problems:  []string{"pm25", "formaldehyde"},
		Users:     []string{"general"},
		SpaceType: "living",
		Budget:    "standard",
	}

	recs := e.Recommend(profile)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].Product.ID != "pro-01" {
		t.Fatalf("top recommendation = %s, want pro-01", recs[0].Product.ID)
	}
	if recs[0].Score != 100 {
		t.Fatalf("top score = %d, want 100", recs[0].Score)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("scores not sorted: %d before %d", recs[i-1].Score, recs[i].Score)
		}
	}
	for _, r := range recs {
		if len(r.MatchReasons) == 0 || len(r.MatchReasons) > 4 {
			t.Fatalf("%s has %d reasons, want 1..4", r.Product.ID, len(r.MatchReasons))
		}
	}
}

func TestMatchScoreSkipsAreaForCarUnits(t *testing.T) {
	c := catalog.New()
	car := productByID(t, c, "car-01")

	small := matchScore(car, Profile{Area: 5, Budget: "economy"})
	huge := matchScore(car, Profile{Area: 500, Budget: "economy"})
	if small != huge {
		t.Fatalf("car score varies with area: %d vs %d", small, huge)
	}
}

func TestMatchScoreAreaBands(t *testing.T) {
	c := catalog.New()
	pro := productByID(t, c, "pro-01")

	inRange := matchScore(pro, Profile{Area: 40})
	under := matchScore(pro, Profile{Area: 10})
	over := matchScore(pro, Profile{Area: 200})

	if inRange != 70 {
		t.Fatalf("in-range score = %d, want 70", inRange)
	}
	if under != 60 {
		t.Fatalf("under-range score = %d, want 60", under)
	}
	if over != 40 {
		t.Fatalf("over-range score = %d, want 40", over)
	}
}

func TestMatchScoreProblemMatchNeverLowersScore(t *testing.T) {
	c := catalog.New()

	for _, p := range c.Purifiers() {
		base := Profile{Area: 30, Users: []string{"general"}, SpaceType: "living", Budget: "standard"}
		prev := matchScore(p, base)
		for _, problem := range p.Problems {
			base.Problems = append(base.Problems, problem)
			got := matchScore(p, base)
			if got < prev {
				t.Fatalf("%s: score dropped from %d to %d after adding matched problem %q",
					p.ID, prev, got, problem)
			}
			prev = got
		}
	}
}

func TestMatchScoreSpecialGroupBonus(t *testing.T) {
	c := catalog.New()
	uv := productByID(t, c, "uv-01")

	without := matchScore(uv, Profile{Users: []string{"general"}})
	with := matchScore(uv, Profile{Users: []string{"pet", "baby"}})

	// baby is both a direct group match (+8) and a sensitive-group bonus (+15).
	if with-without != 23 {
		t.Fatalf("special group delta = %d, want 23", with-without)
	}
}

func TestMatchScoreBudgetBands(t *testing.T) {
	c := catalog.New()
	max := productByID(t, c, "max-01") // 5999

	in := matchScore(max, Profile{Budget: "premium"})
	under := matchScore(max, Profile{Budget: "luxury"})
	over := matchScore(max, Profile{Budget: "economy"})

	if in-over != 35 {
		t.Fatalf("in-budget vs over-budget delta = %d, want 35", in-over)
	}
	if under-over != 25 {
		t.Fatalf("under-budget vs over-budget delta = %d, want 25", under-over)
	}
}

func TestProfileSummaryUnknowns(t *testing.T) {
	e := New(catalog.New())
	summary := e.ProfileSummary(Profile{})
	if summary.Area != "未知㎡" {
		t.Fatalf("area = %q", summary.Area)
	}
	if summary.Region != "未知" || summary.Budget != "未知" {
		t.Fatalf("summary = %+v, want unknown placeholders", summary)
	}
}
