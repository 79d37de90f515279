package guide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/senxilab/senxi-backend/internal/catalog"
)

// Recommendation pairs a catalog product with its match score and the
// human-readable reasons behind it.
type Recommendation struct {
	Product      catalog.Product `json:"product"`
	Score        int             `json:"score"`
	MatchReasons []string        `json:"match_reasons"`
}

// ProfileSummary is the display form of a completed profile.
type ProfileSummary struct {
	Area      string   `json:"area"`
	Region    string   `json:"region"`
	Problems  []string `json:"problems"`
	Users     []string `json:"users"`
	SpaceType string   `json:"space_type"`
	Budget    string   `json:"budget"`
}

// Recommend scores every purifier against the profile and returns the top
// three positive matches, best first.
func (e *Engine) Recommend(profile Profile) []Recommendation {
	var scored []Recommendation
	for _, p := range e.catalog.Purifiers() {
		score := matchScore(p, profile)
		if score > 0 {
			scored = append(scored, Recommendation{
				Product:      p,
				Score:        score,
				MatchReasons: matchReasons(p, profile),
			})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

func matchScore(p catalog.Product, profile Profile) int {
	score := 50

	// Area fit. Products without a numeric range (car units) skip this.
	if profile.Area > 0 && p.AreaMax > 0 {
		switch {
		case p.AreaMin <= profile.Area && profile.Area <= p.AreaMax:
			score += 20
		case profile.Area < p.AreaMin:
			score += 10
		default:
			score -= 10
		}
	}

	score += countMatches(profile.Problems, p.Problems) * 10
	score += countMatches(profile.Users, p.UserGroups) * 8

	// Households with sensitive members favor products certified for them.
	if hasSpecialGroup(profile.Users) && hasSpecialGroup(p.UserGroups) {
		score += 15
	}

	if profile.SpaceType != "" {
		for _, s := range p.SuitableFor {
			if s == profile.SpaceType {
				score += 15
				break
			}
		}
	}

	if b, ok := budgets[profile.Budget]; ok {
		switch {
		case b.Min <= p.Price && p.Price <= b.Max:
			score += 20
		case p.Price < b.Min:
			score += 10
		default:
			score -= 15
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

func matchReasons(p catalog.Product, profile Profile) []string {
	var reasons []string

	if profile.Area > 0 {
		reasons = append(reasons, fmt.Sprintf("适用面积覆盖您的%d㎡空间", profile.Area))
	}

	if matched := intersect(profile.Problems, p.Problems); len(matched) > 0 {
		names := make([]string, 0, len(matched))
		for _, m := range matched {
			names = append(names, problemNames[m])
		}
		reasons = append(reasons, fmt.Sprintf("有效解决%s问题", strings.Join(names, "/")))
	}

	if matched := intersect(profile.Users, p.UserGroups); len(matched) > 0 {
		names := make([]string, 0, len(matched))
		for _, m := range matched {
			names = append(names, userGroupNames[m])
		}
		reasons = append(reasons, fmt.Sprintf("特别适合%s使用", strings.Join(names, "/")))
	}

	if len(p.Features) > 0 {
		reasons = append(reasons, fmt.Sprintf("配备%s等核心技术", p.Features[0]))
	}

	if len(reasons) > 4 {
		reasons = reasons[:4]
	}
	return reasons
}

// ProfileSummary renders the collected answers with display names.
func (e *Engine) ProfileSummary(profile Profile) ProfileSummary {
	area := "未知"
	if profile.Area > 0 {
		area = fmt.Sprintf("%d", profile.Area)
	}
	regionName := "未知"
	if r, ok := regions[profile.Region]; ok {
		regionName = r.Name
	}
	spaceName := "未知"
	if s, ok := spaceNames[profile.SpaceType]; ok {
		spaceName = s
	}
	budgetLabel := "未知"
	if b, ok := budgets[profile.Budget]; ok {
		budgetLabel = b.Label
	}

	problems := make([]string, 0, len(profile.Problems))
	for _, p := range profile.Problems {
		if name, ok := problemNames[p]; ok {
			problems = append(problems, name)
		} else {
			problems = append(problems, p)
		}
	}
	users := make([]string, 0, len(profile.Users))
	for _, u := range profile.Users {
		if name, ok := userGroupNames[u]; ok {
			users = append(users, name)
		} else {
			users = append(users, u)
		}
	}

	return ProfileSummary{
		Area:      area + "㎡",
		Region:    regionName,
		Problems:  problems,
		Users:     users,
		SpaceType: spaceName,
		Budget:    budgetLabel,
	}
}

func countMatches(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	n := 0
	for _, v := range a {
		if set[v] {
			n++
		}
	}
	return n
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []string
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func hasSpecialGroup(groups []string) bool {
	for _, g := range groups {
		if specialGroups[g] {
			return true
		}
	}
	return false
}
