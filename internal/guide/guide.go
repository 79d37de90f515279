package guide

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/senxilab/senxi-backend/internal/catalog"
)

// Engine drives the seven-step guided consultation. It is stateless;
// per-conversation state travels in State so callers can persist it
// between turns (the handler keeps it in Redis keyed by session id).
type Engine struct {
	catalog *catalog.Catalog
}

// Profile accumulates the answers collected over the dialogue.
type Profile struct {
	Area      int      `json:"area"`
	Region    string   `json:"region"`
	Problems  []string `json:"problems"`
	Users     []string `json:"users"`
	SpaceType string   `json:"space_type"`
	Budget    string   `json:"budget"`
}

// State is the persisted conversation state.
type State struct {
	CurrentStep int     `json:"current_step"`
	Profile     Profile `json:"profile"`
}

// Reply is one turn of the dialogue: the next question (with options) or,
// on the final step, the recommendations.
type Reply struct {
	Step            int              `json:"step"`
	Type            string           `json:"type"`
	Message         string           `json:"message"`
	NextStep        int              `json:"next_step"`
	Options         []Option         `json:"options,omitempty"`
	Progress        int              `json:"progress"`
	MultiSelect     bool             `json:"multi_select,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	ProfileSummary  *ProfileSummary  `json:"user_profile_summary,omitempty"`
}

func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

func NewState() *State {
	return &State{
		CurrentStep: 0,
		Profile: Profile{
			Problems: []string{},
			Users:    []string{},
		},
	}
}

// Welcome returns the step-0 greeting.
func (e *Engine) Welcome() Reply {
	return Reply{
		Step:     0,
		Type:     "welcome",
		Message:  "您好！我是森系智韵的智能空气顾问。接下来我将通过几个简单的问题，为您量身定制专属的空气管理方案。准备好了吗？",
		NextStep: 1,
		Progress: 0,
	}
}

// Process consumes the user's answer for the given step, updates the state
// and returns the next turn. Unknown steps restart with the welcome message.
func (e *Engine) Process(state *State, input string, step int) Reply {
	switch step {
	case 1:
		return e.processArea(state, input)
	case 2:
		return e.processRegion(state, input)
	case 3:
		return e.processProblems(state, input)
	case 4:
		return e.processUsers(state, input)
	case 5:
		return e.processSpaceType(state, input)
	case 6:
		return e.processBudget(state, input)
	default:
		return e.Welcome()
	}
}

var digitsRe = regexp.MustCompile(`\d+`)

func (e *Engine) processArea(state *State, input string) Reply {
	reprompt := Reply{
		Step:     1,
		Type:     "area",
		Message:  "抱歉，我没有理解您输入的面积。请输入一个数字，例如：30",
		NextStep: 1,
		Options:  areaOptions(),
		Progress: 14,
	}
	match := digitsRe.FindString(input)
	if match == "" {
		return reprompt
	}
	area, err := strconv.Atoi(match)
	if err != nil {
		return reprompt
	}
	state.Profile.Area = area
	state.CurrentStep = 2

	return Reply{
		Step:     2,
		Type:     "region",
		Message:  fmt.Sprintf("好的，您的空间面积是%d平方米。请问您居住在哪个区域？不同区域的空气特征会影响我们的推荐方案。", area),
		NextStep: 2,
		Options:  regionOptions(),
		Progress: 28,
	}
}

func (e *Engine) processRegion(state *State, input string) Reply {
	key := matchRegion(input)
	state.Profile.Region = key
	state.CurrentStep = 3

	info := regions[key]
	features := info.Features
	if len(features) > 2 {
		features = features[:2]
	}

	return Reply{
		Step:        3,
		Type:        "problems",
		Message:     fmt.Sprintf("了解了，%s的空气特点是：%s。请问您最关注哪些空气问题？（可多选）", info.Name, strings.Join(features, "、")),
		NextStep:    3,
		Options:     problemOptions(),
		Progress:    42,
		MultiSelect: true,
	}
}

func (e *Engine) processProblems(state *State, input string) Reply {
	problems := parseMultiSelect(input, problemOrder, problemNames)
	if len(problems) == 0 {
		problems = []string{"pm25"}
	}
	state.Profile.Problems = problems
	state.CurrentStep = 4

	names := make([]string, 0, len(problems))
	for _, p := range problems {
		names = append(names, problemNames[p])
	}

	return Reply{
		Step:        4,
		Type:        "users",
		Message:     fmt.Sprintf("明白了，您主要关注%s问题。请问家中主要有哪些成员？（可多选，这将帮助我们推荐更适合的产品）", strings.Join(names, "、")),
		NextStep:    4,
		Options:     userOptions(),
		Progress:    56,
		MultiSelect: true,
	}
}

func (e *Engine) processUsers(state *State, input string) Reply {
	users := parseMultiSelect(input, userGroupOrder, userGroupNames)
	if len(users) == 0 {
		users = []string{"general"}
	}
	state.Profile.Users = users
	state.CurrentStep = 5

	return Reply{
		Step:     5,
		Type:     "space_type",
		Message:  "请问您主要想在哪个空间使用空气净化器？",
		NextStep: 5,
		Options:  spaceOptions(),
		Progress: 70,
	}
}

func (e *Engine) processSpaceType(state *State, input string) Reply {
	state.Profile.SpaceType = matchSpace(input)
	state.CurrentStep = 6

	return Reply{
		Step:     6,
		Type:     "budget",
		Message:  "最后一个问题，请问您的预算范围是？",
		NextStep: 6,
		Options:  budgetOptions(),
		Progress: 84,
	}
}

func (e *Engine) processBudget(state *State, input string) Reply {
	state.Profile.Budget = matchBudget(input)
	state.CurrentStep = 7

	summary := e.ProfileSummary(state.Profile)
	return Reply{
		Step:            7,
		Type:            "recommendation",
		Message:         "感谢您的耐心回答！根据您的需求，我为您精心挑选了以下空气管理方案：",
		NextStep:        7,
		Recommendations: e.Recommend(state.Profile),
		Progress:        100,
		ProfileSummary:  &summary,
	}
}

func matchRegion(input string) string {
	input = strings.ToLower(input)
	for _, entry := range regionKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(input, kw) {
				return entry.Key
			}
		}
	}
	return "north"
}

func matchSpace(input string) string {
	input = strings.ToLower(input)
	for _, entry := range spaceKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(input, kw) {
				return entry.Key
			}
		}
	}
	return "living"
}

func matchBudget(input string) string {
	input = strings.ToLower(input)
	switch {
	case containsAny(input, "经济", "1000", "便宜"):
		return "economy"
	case containsAny(input, "标准", "2000", "3000"):
		return "standard"
	case containsAny(input, "高端", "4000", "5000", "6000"):
		return "premium"
	case containsAny(input, "旗舰", "8000", "顶级", "最好"):
		return "luxury"
	}
	return "standard"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parseMultiSelect picks every option whose key or display name occurs in
// the input, in table order.
func parseMultiSelect(input string, order []string, names map[string]string) []string {
	input = strings.ToLower(input)
	var selected []string
	for _, key := range order {
		if strings.Contains(input, key) || strings.Contains(input, names[key]) {
			selected = append(selected, key)
		}
	}
	return selected
}
