package guide

// Option is a single selectable answer presented alongside a question.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Range       string `json:"range,omitempty"`
}

type region struct {
	Name     string
	Features []string
}

var regions = map[string]region{
	"north": {
		Name:     "北方地区",
		Features: []string{"冬季供暖期PM2.5较高", "春季沙尘天气", "室内干燥"},
	},
	"south": {
		Name:     "南方地区",
		Features: []string{"湿度较高", "梅雨季节霉菌滋生", "夏季高温"},
	},
	"coastal": {
		Name:     "沿海地区",
		Features: []string{"空气湿度大", "盐分腐蚀", "台风季节"},
	},
	"inland": {
		Name:     "内陆地区",
		Features: []string{"气候干燥", "温差较大", "扬尘较多"},
	},
	"industrial": {
		Name:     "工业区附近",
		Features: []string{"工业废气", "VOC污染", "粉尘较多"},
	},
}

var problemNames = map[string]string{
	"pm25":         "PM2.5/雾霾",
	"formaldehyde": "甲醛/装修污染",
	"allergen":     "过敏原/花粉",
	"bacteria":     "细菌/病毒",
	"odor":         "异味/烟味",
	"dust":         "灰尘/毛发",
}

// problemOrder keeps multi-select parsing deterministic.
var problemOrder = []string{"pm25", "formaldehyde", "allergen", "bacteria", "odor", "dust"}

var userGroupNames = map[string]string{
	"baby":        "婴幼儿",
	"elderly":     "老年人",
	"pregnant":    "孕妇",
	"allergy":     "过敏人群",
	"respiratory": "呼吸道疾病患者",
	"pet":         "宠物家庭",
	"general":     "普通成人",
}

var userGroupOrder = []string{"baby", "elderly", "pregnant", "allergy", "respiratory", "pet", "general"}

// specialGroups get extra weight when both the household and the product
// cover at least one of them.
var specialGroups = map[string]bool{
	"baby":        true,
	"elderly":     true,
	"pregnant":    true,
	"respiratory": true,
}

var spaceNames = map[string]string{
	"bedroom":     "卧室",
	"living":      "客厅",
	"nursery":     "婴儿房",
	"office":      "办公室",
	"whole_house": "全屋",
}

type budgetRange struct {
	Name  string
	Label string
	Min   float64
	Max   float64
}

var budgets = map[string]budgetRange{
	"economy":  {Name: "经济型", Label: "1000-2000元", Min: 1000, Max: 2000},
	"standard": {Name: "标准型", Label: "2000-4000元", Min: 2000, Max: 4000},
	"premium":  {Name: "高端型", Label: "4000-8000元", Min: 4000, Max: 8000},
	"luxury":   {Name: "旗舰型", Label: "8000元以上", Min: 8000, Max: 50000},
}

var regionKeywords = []struct {
	Key      string
	Keywords []string
}{
	{"north", []string{"北方", "北京", "天津", "河北", "东北", "西北", "山西", "内蒙"}},
	{"south", []string{"南方", "上海", "广东", "广州", "深圳", "江苏", "浙江", "福建", "湖南", "湖北", "四川", "重庆"}},
	{"coastal", []string{"沿海", "海边", "青岛", "大连", "厦门", "海南", "宁波"}},
	{"inland", []string{"内陆", "中部", "河南", "安徽", "江西", "山东"}},
	{"industrial", []string{"工业", "工厂", "园区"}},
}

var spaceKeywords = []struct {
	Key      string
	Keywords []string
}{
	{"bedroom", []string{"卧室", "睡房", "房间"}},
	{"living", []string{"客厅", "大厅", "起居"}},
	{"nursery", []string{"婴儿房", "儿童房", "宝宝房"}},
	{"office", []string{"办公", "书房", "工作"}},
	{"whole_house", []string{"全屋", "整屋", "全家", "多房间"}},
}

func areaOptions() []Option {
	return []Option{
		{Value: "20", Label: "20㎡以下", Description: "小卧室/书房"},
		{Value: "30", Label: "20-40㎡", Description: "卧室/小客厅"},
		{Value: "50", Label: "40-60㎡", Description: "客厅/大卧室"},
		{Value: "80", Label: "60-100㎡", Description: "大客厅/开放空间"},
		{Value: "120", Label: "100㎡以上", Description: "全屋/大型空间"},
	}
}

func regionOptions() []Option {
	return []Option{
		{Value: "north", Label: "北方地区", Description: "京津冀、东北、西北等"},
		{Value: "south", Label: "南方地区", Description: "长三角、珠三角、西南等"},
		{Value: "coastal", Label: "沿海地区", Description: "沿海城市"},
		{Value: "inland", Label: "内陆地区", Description: "中部内陆城市"},
		{Value: "industrial", Label: "工业区附近", Description: "工业园区周边"},
	}
}

func problemOptions() []Option {
	return []Option{
		{Value: "pm25", Label: "PM2.5/雾霾", Icon: "🌫️"},
		{Value: "formaldehyde", Label: "甲醛/装修污染", Icon: "🏠"},
		{Value: "allergen", Label: "过敏原/花粉", Icon: "🌸"},
		{Value: "bacteria", Label: "细菌/病毒", Icon: "🦠"},
		{Value: "odor", Label: "异味/烟味", Icon: "💨"},
		{Value: "dust", Label: "灰尘/毛发", Icon: "✨"},
	}
}

func userOptions() []Option {
	return []Option{
		{Value: "baby", Label: "婴幼儿", Icon: "👶"},
		{Value: "elderly", Label: "老年人", Icon: "👴"},
		{Value: "pregnant", Label: "孕妇", Icon: "🤰"},
		{Value: "allergy", Label: "过敏人群", Icon: "🤧"},
		{Value: "respiratory", Label: "呼吸道疾病患者", Icon: "🫁"},
		{Value: "pet", Label: "宠物家庭", Icon: "🐾"},
		{Value: "general", Label: "普通成人", Icon: "👨‍👩‍👧‍👦"},
	}
}

func spaceOptions() []Option {
	return []Option{
		{Value: "bedroom", Label: "卧室", Description: "需要静音设计"},
		{Value: "living", Label: "客厅", Description: "需要大风量"},
		{Value: "nursery", Label: "婴儿房", Description: "需要超静音+安全"},
		{Value: "office", Label: "办公室", Description: "需要长时间运行"},
		{Value: "whole_house", Label: "全屋使用", Description: "需要大CADR值"},
	}
}

func budgetOptions() []Option {
	return []Option{
		{Value: "economy", Label: "经济型", Range: "1000-2000元"},
		{Value: "standard", Label: "标准型", Range: "2000-4000元"},
		{Value: "premium", Label: "高端型", Range: "4000-8000元"},
		{Value: "luxury", Label: "旗舰型", Range: "8000元以上"},
	}
}
