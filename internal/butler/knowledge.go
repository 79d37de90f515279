package butler

import (
	"fmt"
	"strings"
)

type productInfo struct {
	Name     string
	Features string
	Suitable string
	Price    string
}

var productKnowledge = map[string]productInfo{
	"mini": {
		Name:     "自然守护Mini",
		Features: "HEPA H12滤网，CADR值200m³/h，适用14-24㎡，静音模式仅25dB",
		Suitable: "小卧室、书房、办公桌",
		Price:    "1299元",
	},
	"pro": {
		Name:     "森林呼吸Pro",
		Features: "HEPA H13滤网，CADR值450m³/h，甲醛CADR 200m³/h，智能感应，APP控制",
		Suitable: "客厅、卧室、办公室",
		Price:    "2999元",
	},
	"max": {
		Name:     "清新之风Max",
		Features: "HEPA H13+双重活性炭，CADR值800m³/h，UV消毒，负离子，甲醛数显",
		Suitable: "大客厅、全屋、别墅",
		Price:    "5999元",
	},
	"uv": {
		Name:     "紫光卫士",
		Features: "HEPA H13+UV-C消毒，等离子杀菌，医疗级认证",
		Suitable: "婴儿房、老人房、病患房间",
		Price:    "3999元",
	},
}

var usageGuides = map[string]string{
	"app_connect": `连接手机APP步骤：
1. 下载"净界者"APP（iOS/Android均可）
2. 注册并登录账号
3. 确保手机连接2.4GHz WiFi
4. 点击APP首页"+"添加设备
5. 长按净化器WiFi键3秒进入配网模式
6. 按APP提示完成配对`,
	"sleep_mode": `睡眠模式开启方法：
1. 按下机身"模式"按钮切换至睡眠模式
2. 或在APP中选择"睡眠模式"
睡眠模式特点：
- 风速自动降至最低档
- 显示屏亮度降低或关闭
- 噪音低至25dB
- 自动感应空气质量调节`,
	"auto_mode": `自动模式工作原理：
净化器内置高精度空气质量传感器，实时监测：
- PM2.5浓度
- VOC/甲醛浓度
- 温湿度
根据监测数据自动调节风速：
- 空气优良：低速静音运行
- 轻度污染：中速净化
- 重度污染：高速强力净化`,
}

var troubleshootingGuides = map[string]string{
	"noise": `噪音变大可能原因及解决方案：
1. 滤芯堵塞 → 检查并更换滤芯
2. 进风口被遮挡 → 确保四周留有足够空间
3. 风扇积灰 → 用软刷清洁风扇叶片
4. 机器未放平 → 调整至水平位置
5. 内部异物 → 关机检查是否有异物进入
如问题持续，请联系售后服务。`,
	"display_flash": `显示屏闪烁原因：
1. 滤芯寿命到期提醒 → 更换新滤芯后重置
2. 传感器需要清洁 → 用棉签轻轻清洁传感器
3. 电源电压不稳 → 更换稳定电源插座
4. 系统故障 → 长按电源键10秒重启`,
	"weak_airflow": `出风量变小解决方案：
1. 首先检查滤芯是否需要更换
2. 清洁进风口和出风口
3. 检查是否误开启睡眠/静音模式
4. 确认风速档位设置
5. 检查滤芯安装是否正确`,
	"filter_indicator": `滤芯指示灯亮起说明：
滤芯已达到建议更换时间，请及时更换以保证净化效果。
更换步骤：
1. 关闭并断开电源
2. 打开后盖/侧盖
3. 取出旧滤芯
4. 装入新滤芯（注意方向）
5. 盖好盖板
6. 开机后长按滤芯重置键3秒`,
}

const filterLifespan = "建议6-12个月更换一次，具体取决于使用环境和频率。重污染地区或24小时运行建议6个月更换。"

var filterTypes = []string{
	"HEPA滤网：过滤PM2.5、花粉、灰尘等颗粒物，不可水洗",
	"活性炭滤网：吸附甲醛、异味、VOC，不可水洗",
	"初效滤网：过滤大颗粒灰尘毛发，可定期清洗",
}

const filterPurchase = "请通过官方渠道购买原装滤芯，确保净化效果和安全性。"

var aqiLevels = []struct {
	Range string
	Desc  string
}{
	{"0-50", "优，空气质量令人满意，基本无污染"},
	{"51-100", "良，空气质量可接受，敏感人群应减少户外活动"},
	{"101-150", "轻度污染，敏感人群会有不适"},
	{"151-200", "中度污染，进一步加剧敏感人群症状"},
	{"201-300", "重度污染，所有人都可能受到影响"},
	{"300+", "严重污染，健康警报，所有人应避免户外活动"},
}

const pm25Knowledge = "PM2.5是直径小于2.5微米的细颗粒物，可深入肺部甚至血液，WHO建议年均值不超过5μg/m³"

const formaldehydeKnowledge = "甲醛是一类致癌物，室内安全标准为≤0.08mg/m³，新装修房屋甲醛释放周期可达3-15年"

func handleProductInquiry(message string) Reply {
	message = strings.ToLower(message)

	var text string
	switch {
	case containsAny(message, "mini", "入门", "便宜"):
		p := productKnowledge["mini"]
		text = fmt.Sprintf("推荐您了解我们的%s：\n\n%s\n\n适用场景：%s\n价格：%s\n\n这款产品性价比很高，非常适合小空间使用。",
			p.Name, p.Features, p.Suitable, p.Price)
	case containsAny(message, "pro", "除甲醛", "智能"):
		p := productKnowledge["pro"]
		text = fmt.Sprintf("为您推荐%s：\n\n%s\n\n适用场景：%s\n价格：%s\n\n这是我们的明星产品，除甲醛效果出色，支持智能控制。",
			p.Name, p.Features, p.Suitable, p.Price)
	case containsAny(message, "max", "大", "全屋", "旗舰"):
		p := productKnowledge["max"]
		text = fmt.Sprintf("隆重推荐%s：\n\n%s\n\n适用场景：%s\n价格：%s\n\n这是我们的旗舰产品，适合大空间和追求极致净化效果的用户。",
			p.Name, p.Features, p.Suitable, p.Price)
	case containsAny(message, "婴儿", "宝宝", "杀菌", "消毒"):
		p := productKnowledge["uv"]
		text = fmt.Sprintf("特别推荐%s：\n\n%s\n\n适用场景：%s\n价格：%s\n\n这款产品通过医疗级认证，UV-C消毒功能可有效杀灭细菌病毒，特别适合有婴幼儿或免疫力较弱人群的家庭。",
			p.Name, p.Features, p.Suitable, p.Price)
	default:
		text = `我来帮您选择合适的产品！我们有以下系列：

🌿 **自然守护Mini** (¥1299)
适合小空间，静音设计，入门首选

🌲 **森林呼吸Pro** (¥2999) ⭐销量冠军
除甲醛专家，智能控制，适合大多数家庭

🍃 **清新之风Max** (¥5999)
旗舰之选，全能净化，适合大空间

💜 **紫光卫士** (¥3999)
医疗级杀菌，母婴优选

您可以告诉我您的具体需求（房间大小、主要问题、预算等），我来为您精准推荐！`
	}

	return Reply{
		Message:      text,
		Intent:       IntentProductInquiry,
		QuickReplies: quickReplies["product"],
		ShowProducts: true,
	}
}

func handleUsageGuide(message string) Reply {
	message = strings.ToLower(message)

	var text string
	switch {
	case containsAny(message, "app", "连接", "配对"):
		text = usageGuides["app_connect"]
	case strings.Contains(message, "睡眠"):
		text = usageGuides["sleep_mode"]
	case strings.Contains(message, "自动"):
		text = usageGuides["auto_mode"]
	default:
		text = `我可以帮您解答使用问题，请问您想了解：

1. 📱 如何连接手机APP
2. 🌙 睡眠模式使用方法
3. 🔄 自动模式工作原理
4. ⏰ 定时功能设置
5. 🔧 滤芯更换方法

请选择或直接描述您的问题。`
	}

	return Reply{
		Message:      text,
		Intent:       IntentUsageGuide,
		QuickReplies: quickReplies["usage"],
	}
}

func handleTroubleshoot(message string) Reply {
	message = strings.ToLower(message)

	var text string
	switch {
	case containsAny(message, "噪音", "声音大"):
		text = troubleshootingGuides["noise"]
	case containsAny(message, "闪烁", "显示"):
		text = troubleshootingGuides["display_flash"]
	case strings.Contains(message, "风") && containsAny(message, "小", "弱"):
		text = troubleshootingGuides["weak_airflow"]
	case strings.Contains(message, "滤芯") && containsAny(message, "灯", "亮"):
		text = troubleshootingGuides["filter_indicator"]
	default:
		text = `我来帮您排查问题。常见故障及解决方案：

🔊 **噪音变大** - 可能是滤芯堵塞或风扇积灰
💡 **显示屏闪烁** - 可能是滤芯提醒或传感器需清洁
💨 **出风量变小** - 检查滤芯和运行模式
⚠️ **滤芯指示灯亮** - 需要更换滤芯

请描述具体症状，我来为您提供针对性解决方案。

如果问题无法解决，可以转接人工客服为您服务。`
	}

	return Reply{
		Message:          text,
		Intent:           IntentTroubleshoot,
		QuickReplies:     quickReplies["troubleshoot"],
		ShowHumanService: true,
	}
}

func handleFilterInquiry(message string) Reply {
	message = strings.ToLower(message)

	var text string
	if containsAny(message, "多久", "寿命", "更换") {
		var sb strings.Builder
		fmt.Fprintf(&sb, "**滤芯更换周期**\n\n%s\n\n**滤芯类型说明：**\n", filterLifespan)
		for _, desc := range filterTypes {
			fmt.Fprintf(&sb, "• %s\n", desc)
		}
		fmt.Fprintf(&sb, "\n%s", filterPurchase)
		text = sb.String()
	} else {
		text = `**滤芯知识小课堂**

🔹 **HEPA滤网**
过滤PM2.5、花粉、灰尘等，建议6-12个月更换

🔹 **活性炭滤网**
吸附甲醛、异味、VOC，建议6-12个月更换

🔹 **初效滤网**
过滤大颗粒物，可定期清洗重复使用

**温馨提示：**
• 重污染地区建议缩短更换周期
• 请购买官方原装滤芯
• 更换后记得重置滤芯计时器`
	}

	return Reply{
		Message:      text,
		Intent:       IntentFilterReplace,
		QuickReplies: []string{"如何购买原装滤芯？", "滤芯更换步骤", "如何重置滤芯计时器？"},
	}
}

func handleAirQuality(message string) Reply {
	message = strings.ToLower(message)

	var text string
	switch {
	case containsAny(message, "aqi", "指数"):
		var sb strings.Builder
		sb.WriteString("**空气质量指数(AQI)等级说明：**\n\n")
		for _, level := range aqiLevels {
			fmt.Fprintf(&sb, "• AQI %s：%s\n", level.Range, level.Desc)
		}
		text = sb.String()
	case containsAny(message, "pm2.5", "pm"):
		text = fmt.Sprintf("**PM2.5知识**\n\n%s\n\n净界者空气净化器采用HEPA H13滤网，对PM2.5过滤效率达99.97%%。", pm25Knowledge)
	case strings.Contains(message, "甲醛"):
		text = fmt.Sprintf("**甲醛知识**\n\n%s\n\n推荐使用森林呼吸Pro或清新之风Max，配备专业除醛滤网和甲醛数显功能。", formaldehydeKnowledge)
	default:
		text = `**空气质量小百科**

🌡️ **常见空气污染物：**
• PM2.5 - 细颗粒物，可深入肺部
• 甲醛 - 装修污染主要来源
• VOC - 挥发性有机化合物
• 花粉 - 季节性过敏原

📊 **AQI空气质量指数：**
0-50 优 | 51-100 良 | 101-150 轻度污染
151-200 中度 | 201-300 重度 | 300+ 严重

您想了解哪方面的详细信息？`
	}

	return Reply{
		Message:      text,
		Intent:       IntentAirQuality,
		QuickReplies: []string{"什么是PM2.5？", "甲醛危害有哪些？", "AQI指数怎么看？"},
	}
}

func handleOrderService() Reply {
	return Reply{
		Message: `**订单与售后服务**

📦 **物流查询**
请登录APP或官网，在"我的订单"中查看物流信息

🔄 **退换货政策**
• 7天无理由退货
• 15天换货
• 1年整机保修
• 核心部件3年保修

📞 **联系方式**
• 客服热线：400-888-8888
• 服务时间：9:00-21:00
• 在线客服：APP内咨询

如需人工服务，请点击下方按钮转接。`,
		Intent:           IntentOrderService,
		QuickReplies:     []string{"查询订单状态", "申请退换货", "联系人工客服"},
		ShowHumanService: true,
	}
}

func handleGeneral() Reply {
	return Reply{
		Message: `您好！我是森系智韵的AI空气管家 🌿

我可以帮您：
• 🛒 **产品推荐** - 根据需求推荐合适的空气净化器
• 📖 **使用指导** - 解答产品使用问题
• 🔧 **故障排查** - 帮您解决设备问题
• 🔄 **滤芯服务** - 滤芯更换指导
• 🌡️ **空气知识** - 空气质量科普

请问有什么可以帮您的？`,
		Intent:       IntentGeneral,
		QuickReplies: quickReplies["general"],
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
