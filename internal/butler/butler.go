// Package butler implements the keyword-driven support chatbot. Intent
// classification is a scored keyword match over a fixed intent table;
// replies come from a static knowledge base.
package butler

import (
	"strings"
	"sync"
	"time"
)

const (
	IntentProductInquiry = "product_inquiry"
	IntentUsageGuide     = "usage_guide"
	IntentTroubleshoot   = "troubleshoot"
	IntentFilterReplace  = "filter_replace"
	IntentAirQuality     = "air_quality"
	IntentOrderService   = "order_service"
	IntentGeneral        = "general"
)

// intentKeywords is ordered; on a score tie the earlier intent wins.
var intentKeywords = []struct {
	Intent   string
	Keywords []string
}{
	{IntentProductInquiry, []string{"推荐", "哪款", "选择", "对比", "区别", "哪个好", "买什么", "适合"}},
	{IntentUsageGuide, []string{"怎么用", "如何使用", "操作", "设置", "连接", "配对", "app", "模式"}},
	{IntentTroubleshoot, []string{"故障", "问题", "不工作", "坏了", "异常", "噪音", "不转", "报警", "闪烁"}},
	{IntentFilterReplace, []string{"滤芯", "滤网", "更换", "清洗", "多久换", "寿命", "耗材"}},
	{IntentAirQuality, []string{"空气质量", "pm2.5", "甲醛", "aqi", "污染", "指数", "数值"}},
	{IntentOrderService, []string{"订单", "物流", "发货", "退货", "换货", "售后", "保修"}},
	{IntentGeneral, []string{"你好", "在吗", "帮助", "客服", "人工"}},
}

var quickReplies = map[string][]string{
	"general": {
		"如何选择适合我的空气净化器？",
		"净界者产品有什么特点？",
		"滤芯多久需要更换？",
		"如何查看空气质量数据？",
	},
	"product": {
		"森林呼吸Pro和清新之风Max有什么区别？",
		"哪款适合婴儿房使用？",
		"除甲醛效果最好的是哪款？",
		"有没有适合大客厅的产品？",
	},
	"usage": {
		"如何连接手机APP？",
		"睡眠模式怎么开启？",
		"自动模式是如何工作的？",
		"如何设置定时开关机？",
	},
	"troubleshoot": {
		"净化器噪音变大怎么办？",
		"显示屏一直闪烁是什么原因？",
		"出风口风量变小了怎么处理？",
		"滤芯指示灯亮了怎么办？",
	},
}

// Reply is one chatbot answer.
type Reply struct {
	Message          string   `json:"message"`
	Intent           string   `json:"intent"`
	QuickReplies     []string `json:"quick_replies,omitempty"`
	ShowProducts     bool     `json:"show_products,omitempty"`
	ShowHumanService bool     `json:"show_human_service,omitempty"`
	TransferStatus   string   `json:"transfer_status,omitempty"`
	QueuePosition    int      `json:"queue_position,omitempty"`
}

// HistoryEntry is one turn of the recorded conversation.
type HistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const maxHistory = 100

// Butler answers support questions. Safe for concurrent use.
type Butler struct {
	mu      sync.Mutex
	history []HistoryEntry
}

func New() *Butler {
	return &Butler{}
}

// Chat classifies the message, builds a reply and records both turns.
func (b *Butler) Chat(message string) Reply {
	intent := classify(message)
	reply := b.respond(intent, message)

	now := time.Now()
	b.mu.Lock()
	b.history = append(b.history,
		HistoryEntry{Role: "user", Content: message, Timestamp: now},
		HistoryEntry{Role: "assistant", Content: reply.Message, Timestamp: now},
	)
	if len(b.history) > maxHistory {
		b.history = b.history[len(b.history)-maxHistory:]
	}
	b.mu.Unlock()

	return reply
}

// History returns a copy of the recorded turns, oldest first.
func (b *Butler) History() []HistoryEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]HistoryEntry, len(b.history))
	copy(out, b.history)
	return out
}

// QuickReplies returns the canned prompts for a category, falling back to
// the general set.
func (b *Butler) QuickReplies(category string) []string {
	if replies, ok := quickReplies[category]; ok {
		return replies
	}
	return quickReplies["general"]
}

// TransferToHuman simulates handing the conversation to a support agent.
func (b *Butler) TransferToHuman() Reply {
	return Reply{
		Message:        "正在为您转接人工客服，请稍候...\n\n当前排队人数：2人\n预计等待时间：约3分钟\n\n您也可以留下联系方式，客服将在工作时间内回电。",
		Intent:         "transfer",
		TransferStatus: "pending",
		QueuePosition:  2,
	}
}

// classify scores each intent by keyword hits; the highest score wins and
// earlier intents win ties. No hit at all falls back to general.
func classify(message string) string {
	message = strings.ToLower(message)

	best := IntentGeneral
	bestScore := 0
	for _, entry := range intentKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(message, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Intent
			bestScore = score
		}
	}
	return best
}

func (b *Butler) respond(intent, message string) Reply {
	switch intent {
	case IntentProductInquiry:
		return handleProductInquiry(message)
	case IntentUsageGuide:
		return handleUsageGuide(message)
	case IntentTroubleshoot:
		return handleTroubleshoot(message)
	case IntentFilterReplace:
		return handleFilterInquiry(message)
	case IntentAirQuality:
		return handleAirQuality(message)
	case IntentOrderService:
		return handleOrderService()
	default:
		return handleGeneral()
	}
}
