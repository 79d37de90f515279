package butler

import (
	"fmt"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"推荐一款净化器", IntentProductInquiry},
		{"怎么用手机连接", IntentUsageGuide},
		{"机器不工作了", IntentTroubleshoot},
		{"我的净化器噪音变大了", IntentTroubleshoot},
		{"滤芯多久换一次", IntentFilterReplace},
		{"pm2.5指数是什么意思", IntentAirQuality},
		{"我的订单什么时候发货", IntentOrderService},
		{"你好", IntentGeneral},
		{"今天天气不错", IntentGeneral},
	}
	for _, tc := range cases {
		if got := classify(tc.message); got != tc.want {
			t.Errorf("classify(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestClassifyTieBreakPrefersEarlierIntent(t *testing.T) {
	// One keyword hit for product_inquiry and one for filter_replace;
	// the earlier table entry must win the tie.
	if got := classify("推荐什么滤芯"); got != IntentProductInquiry {
		t.Fatalf("tie broke to %q, want %q", got, IntentProductInquiry)
	}
}

func TestChatProductInquiryShowsProducts(t *testing.T) {
	reply := New().Chat("推荐一款适合婴儿房的净化器")
	if reply.Intent != IntentProductInquiry {
		t.Fatalf("intent = %q", reply.Intent)
	}
	if !reply.ShowProducts {
		t.Fatal("product inquiry should show product cards")
	}
	if reply.Message == "" {
		t.Fatal("empty reply message")
	}
}

func TestChatTroubleshootOffersHumanService(t *testing.T) {
	reply := New().Chat("我的净化器噪音变大了")
	if reply.Intent != IntentTroubleshoot {
		t.Fatalf("intent = %q", reply.Intent)
	}
	if !reply.ShowHumanService {
		t.Fatal("troubleshoot reply should offer human service")
	}
	if !strings.Contains(reply.Message, "噪音") {
		t.Fatalf("reply does not address noise: %q", reply.Message)
	}
}

func TestChatRecordsHistory(t *testing.T) {
	b := New()
	b.Chat("你好")
	b.Chat("滤芯多久换")

	history := b.History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Role != "user" || history[0].Content != "你好" {
		t.Fatalf("first entry = %+v", history[0])
	}
	if history[1].Role != "assistant" {
		t.Fatalf("second entry role = %q", history[1].Role)
	}
}

func TestHistoryIsCapped(t *testing.T) {
	b := New()
	for i := 0; i < maxHistory; i++ {
		b.Chat(fmt.Sprintf("你好 %d", i))
	}
	if got := len(b.History()); got != maxHistory {
		t.Fatalf("history length = %d, want %d", got, maxHistory)
	}
}

func TestQuickRepliesFallback(t *testing.T) {
	b := New()
	if got := b.QuickReplies("usage"); len(got) == 0 {
		t.Fatal("usage quick replies empty")
	}
	unknown := b.QuickReplies("nonsense")
	general := b.QuickReplies("general")
	if len(unknown) != len(general) {
		t.Fatal("unknown category should fall back to general prompts")
	}
}

func TestTransferToHuman(t *testing.T) {
	reply := New().TransferToHuman()
	if reply.TransferStatus != "pending" {
		t.Fatalf("status = %q, want pending", reply.TransferStatus)
	}
	if reply.QueuePosition != 2 {
		t.Fatalf("queue position = %d, want 2", reply.QueuePosition)
	}
}
