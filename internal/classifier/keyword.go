package classifier

import (
	"context"
	"strings"

	"travel-assistant/internal/model"
)

// keywordRule pairs a capability with the substrings that select it.
type keywordRule struct {
	capability model.CapabilityID
	keywords   []string
}

// keywordTable is evaluated in order; general has no keywords and is the no-match result.
var keywordTable = []keywordRule{
	{model.CapabilityHighway, []string{"國道", "高速公路", "交流道", "塞車", "壅塞", "路況", "中山高", "二高", "國1", "國3", "國5", "highway", "freeway", "traffic jam"}},
	{model.CapabilityRoute, []string{"怎麼去", "路線", "路徑", "規劃", "從", "到", "前往", "出發", "抵達", "距離", "時間", "route", "directions", "how to get"}},
	{model.CapabilityWeather, []string{"天氣", "氣溫", "降雨", "濕度", "紫外線", "下雨", "晴天", "陰天", "颱風", "溫度", "weather", "temperature", "rain", "forecast"}},
	{model.CapabilityParking, []string{"停車場", "停車位", "停車", "停車資訊", "parking"}},
	{model.CapabilityNearby, []string{"附近", "周邊", "周遭", "美食", "餐廳", "咖啡", "小吃", "nearby", "restaurant", "cafe"}},
	{model.CapabilitySchedule, []string{"行程", "一日遊", "二日遊", "三日遊", "幾天", "天兩夜", "天一夜", "itinerary", "day trip"}},
}

// KeywordClassifier selects capabilities by substring match. It never fails.
type KeywordClassifier struct{}

var _ Classifier = (*KeywordClassifier)(nil)

// Classify returns every capability with a matching keyword, or {general}.
func (k *KeywordClassifier) Classify(_ context.Context, query model.Query) ([]model.CapabilityID, error) {
	return MatchKeywords(query.Text), nil
}

// MatchKeywords applies the keyword table to text.
func MatchKeywords(text string) []model.CapabilityID {
	normalized := strings.ToLower(text)

	var out []model.CapabilityID
	for _, rule := range keywordTable {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				out = append(out, rule.capability)
				break
			}
		}
	}

	if len(out) == 0 {
		return []model.CapabilityID{model.CapabilityGeneral}
	}
	return out
}
