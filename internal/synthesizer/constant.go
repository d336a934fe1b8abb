package synthesizer

import "travel-assistant/internal/model"

// Log prefixes
const (
	LogPrefixSynthesize = "internal.synthesizer.Synthesizer.Synthesize"
)

const (
	DefaultTemperature = 0.5
	TracerName         = "travel-assistant/internal/synthesizer"
)

// Fixed user-facing text
const (
	MsgEmpty   = "抱歉，我無法處理您的查詢。請嘗試提供更具體的問題。"
	MsgIntro   = "以下是您查詢的相關資訊:"
	MsgClosing = "希望以上資訊能幫助到您！祝您旅途愉快。"
)

// headings used by the deterministic rendering
var headings = map[model.CapabilityID]string{
	model.CapabilityRoute:    "🗺️ 路線規劃:",
	model.CapabilityWeather:  "🌤️ 天氣資訊:",
	model.CapabilityHighway:  "🛣️ 高速公路交通資訊:",
	model.CapabilityParking:  "🅿️ 停車場資訊:",
	model.CapabilityNearby:   "📍 附近地點推薦:",
	model.CapabilityGeneral:  "💬 一般旅遊建議:",
	model.CapabilitySchedule: "🗓️ 行程規劃建議:",
}

// scopes describe what each capability can and cannot answer, for the merge prompt.
var scopes = map[model.CapabilityID]string{
	model.CapabilityRoute:    "路線規劃：提供兩地之間的行車路線、距離與預估時間，不含即時路況",
	model.CapabilityWeather:  "天氣資訊：提供指定地點的天氣預報，不含交通資訊",
	model.CapabilityHighway:  "高速公路交通資訊：提供國道路段的即時壅塞狀況，不含一般道路",
	model.CapabilityParking:  "停車場資訊：提供指定地點附近停車場與剩餘車位，資料可能有延遲",
	model.CapabilityNearby:   "附近地點推薦：推薦附近的景點、餐廳與咖啡廳",
	model.CapabilityGeneral:  "一般旅遊建議：一般性的旅遊知識與建議，非即時資料",
	model.CapabilitySchedule: "行程規劃建議：依天數安排的行程草案，未確認營業時間",
}

// PromptIntegrate opens the merge instruction. Placeholder: original query.
const PromptIntegrate = `您是一個台灣旅遊助手，負責將多個專業工具的回應整合成一個連貫、友善、有組織的回應。

用戶原始查詢:
%s

各工具的資料範圍與限制:
`

// PromptSectionHeader precedes each partial result. Placeholder: capability label.
const PromptSectionHeader = "\n==== %s ====\n"

// PromptIntegrateTail closes the merge instruction.
const PromptIntegrateTail = `
請將以上資訊整合成一個連貫的回應，避免重複資訊，並根據問題的核心需求進行優先排序。
回應應該:
1. 先回答用戶最關心的問題
2. 將相關資訊組織在一起
3. 提供一個簡短的總結，包含最重要的提醒或建議
4. 保持友善、專業的語氣
5. 使用與用戶相同的語言與語氣

請提供整合後的完整回應:`
