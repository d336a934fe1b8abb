package classifier

// Log prefixes
const (
	LogPrefixLLMClassify   = "internal.classifier.LLMClassifier.Classify"
	LogPrefixChainClassify = "internal.classifier.Chain.Classify"
)

// Classifier configuration
const (
	DefaultTemperature = 0.2
	HistoryWindow      = 6
	TracerName         = "travel-assistant/internal/classifier"
)

// PromptClassify lists every capability with its trigger vocabulary.
// Placeholders: recent history, user query.
const PromptClassify = `您是一個台灣旅遊助手的意圖分析器。請分析用戶的查詢並確定需要使用哪些工具來回答。

可用的工具有:

1. highway_tool: 提供高速公路交通狀況資訊，適用於:
   - 用戶詢問特定高速公路路段的壅塞情況
   - 用戶詢問從一地到另一地的高速公路狀況
   - 包含關鍵詞: 國道、高速公路、交流道、塞車、壅塞、路況

2. route_tool: 提供路線規劃，適用於:
   - 用戶詢問從一地到另一地的路線
   - 包含關鍵詞: 怎麼去、路線、路徑、規劃

3. weather_tool: 提供天氣資訊，適用於:
   - 用戶詢問特定地點的天氣狀況或多日天氣預報
   - 必須包含關鍵詞: 天氣、氣溫、降雨、下雨、濕度、紫外線
   - 用戶沒提到天氣的情況下，這個工具不會被使用

4. parking_tool: 提供停車場資訊，適用於:
   - 用戶詢問特定地點的停車場或停車位

5. nearby_tool: 推薦附近的景點、餐廳、咖啡廳，適用於:
   - 包含關鍵詞: 附近、周邊、美食、餐廳、咖啡、小吃

6. schedule_tool: 規劃多日或一日行程，適用於:
   - 包含關鍵詞: 行程、一日遊、二日遊、幾天、兩天一夜

7. general_tool: 一般旅遊問題，只有在其他工具都不適用時才使用

%s請分析以下用戶查詢，判斷需要使用哪些工具來回答。多個工具可能需要同時使用。

用戶查詢: %s

請以 JSON 格式回覆，僅包含工具名稱列表:
{
  "tools": ["tool_name1", "tool_name2"]
}
只需返回 JSON，不需要任何其他解釋。`

// PromptHistoryPrefix introduces the recent turns inside PromptClassify.
const PromptHistoryPrefix = "最近的對話紀錄:\n"

// replySchema validates the object extracted from a model reply.
const replySchema = `{
  "type": "object",
  "required": ["tools"],
  "properties": {
    "tools": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// Error messages
const (
	ErrMsgLLMCallFailed  = "LLM call failed, using keyword fallback"
	ErrMsgUnparseable    = "unparseable reply, using keyword fallback"
	ErrMsgNoCapabilities = "no capability selected, using keyword fallback"
)
