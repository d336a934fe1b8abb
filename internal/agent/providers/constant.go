package providers

import "time"

// Log prefixes
const (
	LogPrefixPromptInvoke = "internal.agent.providers.PromptProvider.Invoke"
	LogPrefixRemoteInvoke = "internal.agent.providers.RemoteProvider.Invoke"
	LogPrefixBuild        = "internal.agent.providers.Build"
)

// Prompt provider configuration
const (
	GeneralTemperature  = 0.1
	ScheduleTemperature = 0.5
)

// DefaultRemoteTimeout bounds one upstream call when no timeout is configured.
const DefaultRemoteTimeout = 15 * time.Second

// PromptGeneral is the system instruction for the general capability.
const PromptGeneral = `你是一個友善的旅遊助手，可以回答各種旅遊相關問題。

你應該能夠提供關於以下主題的資訊和建議：
- 台灣的旅遊景點和特色
- 當地美食和特產
- 旅遊季節和最佳時間
- 文化習俗和禮儀
- 旅遊預算建議
- 行李打包建議
- 安全提示

請使用繁體中文回應，並提供具體且實用的建議。保持友善、有禮的語氣。
如果問題不清楚或太寬泛，可以提供一般性的旅遊建議或反問來澄清用戶的需求。`

// PromptSchedule is the system instruction for the schedule capability.
const PromptSchedule = `你現在是一位專業的旅遊規劃師，具備豐富的台灣旅遊知識。
請簡要地幫用戶規劃適合的行程，依天數列出每日安排，回答時保持結構乾淨有條理，避免重複冗詞。
請使用繁體中文回應。`
