package model

// Stage is a step of one query's lifecycle. Stages only move forward.
type Stage int

const (
	StageReceived Stage = iota
	StageClassified
	StageRouted
	StageDispatched
	StageSynthesized
	StageDone
)

var stageNames = [...]string{"RECEIVED", "CLASSIFIED", "ROUTED", "DISPATCHED", "SYNTHESIZED", "DONE"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "UNKNOWN"
	}
	return stageNames[s]
}
