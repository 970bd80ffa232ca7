package dfa

import "log"

// A LogHook is a hook that records information from simulation runs.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// StepLogger is a hook that prints every transition a simulator takes.
type StepLogger struct {
	LogHookBase
}

// NewStepLogger returns a new StepLogger which will write into the logger
func NewStepLogger(logger *log.Logger) *StepLogger {
	h := new(StepLogger)
	h.Logger = logger
	return h
}

// Func writes the transition information into the logger
func (h *StepLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAfterStep {
		return
	}

	info, ok := ctx.Item.(StepInfo)
	if !ok {
		return
	}

	h.Logger.Printf("%4d: %s --%c--> %s",
		info.Position, info.From, rune(info.Symbol), info.To)
}
