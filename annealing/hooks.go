// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// hooks.go — read-only observation points of a run.

package annealing

import "time"

// RunStartEvent describes a run that passed validation and is about to loop.
type RunStartEvent struct {
	Temperature float64 // initial temperature
	Energy      float64 // energy of the initial solution
	CoolingRate float64
	ReturnBest  bool
}

// StepEvent describes the state produced by one cooling step.
type StepEvent struct {
	Step        int     // 1-based step count
	Temperature float64 // temperature of the new current state
	Energy      float64 // energy of the new current state
	BestEnergy  float64 // lowest energy seen so far, including this step
	Improved    bool    // the new state replaced the best one
}

// RunFinishEvent describes a finished run.
type RunFinishEvent struct {
	Steps        int
	Energy       float64 // energy of the returned state
	Temperature  float64 // temperature of the returned state
	ReturnedBest bool
	Duration     time.Duration
}

// Hooks lets callers observe a run (metrics, tracing, progress bars).
// Nil members are skipped. Hooks cannot influence the trajectory and fire
// only for runs whose configuration is valid.
type Hooks struct {
	OnRunStart  func(RunStartEvent)
	OnStep      func(StepEvent)
	OnRunFinish func(RunFinishEvent)
}

// ChainHooks returns Hooks that call every non-nil member of hs in order.
func ChainHooks(hs ...Hooks) Hooks {
	var out Hooks
	for _, h := range hs {
		h := h // per-iteration copy; required while the module targets go 1.21
		if h.OnRunStart != nil {
			prev := out.OnRunStart
			out.OnRunStart = func(e RunStartEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnRunStart(e)
			}
		}
		if h.OnStep != nil {
			prev := out.OnStep
			out.OnStep = func(e StepEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnStep(e)
			}
		}
		if h.OnRunFinish != nil {
			prev := out.OnRunFinish
			out.OnRunFinish = func(e RunFinishEvent) {
				if prev != nil {
					prev(e)
				}
				h.OnRunFinish(e)
			}
		}
	}
	return out
}
