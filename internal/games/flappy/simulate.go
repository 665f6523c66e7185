package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pilot decides whether to flap on a frame, given the state before the step.
type Pilot interface {
	Flap(s Snapshot) bool
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(s Snapshot) bool

// Flap calls f(s).
func (f PilotFunc) Flap(s Snapshot) bool { return f(s) }

const autopilotAim = 20

// Autopilot starts a session when none is running and flaps whenever the
// bird sinks below the centre of the next gap. It aims slightly low because
// a flap climbs further than half a gap.
func Autopilot() Pilot {
	return PilotFunc(func(s Snapshot) bool {
		if s.Phase != PhaseActive {
			return true
		}
		if s.Player.Vel <= 0 {
			return false
		}
		target := s.Metrics.Height / 2
		if o, ok := s.NextObstacle(); ok {
			target = (o.GapTop + o.GapBottom) / 2
		}
		return s.Player.Y > target+s.Metrics.S(autopilotAim)
	})
}

// DropPilot flaps once to start a session and then lets the bird fall.
func DropPilot() Pilot {
	started := false
	return PilotFunc(func(s Snapshot) bool {
		if started {
			return false
		}
		started = true
		return true
	})
}

// Summary describes the outcome of a headless run.
type Summary struct {
	Frames   int
	Sessions int // Sessions that ended during the run
	Phase    Phase
	Score    int
	Best     int
	Spawned  int // Obstacles spawned in the last session
	MaxScore int // Best score seen in any session of the run
}

// Simulate drives g for the given number of frames without a terminal.
// A nil pilot never flaps.
func Simulate(g *Game, frames int, pilot Pilot) Summary {
	var sum Summary

	in := core.NewInputFrame()
	for i := 0; i < frames; i++ {
		in.Clear()
		if pilot != nil && pilot.Flap(g.Snapshot()) {
			in.Set(core.ActionFlap)
		}

		res := g.Step(in)
		sum.Frames++
		sum.MaxScore = max(sum.MaxScore, res.State.Score)
		if res.SessionEnded {
			sum.Sessions++
		}
	}

	s := g.Snapshot()
	sum.Phase = s.Phase
	sum.Score = s.Score
	sum.Best = s.Best
	sum.Spawned = s.Spawned
	return sum
}
