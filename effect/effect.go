package effect

import (
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/sashimislicer/slicer/utils"
)

// Pulse is the feedback envelope for a beat: full intensity on the beat, easing off until the next one.
type Pulse struct {
	// Ease shapes the falloff. It is given 1 on the beat and 0 just before the next.
	Ease ease.Function

	// Low and High are the indicator colours between beats and on the beat.
	Low  colorful.Color
	High colorful.Color
}

// NewPulse creates a Pulse blending between two hex colours
func NewPulse(f ease.Function, low, high string) (*Pulse, error) {
	lowColor, err := colorful.Hex(low)
	if err != nil {
		return nil, err
	}
	highColor, err := colorful.Hex(high)
	if err != nil {
		return nil, err
	}

	return &Pulse{
		Ease: f,
		Low:  lowColor,
		High: highColor,
	}, nil
}

// Value returns the intensity in [0, 1] for a point timePastBeat into a beat
func (p *Pulse) Value(timePastBeat, secondsPerBeat float64) float64 {
	if secondsPerBeat <= 0 {
		return 0
	}
	phase := utils.Clamp(timePastBeat/secondsPerBeat, 0, 1)
	return utils.Clamp(p.Ease(1-phase), 0, 1)
}

// Color returns the indicator colour for a point timePastBeat into a beat
func (p *Pulse) Color(timePastBeat, secondsPerBeat float64) colorful.Color {
	return p.Low.BlendHcl(p.High, p.Value(timePastBeat, secondsPerBeat)).Clamped()
}

// ColorFor returns the indicator colour for a tick
func (p *Pulse) ColorFor(res rhythm.TickResult) colorful.Color {
	return p.Color(res.TimePastBeat, res.SecondsPerBeat)
}
