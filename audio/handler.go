package audio

import (
	"github.com/lixenwraith/swish/events"
	"github.com/lixenwraith/swish/game"
)

// CueHandler translates session events into sound cues.
type CueHandler struct {
	player *Player
}

func NewCueHandler(p *Player) *CueHandler {
	return &CueHandler{player: p}
}

func (h *CueHandler) HandleEvent(_ *game.Session, ev events.Event) {
	switch ev.Type {
	case events.EventBallContact:
		p, ok := ev.Payload.(*events.ContactPayload)
		if !ok {
			return
		}
		switch p.Against {
		case events.SurfaceRim:
			h.player.Play(CueRim)
		case events.SurfaceBackboard:
			h.player.Play(CueBackboard)
		default:
			h.player.Play(CueBounce)
		}
	case events.EventBasketScored:
		h.player.Play(CueSwish)
	case events.EventShotMissed:
		h.player.Play(CueMiss)
	case events.EventHighScore:
		h.player.Play(CueHighScore)
	}
}

func (h *CueHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBallContact,
		events.EventBasketScored,
		events.EventShotMissed,
		events.EventHighScore,
	}
}
