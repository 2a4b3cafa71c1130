package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/swish/config"
	"github.com/lixenwraith/swish/constants"
	"github.com/lixenwraith/swish/engine"
	"github.com/lixenwraith/swish/events"
	"github.com/lixenwraith/swish/physics"
	"github.com/lixenwraith/swish/store"
	"github.com/lixenwraith/swish/vmath"
)

// Session owns one court: phase, score, ball, hoop and the deferred
// task queue. All state mutates on the session tick; frontends feed
// gestures through the event queue and read back immutable snapshots
//
// Tick order: physics step → due tasks → event dispatch → shooting
// checks → snapshot. Scoring decisions always see freshly advanced
// kinematics
type Session struct {
	cfg   *config.Config
	log   zerolog.Logger
	clock *engine.PausableClock
	space Space

	queue  *events.Queue
	router *events.Router[*Session]
	tasks  *engine.TaskQueue
	scores store.HighScores

	ball *Ball
	hoop *Hoop

	phase        Phase
	score        Score
	trajectory   []vmath.Vec3
	shotStart    time.Time
	pendingReset bool
	disposed     bool

	tick       uint64
	pulseUntil time.Time
	snapshot   Snapshot

	// Static body handles mapped to surfaces for contact cues
	surfaces map[physics.Body]events.Surface
}

// NewSession builds the court: ground, ball, hoop, gesture routing
func NewSession(cfg *config.Config, log zerolog.Logger, clock *engine.PausableClock, space Space, queue *events.Queue, scores store.HighScores) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		log:      log,
		clock:    clock,
		space:    space,
		queue:    queue,
		router:   events.NewRouter[*Session](queue),
		tasks:    engine.NewTaskQueue(clock),
		scores:   scores,
		phase:    PhaseIdle,
		surfaces: make(map[physics.Body]events.Surface),
	}

	// Finite court slab with its top face at y=0: balls past the
	// court edge fall into the void and trip the below-floor check
	ground := space.CreateStaticBody(physics.Box{
		HalfX: cfg.Game.BoundsX,
		HalfY: 0.5,
		HalfZ: cfg.Game.BoundsZ,
	})
	if err := space.SetPosition(ground, vmath.Vec3{Y: -0.5}); err != nil {
		return nil, err
	}
	s.surfaces[ground] = events.SurfaceGround

	ball, err := NewBall(space, cfg.Court)
	if err != nil {
		return nil, err
	}
	s.ball = ball

	hoop, err := NewHoop(space, cfg.Court)
	if err != nil {
		return nil, err
	}
	s.hoop = hoop
	for _, id := range hoop.RimBodies() {
		s.surfaces[id] = events.SurfaceRim
	}
	s.surfaces[hoop.BackboardBody()] = events.SurfaceBackboard

	best, err := scores.Load()
	if err != nil {
		// Persistence is best-effort; play continues from zero
		log.Warn().Err(err).Msg("high score load failed")
	}
	s.score.Best = best

	s.router.Register(gestureHandler{})

	s.publishSnapshot(clock.Now())
	return s, nil
}

// Register adds a frontend handler to the session event router
func (s *Session) Register(h events.Handler[*Session]) {
	s.router.Register(h)
}

// Tick advances the session by one fixed frame
func (s *Session) Tick() {
	if s.disposed {
		return
	}
	s.tick++
	now := s.clock.Now()

	if s.clock.IsPaused() {
		s.publishSnapshot(now)
		return
	}

	s.space.Step(constants.FrameUpdateInterval)
	s.emitContacts(now)
	s.tasks.RunDue(now)
	s.router.DispatchAll(s)

	if s.phase == PhaseShooting {
		s.checkShooting(now)
	}

	s.publishSnapshot(now)
}

// Snapshot returns the most recent per-frame view
func (s *Session) Snapshot() Snapshot {
	return s.snapshot
}

// Phase returns the current shot lifecycle state
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentScore returns the running score line
func (s *Session) CurrentScore() Score {
	return s.score
}

// Ball returns the session projectile
func (s *Session) Ball() *Ball {
	return s.ball
}

// Hoop returns the session goal geometry
func (s *Session) Hoop() *Hoop {
	return s.hoop
}

// TogglePause flips the game clock and returns the new paused state
// A paused clock freezes physics, shot timing and pending tasks
func (s *Session) TogglePause() bool {
	if s.clock.IsPaused() {
		s.clock.Resume()
		return false
	}
	s.clock.Pause()
	return true
}

// Dispose cancels pending tasks and drops the ball handle
// Stale task callbacks scheduled before disposal no-op safely
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.tasks.CancelAll()
	s.ball.Dispose()
	s.disposed = true
	s.log.Debug().Msg("session disposed")
}

// === Gesture Handling ===

// gestureHandler routes tracker events into the session
type gestureHandler struct{}

func (gestureHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPreviewUpdated, events.EventShotCommitted}
}

func (gestureHandler) HandleEvent(s *Session, ev events.Event) {
	switch ev.Type {
	case events.EventPreviewUpdated:
		s.onPreview(ev)
	case events.EventShotCommitted:
		s.onCommit(ev)
	}
}

// onPreview recomputes the trajectory polyline from the live gesture
// Previews never gate commits and never touch a ball in flight
func (s *Session) onPreview(ev events.Event) {
	if s.disposed || s.phase == PhaseShooting {
		return
	}
	p, ok := ev.Payload.(*events.PreviewPayload)
	if !ok {
		return
	}

	velocity := vmath.V3Scale(p.Force, 1/s.cfg.Court.BallMass)
	s.trajectory = physics.PredictArc(
		s.ball.Position(), velocity, s.cfg.Court.Gravity,
		s.cfg.Game.TrajectorySamples, s.cfg.Game.TrajectoryStep, 0,
	)
	if s.phase == PhaseIdle {
		s.transition(PhaseAiming)
	}
}

// onCommit launches the ball from Idle or Aiming
// Commits while Shooting, Scored or Resetting are dropped
func (s *Session) onCommit(ev events.Event) {
	if s.disposed {
		return
	}
	if s.phase != PhaseIdle && s.phase != PhaseAiming {
		return
	}
	p, ok := ev.Payload.(*events.ShotPayload)
	if !ok {
		return
	}

	force := s.adjustForce(p.Force)
	if err := s.ball.Launch(force); err != nil {
		s.log.Error().Err(err).Msg("ball launch failed")
		return
	}

	s.trajectory = nil
	s.shotStart = s.clock.Now()
	s.transition(PhaseShooting)
	s.log.Debug().
		Float64("fx", force.X).Float64("fy", force.Y).Float64("fz", force.Z).
		Msg("shot committed")
}

// adjustForce shapes the raw gesture force for the actual launch:
// damped lateral with a centering assist, boosted vertical, forward
// scaled by the ball's current distance to the rim
func (s *Session) adjustForce(raw vmath.Vec3) vmath.Vec3 {
	pos := s.ball.Position()
	dist := vmath.V3Dist(pos, s.hoop.RimCenter())
	g := s.cfg.Game

	return vmath.Vec3{
		X: raw.X*g.LateralAdjust - pos.X*g.AssistFactor,
		Y: raw.Y * g.VerticalAdjust,
		Z: raw.Z * (dist / g.ReferenceDistance),
	}
}

// === Shooting Checks ===

// checkShooting evaluates the in-flight ball against the basket
// predicate and then the dead-ball predicates
func (s *Session) checkShooting(now time.Time) {
	pos := s.ball.Position()
	vel := s.ball.Velocity()

	// Downward gate rejects the upward pass through the rim plane
	if vel.Y < 0 && s.hoop.CheckBasket(pos) {
		s.scoreBasket(now)
		return
	}

	if s.pendingReset {
		return
	}

	g := s.cfg.Game
	var reason events.MissReason
	switch {
	case vmath.Abs(pos.X) > g.BoundsX || vmath.Abs(pos.Z) > g.BoundsZ:
		reason = events.MissOutOfBounds
	case pos.Y < g.FloorKillY:
		reason = events.MissBelowFloor
	case vmath.V3Mag(vel) < g.StallSpeed:
		reason = events.MissStalled
	case now.Sub(s.shotStart) > g.MaxShotTime:
		reason = events.MissTimeout
	default:
		return
	}
	s.missShot(reason, now)
}

// scoreBasket runs the make path: bookkeeping, persistence, effects
func (s *Session) scoreBasket(now time.Time) {
	s.transition(PhaseScored)
	s.score.Points++
	s.score.Streak++

	if s.score.Points > s.score.Best {
		s.score.Best = s.score.Points
		if err := s.scores.Save(s.score.Best); err != nil {
			s.log.Warn().Err(err).Msg("high score save failed")
		}
		s.emit(events.EventHighScore, &events.HighScorePayload{Value: s.score.Best}, now)
	}

	s.pulseUntil = now.Add(constants.ScorePulseDuration)
	s.emit(events.EventBasketScored, &events.ScorePayload{
		Points: s.score.Points,
		Streak: s.score.Streak,
		Best:   s.score.Best,
	}, now)
	s.scheduleReset()

	s.log.Info().
		Int("points", s.score.Points).
		Int("streak", s.score.Streak).
		Msg("basket")
}

// missShot runs the dead-ball path
func (s *Session) missShot(reason events.MissReason, now time.Time) {
	s.transition(PhaseResetting)
	s.score.Streak = 0
	s.emit(events.EventShotMissed, &events.MissPayload{Reason: reason}, now)
	s.scheduleReset()

	s.log.Debug().Stringer("reason", reason).Msg("shot missed")
}

// scheduleReset queues the delayed return to origin exactly once
func (s *Session) scheduleReset() {
	if s.pendingReset {
		return
	}
	s.pendingReset = true
	s.tasks.Schedule(s.cfg.Game.ResetDelay, s.resetTask)
}

// resetTask fires after ResetDelay and re-validates everything:
// ticks ran between scheduling and firing, and the session may have
// been disposed in between
func (s *Session) resetTask() {
	if s.disposed || !s.pendingReset {
		return
	}
	// Cleanup must run however the reposition goes, so the machine
	// cannot wedge in a permanently-pending state
	defer func() { s.pendingReset = false }()

	if s.phase != PhaseScored && s.phase != PhaseResetting {
		return
	}

	if err := s.ball.Reset(); err != nil {
		s.log.Warn().Err(err).Msg("ball reposition failed")
	}
	s.trajectory = nil
	s.transition(PhaseIdle)
	s.emit(events.EventBallReset, nil, s.clock.Now())
}

// transition moves the machine to the next phase after validation
func (s *Session) transition(to Phase) bool {
	if !CanTransition(s.phase, to) {
		s.log.Debug().Stringer("from", s.phase).Stringer("to", to).Msg("phase transition rejected")
		return false
	}
	s.phase = to
	return true
}

// === Event Plumbing ===

func (s *Session) emit(t events.EventType, payload any, now time.Time) {
	s.queue.Push(events.Event{Type: t, Payload: payload, Tick: s.tick, Timestamp: now})
}

// emitContacts translates physics impacts into cue events
func (s *Session) emitContacts(now time.Time) {
	for _, c := range s.space.DrainContacts() {
		if c.Speed < constants.ContactCueMinSpeed {
			continue
		}
		surface, ok := s.surfaces[c.Against]
		if !ok {
			continue
		}
		s.emit(events.EventBallContact, &events.ContactPayload{
			Against: surface,
			Speed:   c.Speed,
		}, now)
	}
}

// publishSnapshot rebuilds the per-frame view
func (s *Session) publishSnapshot(now time.Time) {
	snap := Snapshot{
		Tick:         s.tick,
		Phase:        s.phase,
		Score:        s.score,
		BallPosition: s.ball.Position(),
		BallRadius:   s.ball.Radius(),
		RimCenter:    s.hoop.RimCenter(),
		RimRadius:    s.hoop.RimRadius(),
		BoardCenter:  s.hoop.BackboardCenter(),
		BoardHalf:    s.hoop.BackboardHalf(),
		Paused:       s.clock.IsPaused(),
	}
	if s.phase == PhaseAiming {
		snap.Trajectory = s.trajectory
	}
	if s.pulseUntil.After(now) {
		snap.PulseUntil = s.pulseUntil
	}
	s.snapshot = snap
}
