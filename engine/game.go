package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ErrMissingDependency is returned by NewGame when a required collaborator is nil
var ErrMissingDependency = errors.New("missing game dependency")

// speedQueue bounds pending push-button presses between two ball ticks
const speedQueue = 8

// Metric names published to the status registry
const (
	MetricDropped          = "render.dropped" // game task frames only
	MetricPresenterDropped = "render.presenter_dropped"
	MetricTicks            = "ball.ticks"
	MetricSpeed            = "ball.speed"
	MetricScoreTop         = "score.top"
	MetricScoreBottom      = "score.bottom"
	MetricGoals            = "game.goals"
	MetricMatches          = "game.matches"
	MetricPhase            = "game.phase"
	MetricMatchID          = "game.match_id"
	MetricOver             = "game.over"
	MetricButton           = "button.enabled"
	MetricBounceAngle      = "physics.bounce_angle"
)

// Sounds is the game's audio cue sink
type Sounds interface {
	Wall()
	Paddle()
	Goal()
	GameOver()
}

// Deps are the collaborators a game drives
// Display, Lock, LEDs, Pot, Joystick and Button are required
type Deps struct {
	Display  render.Display
	Lock     *render.DrawLock
	LEDs     render.ScoreIndicator
	Pot      input.Potentiometer
	Joystick input.Joystick
	Button   input.Button
	Sounds   Sounds           // nil plays nothing
	Registry *status.Registry // nil keeps metrics private
}

// Timing holds every task delay
type Timing struct {
	Ball           time.Duration
	TopPaddle      time.Duration
	GameOver       time.Duration // pause before the ball relaunches after a match
	DrawLock       time.Duration // bounded wait of per-frame draws
	LEDFlash       time.Duration // one phase of the game-over flash
	LEDFlashCycles int
}

// DefaultTiming returns the production task periods
func DefaultTiming() Timing {
	return Timing{
		Ball:           constants.BallDelay,
		TopPaddle:      constants.TopPaddleDelay,
		GameOver:       constants.GameOverDelay,
		DrawLock:       constants.DrawLockTimeout,
		LEDFlash:       constants.LEDFlashDelay,
		LEDFlashCycles: constants.LEDFlashCycles,
	}
}

// Options tune a game; the zero value plays the standard match
type Options struct {
	Timing *Timing         // nil uses DefaultTiming
	Serve  *vmath.Velocity // nil uses constants.DefaultDirection
}

// Game runs the six cooperating tasks over shared paddles, ball and LCD
type Game struct {
	display render.Display
	lock    *render.DrawLock
	leds    render.ScoreIndicator
	pot     input.Potentiometer
	joy     input.Joystick
	button  input.Button
	sounds  Sounds

	timing Timing
	serve  vmath.Velocity
	court  physics.Court

	state  *GameState
	top    *Paddle
	bottom *Paddle

	// ballMu guards ball against snapshot readers and the game-over reset
	// Lock order is DrawLock then ballMu
	ballMu   sync.Mutex
	ball     vmath.Ball
	speedIdx atomic.Int32

	// Owned by the ball task
	arena *render.Arena

	speedEvents   chan struct{}
	buttonEnabled atomic.Bool

	goalTop      *Signal
	goalBottom   *Signal
	scoreApplied *Signal
	gameOver     *Signal

	// Cached metric pointers
	reg         *status.Registry
	statDropped *atomic.Int64
	statTicks   *atomic.Int64
	statSpeed   *atomic.Int64
	statTop     *atomic.Int64
	statBottom  *atomic.Int64
	statGoals   *atomic.Int64
	statMatches *atomic.Int64
	statPhase   *status.AtomicString
	statMatchID *status.AtomicString
	statOver    *atomic.Bool
	statButton  *atomic.Bool
	statAngle   *status.AtomicFloat
}

// NewGame creates a game with centered paddles and the ball at the serve position
func NewGame(deps Deps, opts Options) (*Game, error) {
	switch {
	case deps.Display == nil:
		return nil, fmt.Errorf("%w: display", ErrMissingDependency)
	case deps.Lock == nil:
		return nil, fmt.Errorf("%w: draw lock", ErrMissingDependency)
	case deps.LEDs == nil:
		return nil, fmt.Errorf("%w: score indicator", ErrMissingDependency)
	case deps.Pot == nil:
		return nil, fmt.Errorf("%w: potentiometer", ErrMissingDependency)
	case deps.Joystick == nil:
		return nil, fmt.Errorf("%w: joystick", ErrMissingDependency)
	case deps.Button == nil:
		return nil, fmt.Errorf("%w: button", ErrMissingDependency)
	}

	timing := DefaultTiming()
	if opts.Timing != nil {
		timing = *opts.Timing
	}
	serve := vmath.Velocity{X: constants.DefaultDirection[0], Y: constants.DefaultDirection[1]}
	if opts.Serve != nil {
		serve = *opts.Serve
	}
	if err := physics.ValidateVelocity(serve); err != nil {
		return nil, fmt.Errorf("serve %+v: %w", serve, err)
	}

	g := &Game{
		display:      deps.Display,
		lock:         deps.Lock,
		leds:         deps.LEDs,
		pot:          deps.Pot,
		joy:          deps.Joystick,
		button:       deps.Button,
		sounds:       deps.Sounds,
		timing:       timing,
		serve:        serve,
		court:        physics.DefaultCourt(),
		state:        NewGameState(),
		top:          NewTopPaddle(input.RowForPot(deps.Pot.Read())),
		bottom:       NewBottomPaddle(RestRow),
		arena:        render.NewArena(render.SlotBallPrev, render.SlotBallDiff),
		speedEvents:  make(chan struct{}, speedQueue),
		goalTop:      NewSignal(1),
		goalBottom:   NewSignal(1),
		scoreApplied: NewSignal(1),
		gameOver:     NewSignal(1),
		reg:          deps.Registry,
	}
	if g.sounds == nil {
		g.sounds = audio.Silent{}
	}
	if g.reg == nil {
		g.reg = status.NewRegistry()
	}
	g.ball = vmath.NewBall(servePoint(), constants.BallRadius, constants.ColorBall)
	g.ball.Velocity = serve
	g.buttonEnabled.Store(true)
	g.initMetrics()
	return g, nil
}

func (g *Game) initMetrics() {
	g.statDropped = g.reg.Ints.Get(MetricDropped)
	g.statTicks = g.reg.Ints.Get(MetricTicks)
	g.statSpeed = g.reg.Ints.Get(MetricSpeed)
	g.statTop = g.reg.Ints.Get(MetricScoreTop)
	g.statBottom = g.reg.Ints.Get(MetricScoreBottom)
	g.statGoals = g.reg.Ints.Get(MetricGoals)
	g.statMatches = g.reg.Ints.Get(MetricMatches)
	g.statPhase = g.reg.Strings.Get(MetricPhase)
	g.statMatchID = g.reg.Strings.Get(MetricMatchID)
	g.statOver = g.reg.Bools.Get(MetricOver)
	g.statButton = g.reg.Bools.Get(MetricButton)
	g.statAngle = g.reg.Floats.Get(MetricBounceAngle)

	g.statSpeed.Store(int64(g.Speed()))
	g.statPhase.Store(g.state.Phase().String())
	g.statMatchID.Store(g.state.MatchID().String())
	g.statButton.Store(true)
	g.statMatches.Store(1)
}

func servePoint() vmath.Point {
	return vmath.NewPoint(constants.CenterX, constants.CenterY)
}

// Run draws the arena and runs all tasks until ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	if err := g.drawArena(ctx); err != nil {
		return nil
	}
	g.leds.Show(0, 0)
	log.Printf("[GAME] match %s started", g.state.MatchID())

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(core.Guard("paddle.top", func() error { return g.topPaddleTask(ctx) }))
	eg.Go(core.Guard("paddle.bottom", func() error { return g.bottomPaddleTask(ctx) }))
	eg.Go(core.Guard("ball", func() error { return g.ballTask(ctx) }))
	eg.Go(core.Guard("score.top", func() error { return g.scoringTask(ctx, physics.SideTop) }))
	eg.Go(core.Guard("score.bottom", func() error { return g.scoringTask(ctx, physics.SideBottom) }))
	eg.Go(core.Guard("game.over", func() error { return g.gameOverTask(ctx) }))
	return eg.Wait()
}

// ToggleSpeed queues a push-button press for the ball task
// Presses are dropped while the button is disabled or the queue is full
func (g *Game) ToggleSpeed() {
	if !g.buttonEnabled.Load() {
		return
	}
	select {
	case g.speedEvents <- struct{}{}:
	default:
	}
}

// Speed returns the current ball speed
func (g *Game) Speed() int {
	return constants.Speeds[g.speedIdx.Load()]
}

// State returns the shared game state
func (g *Game) State() *GameState {
	return g.state
}

// Ball returns a deep copy of the ball
func (g *Game) Ball() vmath.Ball {
	g.ballMu.Lock()
	defer g.ballMu.Unlock()
	return g.ball.Clone()
}

// Paddles returns copies of both paddle rects
func (g *Game) Paddles() (bottom, top vmath.Rect) {
	return g.bottom.Rect(), g.top.Rect()
}

// Snapshot is the status view of a game
type Snapshot struct {
	MatchID      string `json:"match_id"`
	Phase        string `json:"phase"`
	Over         bool   `json:"over"`
	ScoreTop     uint32 `json:"score_top"`
	ScoreBottom  uint32 `json:"score_bottom"`
	Speed        int    `json:"speed"`
	BallX        uint16 `json:"ball_x"`
	BallY        uint16 `json:"ball_y"`
	VelocityX    int    `json:"velocity_x"`
	VelocityY    int    `json:"velocity_y"`
	PaddleTop    int    `json:"paddle_top_row"`
	PaddleBottom int    `json:"paddle_bottom_row"`
}

// Snapshot reads the game for reporting; fields may come from different ticks
func (g *Game) Snapshot() Snapshot {
	top, bottom := g.state.Scores()
	g.ballMu.Lock()
	center, v := g.ball.Center, g.ball.Velocity
	g.ballMu.Unlock()
	pb, pt := g.Paddles()
	return Snapshot{
		MatchID:      g.state.MatchID().String(),
		Phase:        g.state.Phase().String(),
		Over:         g.state.Over(),
		ScoreTop:     top,
		ScoreBottom:  bottom,
		Speed:        g.Speed(),
		BallX:        center.X,
		BallY:        center.Y,
		VelocityX:    v.X,
		VelocityY:    v.Y,
		PaddleTop:    int(pt.BottomLeft.Y),
		PaddleBottom: int(pb.BottomLeft.Y),
	}
}

// topPaddleTask follows the potentiometer every TopPaddle delay
func (g *Game) topPaddleTask(ctx context.Context) error {
	mapper := input.NewPotMapper(g.pot.Read())
	prev := g.top.Rect()
	for {
		if err := g.state.WaitRunning(ctx); err != nil {
			return nil
		}
		next := g.top.SetRow(mapper.Map(g.pot.Read()))
		g.drawPaddle(ctx, &prev, next)
		if err := sleep(ctx, g.timing.TopPaddle); err != nil {
			return nil
		}
	}
}

// bottomPaddleTask moves one step per joystick event
func (g *Game) bottomPaddleTask(ctx context.Context) error {
	prev := g.bottom.Rect()
	for {
		if err := g.state.WaitRunning(ctx); err != nil {
			return nil
		}
		code, err := g.joy.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[INPUT] joystick read: %v", err)
			if err := sleep(ctx, g.timing.Ball); err != nil {
				return nil
			}
			continue
		}
		// Motion queued while the match ended is discarded
		if g.state.Over() {
			continue
		}
		dir := code.Direction()
		if dir == input.DirNone {
			continue
		}
		g.drawPaddle(ctx, &prev, g.bottom.Nudge(dir))
	}
}

// drawPaddle redraws a moved paddle, prev tracks what is on screen
func (g *Game) drawPaddle(ctx context.Context, prev *vmath.Rect, next vmath.Rect) {
	if !g.lock.TryAcquire(ctx, g.timing.DrawLock) {
		g.frameDropped()
		return
	}
	defer g.lock.Release()

	// The game-over sequence repaints the arena with current rects
	if g.state.Over() {
		*prev = next
		return
	}
	if next.PosEqual(*prev) {
		return
	}
	render.DrawRect(g.display, next)
	if rest, ok := render.SubtractRect(*prev, next, constants.ColorBackground); ok {
		render.DrawRect(g.display, rest)
	}
	*prev = next
}

// ballTask steps the ball once per tick and hands goals to the scoring tasks
func (g *Game) ballTask(ctx context.Context) error {
	prev := g.arena.Slot(render.SlotBallPrev)
	diff := g.arena.Slot(render.SlotBallDiff)
	if err := g.redrawBall(ctx); err != nil {
		return nil
	}

	match := g.state.MatchID()
	for {
		if err := g.state.WaitRunning(ctx); err != nil {
			return nil
		}
		if id := g.state.MatchID(); id != match {
			match = id
			if err := sleep(ctx, g.timing.GameOver); err != nil {
				return nil
			}
			if err := g.redrawBall(ctx); err != nil {
				return nil
			}
		}

		g.drainSpeed()

		bottom, top := g.Paddles()
		g.ballMu.Lock()
		out := physics.Step(&g.ball, bottom, top, g.Speed(), g.court)
		v := g.ball.Velocity
		g.ballMu.Unlock()
		g.statTicks.Add(1)
		g.observe(out, v)

		if out.Goal() {
			g.goalSignal(out.Scorer).Send()
			// The scoring task owns the ball until it acknowledges
			if err := g.scoreApplied.Wait(ctx); err != nil {
				return nil
			}
		}

		g.drawBall(ctx, prev, diff)

		if err := sleep(ctx, g.timing.Ball); err != nil {
			return nil
		}
	}
}

// drainSpeed applies every queued push-button press
func (g *Game) drainSpeed() {
	for {
		select {
		case <-g.speedEvents:
			idx := (g.speedIdx.Load() + 1) % int32(len(constants.Speeds))
			g.speedIdx.Store(idx)
			g.statSpeed.Store(int64(constants.Speeds[idx]))
		default:
			return
		}
	}
}

func (g *Game) observe(out physics.Outcome, v vmath.Velocity) {
	switch out.Contact {
	case physics.ContactWallLeft, physics.ContactWallRight:
		g.sounds.Wall()
	case physics.ContactPaddleBottom, physics.ContactPaddleTop:
		g.sounds.Paddle()
		angle := math.Atan2(math.Abs(float64(v.X)), math.Abs(float64(v.Y))) * 180 / math.Pi
		g.statAngle.Set(angle)
	case physics.ContactGoal:
		g.sounds.Goal()
	}
}

func (g *Game) goalSignal(scorer physics.Side) *Signal {
	if scorer == physics.SideTop {
		return g.goalTop
	}
	return g.goalBottom
}

// drawBall paints the ball and erases the part of the previous sprite it no longer covers
func (g *Game) drawBall(ctx context.Context, prev, diff *vmath.Ball) {
	if !g.lock.TryAcquire(ctx, g.timing.DrawLock) {
		g.frameDropped()
		return
	}
	defer g.lock.Release()
	g.ballMu.Lock()
	defer g.ballMu.Unlock()

	if g.state.Over() || g.ball.PosEqual(prev) {
		return
	}
	render.DrawBall(g.display, &g.ball)
	if render.SubtractBall(diff, prev, &g.ball, constants.ColorBackground) {
		render.DrawBall(g.display, diff)
	}
	g.ball.CopyInto(prev)
}

// redrawBall paints the ball after the arena was repainted
func (g *Game) redrawBall(ctx context.Context) error {
	if err := g.lock.Acquire(ctx); err != nil {
		return err
	}
	defer g.lock.Release()
	g.ballMu.Lock()
	defer g.ballMu.Unlock()
	render.DrawBall(g.display, &g.ball)
	g.arena.Store(render.SlotBallPrev, &g.ball)
	return nil
}

// scoringTask credits side for each goal and re-serves the ball
func (g *Game) scoringTask(ctx context.Context, side physics.Side) error {
	goal := g.goalSignal(side)
	for {
		if err := goal.Wait(ctx); err != nil {
			return nil
		}
		g.setPhase(PhaseScoreAcknowledging)

		score := g.state.addScore(side)
		top, bottom := g.state.Scores()
		g.statGoals.Add(1)
		g.statTop.Store(int64(top))
		g.statBottom.Store(int64(bottom))
		log.Printf("[GAME] goal by %s, top %d bottom %d", side, top, bottom)

		// Borders are repainted over any ball pixels left in the walls
		if err := g.lock.Acquire(ctx); err != nil {
			return nil
		}
		drawBorders(g.display)
		g.lock.Release()
		g.leds.Show(uint8(top), uint8(bottom))

		final := score >= constants.MaxScore
		if final {
			g.gameOver.Send()
		}

		g.resetBall(serveVelocity(g.serve, side))
		if !final {
			g.setPhase(PhasePlaying)
		}
		g.scoreApplied.Send()
	}
}

// serveVelocity sends the ball toward the side that conceded
func serveVelocity(serve vmath.Velocity, scorer physics.Side) vmath.Velocity {
	vx := abs(serve.X)
	if scorer == physics.SideTop {
		vx = -vx
	}
	return vmath.Velocity{X: vx, Y: serve.Y}
}

// resetBall centers the ball at the default speed; a zero velocity keeps the current one
func (g *Game) resetBall(v vmath.Velocity) {
	g.ballMu.Lock()
	g.ball.MoveTo(servePoint())
	if v != (vmath.Velocity{}) {
		g.ball.Velocity = v
	}
	g.ballMu.Unlock()
	g.speedIdx.Store(0)
	g.statSpeed.Store(int64(constants.Speeds[0]))
}

// gameOverTask freezes play, shows the results and starts a new match on acknowledgment
func (g *Game) gameOverTask(ctx context.Context) error {
	for {
		if err := g.gameOver.Wait(ctx); err != nil {
			return nil
		}
		g.state.setOver(true)
		g.statOver.Store(true)
		g.setPhase(PhaseGameOver)
		top, bottom := g.state.Scores()
		log.Printf("[GAME] match %s over, top %d bottom %d", g.state.MatchID(), top, bottom)
		g.sounds.GameOver()

		if err := g.eraseBall(ctx); err != nil {
			return nil
		}

		for range g.timing.LEDFlashCycles {
			g.leds.Show(0, 0)
			if err := sleep(ctx, g.timing.LEDFlash); err != nil {
				return nil
			}
			g.leds.Show(uint8(top), uint8(bottom))
			if err := sleep(ctx, g.timing.LEDFlash); err != nil {
				return nil
			}
		}

		// The acknowledging press must not change the speed
		g.setButton(false)
		if err := g.lock.Acquire(ctx); err != nil {
			return nil
		}
		drawResults(g.display, top, bottom)
		g.lock.Release()

		if err := g.button.WaitPressRelease(ctx); err != nil {
			return nil
		}
		g.setButton(true)

		if err := g.drawArena(ctx); err != nil {
			return nil
		}

		g.state.resetScores()
		g.statTop.Store(0)
		g.statBottom.Store(0)
		g.leds.Show(0, 0)

		id := g.state.newMatch()
		g.statMatchID.Store(id.String())
		g.statMatches.Add(1)
		log.Printf("[GAME] match %s started", id)

		g.setPhase(PhasePlaying)
		g.state.setOver(false)
		g.statOver.Store(false)
	}
}

// eraseBall paints the ball in the background color
func (g *Game) eraseBall(ctx context.Context) error {
	if err := g.lock.Acquire(ctx); err != nil {
		return err
	}
	defer g.lock.Release()
	g.ballMu.Lock()
	defer g.ballMu.Unlock()
	g.display.BlitMask(g.ball.Mask(), g.ball.Origin(), constants.ColorBackground)
	return nil
}

// drawArena clears the LCD and draws borders, paddles and a centered ball
func (g *Game) drawArena(ctx context.Context) error {
	if err := g.lock.Acquire(ctx); err != nil {
		return err
	}
	defer g.lock.Release()

	g.display.Clear(constants.ColorBackground)
	drawBorders(g.display)
	g.resetBall(vmath.Velocity{})
	bottom, top := g.Paddles()
	render.DrawRect(g.display, top)
	render.DrawRect(g.display, bottom)
	return nil
}

func (g *Game) setPhase(p Phase) {
	g.state.setPhase(p)
	g.statPhase.Store(p.String())
}

func (g *Game) setButton(enabled bool) {
	g.buttonEnabled.Store(enabled)
	g.statButton.Store(enabled)
	if enabled {
		return
	}
	// Presses queued before the results screen are discarded
	for {
		select {
		case <-g.speedEvents:
		default:
			return
		}
	}
}

func (g *Game) frameDropped() {
	g.statDropped.Add(1)
}

// sleep waits d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
