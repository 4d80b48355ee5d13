package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/timing"
	"gridsnake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

const CountdownInterval = time.Second

type Options struct {
	Grid              types.Grid
	InitialLength     int
	Countdown         int
	CountdownInterval time.Duration
	Speed             timing.SpeedCurve
	Seed              uint64
	Color             types.Color
	Clock             timing.Clock
	Renderer          Renderer
}

func (o Options) withDefaults() Options {
	if o.Grid.Rows <= 0 || o.Grid.Cols <= 0 {
		o.Grid = types.Grid{Rows: types.DefaultRows, Cols: types.DefaultCols}
	}
	if o.InitialLength <= 0 {
		o.InitialLength = types.InitialLength
	}
	if o.Countdown <= 0 {
		o.Countdown = types.CountdownFrom
	}
	if o.CountdownInterval <= 0 {
		o.CountdownInterval = CountdownInterval
	}
	if o.Speed == (timing.SpeedCurve{}) {
		o.Speed = timing.DefaultSpeedCurve()
	}
	if o.Color == (types.Color{}) {
		o.Color = types.DefaultSnakeColor
	}
	if o.Clock == nil {
		o.Clock = timing.NewLoopClock()
	}
	if o.Renderer == nil {
		o.Renderer = nopRenderer{}
	}
	return o
}

// Game is the authoritative model of one board. All methods must be called
// from the goroutine that advances the clock.
type Game struct {
	opts Options

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	sched *timing.Scheduler
	loop  *timing.StepLoop

	session          string
	snake            *entity.Snake
	direction        types.Direction
	pendingDirection types.Direction
	food             types.Cell
	hasFood          bool
	score            int
	color            types.Color
	lastCollision    types.CollisionType
}

func NewGame(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:         opts,
		collisionMgr: manager.NewCollisionManager(opts.Grid),
		foodMgr:      manager.NewFoodManager(opts.Grid, opts.Seed),
		stateMgr:     manager.NewStateManager(),
		sched:        timing.NewScheduler(opts.Clock),
		color:        opts.Color,
	}
	g.loop = timing.NewStepLoop(g.sched, opts.Speed, g.tick)
	g.Reset()
	return g
}

// Reset returns to Idle from any phase with a fresh snake, score and food.
func (g *Game) Reset() {
	g.loop.Reset()
	g.stateMgr.Reset()

	g.session = uuid.NewString()
	center := types.Cell{Row: g.opts.Grid.Rows / 2, Col: g.opts.Grid.Cols / 2}
	g.snake = entity.NewStraightSnake(center, types.Right, g.opts.InitialLength)
	g.direction = types.Right
	g.pendingDirection = types.Right
	g.score = 0
	g.lastCollision = types.NoCollision
	g.hasFood = false
	g.placeFood()

	glog.V(1).Infof("session %s: reset, snake at %v, food at %v", g.session, center, g.food)
	g.render()
}

// Start begins the countdown from Idle. From Paused it resumes, like the
// Start button always has.
func (g *Game) Start() {
	if g.stateMgr.Phase() == types.PhasePaused {
		g.Resume()
		return
	}
	if !g.stateMgr.BeginCountdown(g.opts.Countdown) {
		return
	}
	glog.V(1).Infof("session %s: countdown from %d", g.session, g.opts.Countdown)
	g.sched.Arm(g.opts.CountdownInterval, g.countdownTick)
	g.render()
}

func (g *Game) countdownTick() {
	if g.stateMgr.Phase() != types.PhaseCountingDown {
		return
	}
	if !g.stateMgr.TickCountdown() {
		g.sched.Arm(g.opts.CountdownInterval, g.countdownTick)
		g.render()
		return
	}
	glog.V(1).Infof("session %s: running", g.session)
	g.loop.Start()
	g.render()
}

func (g *Game) Pause() {
	if !g.stateMgr.Pause() {
		return
	}
	g.loop.Pause()
	glog.V(1).Infof("session %s: paused at %v active", g.session, g.loop.Elapsed())
	g.render()
}

func (g *Game) Resume() {
	if !g.stateMgr.Resume() {
		return
	}
	g.loop.Resume()
	glog.V(1).Infof("session %s: resumed at %v active", g.session, g.loop.Elapsed())
	g.render()
}

// TogglePause is the space bar: pause when running, resume when paused,
// start when idle.
func (g *Game) TogglePause() {
	switch g.stateMgr.Phase() {
	case types.PhaseRunning:
		g.Pause()
	case types.PhasePaused:
		g.Resume()
	case types.PhaseIdle:
		g.Start()
	}
}

// QueueDirection records d for the next step. It is ignored when d would
// reverse the direction applied by the last step; other queued intents are
// not consulted, so the last valid call before a step wins.
func (g *Game) QueueDirection(d types.Direction) {
	if !d.IsUnit() || g.stateMgr.Phase() == types.PhaseGameOver {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.pendingDirection = d
}

// SetColor changes the snake color and repaints.
func (g *Game) SetColor(c types.Color) {
	if c == g.color {
		return
	}
	g.color = c
	g.render()
}

func (g *Game) tick() bool {
	g.step()
	return g.stateMgr.Phase() == types.PhaseRunning
}

func (g *Game) step() {
	if g.stateMgr.Phase() != types.PhaseRunning {
		panic("game: step called in phase " + g.stateMgr.Phase().String())
	}

	g.direction = g.pendingDirection
	newHead := g.snake.GetHead().Add(g.direction)

	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != types.NoCollision {
		g.lastCollision = c
		g.end(false)
		return
	}

	g.snake.Move(newHead)
	if g.hasFood && newHead == g.food {
		g.score++
		g.hasFood = false
		glog.V(2).Infof("session %s: ate food at %v, score %d", g.session, newHead, g.score)
		if !g.placeFood() {
			g.end(true)
			return
		}
	} else {
		g.snake.RemoveTail()
	}
	g.render()
}

func (g *Game) placeFood() bool {
	food, ok := g.foodMgr.PlaceFood(g.snake)
	if !ok {
		g.hasFood = false
		return false
	}
	g.food = food
	g.hasFood = true
	glog.V(2).Infof("session %s: food at %v", g.session, food)
	return true
}

func (g *Game) end(won bool) {
	if !g.stateMgr.End(won, g.score) {
		return
	}
	g.loop.Stop()
	if won {
		glog.Infof("session %s: board filled, score %d", g.session, g.score)
	} else {
		glog.Infof("session %s: game over (%v collision), score %d", g.session, g.lastCollision, g.score)
	}
	g.render()
}

func (g *Game) render() {
	g.opts.Renderer.Render(g.Snapshot())
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Session:    g.session,
		Rows:       g.opts.Grid.Rows,
		Cols:       g.opts.Grid.Cols,
		Snake:      g.snake.Cells(),
		Food:       g.food,
		HasFood:    g.hasFood,
		Direction:  g.direction,
		Phase:      g.stateMgr.Phase(),
		Countdown:  g.stateMgr.Countdown(),
		Score:      g.score,
		Won:        g.stateMgr.Won(),
		Status:     g.stateMgr.Status(),
		Color:      g.color,
		ActiveTime: g.loop.Elapsed(),
		Interval:   g.loop.Interval(),
	}
}

func (g *Game) Phase() types.Phase                 { return g.stateMgr.Phase() }
func (g *Game) Score() int                         { return g.score }
func (g *Game) Direction() types.Direction         { return g.direction }
func (g *Game) PendingDirection() types.Direction  { return g.pendingDirection }
func (g *Game) LastCollision() types.CollisionType { return g.lastCollision }
func (g *Game) Session() string                    { return g.session }
func (g *Game) Color() types.Color                 { return g.color }

// CurrentSpeed is the delay the next step would be armed with.
func (g *Game) CurrentSpeed() time.Duration { return g.loop.Interval() }

// ActiveTime is the play time spent Running since the countdown ended.
func (g *Game) ActiveTime() time.Duration { return g.loop.Elapsed() }
