package session

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/factgen"
	"github.com/abhisek/factdrill/internal/mastery"
	"github.com/abhisek/factdrill/internal/selection"
)

// Pacing of a run.
const (
	// NextQuestionDelay is how long feedback stays up before the next pick.
	NextQuestionDelay = 900 * time.Millisecond
	// TickInterval is the countdown resolution.
	TickInterval = time.Second
	// DefaultTimerLimit is the seconds allowed per question.
	DefaultTimerLimit = 10
)

var (
	// ErrNoActiveQuestion is returned when an answer arrives outside
	// PhaseAwaitingAnswer.
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrInvalidAnswer is returned when the input is not a whole number.
	ErrInvalidAnswer = errors.New("answer must be a whole number")
	// ErrInvalidTimerLimit is returned for a non-positive timer limit.
	ErrInvalidTimerLimit = errors.New("timer limit must be a positive number of seconds")
)

// RenderFunc receives a snapshot after every state change. It is called
// with the controller lock held and must not call back into the controller.
type RenderFunc func(Snapshot)

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Catalog     *curriculum.Catalog
	Curriculum  curriculum.Key
	TimerLimit  int
	Source      selection.Source
	Scheduler   Scheduler
	Persistence Persistence
	Render      RenderFunc
	Logger      *zap.Logger
	Now         func() time.Time
}

// run is the per-practice state that is discarded on every reset.
type run struct {
	id        string
	facts     []factgen.Fact
	tracker   *mastery.Tracker
	active    int
	countdown int
	limit     int
}

func emptyRun() run {
	return run{active: -1}
}

// Controller owns the drill state and serialises learner actions with
// timer callbacks.
type Controller struct {
	mu sync.Mutex

	catalog    *curriculum.Catalog
	curriculum curriculum.Key
	unit       *curriculum.Unit
	phase      Phase
	timerLimit int
	run        run

	status   string
	lastFact string
	outcome  Outcome

	completed map[string]CompletionRecord

	picker  *selection.Picker
	sched   Scheduler
	persist Persistence
	render  RenderFunc
	logger  *zap.Logger
	now     func() time.Time

	// version increases on every emitted change.
	version uint64

	tick    Timer
	tickGen uint64
	next    Timer
	nextGen uint64
}

// New builds a controller and loads completed units from persistence.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Catalog == nil {
		opts.Catalog = curriculum.Default()
	}
	if opts.Curriculum == "" {
		opts.Curriculum = curriculum.KeyAddition
	}
	if _, ok := opts.Catalog.Curriculum(opts.Curriculum); !ok {
		return nil, fmt.Errorf("unknown curriculum %q", opts.Curriculum)
	}
	if opts.TimerLimit == 0 {
		opts.TimerLimit = DefaultTimerLimit
	}
	if opts.TimerLimit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTimerLimit, opts.TimerLimit)
	}
	if opts.Source == nil {
		opts.Source = selection.NewSource(uint64(time.Now().UnixNano()))
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewSystemScheduler()
	}
	if opts.Persistence == nil {
		opts.Persistence = NewMemoryPersistence()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	completed := opts.Persistence.LoadCompletedUnits(ctx)
	if completed == nil {
		completed = make(map[string]CompletionRecord)
	}

	return &Controller{
		catalog:    opts.Catalog,
		curriculum: opts.Curriculum,
		phase:      PhaseIdle,
		timerLimit: opts.TimerLimit,
		run:        emptyRun(),
		completed:  completed,
		picker:     selection.NewPicker(opts.Source),
		sched:      opts.Scheduler,
		persist:    opts.Persistence,
		render:     opts.Render,
		logger:     opts.Logger,
		now:        opts.Now,
	}, nil
}

// Catalog returns the curricula the controller selects from.
func (c *Controller) Catalog() *curriculum.Catalog {
	return c.catalog
}

// SetRender replaces the render callback.
func (c *Controller) SetRender(fn RenderFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render = fn
}

// SelectCurriculum switches curriculum and resets all session state.
// Unknown keys are ignored and reported as false.
func (c *Controller) SelectCurriculum(key curriculum.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.catalog.Curriculum(key); !ok {
		return false
	}
	c.resetRun()
	c.curriculum = key
	c.unit = nil
	c.phase = PhaseIdle
	c.status = ""
	c.emit()
	return true
}

// SelectUnit chooses a unit of the active curriculum and clears any run.
func (c *Controller) SelectUnit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.catalog.Unit(c.curriculum, id)
	if !ok {
		return false
	}
	c.resetRun()
	c.unit = u
	c.phase = PhaseUnitSelected
	c.status = StatusUnitSelected
	c.emit()
	return true
}

// SetTimerLimit changes the seconds allowed per question. The new limit
// applies from the next StartPractice.
func (c *Controller) SetTimerLimit(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimerLimit, seconds)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timerLimit = seconds
	c.emit()
	return nil
}

// StartPractice builds the selected unit's facts and asks the first
// question. A run already in progress or completed is restarted. It
// reports false when no unit is selected.
func (c *Controller) StartPractice() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unit == nil {
		return false
	}
	c.resetRun()

	facts := c.unit.Facts()
	c.run = run{
		id:      uuid.NewString(),
		facts:   facts,
		tracker: mastery.NewTracker(len(facts)),
		active:  -1,
		limit:   c.timerLimit,
	}
	c.phase = PhaseRunning
	c.status = StatusReady

	c.logger.Info("practice started",
		zap.String("run_id", c.run.id),
		zap.String("curriculum", string(c.curriculum)),
		zap.String("unit_id", c.unit.ID),
		zap.Int("facts", len(facts)),
		zap.Int("timer_limit", c.run.limit))

	c.selectNext()
	c.emit()
	return true
}

// SubmitAnswer scores raw against the active fact. Input that is not a
// whole number returns ErrInvalidAnswer and leaves the question open.
func (c *Controller) SubmitAnswer(raw string) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseAwaitingAnswer {
		return OutcomeNone, ErrNoActiveQuestion
	}
	n, err := factgen.ParseAnswer(raw)
	if err != nil {
		c.status = StatusInvalid
		c.emit()
		return OutcomeNone, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
	}

	c.cancelTick()
	i := c.run.active
	fact := c.run.facts[i]
	if fact.Check(n) {
		c.run.tracker.Adjust(i, mastery.CorrectDelta)
		c.outcome = OutcomeCorrect
		c.status = StatusCorrect
		c.lastFact = fact.String() + " (great job)"
	} else {
		c.run.tracker.Adjust(i, mastery.MissDelta)
		c.outcome = OutcomeIncorrect
		c.status = statusIncorrect(fact)
		c.lastFact = fact.String()
	}
	c.phase = PhaseScoring
	c.scheduleNext()
	c.emit()
	return c.outcome, nil
}

// Timeout scores the active question as missed. It is fired by the
// countdown and reports false outside PhaseAwaitingAnswer.
func (c *Controller) Timeout() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseAwaitingAnswer {
		return false
	}
	c.timeout()
	c.emit()
	return true
}

// ReturnToMenu abandons the run and goes back to unit selection.
func (c *Controller) ReturnToMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetRun()
	if c.unit != nil {
		c.phase = PhaseUnitSelected
		c.status = StatusUnitSelected
	} else {
		c.phase = PhaseIdle
		c.status = ""
	}
	c.emit()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// --- internal helpers, all called with c.mu held ---

func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		Phase:       c.phase,
		Curriculum:  c.curriculum,
		ActiveIndex: c.run.active,
		Countdown:   max(c.run.countdown, 0),
		TimerLimit:  c.timerLimit,
		Status:      c.status,
		LastFact:    c.lastFact,
		Outcome:     c.outcome,
		Completed:   maps.Clone(c.completed),
		RunID:       c.run.id,
		Version:     c.version,
	}
	if c.unit != nil {
		s.UnitID = c.unit.ID
		s.UnitTitle = c.unit.Title
	}
	if len(c.run.facts) > 0 {
		s.Facts = append([]factgen.Fact(nil), c.run.facts...)
	}
	s.Weights = c.run.tracker.Weights()
	s.Mastered = c.run.tracker.MasteredCount()
	return s
}

func (c *Controller) emit() {
	c.version++
	if c.render != nil {
		c.render(c.snapshot())
	}
}

// resetRun cancels both timers and clears facts, weights and feedback.
func (c *Controller) resetRun() {
	c.cancelTick()
	c.cancelNext()
	c.run = emptyRun()
	c.outcome = OutcomeNone
	c.lastFact = ""
}

// selectNext asks the next question or completes the run.
func (c *Controller) selectNext() {
	c.phase = PhaseRunning
	idx, ok := c.picker.Pick(c.run.tracker.Weights())
	if !ok {
		c.complete()
		return
	}
	c.run.active = idx
	c.run.countdown = c.run.limit
	c.phase = PhaseAwaitingAnswer
	c.status = StatusAsking
	c.scheduleTick()
}

func (c *Controller) complete() {
	c.cancelTick()
	c.cancelNext()
	c.run.active = -1
	c.run.countdown = 0
	c.phase = PhaseCompleted
	c.status = StatusDone

	// An empty unit has nothing to master.
	if len(c.run.facts) == 0 {
		return
	}

	id := c.unit.ID
	if _, done := c.completed[id]; !done {
		c.completed[id] = CompletionRecord{
			UnitID:      id,
			Curriculum:  string(c.curriculum),
			FactCount:   len(c.run.facts),
			CompletedAt: c.now(),
		}
	}
	c.logger.Info("unit completed",
		zap.String("run_id", c.run.id),
		zap.String("unit_id", id),
		zap.Int("facts", len(c.run.facts)))
	c.persist.SaveCompletedUnits(context.Background(), maps.Clone(c.completed))
}

func (c *Controller) timeout() {
	c.cancelTick()
	i := c.run.active
	fact := c.run.facts[i]
	c.run.tracker.Adjust(i, mastery.MissDelta)
	c.run.countdown = 0
	c.outcome = OutcomeTimeout
	c.status = statusTimeout(fact)
	c.lastFact = fact.String()
	c.phase = PhaseScoring
	c.scheduleNext()
}

func (c *Controller) scheduleTick() {
	c.cancelTick()
	gen := c.tickGen
	c.tick = c.sched.AfterFunc(TickInterval, func() { c.onTick(gen) })
}

func (c *Controller) cancelTick() {
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.tickGen++
}

func (c *Controller) scheduleNext() {
	c.cancelNext()
	gen := c.nextGen
	c.next = c.sched.AfterFunc(NextQuestionDelay, func() { c.onNext(gen) })
}

func (c *Controller) cancelNext() {
	if c.next != nil {
		c.next.Stop()
		c.next = nil
	}
	c.nextGen++
}

func (c *Controller) onTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.tickGen || c.phase != PhaseAwaitingAnswer {
		return
	}
	c.tick = nil
	c.run.countdown--
	if c.run.countdown < 0 {
		c.timeout()
	} else {
		c.scheduleTick()
	}
	c.emit()
}

func (c *Controller) onNext(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.nextGen || c.phase != PhaseScoring {
		return
	}
	c.next = nil
	c.selectNext()
	c.emit()
}
