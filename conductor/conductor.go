package conductor

import (
	"context"
	"sync"
	"time"

	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/sashimislicer/slicer/utils"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// SyncObserver receives the current time on every tick of a settling window
type SyncObserver interface {
	SyncTime(currentTime float64)
}

// Conductor drives a BeatClock from the frame loop. The beat clock itself is only touched by the goroutine running
// Step; beatmap loads and resyncs requested from other goroutines are applied at the start of the next frame, and
// readers get the snapshot published at the end of each frame.
type Conductor struct {
	beatClock *rhythm.BeatClock
	source    rhythm.TimeSource
	clock     clock.Clock
	interval  time.Duration
	settle    *SettlingWindow
	lastFrame time.Time

	pendingLock   sync.Mutex
	pendingLoad   *rhythm.TempoConfig
	pendingResync bool

	// guards the observers and the published snapshot
	stateLock     sync.RWMutex
	observers     []rhythm.Observer
	syncObservers []SyncObserver
	last          rhythm.TickResult
	tempo         rhythm.TempoConfig
	loaded        bool
	settling      bool

	log *logrus.Entry
}

// NewConductor creates a conductor ticking at fps frames per second. settlingTicks is the number of ticks the sync time
// is broadcast for after a resync; zero broadcasts until the next load or resync.
func NewConductor(cl clock.Clock, source rhythm.TimeSource, fps int, settlingTicks int) *Conductor {
	if fps <= 0 {
		fps = 60
	}
	return &Conductor{
		beatClock: rhythm.NewBeatClock(),
		source:    source,
		clock:     cl,
		interval:  utils.FrameInterval(fps),
		settle:    NewSettlingWindow(settlingTicks),
		log:       logger.GetProjectLogger().WithField("component", "conductor"),
	}
}

// Subscribe registers an observer for tick results. Observers run on the frame loop after the frame's snapshot is
// published, so they may call the read accessors below.
func (c *Conductor) Subscribe(o rhythm.Observer) {
	c.stateLock.Lock()
	defer c.stateLock.Unlock()

	c.observers = append(c.observers, o)
}

// SubscribeSync registers an observer for sync time broadcasts
func (c *Conductor) SubscribeSync(o SyncObserver) {
	c.stateLock.Lock()
	defer c.stateLock.Unlock()

	c.syncObservers = append(c.syncObservers, o)
}

// Last returns the tick result of the most recent frame
func (c *Conductor) Last() rhythm.TickResult {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	return c.last
}

// Tempo returns the beatmap tempo as of the most recent frame
func (c *Conductor) Tempo() rhythm.TempoConfig {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	return c.tempo
}

// Loaded reports whether a beatmap had been loaded as of the most recent frame
func (c *Conductor) Loaded() bool {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	return c.loaded
}

// Settling reports whether the sync time is still being broadcast after a resync
func (c *Conductor) Settling() bool {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()

	return c.settling
}

// Load queues a beatmap to be loaded at the start of the next frame
func (c *Conductor) Load(cfg rhythm.TempoConfig) {
	c.pendingLock.Lock()
	defer c.pendingLock.Unlock()

	c.pendingLoad = &cfg
	// a resync against the old tempo is meaningless once the new one is in
	c.pendingResync = false
}

// RequestResync queues a resync for the start of the next frame
func (c *Conductor) RequestResync() {
	c.pendingLock.Lock()
	defer c.pendingLock.Unlock()

	c.pendingResync = true
}

func (c *Conductor) takePending() (*rhythm.TempoConfig, bool) {
	c.pendingLock.Lock()
	defer c.pendingLock.Unlock()

	load, resync := c.pendingLoad, c.pendingResync
	c.pendingLoad, c.pendingResync = nil, false
	return load, resync
}

// Step runs one frame: it applies pending requests, ticks the beat clock exactly once, publishes the result and then
// notifies observers. Step must only be called from one goroutine at a time.
func (c *Conductor) Step() rhythm.TickResult {
	now := c.clock.Now()
	fallback := c.interval.Seconds()
	if !c.lastFrame.IsZero() {
		fallback = now.Sub(c.lastFrame).Seconds()
	}
	c.lastFrame = now

	raw := c.source.Seconds()

	load, resync := c.takePending()
	if load != nil {
		c.beatClock.LoadTempo(*load, raw)
		c.settle.Clear()
		// the tick below reads the same value the load did
		fallback = 0
	}

	var res rhythm.TickResult
	if resync && c.beatClock.Loaded() {
		res = c.beatClock.Resync(raw, fallback)
		c.settle.Arm()
	} else {
		res = c.beatClock.Tick(raw, fallback)
	}
	broadcastSync := c.settle.Consume()

	c.stateLock.Lock()
	c.last = res
	c.tempo = c.beatClock.Tempo()
	c.loaded = c.beatClock.Loaded()
	c.settling = c.settle.Open()
	observers := c.observers
	syncObservers := c.syncObservers
	c.stateLock.Unlock()

	for _, o := range observers {
		if res.CrossedBeat {
			o.BeatPassed(res.BeatNumber)
		}
		o.Ticked(res)
	}
	if broadcastSync {
		for _, o := range syncObservers {
			o.SyncTime(res.CurrentTime)
		}
	}

	if tempo := c.beatClock.Tempo(); tempo.Loop && tempo.LoopBeats > 0 && res.BeatNumber >= tempo.LoopBeats {
		c.log.WithFields(logrus.Fields{"beatmap": tempo.Name, "beat": res.BeatNumber}).Debug("Beatmap looped")
		c.RequestResync()
	}

	return res
}

// ProcessForever steps the beat clock once per frame until ctx is done
func (c *Conductor) ProcessForever(ctx context.Context, wg *sync.WaitGroup) {
	c.log.WithField("interval", c.interval).Info("Processing beat clock...")
	wg.Add(1)
	go c.process(ctx, wg)
}

func (c *Conductor) process(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	t := c.clock.NewTimer(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Beat clock shutdown")
			return
		case <-t.C():
			c.Step()
			t.Reset(c.interval)
		}
	}
}
