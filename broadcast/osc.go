package broadcast

import (
	"context"
	"sync"

	"github.com/hypebeast/go-osc/osc"
	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/sirupsen/logrus"
)

// OSC addresses published by OSCObserver
const (
	AddressBeat        = "/slicer/beat"
	AddressSubdivision = "/slicer/subdivision"
	AddressSync        = "/slicer/sync"
)

// OSCSender is the interface for sending OSC packets, satisfied by *osc.Client
type OSCSender interface {
	Send(packet osc.Packet) error
}

// OSCObserver turns beat clock notifications into OSC messages. Messages are queued and sent by SendOSCWorker so that
// a tick never waits on the network; when the queue is full new messages are dropped.
type OSCObserver struct {
	queue chan *osc.Message
	log   *logrus.Entry
}

// NewOSCObserver creates an observer queueing up to buffer messages
func NewOSCObserver(buffer int) *OSCObserver {
	return &OSCObserver{
		queue: make(chan *osc.Message, buffer),
		log:   logger.GetProjectLogger().WithField("component", "osc"),
	}
}

// BeatPassed queues the beat number on AddressBeat
func (o *OSCObserver) BeatPassed(beatNumber int) {
	o.enqueue(osc.NewMessage(AddressBeat, int32(beatNumber)))
}

// Ticked queues the subdivision number on AddressSubdivision when a subdivision was crossed
func (o *OSCObserver) Ticked(result rhythm.TickResult) {
	if result.CrossedSubdivision {
		o.enqueue(osc.NewMessage(AddressSubdivision, int32(result.SubdivisionNumber)))
	}
}

// SyncTime queues the current time on AddressSync
func (o *OSCObserver) SyncTime(currentTime float64) {
	o.enqueue(osc.NewMessage(AddressSync, currentTime))
}

func (o *OSCObserver) enqueue(msg *osc.Message) {
	select {
	case o.queue <- msg:
	default:
		o.log.WithField("address", msg.Address).Warn("OSC queue full, dropping message")
	}
}

// SendOSCWorker sends queued messages to client until ctx is done
func SendOSCWorker(ctx context.Context, client OSCSender, o *OSCObserver, wg *sync.WaitGroup) error {
	defer wg.Done()

	o.log.Info("OSC worker started")
	for {
		select {
		case <-ctx.Done():
			o.log.Info("OSC worker shutdown")
			return ctx.Err()
		case msg := <-o.queue:
			if err := client.Send(msg); err != nil {
				o.log.WithField("address", msg.Address).Errorf("could not send OSC message: %v", err)
			}
		}
	}
}
