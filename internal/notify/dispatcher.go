package notify

import "log"

// Sender delivers one push message.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

type pushJob struct {
	chatID int64
	text   string
}

// Dispatcher decouples push delivery from request handling: Enqueue never
// blocks, a single worker drains the queue in order. When the buffer is full
// the message is dropped and logged, order placement must not wait on
// Telegram.
type Dispatcher struct {
	sender Sender
	jobs   chan pushJob
	done   chan struct{}
}

func NewDispatcher(sender Sender, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		sender: sender,
		jobs:   make(chan pushJob, buffer),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Enqueue(chatID int64, text string) {
	select {
	case d.jobs <- pushJob{chatID: chatID, text: text}:
	default:
		log.Printf("[notify] push queue full, dropping message for chat %d", chatID)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for job := range d.jobs {
		if err := d.sender.SendMessage(job.chatID, job.text); err != nil {
			log.Printf("[notify] send to chat %d: %v", job.chatID, err)
		}
	}
}

// Close stops accepting jobs and waits for the queue to drain.
func (d *Dispatcher) Close() {
	close(d.jobs)
	<-d.done
}
