package feedback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var (
	ErrNoPendingPrompt = errors.New("no pending prompt")
	ErrPromptInFlight  = errors.New("another prompt is pending")
)

// Prompt is a soreness question about one muscle group.
type Prompt struct {
	ID          uuid.UUID `json:"id"`
	MuscleGroup string    `json:"muscleGroup"`
	// position in the queue of today's prompts, 1 based
	Position int `json:"position"`
	Total    int `json:"total"`
}

type pendingPrompt struct {
	prompt   Prompt
	answerCh chan progression.SorenessLevel
}

// Broker hands prompts of the elicitor over to the client, one at a time.
// The client polls Pending and replies with Answer.
type Broker struct {
	mu      sync.Mutex
	pending *pendingPrompt
}

func NewBroker() *Broker {
	return &Broker{}
}

// Ask publishes the prompt and blocks until it is answered or ctx is done.
func (b *Broker) Ask(ctx context.Context, p Prompt) (progression.SorenessLevel, error) {
	pp := &pendingPrompt{
		prompt:   p,
		answerCh: make(chan progression.SorenessLevel, 1),
	}

	b.mu.Lock()
	if b.pending != nil {
		b.mu.Unlock()
		return "", ErrPromptInFlight
	}
	b.pending = pp
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		if b.pending == pp {
			b.pending = nil
		}
		b.mu.Unlock()
	}()

	select {
	case level := <-pp.answerCh:
		return level, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Pending returns the prompt waiting for an answer, if any.
func (b *Broker) Pending() (Prompt, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return Prompt{}, false
	}
	return b.pending.prompt, true
}

// Answer replies to the pending prompt with the given id.
func (b *Broker) Answer(promptID uuid.UUID, level progression.SorenessLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("invalid soreness level: %s", level)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil || b.pending.prompt.ID != promptID {
		return ErrNoPendingPrompt
	}

	// buffered, and only the first answer gets here
	b.pending.answerCh <- level
	b.pending = nil
	return nil
}
