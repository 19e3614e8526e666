package contact_test

import (
	"context"
	"sync"
	"time"

	"github.com/devcodecare/site/pkg/email"
)

// fakeStrategy records sends and replies with a scripted result.
type fakeStrategy struct {
	name       string
	configured bool
	err        error
	panicWith  any
	block      bool

	mu    sync.Mutex
	sent  []email.Message
	ctxOK bool
}

func (f *fakeStrategy) Name() string     { return f.name }
func (f *fakeStrategy) Configured() bool { return f.configured }

func (f *fakeStrategy) Send(ctx context.Context, m email.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, m)
	_, f.ctxOK = ctx.Deadline()
	f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.block {
		// Ignores ctx on purpose to prove the dispatcher enforces the timeout.
		time.Sleep(time.Second)
	}
	return f.err
}

func (f *fakeStrategy) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeStrategy) last() email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

func (f *fakeStrategy) hadDeadline() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctxOK
}
