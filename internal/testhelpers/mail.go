package testhelpers

import (
	"context"
	"errors"
	"sync"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
)

// ErrMailRejected - ошибка, которую RecordingProvider возвращает для адресов из FailFor
var ErrMailRejected = errors.New("mail rejected by test provider")

// RecordingProvider запоминает отправленные письма вместо отправки
type RecordingProvider struct {
	mu      sync.Mutex
	Sent    []*email.Email
	FailFor map[string]bool
}

func NewRecordingProvider() *RecordingProvider {
	return &RecordingProvider{FailFor: make(map[string]bool)}
}

func (p *RecordingProvider) Send(ctx context.Context, e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, to := range e.To {
		if p.FailFor[to] {
			return ErrMailRejected
		}
	}
	p.Sent = append(p.Sent, e)
	return nil
}

func (p *RecordingProvider) Validate() error { return nil }

// SentTo - письма, отправленные на адрес
func (p *RecordingProvider) SentTo(addr string) []*email.Email {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*email.Email
	for _, e := range p.Sent {
		for _, to := range e.To {
			if to == addr {
				out = append(out, e)
			}
		}
	}
	return out
}
