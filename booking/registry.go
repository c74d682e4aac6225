package booking

import (
	"sync"
	"time"
)

// Registry giữ các phiên wizard đang mở theo id
type Registry struct {
	mu      sync.Mutex
	wizards map[string]*Wizard
}

// Sessions là registry dùng chung cho toàn app
var Sessions = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{wizards: map[string]*Wizard{}}
}

func (r *Registry) Put(w *Wizard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wizards[w.ID] = w
}

// Get trả về wizard theo id, chỉ khi thuộc đúng người dùng
func (r *Registry) Get(id string, userID uint) *Wizard {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wizards[id]
	if !ok || w.UserID != userID {
		return nil
	}
	return w
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wizards, id)
}

// ReapIdle gỡ các phiên đã đóng hoặc bỏ dở quá maxIdle, trả về số phiên đã dọn
func (r *Registry) ReapIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	n := 0
	for id, w := range r.wizards {
		if w.Step == StepClosed || w.UpdatedAt.Before(cutoff) {
			delete(r.wizards, id)
			n++
		}
	}
	return n
}
