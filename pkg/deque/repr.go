package deque

import (
	"fmt"
	"strings"
	"sync"
)

// cyclePlaceholder is rendered in place of a deque that is already being
// rendered further up the stack.
const cyclePlaceholder = "[...]"

// reprGuard tracks, by identity, the deques currently being rendered, so
// that an element whose repr transitively reaches the same deque produces
// a placeholder instead of recursing forever.
type reprGuard struct {
	mu     sync.Mutex
	active map[*Deque]struct{}
}

var guard = reprGuard{active: make(map[*Deque]struct{})}

func (g *reprGuard) enter(d *Deque) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.active[d]; ok {
		return false
	}
	g.active[d] = struct{}{}
	return true
}

func (g *reprGuard) leave(d *Deque) {
	g.mu.Lock()
	delete(g.active, d)
	g.mu.Unlock()
}

// Repr renders the deque as a container literal, e.g.
// "deque([1, 2, 3], maxlen=3)", delegating each element to the host's repr
// hook. A repr hook failure propagates, and the guard is released on every
// exit path.
func (d *Deque) Repr() (string, error) {
	if !guard.enter(d) {
		return cyclePlaceholder, nil
	}
	defer guard.leave(d)

	snap := d.snapshot()
	parts := make([]string, len(snap))
	for i, elem := range snap {
		s, err := d.host.Repr(elem)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	var sb strings.Builder
	sb.WriteString("deque([")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("]")
	if d.maxLen >= 0 {
		fmt.Fprintf(&sb, ", maxlen=%d", d.maxLen)
	}
	sb.WriteString(")")
	return sb.String(), nil
}
