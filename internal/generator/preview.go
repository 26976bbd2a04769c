package generator

import (
	"container/list"
	"context"
	"strings"
	"sync"
)

const (
	PreviewSize        = 300
	PreviewSampleText  = "SAMPLE QR CODE - PREVIEW ONLY"
	DefaultMaxSessions = 1024
)

type previewSession struct {
	key       string
	issued    uint64
	committed uint64
	latest    *Result
	elem      *list.Element
}

// Previewer orders the results of a live preview. Every edit gets a higher
// sequence number; a result is kept only if nothing newer was committed
// for the same session. Sessions are evicted least recently used first.
type Previewer struct {
	mu       sync.Mutex
	sessions map[string]*previewSession
	lru      *list.List
	max      int
}

func NewPreviewer(maxSessions int) *Previewer {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Previewer{sessions: make(map[string]*previewSession), lru: list.New(), max: maxSessions}
}

func (p *Previewer) session(key string) *previewSession {
	if s, ok := p.sessions[key]; ok {
		p.lru.MoveToFront(s.elem)
		return s
	}
	if p.lru.Len() >= p.max {
		oldest := p.lru.Back()
		p.lru.Remove(oldest)
		delete(p.sessions, oldest.Value.(*previewSession).key)
	}
	s := &previewSession{key: key}
	s.elem = p.lru.PushFront(s)
	p.sessions[key] = s
	return s
}

// Begin issues the next sequence number for session.
func (p *Previewer) Begin(session string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.session(session)
	s.issued++
	return s.issued
}

// Observe records a sequence number chosen by the client. It returns false
// when a newer preview is already in flight or committed.
func (p *Previewer) Observe(session string, seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.session(session)
	if seq < s.issued || seq <= s.committed {
		return false
	}
	s.issued = seq
	return true
}

// Commit keeps r as the session's latest result unless a higher sequence
// has already been committed.
func (p *Previewer) Commit(session string, seq uint64, r *Result) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.session(session)
	if seq <= s.committed {
		return false
	}
	s.committed = seq
	s.latest = r
	return true
}

// Latest returns the newest committed result for session.
func (p *Previewer) Latest(session string) (*Result, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sessions[session]
	if !ok || s.latest == nil {
		return nil, false
	}
	return s.latest, true
}

// Preview renders req at preview size, substituting sample text when req
// has none. seq 0 asks the previewer for the next number. A result that
// loses to a newer one is returned with ErrStalePreview.
func (s *Service) Preview(ctx context.Context, session string, seq uint64, req Request) (*Result, error) {
	if seq == 0 {
		seq = s.previews.Begin(session)
	} else if !s.previews.Observe(session, seq) {
		return nil, ErrStalePreview
	}

	if strings.TrimSpace(req.Text) == "" {
		req.Text = PreviewSampleText
	}
	req.Size = PreviewSize
	req.Format = FormatPNG

	res, err := s.Custom(ctx, req)
	if err != nil {
		return nil, err
	}
	res.Sequence = seq
	if !s.previews.Commit(session, seq, res) {
		s.log.Debugw("discarding stale preview", "session", session, "seq", seq)
		return res, ErrStalePreview
	}
	return res, nil
}
