package generator

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewerLastRequestWins(t *testing.T) {
	p := NewPreviewer(0)
	first := p.Begin("tab")
	second := p.Begin("tab")
	require.Greater(t, second, first)

	newer := &Result{Text: "newer"}
	assert.True(t, p.Commit("tab", second, newer))
	assert.False(t, p.Commit("tab", first, &Result{Text: "older"}), "a slow earlier render must not overwrite")

	latest, ok := p.Latest("tab")
	require.True(t, ok)
	assert.Same(t, newer, latest)

	_, ok = p.Latest("other")
	assert.False(t, ok)
}

func TestPreviewerObserve(t *testing.T) {
	p := NewPreviewer(0)
	assert.True(t, p.Observe("tab", 5))
	assert.False(t, p.Observe("tab", 4))
	assert.True(t, p.Commit("tab", 5, &Result{}))
	assert.False(t, p.Observe("tab", 5), "already committed")
	assert.True(t, p.Observe("tab", 6))
}

func TestPreviewerEvictsLeastRecentlyUsed(t *testing.T) {
	p := NewPreviewer(2)
	p.Commit("a", p.Begin("a"), &Result{Text: "a"})
	p.Commit("b", p.Begin("b"), &Result{Text: "b"})
	_, _ = p.Latest("a")
	p.Begin("a")
	p.Commit("c", p.Begin("c"), &Result{Text: "c"})

	_, ok := p.Latest("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = p.Latest("a")
	assert.True(t, ok)
	_, ok = p.Latest("c")
	assert.True(t, ok)
}

func TestPreviewerConcurrent(t *testing.T) {
	p := NewPreviewer(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := p.Begin("tab")
			p.Commit("tab", seq, &Result{Sequence: seq})
		}()
	}
	wg.Wait()

	latest, ok := p.Latest("tab")
	require.True(t, ok)
	assert.Equal(t, uint64(50), latest.Sequence)
}

func TestServicePreview(t *testing.T) {
	s := NewService(Config{})
	ctx := context.Background()

	res, err := s.Preview(ctx, "tab", 0, Request{Size: 800, DotStyle: "dots"})
	require.NoError(t, err)
	assert.Equal(t, PreviewSampleText, res.Text)
	assert.Equal(t, PreviewSize, res.Size)
	assert.Equal(t, uint64(1), res.Sequence)

	res, err = s.Preview(ctx, "tab", 7, Request{Text: "typed"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.Sequence)

	_, err = s.Preview(ctx, "tab", 3, Request{Text: "typ"})
	assert.ErrorIs(t, err, ErrStalePreview)

	latest, ok := s.Previews().Latest("tab")
	require.True(t, ok)
	assert.Equal(t, "typed", latest.Text)
}

func TestServicePreviewInvalid(t *testing.T) {
	_, err := NewService(Config{}).Preview(context.Background(), "tab", 0, Request{DotStyle: "hexagon"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
