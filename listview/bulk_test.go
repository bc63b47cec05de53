package listview

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PartialFailure(t *testing.T) {
	store := newMemStore(fakeParts(5, 10))
	ids := partIDs(store.items)
	store.failIDs[ids[2]] = true
	store.failIDs[ids[7]] = true

	d := NewDispatcher(store, nil)
	res, err := d.Apply(context.Background(), Deactivate{}, ids)
	require.NoError(t, err)

	assert.Equal(t, "8 of 10 succeeded", res.Summary())
	assert.Equal(t, 8, res.SucceededCount())
	require.Len(t, res.Failures, 2)
	assert.Equal(t, ids[2], res.Failures[0].ID)
	assert.Equal(t, ids[7], res.Failures[1].ID)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	for _, p := range items {
		if p.ID == ids[2] || p.ID == ids[7] {
			continue
		}
		assert.False(t, p.Active, "%s should be deactivated", p.ID)
	}
}

func TestDispatcher_EmptySelection(t *testing.T) {
	d := NewDispatcher(newMemStore(nil), &recordingConfirmer{answer: true})
	_, err := d.Apply(context.Background(), Activate{}, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestDispatcher_DeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	items := fakeParts(6, 4)

	t.Run("declined", func(t *testing.T) {
		store := newMemStore(items)
		confirm := &recordingConfirmer{answer: false}
		d := NewDispatcher(store, confirm)

		_, err := d.Apply(ctx, Delete{}, partIDs(items))
		assert.ErrorIs(t, err, ErrNotConfirmed)
		assert.Len(t, confirm.prompts, 1)
		assert.Len(t, store.items, 4)
	})

	t.Run("no confirmer", func(t *testing.T) {
		store := newMemStore(items)
		d := NewDispatcher(store, nil)

		_, err := d.Apply(ctx, Delete{}, partIDs(items))
		assert.ErrorIs(t, err, ErrNotConfirmed)
		assert.Len(t, store.items, 4)
	})

	t.Run("accepted", func(t *testing.T) {
		store := newMemStore(items)
		confirm := &recordingConfirmer{answer: true}
		d := NewDispatcher(store, confirm)

		res, err := d.Apply(ctx, Delete{}, partIDs(items[:2]))
		require.NoError(t, err)
		assert.Equal(t, "2 of 2 succeeded", res.Summary())
		assert.Contains(t, confirm.prompts[0], "Delete 2")
		assert.Len(t, store.items, 2)
	})
}

type slowMutator struct {
	inFlight, peak atomic.Int32
}

func (m *slowMutator) SetActive(context.Context, string, bool) error {
	n := m.inFlight.Add(1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	m.inFlight.Add(-1)
	return nil
}

func (m *slowMutator) Delete(context.Context, string) error { return nil }

func TestDispatcher_ConcurrencyLimit(t *testing.T) {
	m := &slowMutator{}
	d := NewDispatcher(m, nil, WithConcurrency(3))

	ids := partIDs(fakeParts(9, 20))
	res, err := d.Apply(context.Background(), Activate{}, ids)
	require.NoError(t, err)
	assert.Equal(t, 20, res.SucceededCount())
	assert.LessOrEqual(t, m.peak.Load(), int32(3))
}

func TestDispatcher_ExportDoesNotMutate(t *testing.T) {
	store := newMemStore(fakeParts(4, 3))
	var gotIDs []string
	d := NewDispatcher(store, nil, WithExport(func(_ io.Writer, ids []string) ([]string, error) {
		gotIDs = ids
		return ids, nil
	}))

	var buf bytes.Buffer
	res, err := d.Apply(context.Background(), Export{Writer: &buf}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, gotIDs)
	assert.Equal(t, "2 of 2 succeeded", res.Summary())
	assert.Equal(t, 0, store.listCall)

	_, err = d.Apply(context.Background(), Export{}, []string{"x"})
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	for name, want := range map[string]Action{
		"activate":   Activate{},
		"Deactivate": Deactivate{},
		" delete ":   Delete{},
		"export":     Export{},
	} {
		got, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseAction("archive")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
