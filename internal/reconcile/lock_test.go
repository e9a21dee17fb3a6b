package reconcile

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/act3-ai/gitui/internal/mocks/gitmock"
)

func Test_lockFor(t *testing.T) {
	t.Run("SamePath", func(t *testing.T) {
		dir := t.TempDir()
		assert.Same(t, lockFor(dir), lockFor(filepath.Join(dir, ".", "sub", "..")))
	})

	t.Run("DifferentPaths", func(t *testing.T) {
		assert.NotSame(t, lockFor(t.TempDir()), lockFor(t.TempDir()))
	})
}

func TestReconciler_Update_Serialized(t *testing.T) {
	t.Run("SameWorkingCopy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := t.TempDir()

		var inFlight, maxInFlight atomic.Int32
		fetch := func(context.Context) error {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			return cmdErr("offline")
		}

		const callers = 4
		var wg sync.WaitGroup
		for range callers {
			vcs := gitmock.NewMockAdapter(ctrl)
			vcs.EXPECT().Dir().Return(dir).AnyTimes()
			vcs.EXPECT().Fetch(gomock.Any()).DoAndReturn(fetch)

			r := New(vcs, DefaultConfig())
			wg.Go(func() {
				err := r.Update(t.Context(), "staging", false)
				assert.Equal(t, FetchListFailure, KindOf(err))
			})
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInFlight.Load())
	})
}
