package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend/mocks"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	_ "barnsight.xyz/pigsty-monitor-service/pkg/testing"
)

func TestHolderStartsEmpty(t *testing.T) {
	h := &Holder{}
	assert.Nil(t, h.Latest())

	snap := &models.Snapshot{FetchedAt: time.Now()}
	h.Replace(snap)
	assert.Same(t, snap, h.Latest())
}

func TestRunAppliesSnapshots(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockIFeed(ctrl)
	snap := &models.Snapshot{FetchedAt: time.Now()}
	feed.EXPECT().FetchSnapshot(gomock.Any()).Return(snap, nil).MinTimes(1)

	holder := &Holder{}
	p := &Poller{Source: feed, Interval: 10 * time.Millisecond, Holder: holder}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return holder.Latest() == snap
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRunFailureKeepsPreviousSnapshot(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	previous := &models.Snapshot{FetchedAt: time.Now()}
	feed := mocks.NewMockIFeed(ctrl)
	feed.EXPECT().FetchSnapshot(gomock.Any()).
		Return(nil, errors.New("upstream down")).MinTimes(1)

	holder := &Holder{}
	holder.Replace(previous)

	failures := make(chan error, 16)
	p := &Poller{
		Source:   feed,
		Interval: 10 * time.Millisecond,
		Holder:   holder,
		OnFailure: func(err error) {
			select {
			case failures <- err:
			default:
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case err := <-failures:
		assert.ErrorContains(t, err, "upstream down")
	case <-time.After(time.Second):
		t.Fatal("OnFailure never fired")
	}

	// the stale snapshot stays in place, it is never cleared on failure
	assert.Same(t, previous, holder.Latest())

	cancel()
	<-done
}

func TestRefreshDiscardedAfterCancellation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	feed := mocks.NewMockIFeed(ctrl)
	feed.EXPECT().FetchSnapshot(gomock.Any()).
		DoAndReturn(func(context.Context) (*models.Snapshot, error) {
			// cancellation lands while the fetch is in flight
			cancel()
			return &models.Snapshot{FetchedAt: time.Now()}, nil
		})

	holder := &Holder{}
	p := &Poller{Source: feed, Interval: time.Minute, Holder: holder}

	p.refresh(ctx, common.GetLogger())
	assert.Nil(t, holder.Latest())
}
