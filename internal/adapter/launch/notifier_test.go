//go:build unit

package launch

import (
	"context"
	"errors"
	"testing"
	"time"

	"cadastro-rural/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNotifier_URLs(t *testing.T) {
	secure := NewNotifier(Options{HTTPPort: 8000, HTTPSPort: 8443, SecureURL: true}, nil)
	assert.Equal(t, []string{"https://localhost:8443", "http://localhost:8000"}, secure.URLs())

	plain := NewNotifier(Options{HTTPPort: 8000, HTTPSPort: 8443}, nil)
	assert.Equal(t, []string{"http://localhost:8000"}, plain.URLs())
}

func TestNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opts := Options{Delay: time.Millisecond, HTTPPort: 8000, HTTPSPort: 8443, SecureURL: true}

	t.Run("OpensSecureURL", func(t *testing.T) {
		opener := mock.NewMockBrowserOpener(ctrl)
		opener.EXPECT().Open("https://localhost:8443").Return(nil)

		assert.Equal(t, "https://localhost:8443", NewNotifier(opts, opener).Notify(context.Background()))
	})

	t.Run("FallsBackToPlaintext", func(t *testing.T) {
		opener := mock.NewMockBrowserOpener(ctrl)
		gomock.InOrder(
			opener.EXPECT().Open("https://localhost:8443").Return(errors.New("exec: \"xdg-open\": executable file not found in $PATH")),
			opener.EXPECT().Open("http://localhost:8000").Return(nil),
		)

		assert.Equal(t, "http://localhost:8000", NewNotifier(opts, opener).Notify(context.Background()))
	})

	t.Run("PlaintextOnlyWithoutTLS", func(t *testing.T) {
		opener := mock.NewMockBrowserOpener(ctrl)
		opener.EXPECT().Open("http://localhost:8000").Return(nil)

		plainOpts := opts
		plainOpts.SecureURL = false
		assert.Equal(t, "http://localhost:8000", NewNotifier(plainOpts, opener).Notify(context.Background()))
	})

	t.Run("AllAttemptsFail", func(t *testing.T) {
		opener := mock.NewMockBrowserOpener(ctrl)
		opener.EXPECT().Open(gomock.Any()).Return(errors.New("no display")).Times(2)

		assert.Empty(t, NewNotifier(opts, opener).Notify(context.Background()))
	})
}

func TestNotifier_CancelledBeforeDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Open calls are expected
	opener := mock.NewMockBrowserOpener(ctrl)
	n := NewNotifier(Options{Delay: time.Hour, HTTPPort: 8000, HTTPSPort: 8443, SecureURL: true}, opener)

	ctx, cancel := context.WithCancel(context.Background())
	done := n.Start(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "notifier did not stop after cancellation")
	}
}
