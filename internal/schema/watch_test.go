package schema

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/datatypes/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orders.yaml", ordersYAML)
	other := filepath.Join(dir, "notes.txt")

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan []string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, 10*time.Millisecond, testutil.NewTestLogger(t), func(paths []string) {
			changed <- paths
		})
	}()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte("ignored"), 0o600)
		_ = os.WriteFile(path, []byte(ordersYAML), 0o600)
		select {
		case paths := <-changed:
			return assert.ObjectsAreEqual([]string{path}, paths)
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_ReportsEveryFileWrittenWithinDebounce(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.yaml", ordersYAML)
	second := writeFile(t, dir, "b.yaml", ordersYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan []string, 16)
	go func() {
		_ = Watch(ctx, []string{first, second}, 200*time.Millisecond, testutil.NewTestLogger(t), func(paths []string) {
			changed <- paths
		})
	}()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(first, []byte(ordersYAML), 0o600)
		time.Sleep(20 * time.Millisecond)
		_ = os.WriteFile(second, []byte(ordersYAML), 0o600)
		select {
		case paths := <-changed:
			return assert.ObjectsAreEqual([]string{first, second}, paths)
		case <-time.After(time.Second):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond)
}

func TestWatch_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "schema.yaml")
	err := Watch(context.Background(), []string{missing}, time.Millisecond, nil, func([]string) {})
	assert.Error(t, err)
}
