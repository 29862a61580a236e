package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnComposeStart(ctx, "shotmap", 25)
	r.OnComposeComplete(ctx, "shotmap", time.Second, nil)
	r.OnRenderStart(ctx, []string{"svg"})
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "render")
	c.OnCacheMiss(ctx, "render")
	c.OnCacheSet(ctx, "render", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	SetRenderHooks(nil)
	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	ctx := context.Background()
	Render().OnComposeStart(ctx, "arrowmap", 10)
	Render().OnComposeComplete(ctx, "arrowmap", time.Millisecond, nil)

	if custom.composeStarts != 1 || custom.composeCompletes != 1 {
		t.Errorf("hooks not invoked: starts=%d completes=%d", custom.composeStarts, custom.composeCompletes)
	}
}

// testRenderHooks counts invocations for registry tests.
type testRenderHooks struct {
	composeStarts    int
	composeCompletes int
}

func (h *testRenderHooks) OnComposeStart(context.Context, string, int) { h.composeStarts++ }
func (h *testRenderHooks) OnComposeComplete(context.Context, string, time.Duration, error) {
	h.composeCompletes++
}
func (h *testRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (h *testRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

type testCacheHooks struct{}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      {}
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     {}
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) {}
