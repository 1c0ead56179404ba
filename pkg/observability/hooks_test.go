package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopChartHooks{}
	c.OnCalculateStart(ctx, "report")
	c.OnCalculateComplete(ctx, "report", 2, time.Millisecond, nil)

	tr := NoopTransitHooks{}
	tr.OnScanStart(ctx, "Moon", "nakshatra")
	tr.OnScanComplete(ctx, "Moon", "nakshatra", 30, time.Second, nil)

	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, "report")
	ch.OnCacheMiss(ctx, "report")
	ch.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Chart().(NoopChartHooks); !ok {
		t.Error("Chart() should return NoopChartHooks by default")
	}
	if _, ok := Transit().(NoopTransitHooks); !ok {
		t.Error("Transit() should return NoopTransitHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customChart := &testChartHooks{}
	SetChartHooks(customChart)
	if Chart() != customChart {
		t.Error("SetChartHooks should set custom hooks")
	}

	customTransit := &testTransitHooks{}
	SetTransitHooks(customTransit)
	if Transit() != customTransit {
		t.Error("SetTransitHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Chart().(NoopChartHooks); !ok {
		t.Error("Reset() should restore NoopChartHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testChartHooks{}
	SetChartHooks(custom)
	SetChartHooks(nil)

	if Chart() != custom {
		t.Error("SetChartHooks(nil) should be ignored")
	}
}

type testChartHooks struct{ NoopChartHooks }
type testTransitHooks struct{ NoopTransitHooks }
type testCacheHooks struct{ NoopCacheHooks }
