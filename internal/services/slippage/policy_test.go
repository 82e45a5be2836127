package slippage

import (
	"testing"

	"github.com/ivan0796/swaplaunch-sub000/internal/config"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	conf := &config.RiskConfig{}
	if err := conf.Load(); err != nil {
		t.Fatalf("loading risk config: %v", err)
	}
	return NewEngine(NewClassifier(conf))
}

func TestAuto_Buckets(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		impact  float64
		value   float64
		warning string
	}{
		{0.0, 0.5, ""},
		{0.99, 0.5, ""},
		{1.0, 2.0, WarningMediumImpact},
		{4.99, 2.0, WarningMediumImpact},
		{5.0, 5.0, WarningHighImpact},
		{7.2, 5.0, WarningHighImpact},
		{42.0, 5.0, WarningHighImpact},
	}

	for _, tc := range cases {
		// PEPE/SHIB are not in any reputable list, so no suppression.
		d := e.Auto(tc.impact, "PEPE", "SHIB")
		if d.Value != tc.value {
			t.Errorf("impact %.2f: expected slippage %g, got %g", tc.impact, tc.value, d.Value)
		}
		if d.Warning != tc.warning {
			t.Errorf("impact %.2f: expected warning %q, got %q", tc.impact, tc.warning, d.Warning)
		}
	}
}

func TestAuto_WarningSuppressedForReputablePair(t *testing.T) {
	e := newTestEngine(t)

	d := e.Auto(6.0, "USDC", "WETH")

	if d.Value != 5.0 {
		t.Errorf("suppression must not change the slippage value, got %g", d.Value)
	}
	if d.Warning != "" {
		t.Errorf("expected suppressed warning, got %q", d.Warning)
	}
}

func TestAuto_WarningKeptWhenOneSideUnknown(t *testing.T) {
	e := newTestEngine(t)

	d := e.Auto(6.0, "USDC", "PEPE")

	if d.Warning != WarningHighImpact {
		t.Errorf("expected warning for half-unknown pair, got %q", d.Warning)
	}
}

func TestClassifier_Categories(t *testing.T) {
	conf := &config.RiskConfig{}
	if err := conf.Load(); err != nil {
		t.Fatalf("loading risk config: %v", err)
	}
	c := NewClassifier(conf)

	cases := []struct {
		symbol   string
		category Category
	}{
		{"USDT", CategoryStablecoin},
		{"usdc", CategoryStablecoin},
		{" WETH ", CategoryMajor},
		{"LINK", CategoryBluechip},
		{"DOGEWIFHAT", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tc := range cases {
		if got := c.Categorize(tc.symbol); got != tc.category {
			t.Errorf("symbol %q: expected %s, got %s", tc.symbol, tc.category, got)
		}
	}
}

func TestCustom_ValidRange(t *testing.T) {
	d, err := Custom(1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Value != 1.5 || d.Warning != "" {
		t.Errorf("custom value must be used verbatim with no warning, got %+v", d)
	}
}

func TestCustom_OutOfRangeRejected(t *testing.T) {
	for _, v := range []float64{0, 0.05, -1, 50.01, 100} {
		if _, err := Custom(v); err == nil {
			t.Errorf("expected rejection for %g", v)
		}
	}
	// Boundaries are inclusive.
	for _, v := range []float64{0.1, 50} {
		if _, err := Custom(v); err != nil {
			t.Errorf("boundary %g must be accepted: %v", v, err)
		}
	}
}
