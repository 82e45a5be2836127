// Package slippage implements the auto-slippage policy: discrete, auditable
// price-impact bands rather than a continuous formula.
package slippage

import (
	"fmt"
	"strings"

	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

const (
	WarningMediumImpact = "Medium price impact"
	WarningHighImpact   = "High price impact! Consider reducing swap amount."

	// Custom slippage bounds in percent.
	MinCustomPercent = 0.1
	MaxCustomPercent = 50.0
)

// Category is a coarse token risk bucket derived from the symbol.
type Category string

const (
	CategoryStablecoin Category = "stablecoin"
	CategoryMajor      Category = "major"
	CategoryBluechip   Category = "bluechip"
	CategoryUnknown    Category = "unknown"
)

// Classifier maps token symbols to risk categories. Membership comes from
// injected configuration; the lists are heuristics for warning suppression,
// never a correctness gate.
type Classifier struct {
	categories map[string]Category
}

func NewClassifier(conf *config.RiskConfig) *Classifier {
	m := make(map[string]Category, len(conf.Stablecoins)+len(conf.Majors)+len(conf.Bluechips))
	for _, s := range conf.Stablecoins {
		m[strings.ToUpper(s)] = CategoryStablecoin
	}
	for _, s := range conf.Majors {
		m[strings.ToUpper(s)] = CategoryMajor
	}
	for _, s := range conf.Bluechips {
		m[strings.ToUpper(s)] = CategoryBluechip
	}
	return &Classifier{categories: m}
}

func (c *Classifier) Categorize(symbol string) Category {
	if cat, ok := c.categories[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return cat
	}
	return CategoryUnknown
}

// LowRisk reports whether a symbol belongs to a reputable bucket.
func (c *Classifier) LowRisk(symbol string) bool {
	return c.Categorize(symbol) != CategoryUnknown
}

// Engine turns a price impact into a slippage recommendation.
type Engine struct {
	classifier *Classifier
}

func NewEngine(classifier *Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Auto buckets the price impact:
//
//	impact < 1%  → 0.5%, no warning
//	1% ≤ i < 5%  → 2.0%, medium warning
//	impact ≥ 5%  → 5.0%, high warning
//
// When both sides of the pair are low-risk tokens the warning is suppressed
// but the protective slippage value is kept, so reputable pairs don't cause
// alarm fatigue while still being shielded from volatile execution.
func (e *Engine) Auto(priceImpactPercent float64, sellSymbol, buySymbol string) domain.SlippageDecision {
	d := domain.SlippageDecision{Mode: domain.SlippageAuto}

	switch {
	case priceImpactPercent < 1:
		d.Value = 0.5
		d.Reason = "low price impact"
	case priceImpactPercent < 5:
		d.Value = 2.0
		d.Warning = WarningMediumImpact
		d.Reason = "medium price impact"
	default:
		d.Value = 5.0
		d.Warning = WarningHighImpact
		d.Reason = "high price impact"
	}

	if d.Warning != "" && e.classifier.LowRisk(sellSymbol) && e.classifier.LowRisk(buySymbol) {
		d.Warning = ""
		d.Reason += ", warning suppressed for reputable pair"
	}

	return d
}

// Custom validates a user-supplied slippage and uses it verbatim; no warning
// logic applies. Out-of-range values are rejected, not clamped.
func Custom(value float64) (domain.SlippageDecision, error) {
	if value < MinCustomPercent || value > MaxCustomPercent {
		return domain.SlippageDecision{}, fmt.Errorf(
			"%w: custom slippage %.2f%% out of range [%g%%, %g%%]",
			common.ErrValidation, value, MinCustomPercent, MaxCustomPercent)
	}
	return domain.SlippageDecision{
		Mode:   domain.SlippageCustom,
		Value:  value,
		Reason: "user-defined",
	}, nil
}
