package playground

import (
	"strings"
	"testing"

	"github.com/bvarga/petralog/internal/logic"
	"github.com/bvarga/petralog/internal/symbolize"
)

func testPlayground() *PlaygroundScreen {
	engine := logic.Default()
	return New(engine, symbolize.New(engine, nil))
}

func TestAnalyzeShowsCanonicalForm(t *testing.T) {
	p := testPlayground()
	p.analyze("p -> q")

	if p.errMsg != "" {
		t.Fatalf("unexpected error: %s", p.errMsg)
	}
	if !strings.Contains(p.analysis, "p → q") {
		t.Errorf("analysis missing canonical form:\n%s", p.analysis)
	}
	if !strings.Contains(p.analysis, "the rock is sandstone") {
		t.Errorf("analysis missing English reading:\n%s", p.analysis)
	}
}

func TestAnalyzeReportsSyntaxError(t *testing.T) {
	p := testPlayground()
	p.analyze("p ->")

	if p.errMsg == "" {
		t.Error("expected an error for a malformed formula")
	}
}

func TestProbeEquivalence(t *testing.T) {
	p := testPlayground()

	p.input.Model.SetValue(",(p ` q)")
	p.compare.Model.SetValue(",p ~ ,q")
	p.probeEquivalence()
	if p.errMsg != "" {
		t.Fatalf("unexpected error: %s", p.errMsg)
	}
	if !strings.Contains(p.analysis, "Equivalent") {
		t.Errorf("expected an equivalent verdict:\n%s", p.analysis)
	}

	p.compare.Model.SetValue(",p ` ,q")
	p.probeEquivalence()
	if !strings.Contains(p.analysis, "Not equivalent") {
		t.Errorf("expected a non-equivalent verdict:\n%s", p.analysis)
	}
	if !strings.Contains(p.analysis, "differ when") {
		t.Errorf("expected a witness assignment:\n%s", p.analysis)
	}
}
