package generate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-weber/lalr1/internal/exprlang"
)

func TestGenerateProducesParseableGoSource(t *testing.T) {
	out, err := Generate(exprlang.Tables, Options{PackageName: "generated"})

	assert.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "package generated")
	assert.Contains(t, src, "func New() *Parser")
	assert.Contains(t, src, "func (p *Parser) Parse() bool")
	assert.Contains(t, src, "func (p *Parser) state0() {")
	assert.NotContains(t, src, "%%", "no template placeholder should survive substitution")
	assert.NotContains(t, src, "activeRules", "partials must be elided when the toggle is off")
}

func TestGenerateWeavesPartialsWhenEnabled(t *testing.T) {
	out, err := Generate(exprlang.Tables, Options{PackageName: "generated", Partials: true})

	assert.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, "activeRules")
	assert.Contains(t, src, "func (p *Parser) applyPartialRule(")
	assert.NotContains(t, src, "%%")

	// A before-shift partial call woven into a shift case, and an
	// after-reduction one woven into a jump case.
	assert.Contains(t, src, "p.applyPartialRule(200, 1, true)")
	assert.Contains(t, src, "p.applyPartialRule(200, 3, false)")
}

func TestGenerateGuardsShiftAgainstExhaustedInput(t *testing.T) {
	out, err := Generate(exprlang.Tables, Options{})

	assert.NoError(t, err)
	assert.Contains(t, string(out), "if !p.failed {\n\t\t\tnextState(p)\n\t\t}")
}

func TestGenerateEmitsOneStatePerTableRow(t *testing.T) {
	out, err := Generate(exprlang.Tables, Options{})
	assert.NoError(t, err)
	src := string(out)

	for s := 0; s < len(exprlang.Tables.Shift); s++ {
		assert.Contains(t, src, "func (p *Parser) state"+strconv.Itoa(s)+"() {")
	}
}
