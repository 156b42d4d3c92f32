package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/skypath/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	assert.Equal(t, "CODE12", builder.SymbolNumberIDFn("CODE")(12))
}
