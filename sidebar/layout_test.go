package sidebar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tokens := DefaultTokens()
	cases := []struct {
		width float64
		want  Layout
	}{
		{0, Layout{Mobile, Expanded}},
		{320, Layout{Mobile, Expanded}},
		{500, Layout{Mobile, Expanded}},
		{767, Layout{Mobile, Expanded}},
		{767.9, Layout{Mobile, Expanded}},
		{768, Layout{Desktop, Compact}},
		{900, Layout{Desktop, Compact}},
		{1023, Layout{Desktop, Compact}},
		{1024, Layout{Desktop, Expanded}},
		{1200, Layout{Desktop, Expanded}},
		{2560, Layout{Desktop, Expanded}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.width), func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.width, tokens))
		})
	}
}

func TestResolve_MobileNeverCompact(t *testing.T) {
	tokens := DefaultTokens()
	for w := 0.0; w < tokens.Breakpoint; w += 7 {
		l := Resolve(w, tokens)
		assert.Equal(t, Mobile, l.Mode)
		assert.Equal(t, Expanded, l.Expansion, "width %v", w)
	}
}

func TestLayout_TargetWidth(t *testing.T) {
	tokens := DefaultTokens()
	assert.Equal(t, 260.0, Layout{Desktop, Expanded}.TargetWidth(tokens))
	assert.Equal(t, 72.0, Layout{Desktop, Compact}.TargetWidth(tokens))
	assert.Equal(t, 260.0, Layout{Mobile, Expanded}.TargetWidth(tokens))
}

func TestLayout_String(t *testing.T) {
	assert.Equal(t, "desktop/compact", Layout{Desktop, Compact}.String())
	assert.Equal(t, "mobile/expanded", Layout{Mobile, Expanded}.String())
}
