package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := DefaultMetrics
	assert.Equal(t, 768.0, m.Points(96))
	assert.Equal(t, 1024.0, m.Points(128))
	assert.Equal(t, 33, m.Cols(260))
	assert.Equal(t, 9, m.Cols(72))
	assert.Equal(t, -33, m.Cols(-260))
	assert.Equal(t, 4, m.Rows(72))
	assert.Equal(t, 1, m.Rows(1))
	assert.Equal(t, 0, Metrics{}.Cols(100))
}
