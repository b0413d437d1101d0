package outwriter

import (
	"testing"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTableRepoWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"wide override", 200, 60},
		{"narrow override", 30, 15},
		{"moderate override", 70, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxTableRepoWidth(cfg))
		})
	}
}

func TestTruncateRepo(t *testing.T) {
	assert.Equal(t, "acme/widget", TruncateRepo("acme/widget", 20))
	assert.Equal(t, ".../widget-factory", TruncateRepo("some-long-organization/widget-factory", 18))
	assert.Len(t, TruncateRepo("some-long-organization/widget-factory", 18), 18)
}

func TestPrintGapReport(t *testing.T) {
	gaps := []core.WindowGap{
		{Repo: "acme/widget", GapDays: 4.2},
		{Repo: "acme/gadget", GapDays: 13.5},
	}

	assert.NotPanics(t, func() {
		assert.NoError(t, PrintGapReport(gaps, &contract.Config{Width: 80}))
	})
}
