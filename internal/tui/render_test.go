package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avickers/phonescout/internal/domain"
)

func TestRenderTurn(t *testing.T) {
	stamp := time.Date(2026, 3, 14, 15, 4, 0, 0, time.Local)

	tests := []struct {
		name string
		turn domain.Turn
		want string
	}{
		{
			name: "user with timestamp",
			turn: domain.Turn{Text: "hello", Sender: domain.RoleUser, CreatedAt: stamp},
			want: "[you 15:04] hello",
		},
		{
			name: "assistant with timestamp",
			turn: domain.Turn{Text: "hi there", Sender: domain.RoleAssistant, CreatedAt: stamp},
			want: "[assistant 15:04] hi there",
		},
		{
			name: "zero timestamp drops time label",
			turn: domain.Turn{Text: "hello", Sender: domain.RoleUser},
			want: "[you] hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTurn(tt.turn))
		})
	}
}

func TestRenderCard(t *testing.T) {
	full := domain.CellPhone{ID: 1, Brand: "Acme", Model: "X1", Year: 2023, Price: 399, Storage: "128GB", BatteryLife: "20h"}
	got := RenderCard(full, 1)
	assert.Equal(t, "  [1] Acme X1 - $399 (2023, 128GB, 20h battery)", got)

	bare := domain.CellPhone{ID: 2, Brand: "Bolt", Model: "Z9", Year: 2024, Price: 899.5}
	got = RenderCard(bare, 2)
	assert.Equal(t, "  [2] Bolt Z9 - $900 (2024)", got)
}

func TestRenderRecommendations(t *testing.T) {
	phones := []domain.CellPhone{
		{ID: 1, Brand: "Acme", Model: "X1", Year: 2023, Price: 399},
		{ID: 2, Brand: "Bolt", Model: "Z9", Year: 2024, Price: 899},
	}

	got := RenderRecommendations(phones)
	assert.Contains(t, got, "Recommended phones:")
	assert.Contains(t, got, "[1] Acme X1")
	assert.Contains(t, got, "[2] Bolt Z9")
	assert.Contains(t, got, "/select N")
}
