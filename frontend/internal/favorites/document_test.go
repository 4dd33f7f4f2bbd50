package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	doc := NewDocument()
	doc.Add(9)
	doc.Add(3)
	doc.Add(5)

	buttons := doc.Buttons()
	require.Len(t, buttons, 3)
	assert.Equal(t, int64(3), buttons[0].EquipmentId)
	assert.Equal(t, int64(5), buttons[1].EquipmentId)
	assert.Equal(t, int64(9), buttons[2].EquipmentId)

	b, ok := doc.Button(5)
	require.True(t, ok)
	assert.Equal(t, Idle, b.State)
	assert.Equal(t, IconNotFavorited, b.Icon)
	assert.False(t, b.Disabled)

	doc.Remove(5)
	_, ok = doc.Button(5)
	assert.False(t, ok)
}

func TestDocument_AddKeepsAttachedButton(t *testing.T) {
	doc := NewDocument()
	doc.Add(7)
	_, err := doc.update(7, func(b *Button) error {
		b.setFavorited(true)
		return nil
	})
	require.NoError(t, err)

	b := doc.Add(7)

	assert.Equal(t, Favorited, b.State)
}

func TestDocument_SnapshotsAreCopies(t *testing.T) {
	doc := NewDocument()
	b := doc.Add(1)
	b.Disabled = true

	again, _ := doc.Button(1)
	assert.False(t, again.Disabled)
}

func TestButton_Class(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		want   string
	}{
		{"idle", Button{State: Idle}, "favorite-btn"},
		{"not favorited", Button{State: NotFavorited}, "favorite-btn"},
		{"favorited", Button{State: Favorited}, "favorite-btn favorited"},
		{"just favorited", Button{State: Favorited, Pulse: true}, "favorite-btn favorited favorite-pulse"},
		{"just removed", Button{State: NotFavorited, Pulse: true}, "favorite-btn favorite-pulse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.button.Class())
		})
	}
}

func TestDocuments_PerUser(t *testing.T) {
	docs := NewDocuments()

	assert.Same(t, docs.For(1), docs.For(1))
	assert.NotSame(t, docs.For(1), docs.For(2))
}
