package transferwatch

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogSink_Emit(t *testing.T) {
	transfer := Transfer{Hash: "0x1", From: "0xa", To: "0xb", Value: decimal.NewFromInt(3)}

	assert.NoError(t, LogSink{}.Emit(t.Context(), transfer))
}

func TestMultiSink_Emit(t *testing.T) {
	transfer := Transfer{Hash: "0x1", From: "0xa", To: "0xb", Value: decimal.NewFromInt(3)}

	t.Run("emits to every sink", func(t *testing.T) {
		first := NewSinkMock(t)
		second := NewSinkMock(t)

		first.EXPECT().Emit(mock.Anything, transfer).Return(nil).Once()
		second.EXPECT().Emit(mock.Anything, transfer).Return(nil).Once()

		assert.NoError(t, MultiSink{first, second}.Emit(t.Context(), transfer))
	})

	t.Run("a failing sink does not stop the others", func(t *testing.T) {
		errFirst := errors.New("first down")
		errThird := errors.New("third down")

		first := NewSinkMock(t)
		second := NewSinkMock(t)
		third := NewSinkMock(t)

		first.EXPECT().Emit(mock.Anything, transfer).Return(errFirst).Once()
		second.EXPECT().Emit(mock.Anything, transfer).Return(nil).Once()
		third.EXPECT().Emit(mock.Anything, transfer).Return(errThird).Once()

		err := MultiSink{first, second, third}.Emit(t.Context(), transfer)

		assert.ErrorIs(t, err, errFirst)
		assert.ErrorIs(t, err, errThird)
	})

	t.Run("empty sink is a no-op", func(t *testing.T) {
		assert.NoError(t, MultiSink{}.Emit(t.Context(), transfer))
	})
}
