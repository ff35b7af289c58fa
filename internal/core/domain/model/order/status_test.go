package order_test

import (
	"fmt"
	"testing"

	"gestion/internal/core/domain/model/order"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WireStrings(t *testing.T) {
	expected := []string{"NOVO PEDIDO", "MATÉRIA PRIMA", "PRODUÇÃO", "EMBALAGENS", "TRANSPORTE", "ENTREGUE"}

	statuses := order.Statuses()
	require.Len(t, statuses, len(expected))
	for i, status := range statuses {
		assert.Equal(t, expected[i], status.String())
		require.NoError(t, status.Validate())
	}

	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected order.Status
	}{
		{"NOVO PEDIDO", order.New},
		{"matéria prima", order.RawMaterial},
		{" PRODUÇÃO ", order.Production},
		{"Embalagens", order.Packaging},
		{"TRANSPORTE", order.Transport},
		{"ENTREGUE", order.Delivered},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := order.ParseStatus(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"SHIPPED" is not a valid status`)
	})
}

func TestStatus_Validate_RejectsOutOfRange(t *testing.T) {
	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
		t.Run(fmt.Sprintf("value %d", int(s)), func(t *testing.T) {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		})
	}
}

func TestStatus_ForwardChainReachesTerminal(t *testing.T) {
	current := order.New
	steps := 0

	for !current.IsTerminal() {
		next, ok := current.Next()
		require.True(t, ok, "status %s must have a successor", current)
		assert.True(t, current.CanTransitionTo(next))

		current = next
		steps++
	}

	assert.Equal(t, order.Delivered, current)
	assert.Equal(t, 5, steps)

	_, ok := order.Delivered.Next()
	assert.False(t, ok)
}

func TestStatus_Transition(t *testing.T) {
	testCases := []struct {
		name           string
		from           order.Status
		to             order.Status
		override       bool
		wantErr        error
		wantOutOfOrder bool
	}{
		{name: "immediate successor", from: order.New, to: order.RawMaterial},
		{name: "last step", from: order.Transport, to: order.Delivered},
		{name: "skip without override", from: order.New, to: order.Production, wantErr: order.ErrTransitionNotAllowed},
		{name: "backward without override", from: order.Packaging, to: order.Production, wantErr: order.ErrTransitionNotAllowed},
		{name: "leave terminal without override", from: order.Delivered, to: order.Transport, wantErr: order.ErrTransitionNotAllowed},
		{name: "skip with override", from: order.New, to: order.Delivered, override: true, wantOutOfOrder: true},
		{name: "backward with override", from: order.Delivered, to: order.New, override: true, wantOutOfOrder: true},
		{name: "successor with override stays in order", from: order.Production, to: order.Packaging, override: true},
		{name: "invalid target", from: order.New, to: order.Unknown, override: true, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, outOfOrder, err := tc.from.Transition(tc.to, tc.override)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, order.Unknown, next)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
			assert.Equal(t, tc.wantOutOfOrder, outOfOrder)
		})
	}
}
