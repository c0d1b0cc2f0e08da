package guard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	mockguard "github.com/xw1nchester/foodcatalog-backend/internal/guard/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestGuard_ForbidDeleteWithChildren(t *testing.T) {
	categoryRule, _ := guard.RuleFor(guard.KindCategory)
	dishRule, _ := guard.RuleFor(guard.KindDish)

	tests := []struct {
		name            string
		kind            guard.Kind
		id              int
		mockBehavior    func(c *mockguard.MockCounter)
		expectedMessage string
		expectedErr     error
	}{
		{
			name: "no children",
			kind: guard.KindCategory,
			id:   3,
			mockBehavior: func(c *mockguard.MockCounter) {
				c.EXPECT().CountChildren(gomock.Any(), categoryRule, 3).Return(0, nil)
			},
		},
		{
			name: "products still reference the category",
			kind: guard.KindCategory,
			id:   3,
			mockBehavior: func(c *mockguard.MockCounter) {
				c.EXPECT().CountChildren(gomock.Any(), categoryRule, 3).Return(3, nil)
			},
			expectedMessage: "cannot delete category: 3 products still reference it",
		},
		{
			name: "single recipe references the dish",
			kind: guard.KindDish,
			id:   7,
			mockBehavior: func(c *mockguard.MockCounter) {
				c.EXPECT().CountChildren(gomock.Any(), dishRule, 7).Return(1, nil)
			},
			expectedMessage: "cannot delete dish: 1 recipe still reference it",
		},
		{
			name: "counter failure",
			kind: guard.KindCategory,
			id:   3,
			mockBehavior: func(c *mockguard.MockCounter) {
				c.EXPECT().CountChildren(gomock.Any(), categoryRule, 3).Return(0, errors.New("conn closed"))
			},
			expectedErr: errors.New("conn closed"),
		},
		{
			name:         "unknown kind",
			kind:         guard.Kind("product"),
			id:           1,
			mockBehavior: func(c *mockguard.MockCounter) {},
			expectedErr:  errors.New(`no delete rule for kind "product"`),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			counter := mockguard.NewMockCounter(ctrl)
			tc.mockBehavior(counter)

			g := guard.New(counter, zap.NewNop())

			err := g.ForbidDeleteWithChildren(context.Background(), tc.kind, tc.id)

			switch {
			case tc.expectedMessage != "":
				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tc.expectedMessage, appErr.Message)
				assert.False(t, appErr.IsNotFound())
			case tc.expectedErr != nil:
				require.Error(t, err)
				assert.Equal(t, tc.expectedErr.Error(), err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestRules(t *testing.T) {
	for _, kind := range []guard.Kind{guard.KindBrand, guard.KindCategory, guard.KindDishCategory, guard.KindDish} {
		rule, ok := guard.RuleFor(kind)
		require.True(t, ok, kind)
		assert.NotEmpty(t, rule.ChildTable)
		assert.NotEmpty(t, rule.ChildColumn)
	}

	assert.Equal(t, "cannot delete dish category: dishes still reference it", guard.NewReferencedErr(guard.KindDishCategory).Message)
}
