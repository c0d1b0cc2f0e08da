package contactservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact"
	contactdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/db"
	mockcontactservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_UpdateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mockcontactservice.NewMockRepository(ctrl)
	s := New(repository, zap.NewNop())

	subject := "Wholesale"

	repository.EXPECT().GetByID(gomock.Any(), 1).Return(&contact.Contact{ID: 1, Name: "Lina", Email: "lina@example.com"}, nil)
	repository.EXPECT().
		Update(gomock.Any(), contact.Contact{ID: 1, Name: "Lina", Email: "lina@example.com", Subject: subject}).
		DoAndReturn(func(_ context.Context, data contact.Contact) (*contact.Contact, error) {
			return &data, nil
		})

	updated, err := s.UpdateContact(context.Background(), 1, contact.Patch{Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, subject, updated.Subject)
}

func TestService_DeleteContact(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		expectedErr error
	}{
		{name: "deleted"},
		{name: "not found", repoErr: contactdb.ErrContactNotFound, expectedErr: ErrContactNotFound},
		{name: "database failure", repoErr: errors.New("conn reset"), expectedErr: errors.New("conn reset")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repository := mockcontactservice.NewMockRepository(ctrl)
			repository.EXPECT().Delete(gomock.Any(), 1).Return(tc.repoErr)

			err := New(repository, zap.NewNop()).DeleteContact(context.Background(), 1)

			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
