package exportrequestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest"
	exportrequestdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/db"
	mockexportrequestservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_GetExportRequest(t *testing.T) {
	tests := []struct {
		name        string
		repoResult  *exportrequest.ExportRequest
		repoErr     error
		expectedErr error
	}{
		{name: "found", repoResult: &exportrequest.ExportRequest{ID: 2, Country: "Oman"}},
		{name: "not found", repoErr: exportrequestdb.ErrExportRequestNotFound, expectedErr: ErrExportRequestNotFound},
		{name: "database failure", repoErr: errors.New("conn reset"), expectedErr: errors.New("conn reset")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repository := mockexportrequestservice.NewMockRepository(ctrl)
			repository.EXPECT().GetByID(gomock.Any(), 2).Return(tc.repoResult, tc.repoErr)

			e, err := New(repository, zap.NewNop()).GetExportRequest(context.Background(), 2)

			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.repoResult, e)
		})
	}
}

func TestService_UpdateExportRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mockexportrequestservice.NewMockRepository(ctrl)
	s := New(repository, zap.NewNop())

	products := "Tahini"
	existing := &exportrequest.ExportRequest{ID: 3, CompanyName: "Gulf Foods", Country: "Oman"}

	repository.EXPECT().GetByID(gomock.Any(), 3).Return(existing, nil)
	repository.EXPECT().
		Update(gomock.Any(), exportrequest.ExportRequest{ID: 3, CompanyName: "Gulf Foods", Country: "Oman", Products: products}).
		DoAndReturn(func(_ context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error) {
			return &data, nil
		})

	updated, err := s.UpdateExportRequest(context.Background(), 3, exportrequest.Patch{Products: &products})
	require.NoError(t, err)

	assert.Equal(t, products, updated.Products)
	assert.Empty(t, existing.Products)
}

func TestService_DeleteExportRequest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mockexportrequestservice.NewMockRepository(ctrl)
	repository.EXPECT().Delete(gomock.Any(), 9).Return(exportrequestdb.ErrExportRequestNotFound)

	err := New(repository, zap.NewNop()).DeleteExportRequest(context.Background(), 9)

	assert.Equal(t, ErrExportRequestNotFound, err)
}
