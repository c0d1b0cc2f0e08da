package careerservice

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"
	careerdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/db"
	mockcareerservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/service/mocks"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const maxSize = 1 << 20

func cvUpload(filename string, size int64) *storage.Upload {
	return &storage.Upload{
		File:        bytes.NewReader([]byte("%PDF-1.4")),
		Filename:    filename,
		ContentType: "application/pdf",
		Size:        size,
	}
}

// saveTo stands in for Files.SaveAll and stores every upload at path.
func saveTo(path string) func(context.Context, string, ...storage.Pending) ([]string, error) {
	return func(_ context.Context, _ string, pending ...storage.Pending) ([]string, error) {
		var saved []string
		for _, p := range pending {
			if p.Upload == nil {
				continue
			}
			publicPath := path
			*p.Dst = &publicPath
			saved = append(saved, publicPath)
		}
		return saved, nil
	}
}

func TestService_CreateCareer(t *testing.T) {
	type mockBehavior func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles)

	applicant := career.Career{Name: "Omar", Email: "omar@example.com", Phone: "+971500000000", Position: "Chef"}
	withCV := applicant
	cvPath := "/uploads/careers/cv.pdf"
	withCV.CV = &cvPath

	tests := []struct {
		name         string
		uploads      career.Uploads
		mockBehavior mockBehavior
		expected     *career.Career
		expectedErr  string
	}{
		{
			name: "without cv",
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				f.EXPECT().SaveAll(gomock.Any(), storage.DirCareers, gomock.Any()).DoAndReturn(saveTo(cvPath))
				r.EXPECT().Create(gomock.Any(), applicant).Return(&career.Career{ID: 1}, nil)
			},
			expected: &career.Career{ID: 1},
		},
		{
			name:    "with cv",
			uploads: career.Uploads{CV: cvUpload("Resume.PDF", 8)},
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				f.EXPECT().SaveAll(gomock.Any(), storage.DirCareers, gomock.Any()).DoAndReturn(saveTo(cvPath))
				r.EXPECT().Create(gomock.Any(), withCV).Return(&career.Career{ID: 2, CV: &cvPath}, nil)
			},
			expected: &career.Career{ID: 2, CV: &cvPath},
		},
		{
			name:         "image instead of document",
			uploads:      career.Uploads{CV: cvUpload("photo.png", 8)},
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {},
			expectedErr:  "File type .png is not allowed",
		},
		{
			name:         "cv too large",
			uploads:      career.Uploads{CV: cvUpload("cv.docx", maxSize+1)},
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {},
			expectedErr:  "File size exceeds the 1MB limit",
		},
		{
			name:    "database failure removes saved cv",
			uploads: career.Uploads{CV: cvUpload("cv.doc", 8)},
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				f.EXPECT().SaveAll(gomock.Any(), storage.DirCareers, gomock.Any()).DoAndReturn(saveTo(cvPath))
				r.EXPECT().Create(gomock.Any(), withCV).Return(nil, errors.New("conn reset"))
				f.EXPECT().DeleteAll(gomock.Any(), cvPath)
			},
			expectedErr: "conn reset",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repository := mockcareerservice.NewMockRepository(ctrl)
			files := mockcareerservice.NewMockFiles(ctrl)
			tc.mockBehavior(repository, files)

			s := New(repository, files, maxSize, zap.NewNop())

			created, err := s.CreateCareer(context.Background(), applicant, tc.uploads)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
		})
	}
}

func TestService_UpdateCareer_ReplacesCV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mockcareerservice.NewMockRepository(ctrl)
	files := mockcareerservice.NewMockFiles(ctrl)
	s := New(repository, files, maxSize, zap.NewNop())

	oldCV, newCV := "/uploads/careers/old.pdf", "/uploads/careers/new.pdf"

	gomock.InOrder(
		repository.EXPECT().GetByID(gomock.Any(), 4).Return(&career.Career{ID: 4, Name: "Omar", CV: &oldCV}, nil),
		files.EXPECT().SaveAll(gomock.Any(), storage.DirCareers, gomock.Any()).DoAndReturn(saveTo(newCV)),
		repository.EXPECT().
			Update(gomock.Any(), career.Career{ID: 4, Name: "Omar", CV: &newCV}).
			DoAndReturn(func(_ context.Context, data career.Career) (*career.Career, error) {
				return &data, nil
			}),
		files.EXPECT().DeleteAll(gomock.Any(), oldCV),
	)

	updated, err := s.UpdateCareer(context.Background(), 4, career.Patch{}, career.Uploads{CV: cvUpload("cv.pdf", 8)})
	require.NoError(t, err)

	require.NotNil(t, updated.CV)
	assert.Equal(t, newCV, *updated.CV)
}

func TestService_UpdateCareer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mockcareerservice.NewMockRepository(ctrl)
	files := mockcareerservice.NewMockFiles(ctrl)

	repository.EXPECT().GetByID(gomock.Any(), 4).Return(nil, careerdb.ErrCareerNotFound)

	_, err := New(repository, files, maxSize, zap.NewNop()).
		UpdateCareer(context.Background(), 4, career.Patch{}, career.Uploads{})

	assert.Equal(t, ErrCareerNotFound, err)
}

func TestService_DeleteCareer(t *testing.T) {
	cvPath := "/uploads/careers/cv.pdf"

	tests := []struct {
		name         string
		mockBehavior func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles)
		expectedErr  error
	}{
		{
			name: "removes cv",
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				r.EXPECT().GetByID(gomock.Any(), 5).Return(&career.Career{ID: 5, CV: &cvPath}, nil)
				r.EXPECT().Delete(gomock.Any(), 5).Return(nil)
				f.EXPECT().DeleteAll(gomock.Any(), cvPath)
			},
		},
		{
			name: "without cv",
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				r.EXPECT().GetByID(gomock.Any(), 5).Return(&career.Career{ID: 5}, nil)
				r.EXPECT().Delete(gomock.Any(), 5).Return(nil)
				f.EXPECT().DeleteAll(gomock.Any())
			},
		},
		{
			name: "not found",
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				r.EXPECT().GetByID(gomock.Any(), 5).Return(nil, careerdb.ErrCareerNotFound)
			},
			expectedErr: ErrCareerNotFound,
		},
		{
			name: "deleted concurrently",
			mockBehavior: func(r *mockcareerservice.MockRepository, f *mockcareerservice.MockFiles) {
				r.EXPECT().GetByID(gomock.Any(), 5).Return(&career.Career{ID: 5, CV: &cvPath}, nil)
				r.EXPECT().Delete(gomock.Any(), 5).Return(careerdb.ErrCareerNotFound)
			},
			expectedErr: ErrCareerNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repository := mockcareerservice.NewMockRepository(ctrl)
			files := mockcareerservice.NewMockFiles(ctrl)
			tc.mockBehavior(repository, files)

			err := New(repository, files, maxSize, zap.NewNop()).DeleteCareer(context.Background(), 5)

			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
