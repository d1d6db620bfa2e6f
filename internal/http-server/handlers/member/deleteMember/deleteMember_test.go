package deleteMember

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventgroups/internal/http-server/handlers/member/deleteMember/mocks"
	"eventgroups/internal/lib/logger/handlers/slogdiscard"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMemberHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		memberID       string
		mockSetup      func(mock *mocks.MemberDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			memberID: "5",
			mockSetup: func(mock *mocks.MemberDeleter) {
				mock.On("DeleteMember", int64(5)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Invalid member id format",
			memberID:       "abc",
			mockSetup:      func(mock *mocks.MemberDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid member id format"}}`,
		},
		{
			name:     "Member not found",
			memberID: "999",
			mockSetup: func(mock *mocks.MemberDeleter) {
				mock.On("DeleteMember", int64(999)).Return(storage.ErrMemberNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":{"status":404,"message":"member with id 999 not found"}}`,
		},
		{
			name:     "Storage error",
			memberID: "5",
			mockSetup: func(mock *mocks.MemberDeleter) {
				mock.On("DeleteMember", int64(5)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"status":500,"message":"failed to delete member"}}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewMemberDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/members/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/members/"+tc.memberID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			} else if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}
