package getGroupMembers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventgroups/internal/http-server/handlers/member/getGroupMembers/mocks"
	"eventgroups/internal/lib/logger/handlers/slogdiscard"
	"eventgroups/internal/models"
	"eventgroups/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGroupMembersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bobEmail := "bob@example.com"
	testMembers := []models.GroupMember{
		{ID: 1, GroupID: 1, Name: "Alice"},
		{ID: 2, GroupID: 1, Name: "Bob", Email: &bobEmail},
	}

	testCases := []struct {
		name           string
		groupID        string
		mockSetup      func(mock *mocks.MemberLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			groupID: "1",
			mockSetup: func(mock *mocks.MemberLister) {
				mock.On("ListGroupMembers", int64(1)).Return(testMembers, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var members []models.GroupMember
				require.NoError(t, json.Unmarshal([]byte(body), &members))

				require.Len(t, members, 2)
				assert.Equal(t, "Alice", members[0].Name)
				assert.Nil(t, members[0].Email)
				require.NotNil(t, members[1].Email)
				assert.Equal(t, "bob@example.com", *members[1].Email)
			},
		},
		{
			name:    "Success with no members",
			groupID: "1",
			mockSetup: func(mock *mocks.MemberLister) {
				mock.On("ListGroupMembers", int64(1)).Return([]models.GroupMember{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Invalid group id format",
			groupID:        "abc",
			mockSetup:      func(mock *mocks.MemberLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid group id format"}}`,
		},
		{
			name:    "Group not found",
			groupID: "999",
			mockSetup: func(mock *mocks.MemberLister) {
				mock.On("ListGroupMembers", int64(999)).Return(nil, storage.ErrGroupNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":{"status":404,"message":"group with id 999 not found"}}`,
		},
		{
			name:    "Storage error",
			groupID: "1",
			mockSetup: func(mock *mocks.MemberLister) {
				mock.On("ListGroupMembers", int64(1)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"status":500,"message":"failed to get group members"}}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewMemberLister(t)
			tc.mockSetup(mockLister)

			router := chi.NewRouter()
			router.Get("/groups/{id}/members", New(logger, mockLister))

			req, err := http.NewRequest(http.MethodGet, "/groups/"+tc.groupID+"/members", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
