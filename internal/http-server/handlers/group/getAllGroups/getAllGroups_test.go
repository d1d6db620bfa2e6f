package getAllGroups

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventgroups/internal/http-server/handlers/group/getAllGroups/mocks"
	"eventgroups/internal/lib/logger/handlers/slogdiscard"
	"eventgroups/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllGroupsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testGroups := []models.Group{
		{ID: 2, EventID: "e1", GroupName: "Team B", CreatorName: "Bob", CreatorEmail: "bob@example.com"},
		{ID: 1, EventID: "e1", GroupName: "Team A", CreatorName: "Alice", CreatorEmail: "alice@example.com", AcceptsOthers: true},
	}

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(mock *mocks.GroupLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Success with defaults",
			query: "",
			mockSetup: func(mock *mocks.GroupLister) {
				mock.On("ListGroups", 10, 0).Return(testGroups, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var groups []models.Group
				require.NoError(t, json.Unmarshal([]byte(body), &groups))

				require.Len(t, groups, 2)
				assert.Equal(t, "Team B", groups[0].GroupName)
				assert.Equal(t, "Team A", groups[1].GroupName)
			},
		},
		{
			name:  "Custom page and limit",
			query: "?page=2&limit=5",
			mockSetup: func(mock *mocks.GroupLister) {
				mock.On("ListGroups", 5, 5).Return([]models.Group{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:  "Out of range page falls back to default",
			query: "?page=0",
			mockSetup: func(mock *mocks.GroupLister) {
				mock.On("ListGroups", 10, 0).Return([]models.Group{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Non-numeric page",
			query:          "?page=abc",
			mockSetup:      func(mock *mocks.GroupLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid page parameter"}}`,
		},
		{
			name:           "Non-numeric limit",
			query:          "?limit=ten",
			mockSetup:      func(mock *mocks.GroupLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid limit parameter"}}`,
		},
		{
			name:  "Storage error",
			query: "",
			mockSetup: func(mock *mocks.GroupLister) {
				mock.On("ListGroups", 10, 0).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"status":500,"message":"failed to get groups"}}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewGroupLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/groups"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
