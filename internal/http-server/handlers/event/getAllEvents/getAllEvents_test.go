package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventgroups/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventgroups/internal/lib/logger/handlers/slogdiscard"
	"eventgroups/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testEvents := []models.Event{
		{ID: "e2", Name: "Later", DateTime: testTime.Add(time.Hour), GroupSizeLimit: 5, Location: "Hall B"},
		{ID: "e1", Name: "Earlier", DateTime: testTime, GroupSizeLimit: 3, Location: "Hall A"},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.EventLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Defaults",
			url:  "/events",
			mockSetup: func(mock *mocks.EventLister) {
				mock.On("ListEvents", 10, 0).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var events []models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &events))
				require.Len(t, events, 2)
				assert.Equal(t, "e2", events[0].ID)
				assert.Equal(t, "e1", events[1].ID)
			},
		},
		{
			name: "Explicit page and limit",
			url:  "/events?page=3&limit=5",
			mockSetup: func(mock *mocks.EventLister) {
				mock.On("ListEvents", 5, 10).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Page below one falls back to default",
			url:  "/events?page=0",
			mockSetup: func(mock *mocks.EventLister) {
				mock.On("ListEvents", 10, 0).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Non-numeric page",
			url:            "/events?page=abc",
			mockSetup:      func(mock *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid page parameter"}}`,
		},
		{
			name:           "Non-numeric limit",
			url:            "/events?limit=ten",
			mockSetup:      func(mock *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"invalid limit parameter"}}`,
		},
		{
			name: "Storage error",
			url:  "/events",
			mockSetup: func(mock *mocks.EventLister) {
				mock.On("ListEvents", 10, 0).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"status":500,"message":"failed to get events"}}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
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
