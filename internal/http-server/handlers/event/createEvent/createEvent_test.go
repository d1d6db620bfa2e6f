package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventgroups/internal/http-server/handlers/event/createEvent/mocks"
	"eventgroups/internal/lib/logger/handlers/slogdiscard"
	"eventgroups/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	testEvent := &models.Event{
		ID:             "11111111-2222-3333-4444-555555555555",
		Name:           "Hackathon",
		DateTime:       testTime,
		GroupSizeLimit: 2,
		Location:       "Hall A",
		CreatedAt:      createdAt,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Hackathon",
				"date_time": "2025-01-01T00:00:00Z",
				"group_size_limit": 2,
				"location": "Hall A"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Hackathon", testTime, int64(2), "Hall A").Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var event models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &event))

				assert.Equal(t, testEvent.ID, event.ID)
				assert.Equal(t, "Hackathon", event.Name)
				assert.Equal(t, int64(2), event.GroupSizeLimit)
				assert.Equal(t, "Hall A", event.Location)
			},
		},
		{
			name: "Zero size limit is allowed",
			requestBody: `{
				"name": "Hackathon",
				"date_time": "2025-01-01T00:00:00Z",
				"group_size_limit": 0,
				"location": "Hall A"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Hackathon", testTime, int64(0), "Hall A").Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"status":400,"message":"failed to decode request"}}`,
		},
		{
			name: "Missing name",
			requestBody: `{
				"date_time": "2025-01-01T00:00:00Z",
				"group_size_limit": 2,
				"location": "Hall A"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":422`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Missing group_size_limit",
			requestBody: `{
				"name": "Hackathon",
				"date_time": "2025-01-01T00:00:00Z",
				"location": "Hall A"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "GroupSizeLimit")
			},
		},
		{
			name: "Storage error",
			requestBody: `{
				"name": "Hackathon",
				"date_time": "2025-01-01T00:00:00Z",
				"group_size_limit": 2,
				"location": "Hall A"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Hackathon", testTime, int64(2), "Hall A").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"status":500,"message":"failed to create event"}}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
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
