package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matkb/matkb/cmd/matkbd/handlers"
	httptestutil "github.com/matkb/matkb/internal/testutils/http"
	apifeedback "github.com/matkb/matkb/pkg/api/types/feedback"
	types "github.com/matkb/matkb/pkg/domain"
	mockdb "github.com/matkb/matkb/pkg/domain/feedback/db/mock"
)

func TestGetFeedbackHandler(t *testing.T) {
	type when struct {
		target string
	}
	type then struct {
		statusCode int
		limit      int
	}

	for name, testcase := range map[string]struct {
		when when
		then then
	}{
		"no limit passes zero to the store": {
			when: when{target: "/api/feedback"},
			then: then{statusCode: http.StatusOK, limit: 0},
		},
		"a limit query param is passed through": {
			when: when{target: "/api/feedback?limit=10"},
			then: then{statusCode: http.StatusOK, limit: 10},
		},
		"a negative limit responds 400": {
			when: when{target: "/api/feedback?limit=-1"},
			then: then{statusCode: http.StatusBadRequest},
		},
		"a non-integer limit responds 400": {
			when: when{target: "/api/feedback?limit=ten"},
			then: then{statusCode: http.StatusBadRequest},
		},
	} {
		t.Run(name, func(t *testing.T) {
			queried := -1
			mockFeedback := mockdb.NewMockFeedbackInterface()
			mockFeedback.Impl.Find = func(_ context.Context, limit int) ([]types.Feedback, error) {
				queried = limit
				return []types.Feedback{
					{
						Id: 1, MaterialId: "mat-0001", PredictedLabel: "quartz",
						Confidence: 0.42, Payload: json.RawMessage(`{"scores": [0.42, 0.31]}`),
						EnqueuedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
					},
				}, nil
			}

			e := echo.New()
			c, respRec := httptestutil.Get(e, testcase.when.target)

			testee := handlers.GetFeedbackHandler(mockFeedback)
			err := testee(c)

			if testcase.then.statusCode != http.StatusOK {
				assertHTTPError(t, err, testcase.then.statusCode)
				if queried != -1 {
					t.Error("the store should not be queried")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if queried != testcase.then.limit {
				t.Errorf("unexpected limit: %d (expected %d)", queried, testcase.then.limit)
			}

			actual := []apifeedback.Detail{}
			if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
				t.Fatalf("response is not json: %s", err)
			}
			if len(actual) != 1 || actual[0].MaterialId != "mat-0001" || actual[0].Confidence != 0.42 {
				t.Errorf("unexpected response: %+v", actual)
			}
		})
	}
}

func TestGetFeedbackCountHandler(t *testing.T) {
	t.Run("it serves the queue length", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Count = func(context.Context) (int, error) {
			return 4, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/feedback/count")

		testee := handlers.GetFeedbackCountHandler(mockFeedback)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := apifeedback.QueueLength{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if actual.Count != 4 {
			t.Errorf("unexpected count: %d", actual.Count)
		}
	})

	t.Run("a store failure responds 500", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Count = func(context.Context) (int, error) {
			return 0, errors.New("fake db error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/feedback/count")

		testee := handlers.GetFeedbackCountHandler(mockFeedback)
		assertHTTPError(t, testee(c), http.StatusInternalServerError)
	})
}

func TestFeedbackEnqueueHandler(t *testing.T) {
	t.Run("a valid spec enqueues and responds the new id", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Enqueue = func(_ context.Context, param types.FeedbackParam) (int, error) {
			if param.MaterialId != "mat-0001" || param.Confidence != 0.42 {
				t.Errorf("unexpected param: %+v", param)
			}
			return 11, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/feedback",
			strings.NewReader(`{
				"materialId": "mat-0001", "predictedLabel": "quartz",
				"confidence": 0.42, "payload": {"scores": [0.42, 0.31]}
			}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.FeedbackEnqueueHandler(mockFeedback)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := apifeedback.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if actual.Id != 11 {
			t.Errorf("unexpected id: %d", actual.Id)
		}
	})

	t.Run("invalid feedback responds 400", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Enqueue = func(context.Context, types.FeedbackParam) (int, error) {
			return 0, types.ErrInvalidFeedback
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/feedback", strings.NewReader(`{"materialId": "", "confidence": 2}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.FeedbackEnqueueHandler(mockFeedback)
		assertHTTPError(t, testee(c), http.StatusBadRequest)
	})
}

func TestFeedbackPopHandler(t *testing.T) {
	t.Run("popping an item responds it", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Pop = func(_ context.Context, callback func(types.Feedback) error) (bool, error) {
			err := callback(types.Feedback{
				Id: 1, MaterialId: "mat-0001", PredictedLabel: "quartz",
				Confidence: 0.42, Payload: json.RawMessage(`{}`),
				EnqueuedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			})
			if err != nil {
				return false, err
			}
			return true, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(e, "/api/feedback/pop", nil)

		testee := handlers.FeedbackPopHandler(mockFeedback)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := apifeedback.PopResult{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if !actual.Popped || actual.Item == nil || actual.Item.MaterialId != "mat-0001" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("an empty queue responds popped false with no item", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Pop = func(context.Context, func(types.Feedback) error) (bool, error) {
			return false, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(e, "/api/feedback/pop", nil)

		testee := handlers.FeedbackPopHandler(mockFeedback)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := apifeedback.PopResult{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if actual.Popped || actual.Item != nil {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("a store failure responds 500", func(t *testing.T) {
		mockFeedback := mockdb.NewMockFeedbackInterface()
		mockFeedback.Impl.Pop = func(context.Context, func(types.Feedback) error) (bool, error) {
			return false, errors.New("fake db error")
		}

		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/feedback/pop", nil)

		testee := handlers.FeedbackPopHandler(mockFeedback)
		assertHTTPError(t, testee(c), http.StatusInternalServerError)
	})
}
