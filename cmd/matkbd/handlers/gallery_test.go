package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/matkb/matkb/cmd/matkbd/handlers"
	httptestutil "github.com/matkb/matkb/internal/testutils/http"
	apigallery "github.com/matkb/matkb/pkg/api/types/gallery"
	types "github.com/matkb/matkb/pkg/domain"
	mockdb "github.com/matkb/matkb/pkg/domain/gallery/db/mock"
)

func TestGetGalleryHandler(t *testing.T) {
	t.Run("the property query param filters entries", func(t *testing.T) {
		var queried string
		mockGallery := mockdb.NewMockGalleryInterface()
		mockGallery.Impl.Find = func(_ context.Context, property string) ([]types.ReferenceEntry, error) {
			queried = property
			return []types.ReferenceEntry{
				{
					Id: 1, Property: "luster", ValueLabel: "vitreous",
					ImageURL: "https://img.example/luster/vitreous.jpg", Position: 1,
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/gallery?property=luster")

		testee := handlers.GetGalleryHandler(mockGallery)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if queried != "luster" {
			t.Errorf("unexpected property filter: %s", queried)
		}

		actual := []apigallery.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if len(actual) != 1 || actual[0].ValueLabel != "vitreous" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("no query param asks the store for everything", func(t *testing.T) {
		queried := "unset"
		mockGallery := mockdb.NewMockGalleryInterface()
		mockGallery.Impl.Find = func(_ context.Context, property string) ([]types.ReferenceEntry, error) {
			queried = property
			return []types.ReferenceEntry{}, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/gallery")

		testee := handlers.GetGalleryHandler(mockGallery)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if queried != "" {
			t.Errorf("unexpected property filter: %s", queried)
		}
	})
}

func TestGalleryRegisterHandler(t *testing.T) {
	t.Run("a valid spec registers the entry", func(t *testing.T) {
		mockGallery := mockdb.NewMockGalleryInterface()
		mockGallery.Impl.Register = func(_ context.Context, param types.ReferenceEntryParam) (int, error) {
			if param.Property != "streak" || param.ImageURL != "https://img.example/streak/white.jpg" {
				t.Errorf("unexpected param: %+v", param)
			}
			return 5, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/gallery",
			strings.NewReader(`{
				"property": "streak", "valueLabel": "white",
				"imageUrl": "https://img.example/streak/white.jpg", "position": 2
			}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.GalleryRegisterHandler(mockGallery)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := apigallery.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if actual.Id != 5 {
			t.Errorf("unexpected id: %d", actual.Id)
		}
	})

	t.Run("an invalid entry responds 400", func(t *testing.T) {
		mockGallery := mockdb.NewMockGalleryInterface()
		mockGallery.Impl.Register = func(context.Context, types.ReferenceEntryParam) (int, error) {
			return 0, types.ErrInvalidReferenceEntry
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/gallery",
			strings.NewReader(`{"property": "streak", "valueLabel": "", "imageUrl": "not a url"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.GalleryRegisterHandler(mockGallery)
		assertHTTPError(t, testee(c), http.StatusBadRequest)
	})
}

func TestGalleryUpdateHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		errFromDB error
		then      int
	}{
		"a successful update responds 204": {errFromDB: nil, then: http.StatusNoContent},
		"a missing entry responds 404":     {errFromDB: types.ErrReferenceEntryNotFound, then: http.StatusNotFound},
		"an invalid entry responds 400":    {errFromDB: types.ErrInvalidReferenceEntry, then: http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			mockGallery := mockdb.NewMockGalleryInterface()
			mockGallery.Impl.Update = func(_ context.Context, id int, param types.ReferenceEntryParam) error {
				if id != 5 {
					t.Errorf("unexpected id: %d", id)
				}
				return testcase.errFromDB
			}

			e := echo.New()
			c, respRec := httptestutil.Put(
				e, "/api/gallery/5",
				strings.NewReader(`{
					"property": "streak", "valueLabel": "white",
					"imageUrl": "https://img.example/streak/white-2.jpg"
				}`),
				httptestutil.ContentType("application/json"),
			)
			c.SetParamNames("id")
			c.SetParamValues("5")

			testee := handlers.GalleryUpdateHandler(mockGallery)
			err := testee(c)

			if testcase.then == http.StatusNoContent {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if respRec.Result().StatusCode != http.StatusNoContent {
					t.Errorf("unexpected status code: %d", respRec.Result().StatusCode)
				}
			} else {
				assertHTTPError(t, err, testcase.then)
			}
		})
	}
}

func TestGalleryDeleteHandler(t *testing.T) {
	t.Run("deleting a missing entry responds 404", func(t *testing.T) {
		mockGallery := mockdb.NewMockGalleryInterface()
		mockGallery.Impl.Delete = func(context.Context, int) error {
			return types.ErrReferenceEntryNotFound
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/gallery/9")
		c.SetParamNames("id")
		c.SetParamValues("9")

		testee := handlers.GalleryDeleteHandler(mockGallery)
		assertHTTPError(t, testee(c), http.StatusNotFound)
	})
}
