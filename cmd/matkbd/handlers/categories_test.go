package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/matkb/matkb/cmd/matkbd/handlers"
	httptestutil "github.com/matkb/matkb/internal/testutils/http"
	apicategories "github.com/matkb/matkb/pkg/api/types/categories"
	types "github.com/matkb/matkb/pkg/domain"
	mockdb "github.com/matkb/matkb/pkg/domain/category/db/mock"
	"github.com/matkb/matkb/pkg/utils/pointer"
)

func assertHTTPError(t *testing.T, err error, statusCode int) {
	t.Helper()
	if err == nil {
		t.Fatal("no error is returned")
	}
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
	}
	if echoErr.Code != statusCode {
		t.Fatalf("unmatch error code:%d, expected:%d", echoErr.Code, statusCode)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Run("when the store returns a forest, it responds with JSON trees", func(t *testing.T) {
		mockCategory := mockdb.NewMockCategoryInterface()
		mockCategory.Impl.Find = func(context.Context) ([]types.CategoryNode, error) {
			return []types.CategoryNode{
				{
					Category: types.Category{Id: 1, Name: "metals", Position: 0},
					Children: []types.CategoryNode{
						{
							Category: types.Category{
								Id: 2, Name: "steels", ParentId: pointer.Ref(1), Position: 0,
							},
							Children: []types.CategoryNode{},
						},
					},
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/categories")

		testee := handlers.GetCategoriesHandler(mockCategory)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if respRec.Result().StatusCode != http.StatusOK {
			t.Errorf("unexpected status code: %d", respRec.Result().StatusCode)
		}

		actual := []apicategories.Node{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %s", err)
		}
		if len(actual) != 1 || actual[0].Name != "metals" {
			t.Fatalf("unexpected body: %+v", actual)
		}
		if len(actual[0].Children) != 1 || actual[0].Children[0].Name != "steels" {
			t.Errorf("unexpected subtree: %+v", actual[0].Children)
		}
	})

	t.Run("when the store fails, it responds 500", func(t *testing.T) {
		mockCategory := mockdb.NewMockCategoryInterface()
		mockCategory.Impl.Find = func(context.Context) ([]types.CategoryNode, error) {
			return nil, errors.New("fake db error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/categories")

		testee := handlers.GetCategoriesHandler(mockCategory)
		assertHTTPError(t, testee(c), http.StatusInternalServerError)
	})
}

func TestCategoryRegisterHandler(t *testing.T) {
	type when struct {
		contentType string
		body        string
		registerId  int
		registerErr error
	}
	type then struct {
		param      *types.CategoryParam
		statusCode int
		isErr      bool
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"when a valid spec is posted, it registers and responds the new id": {
			when{
				contentType: "application/json",
				body:        `{"name": "ceramics", "description": "fired stuff", "parentId": 3, "position": 2}`,
				registerId:  42,
			},
			then{
				param: &types.CategoryParam{
					Name: "ceramics", Description: "fired stuff",
					ParentId: pointer.Ref(3), Position: 2,
				},
				statusCode: http.StatusOK,
			},
		},
		"when content type is not json, it responds 400": {
			when{contentType: "text/plain", body: `{"name": "x"}`},
			then{statusCode: http.StatusBadRequest, isErr: true},
		},
		"when the body is not json, it responds 400": {
			when{contentType: "application/json", body: `{{{`},
			then{statusCode: http.StatusBadRequest, isErr: true},
		},
		"when the name is taken, it responds 409": {
			when{
				contentType: "application/json",
				body:        `{"name": "ceramics"}`,
				registerErr: types.ErrCategoryNameTaken,
			},
			then{statusCode: http.StatusConflict, isErr: true},
		},
		"when the spec does not validate, it responds 400": {
			when{
				contentType: "application/json",
				body:        `{"name": ""}`,
				registerErr: types.ErrInvalidCategory,
			},
			then{statusCode: http.StatusBadRequest, isErr: true},
		},
		"when the parent is missing, it responds 400": {
			when{
				contentType: "application/json",
				body:        `{"name": "ceramics", "parentId": 99}`,
				registerErr: types.ErrCategoryNotFound,
			},
			then{statusCode: http.StatusBadRequest, isErr: true},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var gotParam *types.CategoryParam
			mockCategory := mockdb.NewMockCategoryInterface()
			mockCategory.Impl.Register = func(_ context.Context, param types.CategoryParam) (int, error) {
				gotParam = &param
				return testcase.when.registerId, testcase.when.registerErr
			}

			e := echo.New()
			c, respRec := httptestutil.Post(
				e, "/api/categories", strings.NewReader(testcase.when.body),
				httptestutil.ContentType(testcase.when.contentType),
			)

			testee := handlers.CategoryRegisterHandler(mockCategory)
			err := testee(c)

			if testcase.then.isErr {
				assertHTTPError(t, err, testcase.then.statusCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if expected := testcase.then.param; expected != nil {
				if gotParam == nil {
					t.Fatal("store was not called")
				}
				parentEq := (gotParam.ParentId == nil && expected.ParentId == nil) ||
					(gotParam.ParentId != nil && expected.ParentId != nil &&
						*gotParam.ParentId == *expected.ParentId)
				if gotParam.Name != expected.Name ||
					gotParam.Description != expected.Description ||
					!parentEq ||
					gotParam.Position != expected.Position {
					t.Errorf("unexpected param: %+v", *gotParam)
				}
			}

			actual := apicategories.Created{}
			if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
				t.Fatalf("response is not json: %s", err)
			}
			if actual.Id != testcase.when.registerId {
				t.Errorf("unexpected id: %d", actual.Id)
			}
		})
	}
}

func TestCategoryMoveHandler(t *testing.T) {
	t.Run("when moving under own subtree, it responds 409", func(t *testing.T) {
		mockCategory := mockdb.NewMockCategoryInterface()
		mockCategory.Impl.Move = func(context.Context, int, *int) error {
			return types.ErrCategoryCycle
		}

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/categories/1/parent", strings.NewReader(`{"parentId": 2}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("id")
		c.SetParamValues("1")

		testee := handlers.CategoryMoveHandler(mockCategory)
		assertHTTPError(t, testee(c), http.StatusConflict)
	})

	t.Run("null parentId moves to root", func(t *testing.T) {
		moved := false
		mockCategory := mockdb.NewMockCategoryInterface()
		mockCategory.Impl.Move = func(_ context.Context, id int, parentId *int) error {
			moved = true
			if id != 7 || parentId != nil {
				t.Errorf("unexpected move: id=%d parentId=%v", id, parentId)
			}
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/categories/7/parent", strings.NewReader(`{"parentId": null}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("id")
		c.SetParamValues("7")

		testee := handlers.CategoryMoveHandler(mockCategory)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !moved {
			t.Fatal("store was not called")
		}
		if respRec.Result().StatusCode != http.StatusNoContent {
			t.Errorf("unexpected status code: %d", respRec.Result().StatusCode)
		}
	})
}

func TestCategoryDeleteHandler(t *testing.T) {
	for name, testcase := range map[string]struct {
		deleteErr  error
		statusCode int
		isErr      bool
	}{
		"when the category is empty, it responds 204": {
			deleteErr: nil, statusCode: http.StatusNoContent,
		},
		"when the category has children, it responds 409": {
			deleteErr: types.ErrCategoryNotEmpty, statusCode: http.StatusConflict, isErr: true,
		},
		"when the category is missing, it responds 404": {
			deleteErr: types.ErrCategoryNotFound, statusCode: http.StatusNotFound, isErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			mockCategory := mockdb.NewMockCategoryInterface()
			mockCategory.Impl.Delete = func(_ context.Context, id int) error {
				if id != 5 {
					t.Errorf("unexpected id: %d", id)
				}
				return testcase.deleteErr
			}

			e := echo.New()
			c, respRec := httptestutil.Delete(e, "/api/categories/5")
			c.SetParamNames("id")
			c.SetParamValues("5")

			testee := handlers.CategoryDeleteHandler(mockCategory)
			err := testee(c)

			if testcase.isErr {
				assertHTTPError(t, err, testcase.statusCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if respRec.Result().StatusCode != testcase.statusCode {
				t.Errorf("unexpected status code: %d", respRec.Result().StatusCode)
			}
		})
	}

	t.Run("when the id is not an integer, it responds 400", func(t *testing.T) {
		mockCategory := mockdb.NewMockCategoryInterface()

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/categories/xyz")
		c.SetParamNames("id")
		c.SetParamValues("xyz")

		testee := handlers.CategoryDeleteHandler(mockCategory)
		assertHTTPError(t, testee(c), http.StatusBadRequest)
	})
}
