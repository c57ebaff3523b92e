package errors_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apierr "github.com/matkb/matkb/pkg/api/types/errors"
)

func TestErrorMessage(t *testing.T) {
	t.Run("it renders reason, advice and cause", func(t *testing.T) {
		cause := errors.New("fake cause")
		testee := apierr.ErrorMessage{
			Reason: "something went wrong",
			Advice: "try again later",
			Cause:  cause,
		}

		rendered := testee.String()
		for _, part := range []string{"something went wrong", "try again later", "fake cause"} {
			if !strings.Contains(rendered, part) {
				t.Errorf("rendered message misses %q: %s", part, rendered)
			}
		}
		if testee.Error() != rendered {
			t.Error("Error() and String() disagree")
		}
	})

	t.Run("it unwraps to its cause", func(t *testing.T) {
		cause := errors.New("fake cause")
		testee := apierr.ErrorMessage{Reason: "something went wrong", Cause: cause}
		if !errors.Is(testee, cause) {
			t.Error("the cause is not reachable via errors.Is")
		}
	})

	t.Run("the cause stays out of the wire envelope", func(t *testing.T) {
		testee := apierr.ErrorResponse{
			Message: apierr.ErrorMessage{
				Reason: "something went wrong",
				Advice: "try again later",
				Cause:  errors.New("internal detail"),
			},
		}

		raw, err := json.Marshal(testee)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		parsed := map[string]map[string]string{}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("envelope is not json: %s", err)
		}
		msg := parsed["message"]
		if msg["reason"] != "something went wrong" || msg["advice"] != "try again later" {
			t.Errorf("unexpected envelope: %s", raw)
		}
		if strings.Contains(string(raw), "internal detail") {
			t.Errorf("internal cause leaked to the wire: %s", raw)
		}
	})
}
