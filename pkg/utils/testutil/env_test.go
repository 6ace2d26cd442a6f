package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipgate/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("Returns value when env var is set", func(t *testing.T) {
		key := "TEST_ENV_VAR_SET"
		expected := "test_value"
		t.Setenv(key, expected)

		value := testutil.GetEnvOrSkip(t, key)
		gt.V(t, value).Equal(expected)
	})
}
