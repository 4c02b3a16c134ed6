package helper

import (
	"testing"

	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertFieldRejected asserts that err is a validation error naming path among its fields
func AssertFieldRejected(t *testing.T, err error, path string) {
	t.Helper()

	var fieldsErr pkg.ValidationKnownFieldsError

	require.ErrorAs(t, err, &fieldsErr, "expected a field validation error")
	assert.Contains(t, fieldsErr.Fields, path, "field %s not reported; got %v", path, fieldsErr.Fields)
}
