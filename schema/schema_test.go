package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		"name": {
			Type:    String,
			Pattern: `^[\w\d_-]*$`,
		},
		"password": {
			Type:      String,
			Required:  true,
			MinLength: 8,
		},
		"engine": {
			Type:    String,
			Enum:    []string{"mysql", "mariadb", "postgres"},
			Default: "mysql",
		},
		"storageSize": {
			Type:    Integer,
			Default: 20,
			Minimum: Min(20),
		},
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg, err := testSchema().Validate(map[string]interface{}{
		"password": "longpass1",
	})
	require.NoError(t, err)

	assert.Equal(t, "mysql", StringValue(cfg, "engine"))
	assert.Equal(t, 20, IntValue(cfg, "storageSize"))
	assert.Equal(t, "longpass1", StringValue(cfg, "password"))
	// optional with no default stays absent
	_, ok := cfg["name"]
	assert.False(t, ok)
}

func TestValidateRejectsUnknownField(t *testing.T) {
	_, err := testSchema().Validate(map[string]interface{}{
		"password":           "longpass1",
		"publiclyAccessible": true,
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)
	assert.Equal(t, "publiclyAccessible", verr.Field)
	assert.Contains(t, verr.Constraint, "unknown")
}

func TestValidateRequiredField(t *testing.T) {
	_, err := testSchema().Validate(map[string]interface{}{})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, "password", verr.Field)
}

func TestValidateMinLengthBoundary(t *testing.T) {
	t.Run("SevenCharsFails", func(t *testing.T) {
		_, err := testSchema().Validate(map[string]interface{}{"password": "short12"})
		require.Error(t, err)
		assert.Equal(t, "password", err.(*ValidationError).Field)
	})
	t.Run("EightCharsSucceeds", func(t *testing.T) {
		_, err := testSchema().Validate(map[string]interface{}{"password": "exactly8"})
		assert.NoError(t, err)
	})
}

func TestValidateMinimumBoundary(t *testing.T) {
	t.Run("NineteenFails", func(t *testing.T) {
		_, err := testSchema().Validate(map[string]interface{}{
			"password":    "longpass1",
			"storageSize": 19,
		})
		require.Error(t, err)
		assert.Equal(t, "storageSize", err.(*ValidationError).Field)
	})
	t.Run("TwentySucceeds", func(t *testing.T) {
		cfg, err := testSchema().Validate(map[string]interface{}{
			"password":    "longpass1",
			"storageSize": 20,
		})
		require.NoError(t, err)
		assert.Equal(t, 20, IntValue(cfg, "storageSize"))
	})
}

func TestValidateTypeMismatch(t *testing.T) {
	_, err := testSchema().Validate(map[string]interface{}{
		"password":    "longpass1",
		"storageSize": "twenty",
	})
	require.Error(t, err)
	assert.Equal(t, "storageSize", err.(*ValidationError).Field)
}

func TestValidateEnum(t *testing.T) {
	_, err := testSchema().Validate(map[string]interface{}{
		"password": "longpass1",
		"engine":   "oracle",
	})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, "engine", verr.Field)
}

func TestValidatePattern(t *testing.T) {
	_, err := testSchema().Validate(map[string]interface{}{
		"password": "longpass1",
		"name":     "no spaces allowed",
	})
	require.Error(t, err)
	assert.Equal(t, "name", err.(*ValidationError).Field)
}

func TestValidateAcceptsFloatIntegers(t *testing.T) {
	// json decoding hands integers over as float64
	cfg, err := testSchema().Validate(map[string]interface{}{
		"password":    "longpass1",
		"storageSize": float64(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, IntValue(cfg, "storageSize"))
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	raw := map[string]interface{}{"password": "longpass1"}
	_, err := testSchema().Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"password": "longpass1"}, raw)
}
