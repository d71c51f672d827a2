package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semsphy/lift/construct"
)

func TestResolveEngine(t *testing.T) {
	cases := []struct {
		engine  Engine
		version string
		family  string
		port    int
	}{
		{MySQL, "8.0.23", "8.0", 3306},
		{MariaDB, "10.5.8", "10.5", 3306},
		{Postgres, "13.2", "13", 5432},
	}
	for _, c := range cases {
		t.Run(string(c.engine), func(t *testing.T) {
			v, err := ResolveEngine(c.engine)
			require.NoError(t, err)
			assert.Equal(t, c.version, v.Version)
			assert.Equal(t, c.family, v.Family)
			assert.Equal(t, c.port, v.Port())
			assert.NoError(t, v.Validate())
		})
	}
}

func TestResolveEngineIsPure(t *testing.T) {
	first, err := ResolveEngine(Postgres)
	require.NoError(t, err)
	second, err := ResolveEngine(Postgres)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveEngineUnmapped(t *testing.T) {
	// bypasses schema validation on purpose: the mapping must fail loudly,
	// never fall back to a default engine
	_, err := ResolveEngine(Engine("oracle"))
	require.Error(t, err)
	uerr, ok := err.(*construct.UnsupportedValueError)
	require.True(t, ok, "expected *construct.UnsupportedValueError, got %T", err)
	assert.Equal(t, "engine", uerr.Field)
	assert.Equal(t, "oracle", uerr.Value)
}

func TestEngineVersionValidate(t *testing.T) {
	bad := EngineVersion{Engine: MySQL, Version: "8.0.23", Family: "5.7"}
	assert.Error(t, bad.Validate())

	unparseable := EngineVersion{Engine: MySQL, Version: "not-a-version", Family: "8.0"}
	assert.Error(t, unparseable.Validate())
}

func TestEnginesMatchesSchemaEnum(t *testing.T) {
	assert.Equal(t, Engines(), Schema["engine"].Enum)
}
