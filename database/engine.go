package database

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/semsphy/lift/construct"
)

// Engine is the abstract engine name accepted in configuration.
type Engine string

const (
	MySQL    Engine = "mysql"
	MariaDB  Engine = "mariadb"
	Postgres Engine = "postgres"
)

// Engines lists the accepted engine names, in schema enum order.
func Engines() []string {
	return []string{string(MySQL), string(MariaDB), string(Postgres)}
}

// EngineVersion pins an abstract engine to a concrete version and its
// parameter-group family. The pins are fixed for reproducibility; supporting
// a new version means adding a row to ResolveEngine, not a config knob.
type EngineVersion struct {
	Engine  Engine
	Version string
	Family  string
}

// ResolveEngine maps an engine name to its pinned version pair. The schema
// enum and this switch must agree; an unmapped engine reaching here is a bug
// and reported as such, never silently defaulted.
func ResolveEngine(e Engine) (EngineVersion, error) {
	switch e {
	case MySQL:
		return EngineVersion{Engine: MySQL, Version: "8.0.23", Family: "8.0"}, nil
	case MariaDB:
		return EngineVersion{Engine: MariaDB, Version: "10.5.8", Family: "10.5"}, nil
	case Postgres:
		return EngineVersion{Engine: Postgres, Version: "13.2", Family: "13"}, nil
	}
	return EngineVersion{}, &construct.UnsupportedValueError{Field: "engine", Value: string(e)}
}

// Validate checks that the pinned version parses and belongs to the declared
// family.
func (v EngineVersion) Validate() error {
	parsed, err := semver.NewVersion(v.Version)
	if err != nil {
		return errors.Wrapf(err, "engine %s has an unparseable version pin %q", v.Engine, v.Version)
	}
	family, err := semver.NewConstraint("~" + v.Family)
	if err != nil {
		return errors.Wrapf(err, "engine %s has an unparseable family %q", v.Engine, v.Family)
	}
	if !family.Check(parsed) {
		return errors.Errorf("engine %s version %s is outside its family %s", v.Engine, v.Version, v.Family)
	}
	return nil
}

// Port returns the engine's well-known listener port.
func (v EngineVersion) Port() int {
	if v.Engine == Postgres {
		return 5432
	}
	return 3306
}
