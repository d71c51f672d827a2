package database

import (
	"github.com/pkg/errors"

	"github.com/semsphy/lift/construct"
	"github.com/semsphy/lift/naming"
	"github.com/semsphy/lift/schema"
)

// Kind is the configuration type discriminator for this construct.
const Kind = "database"

const (
	// DefaultInstanceClass is the smallest general purpose class.
	DefaultInstanceClass = "t3.micro"
	// DefaultStorageGB matches the schema minimum.
	DefaultStorageGB = 20
	// BackupRetentionDays overrides the platform default of 1 day. A week of
	// backups costs little and survives a long weekend.
	BackupRetentionDays = 7
	// LogRetentionDays bounds instance log storage.
	LogRetentionDays = 7
)

// Schema declares the database construct's configuration surface.
var Schema = schema.Schema{
	"name": {
		Type:    schema.String,
		Pattern: `^[\w\d_-]*$`,
	},
	"password": {
		Type:      schema.String,
		Required:  true,
		MinLength: 8,
	},
	"engine": {
		Type:    schema.String,
		Enum:    Engines(),
		Default: string(MySQL),
	},
	"instanceType": {
		Type:    schema.String,
		Default: DefaultInstanceClass,
	},
	"storageSize": {
		Type:    schema.Integer,
		Default: DefaultStorageGB,
		Minimum: schema.Min(DefaultStorageGB),
	},
}

// Descriptor is the resolved database specification. Built once at
// declaration time and immutable afterward.
type Descriptor struct {
	Identifier          string
	DatabaseName        string
	Engine              EngineVersion
	InstanceClass       string
	StorageGB           int
	SubnetIDs           []string
	SecurityGroupIDs    []string
	BackupRetentionDays int
	LogRetentionDays    int
	MasterUsername      string
}

// Database declares one managed database instance placed in the stack's
// private subnets.
type Database struct {
	id          string
	stackID     string
	descriptor  Descriptor
	credentials Credentials
}

// New declares a database construct. The raw block is schema validated
// first; a database without a network placement is a configuration error
// surfaced before any resource is declared.
func New(scope construct.Scope, id string, raw map[string]interface{}) (*Database, error) {
	cfg, err := Schema.Validate(raw)
	if err != nil {
		return nil, err
	}

	if scope.Network == nil {
		return nil, &construct.MissingDependencyError{Construct: id, Dependency: "network"}
	}

	identifier := schema.StringValue(cfg, "name")
	if identifier == "" {
		identifier = naming.DefaultIdentifier(scope.StackID, id)
	}

	engine, err := ResolveEngine(Engine(schema.StringValue(cfg, "engine")))
	if err != nil {
		return nil, err
	}
	if err := engine.Validate(); err != nil {
		return nil, err
	}

	d := Descriptor{
		Identifier:          identifier,
		DatabaseName:        naming.SafeDatabaseName(identifier),
		Engine:              engine,
		InstanceClass:       schema.StringValue(cfg, "instanceType"),
		StorageGB:           schema.IntValue(cfg, "storageSize"),
		SubnetIDs:           scope.Network.PrivateSubnetIDs,
		SecurityGroupIDs:    []string{scope.Network.SecurityGroupID},
		BackupRetentionDays: BackupRetentionDays,
		LogRetentionDays:    LogRetentionDays,
		MasterUsername:      MasterUsername,
	}

	return &Database{
		id:          id,
		stackID:     scope.StackID,
		descriptor:  d,
		credentials: Plaintext{Password: schema.StringValue(cfg, "password")},
	}, nil
}

// Factory adapts New to the registry signature.
func Factory(scope construct.Scope, id string, raw map[string]interface{}) (construct.Construct, error) {
	return New(scope, id, raw)
}

func (d *Database) Kind() string {
	return Kind
}

// References exports the endpoint values other constructs consume once the
// stack is provisioned.
func (d *Database) References() map[string]construct.ReferenceHandle {
	logical := naming.LogicalName(d.id)
	return map[string]construct.ReferenceHandle{
		"host": {Stack: d.stackID, Output: logical + "Host"},
		"port": {Stack: d.stackID, Output: logical + "Port"},
	}
}

// OutputBindings surfaces the hostname after a deploy.
func (d *Database) OutputBindings() []construct.OutputBinding {
	return []construct.OutputBinding{
		{Name: d.id + ".host", Handle: d.References()["host"]},
	}
}

// Descriptor returns the resolved database specification.
func (d *Database) Descriptor() Descriptor {
	return d.descriptor
}

// Credentials returns the strategy sourcing the master credentials.
func (d *Database) Credentials() Credentials {
	return d.credentials
}

// UseManagedSecret switches the credential strategy to a Secrets Manager
// secret. The configuration password is discarded.
func (d *Database) UseManagedSecret(secretID string, svc SecretsGetter) error {
	if secretID == "" {
		return errors.New("secretID must not be empty")
	}
	d.credentials = ManagedSecret{SecretID: secretID, Service: svc}
	return nil
}
