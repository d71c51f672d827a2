package config

import (
	"io/ioutil"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Stack is the content of a lift.yaml: a stack identity plus one raw
// configuration block per construct. Blocks are opaque here; each construct's
// schema decides what is valid.
type Stack struct {
	Name       string           `yaml:"name"`
	Region     string           `yaml:"region"`
	Constructs map[string]Block `yaml:"constructs"`
}

// Block is one construct's configuration: a type discriminator plus the
// remaining fields, handed as-is to schema validation.
type Block struct {
	Type   string
	Config map[string]interface{}
}

func (b *Block) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return errors.Wrap(err, "failed to parse construct block")
	}

	cfg := map[string]interface{}{}
	for key, value := range raw {
		cfg[key] = normalize(value)
	}

	kind, ok := cfg["type"].(string)
	if !ok || kind == "" {
		return errors.New("construct block must declare a `type`")
	}
	delete(cfg, "type")

	*b = Block{Type: kind, Config: cfg}
	return nil
}

// normalize rewrites the map[interface{}]interface{} values produced by
// yaml.v2 into map[string]interface{} so construct schemas can consume them.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := map[string]interface{}{}
		for key, item := range v {
			if s, ok := key.(string); ok {
				m[s] = normalize(item)
			}
		}
		return m
	case []interface{}:
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	}
	return value
}

func NewDefaultStack() Stack {
	return Stack{
		Region: "us-east-1",
	}
}

// StackFromBytes parses a lift.yaml, fills unset fields from the defaults
// and validates the stack identity.
func StackFromBytes(data []byte) (*Stack, error) {
	stack := &Stack{}
	if err := yaml.Unmarshal(data, stack); err != nil {
		return nil, errors.Wrap(err, "failed to parse stack config")
	}

	defaults := NewDefaultStack()
	if err := mergo.Merge(stack, defaults); err != nil {
		return nil, errors.Wrap(err, "failed to apply stack config defaults")
	}

	if err := stack.Validate(); err != nil {
		return nil, err
	}
	return stack, nil
}

// StackFromFile loads a lift.yaml from disk.
func StackFromFile(path string) (*Stack, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stack config %s", path)
	}
	stack, err := StackFromBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid stack config %s", path)
	}
	return stack, nil
}

func (s *Stack) Validate() error {
	if s.Name == "" {
		return errors.New("`name` must not be empty")
	}
	if s.Region == "" {
		return errors.New("`region` must not be empty")
	}
	return nil
}
