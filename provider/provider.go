package provider

import (
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/semsphy/lift/config"
	"github.com/semsphy/lift/construct"
	"github.com/semsphy/lift/database"
	"github.com/semsphy/lift/logger"
	"github.com/semsphy/lift/network"
)

const VERSION = "0.1.0"

// Provider runs one declaration pass over a stack's construct blocks. It
// builds network constructs first so their NetworkContext can be injected
// into everything declared after them. Single pass, single goroutine;
// concurrent declaration is not supported.
type Provider struct {
	stackID     string
	registry    *construct.Registry
	network     *construct.NetworkContext
	networkFrom string
	constructs  map[string]construct.Construct
}

// New creates a provider with the built-in construct kinds registered.
func New(stackID string) (*Provider, error) {
	if stackID == "" {
		return nil, errors.New("stackID must not be empty")
	}

	registry := construct.NewRegistry()
	if err := registry.Register(network.Kind, network.Factory); err != nil {
		return nil, err
	}
	if err := registry.Register(database.Kind, database.Factory); err != nil {
		return nil, err
	}

	return &Provider{
		stackID:    stackID,
		registry:   registry,
		constructs: map[string]construct.Construct{},
	}, nil
}

// FromStack creates a provider and declares every construct in the stack
// config.
func FromStack(stack *config.Stack) (*Provider, error) {
	p, err := New(stack.Name)
	if err != nil {
		return nil, err
	}
	if err := p.Build(stack.Constructs); err != nil {
		return p, err
	}
	return p, nil
}

// Build declares every block. A block that fails validation aborts only its
// own construct; siblings are still declared and the failures are reported
// together at the end.
func (p *Provider) Build(blocks map[string]config.Block) error {
	var failures []string

	for _, id := range buildOrder(blocks) {
		block := blocks[id]
		if err := p.declare(id, block); err != nil {
			logger.Errorf("construct %q: %v", id, err)
			if logger.Verbose {
				logger.Debugf("construct %q raw configuration:\n%s", id, spew.Sdump(block.Config))
			}
			failures = append(failures, errors.Wrapf(err, "construct %q", id).Error())
			continue
		}
		logger.Debugf("declared construct %q (%s)", id, block.Type)
	}

	if len(failures) > 0 {
		return errors.Errorf("%d of %d construct(s) failed to declare:\n%s",
			len(failures), len(blocks), strings.Join(failures, "\n"))
	}
	return nil
}

func (p *Provider) declare(id string, block config.Block) error {
	scope := construct.Scope{StackID: p.stackID, Network: p.network}

	c, err := p.registry.New(block.Type, scope, id, block.Config)
	if err != nil {
		return err
	}

	if np, ok := c.(construct.NetworkProvider); ok {
		if p.network != nil {
			return errors.Errorf("network context already registered by construct %q", p.networkFrom)
		}
		ctx := np.NetworkContext()
		p.network = &ctx
		p.networkFrom = id
	}

	p.constructs[id] = c
	return nil
}

// buildOrder sorts block ids so network constructs are declared before the
// constructs that consume their context.
func buildOrder(blocks map[string]config.Block) []string {
	var networks, others []string
	for id, block := range blocks {
		if block.Type == network.Kind {
			networks = append(networks, id)
		} else {
			others = append(others, id)
		}
	}
	sort.Strings(networks)
	sort.Strings(others)
	return append(networks, others...)
}

// Construct returns one declared construct by id.
func (p *Provider) Construct(id string) (construct.Construct, bool) {
	c, ok := p.constructs[id]
	return c, ok
}

// ConstructIDs returns the declared construct ids in lexical order.
func (p *Provider) ConstructIDs() []string {
	ids := make([]string, 0, len(p.constructs))
	for id := range p.constructs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NetworkContext returns the shared network context, or nil when no network
// construct was declared.
func (p *Provider) NetworkContext() *construct.NetworkContext {
	return p.network
}

// References collects every construct's exported references, keyed
// "constructID.referenceName".
func (p *Provider) References() map[string]construct.ReferenceHandle {
	refs := map[string]construct.ReferenceHandle{}
	for id, c := range p.constructs {
		for name, handle := range c.References() {
			refs[id+"."+name] = handle
		}
	}
	return refs
}

// OutputBindings collects every construct's output bindings, ordered by
// construct id.
func (p *Provider) OutputBindings() []construct.OutputBinding {
	var bindings []construct.OutputBinding
	for _, id := range p.ConstructIDs() {
		bindings = append(bindings, p.constructs[id].OutputBindings()...)
	}
	return bindings
}
