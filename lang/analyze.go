package lang

import (
	"fmt"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/lowering"
)

// header is a resolved entity signature: its declared port names, used to
// validate references and calls made from every entity's behaviour,
// including its own (SPEC_FULL.md §4.10, grounded on frontend/semantics.rs's
// EntityHeader).
type header struct {
	name     string
	inPorts  []PortDecl
	outPorts []PortDecl
}

// builtinArity is the fixed argument count for each builtin operation name,
// mirroring frontend/semantics.rs's per-operation assert!(arguments.len()
// == ...) checks.
var builtinArity = map[string]int{
	"and": 2,
	"or":  2,
	"xor": 2,
	"not": 1,
}

var builtinOps = map[string]circuit.BuiltinOp{
	"and": circuit.And,
	"or":  circuit.Or,
	"xor": circuit.Xor,
	"not": circuit.Not,
}

// Analyze resolves a set of parsed entities into the entity table lowering
// consumes: one circuit.EntityGraph per declared entity, with every
// operation call validated against either the four builtins or another
// entity's declared signature (SPEC_FULL.md §4.10, grounded on
// frontend/semantics.rs's parse/Entity::graph).
func Analyze(entities []RawEntity) (lowering.EntityTable, error) {
	headers := make(map[string]header, len(entities))
	for _, e := range entities {
		for _, p := range e.InPorts {
			if p.Type != "bit" {
				return nil, fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
			}
		}
		for _, p := range e.OutPorts {
			if p.Type != "bit" {
				return nil, fmt.Errorf("%w: %q", ErrUnknownType, p.Type)
			}
		}
		headers[e.Name] = header{name: e.Name, inPorts: e.InPorts, outPorts: e.OutPorts}
	}

	table := make(lowering.EntityTable, len(entities))
	for _, e := range entities {
		g, err := buildEntityGraph(e, headers)
		if err != nil {
			return nil, err
		}
		table[e.Name] = g
	}

	return table, nil
}

// builder accumulates one entity's graph as its behaviour statements are
// resolved in order, tracking the next free node id and the current
// variable-name -> node-id table (SPEC_FULL.md §4.10).
type builder struct {
	self    header
	headers map[string]header
	nextID  uint32
	vars    map[string]uint32
	inPort  map[string]uint32
	outPort map[string]uint32
	nodes   []circuit.Node[circuit.EntityKind]
	edges   []circuit.Edge
}

func buildEntityGraph(e RawEntity, headers map[string]header) (*circuit.EntityGraph, error) {
	b := &builder{
		self:    headers[e.Name],
		headers: headers,
		vars:    make(map[string]uint32),
		inPort:  make(map[string]uint32),
		outPort: make(map[string]uint32),
	}

	for i, p := range e.InPorts {
		id := b.allocID()
		b.nodes = append(b.nodes, circuit.NewNode[circuit.EntityKind](id, circuit.EntityInput{Name: p.Name, Number: uint32(i)}))
		b.inPort[p.Name] = id
	}
	for i, p := range e.OutPorts {
		id := b.allocID()
		b.nodes = append(b.nodes, circuit.NewNode[circuit.EntityKind](id, circuit.EntityOutput{Name: p.Name, Number: uint32(i)}))
		b.outPort[p.Name] = id
	}

	for _, stmt := range e.Behaviour {
		if err := b.applyStatement(stmt); err != nil {
			return nil, err
		}
	}

	return circuit.New(b.nodes, b.edges), nil
}

func (b *builder) allocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// resolveSource returns the node id that argument name refers to: one of
// self's in-ports or a previously assigned variable. Callers use port 0,
// since each of those is a single-output node.
func (b *builder) resolveSource(name string) (uint32, error) {
	if id, ok := b.inPort[name]; ok {
		return id, nil
	}
	if id, ok := b.vars[name]; ok {
		return id, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownReference, name)
}

// applyStatement resolves one behaviour statement's value into graph nodes
// and edges, then wires its targets (fresh variables, or declared out-ports)
// onto the value's outputs.
func (b *builder) applyStatement(stmt RawStatement) error {
	outputs, err := b.applyValue(stmt.Value)
	if err != nil {
		return err
	}

	if len(stmt.Targets) != len(outputs) {
		return fmt.Errorf("%w: %d targets, %d values", ErrAssignmentMismatch, len(stmt.Targets), len(outputs))
	}

	for i, target := range stmt.Targets {
		src := outputs[i]
		if stmt.PortAssign {
			portID, ok := b.outPort[target]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownOutPort, target)
			}
			b.edges = append(b.edges, circuit.NewEdge(src.id, src.port, portID, 0))
			continue
		}

		varID := b.allocID()
		b.nodes = append(b.nodes, circuit.NewNode[circuit.EntityKind](varID, circuit.EntityVariable{Name: target}))
		b.edges = append(b.edges, circuit.NewEdge(src.id, src.port, varID, 0))
		b.vars[target] = varID
	}

	return nil
}

// source identifies one output port of an already-placed node: either a
// newly created operation node (port 0, unless an entity call, where the
// index-th output is named explicitly) or an existing variable/port node
// (always port 0).
type source struct {
	id   uint32
	port uint32
}

// applyValue resolves a RawValue into the node(s)/edge(s) it requires and
// returns the ordered list of output sources assignment targets are zipped
// against.
func (b *builder) applyValue(value RawValue) ([]source, error) {
	switch v := value.(type) {
	case RawVariables:
		srcs := make([]source, len(v.Names))
		for i, name := range v.Names {
			id, err := b.resolveSource(name)
			if err != nil {
				return nil, err
			}
			srcs[i] = source{id: id, port: 0}
		}
		return srcs, nil

	case RawOperation:
		return b.applyOperation(v)

	default:
		return nil, fmt.Errorf("%w: unrecognized value %T", ErrUnexpectedToken, value)
	}
}

func (b *builder) applyOperation(op RawOperation) ([]source, error) {
	argSrcs := make([]source, len(op.Args))
	for i, name := range op.Args {
		id, err := b.resolveSource(name)
		if err != nil {
			return nil, err
		}
		argSrcs[i] = source{id: id, port: 0}
	}

	if bOp, ok := builtinOps[op.Name]; ok {
		if len(op.Args) != builtinArity[op.Name] {
			return nil, fmt.Errorf("%w: %q expects %d arguments, got %d", ErrArityMismatch, op.Name, builtinArity[op.Name], len(op.Args))
		}

		nodeID := b.allocID()
		b.nodes = append(b.nodes, circuit.NewNode[circuit.EntityKind](nodeID, circuit.EntityBuiltinOp{Op: bOp}))
		for port, src := range argSrcs {
			b.edges = append(b.edges, circuit.NewEdge(src.id, src.port, nodeID, uint32(port)))
		}

		return []source{{id: nodeID, port: 0}}, nil
	}

	callee, ok := b.headers[op.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Name)
	}
	if len(op.Args) != len(callee.inPorts) {
		return nil, fmt.Errorf("%w: %q expects %d arguments, got %d", ErrArityMismatch, op.Name, len(callee.inPorts), len(op.Args))
	}

	nodeID := b.allocID()
	b.nodes = append(b.nodes, circuit.NewNode[circuit.EntityKind](nodeID, circuit.EntityOp{Name: op.Name}))
	for port, src := range argSrcs {
		b.edges = append(b.edges, circuit.NewEdge(src.id, src.port, nodeID, uint32(port)))
	}

	outputs := make([]source, len(callee.outPorts))
	for i := range callee.outPorts {
		outputs[i] = source{id: nodeID, port: uint32(i)}
	}

	return outputs, nil
}
