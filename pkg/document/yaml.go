package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// maxDepth bounds nesting, mostly to stop alias chains from recursing forever.
	maxDepth = 512

	// A document may expand to aliasRatio times its own node count, and
	// always to at least minAliasBudget nodes.
	aliasRatio     = 10
	minAliasBudget = 1000
)

var (
	ErrMultipleDocuments = errors.New("stream contains more than one document")
	ErrDuplicateKey      = errors.New("duplicate mapping key")
	ErrTooDeep           = errors.New("document nesting too deep")
	ErrTooManyAliases    = errors.New("alias expansion limit exceeded")
)

type anchored struct {
	value *Value
	size  int
}

// yamlDecoder converts a node tree into Values. Anchored nodes are converted
// once and shared by every alias; expanded counts the nodes the document
// would have with all aliases written out and is capped by budget.
type yamlDecoder struct {
	anchors  map[*yaml.Node]anchored
	expanded int
	budget   int
}

func newYAMLDecoder(root *yaml.Node) *yamlDecoder {
	budget := aliasRatio * countNodes(root)
	if budget < minAliasBudget {
		budget = minAliasBudget
	}
	return &yamlDecoder{
		anchors: make(map[*yaml.Node]anchored),
		budget:  budget,
	}
}

// countNodes counts the nodes written in the source, not following aliases.
func countNodes(n *yaml.Node) int {
	count := 1
	for _, child := range n.Content {
		count += countNodes(child)
	}
	return count
}

func (d *yamlDecoder) spend(n *yaml.Node, size int) error {
	d.expanded += size
	if d.expanded > d.budget {
		return fmt.Errorf("line %d: %w", n.Line, ErrTooManyAliases)
	}
	return nil
}

// ParseYAML decodes a single YAML document. An empty stream decodes to null.
// Scalars are resolved with the YAML core schema; explicit local tags such
// as !secret survive as Tagged values.
func ParseYAML(data []byte) (*Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), nil
		}
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, ErrMultipleDocuments
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}

	return newYAMLDecoder(&root).fromNode(&root, 0)
}

func (d *yamlDecoder) fromNode(n *yaml.Node, depth int) (*Value, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.fromNode(n.Content[0], depth+1)
	case yaml.AliasNode:
		return d.fromAlias(n, depth)
	}

	start := d.expanded
	if err := d.spend(n, 1); err != nil {
		return nil, err
	}

	var (
		v   *Value
		err error
	)
	switch n.Kind {
	case yaml.ScalarNode:
		v, err = fromScalar(n)
	case yaml.SequenceNode:
		v, err = d.fromSequence(n, depth)
	case yaml.MappingNode:
		v, err = d.fromMapping(n, depth)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
	if err != nil {
		return nil, err
	}

	if isLocalTag(n.Tag) {
		v = Tagged(n.Tag, v)
	}
	if n.Anchor != "" {
		d.anchors[n] = anchored{value: v, size: d.expanded - start}
	}
	return v, nil
}

// fromAlias returns the anchored value itself; decoded values are never
// mutated.
func (d *yamlDecoder) fromAlias(n *yaml.Node, depth int) (*Value, error) {
	if n.Alias == nil {
		return nil, fmt.Errorf("line %d: alias %q has no anchor", n.Line, n.Value)
	}

	a, ok := d.anchors[n.Alias]
	if !ok {
		return d.fromNode(n.Alias, depth+1)
	}
	if err := d.spend(n, a.size); err != nil {
		return nil, err
	}
	return a.value, nil
}

// isLocalTag reports whether tag is an application tag rather than one of
// the standard !! tags.
func isLocalTag(tag string) bool {
	return tag != "" && tag != "!" && !strings.HasPrefix(tag, "!!")
}

func fromScalar(n *yaml.Node) (*Value, error) {
	resolved := n
	if isLocalTag(n.Tag) {
		plain := *n
		plain.Tag = ""
		resolved = &plain
	}

	switch resolved.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := resolved.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		if num, ok := ParseNumber(resolved.Value); ok {
			return &Value{Kind: KindNumber, Number: num}, nil
		}
		return nil, fmt.Errorf("line %d: invalid number %q", n.Line, resolved.Value)
	default:
		return String(resolved.Value), nil
	}
}

func (d *yamlDecoder) fromSequence(n *yaml.Node, depth int) (*Value, error) {
	items := make([]*Value, 0, len(n.Content))
	for _, child := range n.Content {
		item, err := d.fromNode(child, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return Sequence(items...), nil
}

func (d *yamlDecoder) fromMapping(n *yaml.Node, depth int) (*Value, error) {
	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, err := d.fromNode(n.Content[i], depth+1)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if Equal(e.Key, key) {
				return nil, fmt.Errorf("line %d: %w %q", n.Content[i].Line, ErrDuplicateKey, Render(key))
			}
		}

		val, err := d.fromNode(n.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return Mapping(entries...), nil
}
