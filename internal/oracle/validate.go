package oracle

import (
	"encoding/json"
	"fmt"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
)

// decodeAs parses a raw provider payload against its registered
// contract and decodes it into the task's typed result. Any structural
// problem surfaces as ErrSchemaViolation: a contract breach must never
// be coerced into an empty result, or a provider problem would hide
// behind "nothing scheduled".
func decodeAs[T any](raw json.RawMessage, ref schema.Ref) (T, error) {
	var zero T

	node, err := schema.Lookup(ref)
	if err != nil {
		return zero, err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return zero, fmt.Errorf("%w: not valid JSON: %v", common.ErrSchemaViolation, err)
	}

	if err := conform(generic, node, "$"); err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
	}
	return out, nil
}

// conform walks the payload against the contract tree.
//
// Arrays of objects are validated leniently: a single bad element does
// not fail the payload (it decodes to zero values and is dropped by
// the semantic filters), but a non-empty list in which no element
// satisfies the contract is a breach.
func conform(v any, node *schema.Node, path string) error {
	if v == nil {
		if node.Nullable {
			return nil
		}
		return fmt.Errorf("%s: unexpected null", path)
	}

	switch node.Kind {
	case schema.Object:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, v)
		}
		for _, name := range node.Required {
			if _, present := obj[name]; !present {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
		}
		for name, val := range obj {
			prop, declared := node.Properties[name]
			if !declared {
				// Undeclared fields are ignored, matching the
				// decoder's behavior.
				continue
			}
			if err := conform(val, prop, path+"."+name); err != nil {
				return err
			}
		}
		return nil

	case schema.Array:
		list, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, v)
		}
		if node.Items == nil || len(list) == 0 {
			return nil
		}
		if node.Items.Kind != schema.Object {
			for i, elem := range list {
				if err := conform(elem, node.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
			return nil
		}
		valid := 0
		var firstErr error
		for i, elem := range list {
			if err := conform(elem, node.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			valid++
		}
		if valid == 0 {
			return fmt.Errorf("%s: no element satisfies the contract: %v", path, firstErr)
		}
		return nil

	case schema.String:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, v)
		}
		if len(node.Enum) > 0 {
			for _, allowed := range node.Enum {
				if s == allowed {
					return nil
				}
			}
			return fmt.Errorf("%s: value %q not in %v", path, s, node.Enum)
		}
		return nil

	case schema.Number:
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number, got %T", path, v)
		}
		return nil

	case schema.Boolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %T", path, v)
		}
		return nil
	}

	return fmt.Errorf("%s: unknown schema kind %q", path, node.Kind)
}
