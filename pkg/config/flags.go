package config

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// skippedConfigFlags is the list of command line flags that are never expected in the config file.
var skippedConfigFlags = []string{"print_version", "config_file"}

// parseConfig returns the flag values held by the given YAML document.
func parseConfig(configBytes []byte) (map[ /*flagName*/ string] /*flagValue*/ string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(configBytes, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	flags := make(map[ /*flagName*/ string] /*flagValue*/ string)
	if len(doc.Content) == 0 { // Empty document.
		return flags, nil
	}
	if err := collectFlags(flags, doc.Content[0], ""); err != nil {
		return nil, fmt.Errorf("failed to collect flags: %w", err)
	}
	return flags, nil
}

// collectFlags collects all flags with their values from the given mapping node into `flags`.
// Scalars are flag values keyed by their flag name; nested mappings are walked recursively.
func collectFlags(flags map[ /*flagName*/ string] /*flagValue*/ string, node *yaml.Node, path string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping at '%s', got %s", path, kindName(node.Kind))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		fieldPath := keyNode.Value
		if path != "" {
			fieldPath = path + "." + keyNode.Value
		}
		switch valueNode.Kind {
		case yaml.MappingNode:
			if err := collectFlags(flags, valueNode, fieldPath); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if valueNode.Tag == "!!null" { // Left empty; keep the flag default.
				continue
			}
			// Check for duplicate flag entries.
			if _, alreadyExists := flags[keyNode.Value]; alreadyExists {
				return fmt.Errorf("flag '%s' has multiple entries in yaml config: '%s'", keyNode.Value, fieldPath)
			}
			flags[keyNode.Value] = valueNode.Value
		default: // Sequences and aliases are not supported by design.
			return fmt.Errorf("%s not supported: %s", kindName(valueNode.Kind), fieldPath)
		}
	}
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", kind)
	}
}

// CollectUnregisteredFlags collects all defined flags that have no entry in the given YAML config.
// An error exists in the results corresponding to each missing flag or to a config that can't be parsed.
func CollectUnregisteredFlags(configBytes []byte) []error {
	definedFlags, err := parseConfig(configBytes)
	if err != nil {
		return []error{err}
	}
	errs := make([]error, 0)
	flag.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") { // Skip test flags.
			return
		}
		if slices.Contains(skippedConfigFlags, f.Name) {
			return
		}
		if _, flagHasConfigEntry := definedFlags[f.Name]; !flagHasConfigEntry {
			errs = append(errs, fmt.Errorf("flag '%s' has not been defined in yaml config", f.Name))
		}
	})
	return errs
}
