// Where: internal/definition/validate.go
// What: Schema validation for compose files.
// Why: Catch structural mistakes before handing the file to the compose tool.
package definition

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed compose_schema.json
var composeSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("compose-schema.json", strings.NewReader(composeSchema)); err != nil {
			schemaErr = fmt.Errorf("load compose schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("compose-schema.json")
	})
	return compiledSchema, schemaErr
}

// Validate checks a compose document against the embedded schema.
func Validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("validate compose file: %w", err)
	}
	return nil
}

// ValidateFile reads and validates a compose file from disk.
func ValidateFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read compose file: %w", err)
	}
	return Validate(content)
}
