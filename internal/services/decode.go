package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

// StripCodeFence removes a decorative markdown fence around a completion.
// The opening line may carry a language tag (```json), so everything up to
// and including the first line break goes with it.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		} else {
			text = text[3:]
		}
	}

	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-3]
	}

	return strings.TrimSpace(text)
}

// The two completion schemas are static, so they are compiled once at
// startup rather than per decode.
var (
	evalAndNextSchema = mustCompileSchema(BuildEvalAndNextSchema())
	finalReportSchema = mustCompileSchema(BuildFinalReportSchema())
)

func mustCompileSchema(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}

	return schema
}

// DecodeStructured strips any code fence from the completion, validates the
// remainder against the compiled schema, and unmarshals it into target. Any
// deviation fails closed with ErrMalformedCompletion.
func DecodeStructured(completion string, schema *jsonschema.Schema, target any) error {
	payload := []byte(StripCodeFence(completion))

	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedCompletion, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: json does not match schema: %v", models.ErrMalformedCompletion, err)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedCompletion, err)
	}

	return nil
}
