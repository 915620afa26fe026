package openrouter

import "github.com/invopop/jsonschema"

// GenerateSchema reflects T into a JSON schema suitable for strict
// structured-output response formats (no refs, no extra properties).
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
