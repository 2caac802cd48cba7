package server

import (
	"net/http"

	"github.com/invopop/jsonschema"
)

// PathRequestSchema reflects the JSON Schema of PathRequest.
func PathRequestSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(PathRequest))
	schema.Title = "Path Request"
	schema.Description = "Body of POST /api/paths: an ASCII tile map and the two cells to connect."

	return schema
}

// Schema serves PathRequestSchema.
func (h *Handler) Schema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PathRequestSchema())
}
