package servers

import (
	"gestion/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the OpenAPI document embedded in package api.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(api.OpenAPI)
}
