// Package docs registers the OpenAPI document with swag so echo-swagger can serve it.
package docs

import (
	"sync"

	"lockerroom/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	doc  string
}

// ReadDoc renders the embedded OpenAPI document as JSON. A document that fails to load
// renders as an empty object so the UI still starts.
func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		d.doc = "{}"
		swagger, err := servers.GetSwagger()
		if err != nil {
			return
		}
		raw, err := swagger.MarshalJSON()
		if err != nil {
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}
