package mcp

// ListResourcesParams is the params of resources/list.
type ListResourcesParams struct {
	PaginatedParams
}

// ListResourcesResult is the result of resources/list.
type ListResourcesResult struct {
	PaginatedResult
	Resources []Resource `json:"resources"`
}

// ListResourceTemplatesParams is the params of resources/templates/list.
type ListResourceTemplatesParams struct {
	PaginatedParams
}

// ListResourceTemplatesResult is the result of resources/templates/list.
type ListResourceTemplatesResult struct {
	PaginatedResult
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
}

// ReadResourceParams is the params of resources/read.
type ReadResourceParams struct {
	URI string `json:"uri"`
}

// ReadResourceResult is the result of resources/read.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}

// SubscribeResourceParams is the params of resources/subscribe and
// resources/unsubscribe (identical shape).
type SubscribeResourceParams struct {
	URI string `json:"uri"`
}

// ResourceUpdatedParams is the params of notifications/resources/updated.
type ResourceUpdatedParams struct {
	URI string `json:"uri"`
}
