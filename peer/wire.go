package peer

import "github.com/meigma/scaffold"

// runResponse is the body of a successful POST /v1/scaffold call.
type runResponse struct {
	Outcomes []scaffold.Outcome `json:"outcomes"`
}

// indexesResponse is the body of a GET /v1/indexes call.
type indexesResponse struct {
	Indexes []scaffold.IndexOption `json:"indexes"`
}

// errorResponse is the body of any non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}
