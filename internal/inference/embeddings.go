package inference

import "context"

type embedRequest struct {
	Model string            `json:"model"`
	Input map[string]string `json:"input"`
}

type embedResponse struct {
	Embeddings map[string][]float64 `json:"embeddings"`
}

// Embedder turns texts into vectors. The serving model normalizes its output,
// so vectors compare by inner product.
type Embedder struct {
	client *Client
	model  string
}

func NewEmbedder(client *Client, model string) *Embedder {
	return &Embedder{client: client, model: model}
}

func (e *Embedder) Embed(ctx context.Context, input map[string]string) (map[string][]float64, error) {
	var resp embedResponse
	err := e.client.post(ctx, "/embeddings", embedRequest{Model: e.model, Input: input}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Embeddings, nil
}
