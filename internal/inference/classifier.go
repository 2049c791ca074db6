package inference

import "context"

type classifyRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type classifyResponse struct {
	Labels map[string]float64 `json:"labels"`
}

type classifyBatchRequest struct {
	Model string            `json:"model"`
	Texts map[string]string `json:"texts"`
}

type classifyBatchResponse struct {
	Labels map[string]map[string]float64 `json:"labels"`
}

// Classifier runs a zero-shot classification model and returns its label
// probabilities.
type Classifier struct {
	client *Client
	model  string
}

func NewClassifier(client *Client, model string) *Classifier {
	return &Classifier{client: client, model: model}
}

func (c *Classifier) LabelScores(ctx context.Context, text string) (map[string]float64, error) {
	var resp classifyResponse
	err := c.client.post(ctx, "/classify", classifyRequest{Model: c.model, Text: text}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Labels, nil
}

// LabelScoresBatch classifies several texts in one call, keyed by the
// caller's keys.
func (c *Classifier) LabelScoresBatch(ctx context.Context, texts map[string]string) (map[string]map[string]float64, error) {
	var resp classifyBatchResponse
	err := c.client.post(ctx, "/classify", classifyBatchRequest{Model: c.model, Texts: texts}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Labels, nil
}
