package llm

import (
	"encoding/json"
	"fmt"
)

// Decode unmarshals a structured response into T. Content that does not
// fit T is reported as *ErrInvalidResponse carrying the raw text.
func Decode[T any](resp *Response) (T, error) {
	var out T
	if resp == nil {
		return out, &ErrInvalidResponse{Err: fmt.Errorf("nil response")}
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return out, &ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("decode %T: %w", out, err),
		}
	}
	return out, nil
}
