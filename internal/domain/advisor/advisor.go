package advisor

import "context"

// Advisor is the conversational assistant collaborator: free-text prompt in,
// free-text advice out. The core never inspects or depends on its content.
type Advisor interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
