package advisor

import (
	"context"
	"log/slog"
	"strings"

	"koperasi-backend/internal/domain/advisor"
	"koperasi-backend/internal/domain/errs"
)

// Fallback is returned whenever the collaborator fails; the caller always
// gets a usable reply.
const Fallback = "Maaf, asisten AI sedang tidak tersedia saat ini. Silakan coba lagi nanti."

type Usecase struct {
	client advisor.Advisor
	log    *slog.Logger
}

func NewUsecase(client advisor.Advisor, log *slog.Logger) *Usecase {
	return &Usecase{client: client, log: log}
}

// Ask forwards the free-text prompt and returns free-text advice. The core
// never inspects the reply content; any collaborator failure degrades to the
// fixed fallback string rather than an error.
func (u *Usecase) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errs.NewValidation("prompt")
	}
	if u.client == nil {
		return Fallback, nil
	}
	reply, err := u.client.Ask(ctx, prompt)
	if err != nil {
		u.log.Warn("advisor unavailable", "err", err)
		return Fallback, nil
	}
	return reply, nil
}
