// Copyright (c) Enigmastation. All rights reserved.

package chat

import (
	"context"
	"log/slog"
	"time"
)

// LoggingMiddleware returns a [Middleware] that logs each send using slog.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, conv Conversation) (Result, error) {
			start := time.Now()
			logger.InfoContext(ctx, "chat request started",
				"model", conv.Model,
				"message_count", len(conv.Messages),
			)

			res, err := next(ctx, conv)

			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "chat request failed",
					"duration", duration,
					"error", err,
				)
				return res, err
			}

			resp, ok := res.Response()
			if !ok {
				logger.InfoContext(ctx, "chat request skipped",
					"duration", duration,
					"result", res.Kind().String(),
				)
				return res, nil
			}
			logger.InfoContext(ctx, "chat request completed",
				"duration", duration,
				"choices", len(resp.Choices),
				"prompt_tokens", resp.Usage.PromptTokens,
				"completion_tokens", resp.Usage.CompletionTokens,
			)
			return res, nil
		}
	}
}
