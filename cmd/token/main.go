// Command token mints a signed access token for the books API using the
// server's configured secret and lifetime.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/phrazzld/bookshelf-api/internal/config"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
)

func main() {
	subject := flag.String("subject", "", "subject UUID to embed in the token (random when empty)")
	flag.Parse()

	authCfg, err := config.LoadAuth(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := mint(context.Background(), os.Stdout, *authCfg, *subject); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// mint writes a token for subject to w.
func mint(ctx context.Context, w io.Writer, cfg config.AuthConfig, subject string) error {
	subjectID := uuid.New()
	if subject != "" {
		parsed, err := uuid.Parse(subject)
		if err != nil {
			return fmt.Errorf("invalid subject %q: %w", subject, err)
		}
		subjectID = parsed
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, err := jwtService.GenerateToken(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
