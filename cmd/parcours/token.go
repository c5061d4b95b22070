package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwttoken "parcours/internal/jwt_token"
)

var (
	tokenLanguage string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token MATRICULE",
	Short: "Sign an access token for local use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.UsesDevSigningKey() {
			log.Warn("signing a token with the configured production key")
		}
		svc := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
		tok, err := svc.GenerateAccessToken(args[0], tokenLanguage, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenLanguage, "lang", "fr-be", "preferred language of the caller")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 8*time.Hour, "token lifetime")
}
