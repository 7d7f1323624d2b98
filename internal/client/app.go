// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

const usage = `usage: otpctl <command> [flags]

commands:
  migrate                               apply database migrations
  remove-user -u NAME [-remote]         delete a user and everything it owns
  verify -u NAME -code CODE [-pin PIN]  submit an authentication attempt
  token [-operator NAME]                print a signed admin token
`

type App struct {
	adapter adapter.ServerAdapter
	admin   service.AdminService
	open    BackendOpener

	out    io.Writer
	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, admin service.AdminService, open BackendOpener, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		admin:   admin,
		open:    open,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	switch args[0] {
	case "migrate":
		return a.migrate(ctx, args[1:])
	case "remove-user":
		return a.removeUser(ctx, args[1:])
	case "verify":
		return a.verify(ctx, args[1:])
	case "token":
		return a.token(ctx, args[1:])
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(a.out, usage)
		return nil
	default:
		_, _ = fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) migrate(ctx context.Context, args []string) error {
	if err := a.newFlagSet("migrate").Parse(args); err != nil {
		return err
	}

	return a.withBackend(ctx, func(b Backend) error {
		if err := b.Migrate(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.out, "migrations applied")
		return nil
	})
}

func (a *App) removeUser(ctx context.Context, args []string) error {
	fs := a.newFlagSet("remove-user")
	username := fs.String("u", "", "username to remove")
	remote := fs.Bool("remote", false, "remove through the server admin API")
	operator := fs.String("operator", "otpctl", "operator recorded in the admin token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("%w: -u", ErrMissingFlag)
	}

	log := a.logger.WithUsername(*username)

	if *remote {
		token, err := a.admin.CreateToken(ctx, *operator)
		if err != nil {
			return err
		}
		a.adapter.SetToken(token.SignedString)

		if err = a.adapter.RemoveUser(ctx, *username); err != nil {
			return err
		}
		log.Info().Bool("remote", true).Msg("user removed")
		_, _ = fmt.Fprintf(a.out, "user %q removed\n", *username)
		return nil
	}

	return a.withBackend(ctx, func(b Backend) error {
		if err := b.RemoveUserState(ctx, *username); err != nil {
			return err
		}
		log.Info().Bool("remote", false).Msg("user removed")
		_, _ = fmt.Fprintf(a.out, "user %q removed\n", *username)
		return nil
	})
}

func (a *App) verify(ctx context.Context, args []string) error {
	fs := a.newFlagSet("verify")
	username := fs.String("u", "", "username")
	code := fs.String("code", "", "TOTP code or scratch token")
	pin := fs.String("pin", "", "PIN, when the server requires one")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *code == "" {
		return fmt.Errorf("%w: -u and -code", ErrMissingFlag)
	}

	result, err := a.adapter.Verify(ctx, models.VerifyRequest{
		Username: *username,
		Code:     strings.TrimSpace(*code),
		Pincode:  *pin,
	})
	if errors.Is(err, adapter.ErrRejected) {
		_, _ = fmt.Fprintln(a.out, "rejected")
		return err
	}
	if err != nil {
		return err
	}

	if result.Accepted {
		_, _ = fmt.Fprintln(a.out, "accepted")
	}
	return nil
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := a.newFlagSet("token")
	operator := fs.String("operator", "otpctl", "token subject")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.admin.CreateToken(ctx, *operator)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(a.out, token.SignedString)
	return nil
}

func (a *App) withBackend(ctx context.Context, fn func(Backend) error) error {
	b, err := a.open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			a.logger.Err(err).Msg("closing store")
		}
	}()

	return fn(b)
}
