package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/client"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/session"
)

var errValidation = errors.New("validation failed")

// app is what every command shares: the API client, the session and the
// terminal.
type app struct {
	cfg      *config.Console
	log      *zap.Logger
	sess     *session.Session
	api      *client.Client
	validate *validator.Validate
	in       *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

func newApp(cfg *config.Console, log *zap.Logger, store session.Store, in io.Reader, out io.Writer) (*app, error) {
	v, err := models.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("build validator: %w", err)
	}
	sess := session.New(store, session.Keys{Token: cfg.TokenKey, User: cfg.UserKey, Role: cfg.RoleKey})
	api := client.New(cfg.APIURL,
		client.WithTimeout(cfg.Timeout),
		client.WithToken(sess.Token()),
		client.WithLogger(log),
	)
	return &app{
		cfg:      cfg,
		log:      log,
		sess:     sess,
		api:      api,
		validate: v,
		in:       bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}, nil
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line. EOF with no input is an empty answer, not an error.
func (a *app) prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a.printf("%s", question)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm is the listview.Confirmer for destructive bulk actions. Anything
// but y or yes declines.
func (a *app) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := a.prompt(ctx, question+" [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (a *app) confirmer() listview.Confirmer {
	return listview.ConfirmFunc(a.confirm)
}

// checkForm validates a request with the same binding tags the API uses and
// prints one line per bad field.
func (a *app) checkForm(req any) error {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}
	fields, ok := models.FieldErrors(err)
	if !ok {
		return err
	}
	a.printFields(fields)
	return errValidation
}

func (a *app) printFields(fields map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		a.printf("  %s: %s\n", name, fields[name])
	}
}

// reportAPIError prints field errors carried by a 400 so the operator sees
// them next to the message.
func (a *app) reportAPIError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		a.printFields(apiErr.Fields)
	}
	return err
}

// describe turns an error into the line printed before exiting.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "not signed in or the session expired; run `fpadmin login`"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	}
	return err.Error()
}
