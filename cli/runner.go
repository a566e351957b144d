package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/viant/signin"
	"github.com/viant/signin/credential"
	"github.com/viant/signin/internal/logging"
)

var (
	errNothingToDo = errors.New("either --email or --provider is required")
	errOAuthFailed = errors.New("oauth sign-in failed")
	errLoginFailed = errors.New("login failed")
)

// Run parses args and performs one sign-in attempt. Extra controller options
// are applied after the ones derived from args.
func Run(args []string, options ...signin.Option) error {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		return err
	}
	ctx := context.Background()
	if err := opts.Load(ctx); err != nil {
		return err
	}
	config, err := signin.LoadConfig()
	if err != nil {
		return err
	}
	opts.Apply(config)

	logger := logging.New(config.LogDebug, config.LogFormat, os.Stderr)
	log := logrus.NewEntry(logger).WithFields(logrus.Fields{"api.url": config.APIURL})
	controller, err := signin.New(config, append([]signin.Option{signin.WithLogger(log)}, options...)...)
	if err != nil {
		return err
	}
	defer func() { _ = controller.Close() }()

	switch {
	case opts.Provider != "":
		if err = controller.StartOAuth(opts.Provider); err != nil {
			return err
		}
		controller.Wait()
		if !controller.InFlight(opts.Provider) {
			return fmt.Errorf("%w: %v", errOAuthFailed, opts.Provider)
		}
		log.WithFields(logrus.Fields{"provider": opts.Provider}).Info("continue in the browser")
		return nil
	case opts.Email != "":
		outcome, err := controller.SubmitCredentials(ctx, credential.Credentials{
			Email:      opts.Email,
			Password:   opts.Password,
			RememberMe: opts.Remember,
		})
		if err != nil {
			return err
		}
		if !outcome.Success {
			return errLoginFailed
		}
		log.WithFields(logrus.Fields{"token.len": len(outcome.Token)}).Info("signed in")
		return nil
	}
	return errNothingToDo
}
