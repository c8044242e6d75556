package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/repository"
	"github.com/joshuarp/idgen-api/internal/services"
)

// RegisterClient provisions an API client and writes its credentials to out.
// The plaintext secret is shown once and never stored.
func RegisterClient(ctx context.Context, clientID string, scopes []string, out io.Writer) error {
	var registration *services.ClientRegistrationService

	app := fx.New(
		fx.NopLogger,
		fx.Supply(
			fx.Annotate(
				"all",
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
		fx.Provide(
			fx.Annotate(
				provideAuthPostgresSQLX,
				fx.ResultTags(`name:"db_auth"`),
			),
			fx.Annotate(
				repository.NewAPIClientRepository,
				fx.ParamTags(`name:"db_auth"`),
				fx.As(new(services.APIClientWriter)),
			),
			services.NewClientRegistrationService,
		),
		fx.Invoke(registerResourceCleanup),
		fx.Populate(&registration),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop(context.WithoutCancel(ctx))

	client, err := registration.Register(ctx, clientID, scopes)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "client_id=%s\nclient_secret=%s\nscope=%s\n",
		client.ClientID, client.ClientSecret, strings.Join(client.Scopes, " "))
	return err
}
