package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	switch app.NormalizeBin(binValue) {
	case "id":
		return []fx.Option{
			app.AuthModule(),
			app.IDModule(),
		}
	case "file":
		return []fx.Option{
			app.AuthModule(),
			app.FileModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.IDModule(),
			app.FileModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: id|file (default: all)")
	registerClient := flag.String("register-client", "", "provision an API client with this id, print its secret and exit")
	scopes := flag.String("scopes", "ids:write ids:read", "space separated scopes for -register-client")
	flag.Parse()

	if *registerClient != "" {
		if err := app.RegisterClient(context.Background(), *registerClient, strings.Fields(*scopes), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app.New(*bin, selectedModules(*bin)...).Run()
}
