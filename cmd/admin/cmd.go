// Command admin runs maintenance tasks against the catalog database:
//
//	admin migrate
//	admin seed-geography -file geography.json
//	admin create-account -view staff -phone 99112233 -password ... [-name ...] [-superuser]
//	admin delete-city -id <city id>
//
// It reads the same environment as the API server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GregMSThompson/gatabank/internal/bootstrap"
	"github.com/GregMSThompson/gatabank/internal/config"
	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/internal/services"
	"github.com/GregMSThompson/gatabank/internal/store"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

const usage = `usage: admin <command> [flags]

commands:
  migrate          create or update the schema
  seed-geography   load cities, districts and villages from a JSON file
  create-account   create a staff or collaborator account
  delete-city      delete a city together with its districts and villages`

var errUsage = errors.New(usage)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.New()
	cfg.AuthEnabled = false // never needed here

	bs, err := bootstrap.Run(ctx, cfg)
	if err != nil {
		bs.Log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer bs.Close()

	ctx = logger.ToContext(ctx, bs.Log.With("command", os.Args[1]))
	if err := run(ctx, bs, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			bs.Close()
			os.Exit(2)
		}
		bs.Log.Error("command failed", "command", os.Args[1], "error", err)
		bs.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, bs *bootstrap.Bootstrap, command string, args []string) error {
	if err := store.Migrate(ctx, bs.DB); err != nil {
		return err
	}
	gstore := store.NewGeographyStore(bs.DB)

	switch command {
	case "migrate":
		logger.FromContext(ctx).Info("schema up to date")
		return nil
	case "seed-geography":
		return seedGeography(ctx, services.NewGeographyService(gstore), args)
	case "create-account":
		return createAccount(ctx, services.NewUserService(store.NewUserStore(bs.DB), gstore), args)
	case "delete-city":
		return deleteCity(ctx, services.NewGeographyService(gstore), args)
	default:
		return errUsage
	}
}

func seedGeography(ctx context.Context, svc interface {
	Seed(ctx context.Context, seed dto.GeographySeed) (int, error)
}, args []string) error {
	fs := flag.NewFlagSet("seed-geography", flag.ContinueOnError)
	file := fs.String("file", "", "path to the geography JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	var seed dto.GeographySeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse %s: %w", *file, err)
	}
	_, err = svc.Seed(ctx, seed)
	return err
}

type accountCreator interface {
	CreateUser(ctx context.Context, view models.AccountView, req dto.UserRequest) (dto.UserResponse, error)
	SetRole(ctx context.Context, id string, role models.Role) error
}

func createAccount(ctx context.Context, svc accountCreator, args []string) error {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)
	view := fs.String("view", string(models.ViewStaff), "account view: staff or collaborator")
	phone := fs.String("phone", "", "phone number used to sign in")
	password := fs.String("password", "", "initial password (optional)")
	name := fs.String("name", "", "display name")
	superuser := fs.Bool("superuser", false, "grant every capability (staff view only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := models.AccountView(*view)
	if !v.Valid() {
		return fmt.Errorf("unknown view %q", *view)
	}
	if *superuser && v != models.ViewStaff {
		return errors.New("-superuser requires -view staff")
	}

	req := dto.UserRequest{PhoneNumber: *phone}
	if *password != "" {
		req.Password = password
	}
	if *name != "" {
		req.Name = name
	}

	user, err := svc.CreateUser(ctx, v, req)
	if err != nil {
		return err
	}
	if *superuser {
		if err := svc.SetRole(ctx, user.ID, models.RoleSuperuser); err != nil {
			return err
		}
	}
	logger.FromContext(ctx).Info("account ready", "user_id", user.ID, "view", v, "superuser", *superuser)
	return nil
}

func deleteCity(ctx context.Context, svc interface {
	DeleteCity(ctx context.Context, id string) error
}, args []string) error {
	fs := flag.NewFlagSet("delete-city", flag.ContinueOnError)
	id := fs.String("id", "", "city id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}
	return svc.DeleteCity(ctx, *id)
}
