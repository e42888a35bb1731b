package database

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/sql"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/gatabank/infra/secret"
)

// Refs is what the api container needs to reach the database.
type Refs struct {
	ConnectionName     pulumi.StringOutput
	Name               string
	User               string
	PasswordSecretName pulumi.StringOutput
}

func SetupDatabase(ctx *pulumi.Context, prov *gcp.Provider, apiSA *serviceaccount.Account, secrets *secret.Manager) (*Refs, error) {
	dbCfg := config.New(ctx, "database")
	name := dbCfg.Require("name")
	user := dbCfg.Require("user")
	password := dbCfg.RequireSecret("password")

	svc, err := enableCloudSQL(ctx, prov)
	if err != nil {
		return nil, err
	}

	inst, err := createInstance(ctx, prov, svc)
	if err != nil {
		return nil, err
	}

	_, err = sql.NewDatabase(ctx, "gatabankDatabase", &sql.DatabaseArgs{
		Instance: inst.Name,
		Name:     pulumi.String(name),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	_, err = sql.NewUser(ctx, "gatabankDatabaseUser", &sql.UserArgs{
		Instance: inst.Name,
		Name:     pulumi.String(user),
		Password: password,
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	if err := addClientRole(ctx, prov, apiSA); err != nil {
		return nil, err
	}

	// the api reads the password itself at startup
	pwName, err := secrets.AddSecret(ctx, "dbPasswordSecret", "dbPassword", password)
	if err != nil {
		return nil, err
	}

	return &Refs{
		ConnectionName:     inst.ConnectionName,
		Name:               name,
		User:               user,
		PasswordSecretName: pwName,
	}, nil
}

func enableCloudSQL(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "cloudSqlService", &projects.ServiceArgs{
		Service: pulumi.String("sqladmin.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

func createInstance(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (*sql.DatabaseInstance, error) {
	gcpCfg := config.New(ctx, "gcp")
	dbCfg := config.New(ctx, "database")
	region := gcpCfg.Require("region")
	tier := dbCfg.Get("tier")
	if tier == "" {
		tier = "db-f1-micro"
	}

	return sql.NewDatabaseInstance(ctx, "gatabankInstance", &sql.DatabaseInstanceArgs{
		DatabaseVersion:    pulumi.String("POSTGRES_16"),
		Region:             pulumi.String(region),
		DeletionProtection: pulumi.Bool(dbCfg.GetBool("deletionProtection")),
		Settings: &sql.DatabaseInstanceSettingsArgs{
			Tier: pulumi.String(tier),
			BackupConfiguration: &sql.DatabaseInstanceSettingsBackupConfigurationArgs{
				Enabled: pulumi.Bool(true),
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

func addClientRole(ctx *pulumi.Context, prov *gcp.Provider, apiSA *serviceaccount.Account) error {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	_, err := projects.NewIAMMember(ctx, "cloudSqlClient", &projects.IAMMemberArgs{
		Role: pulumi.String("roles/cloudsql.client"),
		Member: apiSA.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
		Project: pulumi.String(projectID),
	},
		pulumi.Provider(prov),
	)
	return err
}
