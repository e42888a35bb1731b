package cloudrun

import (
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrun"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/gatabank/infra/common"
	"github.com/GregMSThompson/gatabank/infra/database"
	infradocker "github.com/GregMSThompson/gatabank/infra/docker"
	"github.com/GregMSThompson/gatabank/infra/secret"
)

// SetupCloudRun builds the api image and deploys it next to its Cloud SQL
// database. res are resources the image build has to wait for.
func SetupCloudRun(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (*serviceaccount.Account, error) {
	img, err := buildApiImage(ctx, res...)
	if err != nil {
		return nil, err
	}

	srv, err := projects.NewService(ctx, "cloudRunService", &projects.ServiceArgs{
		Service: pulumi.String("run.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	apiSA, err := serviceaccount.NewAccount(ctx, "apiServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("gatabank-api"),
		DisplayName: pulumi.String("Gatabank API"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	secrets, err := secret.SetupSecretManager(ctx, prov, apiSA)
	if err != nil {
		return nil, err
	}

	db, err := database.SetupDatabase(ctx, prov, apiSA, secrets)
	if err != nil {
		return nil, err
	}

	svc, err := createCloudRunService(ctx, img, apiSA, db, prov, srv, secrets.Ready())
	if err != nil {
		return nil, err
	}

	if err := allowPublicInvoke(ctx, svc, prov); err != nil {
		return nil, err
	}

	ctx.Export("apiUrl", svc.Statuses.Index(pulumi.Int(0)).Url())
	return apiSA, nil
}

func buildApiImage(ctx *pulumi.Context, res ...pulumi.Resource) (*docker.Image, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	tag, err := common.SourceHash("..")
	if err != nil {
		return nil, err
	}

	return docker.NewImage(ctx, "apiImage", &docker.ImageArgs{
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String("linux/amd64"),
			Context:    pulumi.String(".."),
			Dockerfile: pulumi.String("../cmd/api/Dockerfile"),
		},
		ImageName: pulumi.String(fmt.Sprintf("%s-docker.pkg.dev/%s/%s/api:%s",
			region, projectID, infradocker.RepositoryID, tag)),
	},
		pulumi.DependsOn(res),
	)
}

func env(name string, value pulumi.StringInput) *cloudrun.ServiceTemplateSpecContainerEnvArgs {
	return &cloudrun.ServiceTemplateSpecContainerEnvArgs{
		Name:  pulumi.String(name),
		Value: value,
	}
}

func createCloudRunService(ctx *pulumi.Context,
	img *docker.Image,
	apiSA *serviceaccount.Account,
	db *database.Refs,
	prov *gcp.Provider,
	res ...pulumi.Resource) (*cloudrun.Service, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")

	region := gcpCfg.Require("region")
	timeout, err := strconv.Atoi(crCfg.Require("timeout"))
	if err != nil {
		return nil, fmt.Errorf("cloudrun:timeout: %w", err)
	}

	auth, err := authEnabled(crCfg.Get("authEnabled"))
	if err != nil {
		return nil, err
	}
	if !auth {
		ctx.Log.Warn("cloudrun:authEnabled is false; write routes will accept anonymous requests", nil)
	}

	socketDir := db.ConnectionName.ApplyT(func(conn string) string {
		return "/cloudsql/" + conn
	}).(pulumi.StringOutput)

	return cloudrun.NewService(ctx, "apiService", &cloudrun.ServiceArgs{
		Location: pulumi.String(region),

		Template: &cloudrun.ServiceTemplateArgs{
			Metadata: &cloudrun.ServiceTemplateMetadataArgs{
				Annotations: pulumi.StringMap{
					"autoscaling.knative.dev/minScale":         pulumi.String(crCfg.Require("minScale")),
					"autoscaling.knative.dev/maxScale":         pulumi.String(crCfg.Require("maxScale")),
					"run.googleapis.com/cpu":                   pulumi.String(crCfg.Require("cpu")),
					"run.googleapis.com/memory":                pulumi.String(crCfg.Require("memory")),
					"run.googleapis.com/cpu-throttling":        pulumi.String("true"),
					"run.googleapis.com/container-concurrency": pulumi.String(crCfg.Require("concurrency")),

					// mounts the instance socket under /cloudsql
					"run.googleapis.com/cloudsql-instances": db.ConnectionName,
				},
			},

			Spec: &cloudrun.ServiceTemplateSpecArgs{
				ServiceAccountName: apiSA.Email,
				TimeoutSeconds:     pulumi.Int(timeout),

				Containers: cloudrun.ServiceTemplateSpecContainerArray{
					&cloudrun.ServiceTemplateSpecContainerArgs{
						Image: img.ImageName,
						Ports: cloudrun.ServiceTemplateSpecContainerPortArray{
							&cloudrun.ServiceTemplateSpecContainerPortArgs{
								ContainerPort: pulumi.Int(8080),
							},
						},
						Envs: cloudrun.ServiceTemplateSpecContainerEnvArray{
							env("PROJECTID", pulumi.String(gcpCfg.Require("project"))),
							env("LOGLEVEL", pulumi.String(crCfg.Require("logLevel"))),
							env("LOGFORMAT", pulumi.String("cloudrun")),
							env("AUTH_ENABLED", pulumi.String(strconv.FormatBool(auth))),
							env("DB_DRIVER", pulumi.String("postgres")),
							env("DB_HOST", socketDir),
							env("DB_NAME", pulumi.String(db.Name)),
							env("DB_USER", pulumi.String(db.User)),
							env("DB_PASSWORD_SECRET", db.PasswordSecretName),
						},
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

// authEnabled reads cloudrun:authEnabled. The service is public, so an
// unset value means authentication stays on; only an explicit false opens it.
func authEnabled(raw string) (bool, error) {
	if raw == "" {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("cloudrun:authEnabled: %w", err)
	}
	return v, nil
}

// allowPublicInvoke opens the service to the internet; write routes are
// protected by the api's own Firebase token check.
func allowPublicInvoke(ctx *pulumi.Context, svc *cloudrun.Service, prov *gcp.Provider) error {
	gcpCfg := config.New(ctx, "gcp")

	_, err := cloudrun.NewIamMember(ctx, "publicInvoker", &cloudrun.IamMemberArgs{
		Service:  svc.Name,
		Location: pulumi.String(gcpCfg.Require("region")),
		Role:     pulumi.String("roles/run.invoker"),
		Member:   pulumi.String("allUsers"),
	},
		pulumi.Provider(prov),
	)
	return err
}
