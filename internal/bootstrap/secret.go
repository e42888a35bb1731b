package bootstrap

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// secretVersionName expands a bare secret id into its latest version path.
// Fully qualified names are used as given.
//
//	db-password -> projects/{project}/secrets/db-password/versions/latest
func secretVersionName(projectID, name string) string {
	if strings.HasPrefix(name, "projects/") {
		if strings.Contains(name, "/versions/") {
			return name
		}
		return name + "/versions/latest"
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, name)
}

// ReadSecret returns the payload of a Secret Manager secret.
func ReadSecret(ctx context.Context, projectID, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	version := secretVersionName(projectID, name)
	res, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: version})
	if status.Code(err) == codes.NotFound {
		return "", fmt.Errorf("secret %s does not exist", version)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(res.Payload.Data), "\r\n"), nil
}
