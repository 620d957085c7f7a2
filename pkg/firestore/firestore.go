package firestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Config struct {
	ProjectID   string `mapstructure:"projectId"`
	PrivateKey  string `mapstructure:"privateKey"`
	ClientEmail string `mapstructure:"clientEmail"`
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// NewClient connects to Firestore with service-account credentials built
// from the three fields the deployment provides. Keys exported through env
// files carry literal "\n" sequences, so they are unescaped here.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*firestore.Client, error) {
	creds, err := json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   cfg.ProjectID,
		PrivateKey:  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		ClientEmail: cfg.ClientEmail,
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsJSON(creds))
	if err != nil {
		logger.Error("Failed to connect to Firestore",
			zap.Error(err),
			zap.String("projectID", cfg.ProjectID),
		)
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}

	logger.Info("Connected to Firestore", zap.String("projectID", cfg.ProjectID))

	return client, nil
}
