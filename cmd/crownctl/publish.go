package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phn-team/crown-pages-types/internal/bundle"
	"github.com/phn-team/crown-pages-types/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the catalog bundle to S3",
	Long: `Build the catalog bundle and upload it to S3, where the front ends
fetch it at build time. Defaults come from the config file's [publish]
section; flags override.

Examples:
  crownctl publish --bucket crown-catalog
  crownctl publish --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		pubCfg := publish.Config{
			Bucket:   cfg.Publish.Bucket,
			Prefix:   cfg.Publish.Prefix,
			Region:   cfg.Publish.Region,
			Endpoint: cfg.Publish.Endpoint,
		}
		if v, _ := cmd.Flags().GetString("bucket"); v != "" {
			pubCfg.Bucket = v
		}
		if v, _ := cmd.Flags().GetString("prefix"); v != "" {
			pubCfg.Prefix = v
		}
		if v, _ := cmd.Flags().GetString("region"); v != "" {
			pubCfg.Region = v
		}
		if v, _ := cmd.Flags().GetString("endpoint"); v != "" {
			pubCfg.Endpoint = v
		}
		pubCfg.DryRun, _ = cmd.Flags().GetBool("dry-run")

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		publisher, err := publish.New(cmd.Context(), pubCfg, logger)
		if err != nil {
			return err
		}

		key, err := publisher.Publish(cmd.Context(), bundle.Build())
		if err != nil {
			return err
		}

		fmt.Printf("published s3://%s/%s\n", pubCfg.Bucket, key)
		return nil
	},
}

func init() {
	publishCmd.Flags().String("bucket", "", "destination S3 bucket")
	publishCmd.Flags().String("prefix", "", "key prefix inside the bucket")
	publishCmd.Flags().String("region", "", "AWS region")
	publishCmd.Flags().String("endpoint", "", "custom S3 endpoint (MinIO etc)")
	publishCmd.Flags().Bool("dry-run", false, "build and log, skip the upload")
}
