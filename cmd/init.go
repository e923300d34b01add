package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"go.uber.org/zap"

	"github.com/viant/dequery/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		URL, err := initConfig(ctx, afs.New(), location(dir))
		if err != nil {
			logger.Fatal("Failed to write configuration", zap.Error(err))
		}
		fmt.Printf("Configuration written to %s\n", URL)
	},
}

func initConfig(ctx context.Context, fs afs.Service, dir string) (string, error) {
	URL := url.Join(dir, config.FileName)
	if ok, _ := fs.Exists(ctx, URL); ok {
		return "", fmt.Errorf("%v: %w", URL, os.ErrExist)
	}
	data, err := config.Default().Encode()
	if err != nil {
		return "", err
	}
	if err = fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(string(data))); err != nil {
		return "", err
	}
	return URL, nil
}
