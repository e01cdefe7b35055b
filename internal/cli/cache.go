package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/cache"
	"github.com/matzehuels/quotefit/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached layouts and previews",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and previews",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := c.cacheConfig()
			if err != nil {
				return err
			}

			switch strings.ToLower(cc.Backend) {
			case "", cache.BackendFile:
				count, err := cache.ClearDir(cc.Dir)
				if err != nil {
					return err
				}
				if count == 0 {
					printInfo("Cache is empty")
					return nil
				}
				printSuccess("Cleared %d cached entries", count)
				printDetail("Directory: %s", cc.Dir)
			case cache.BackendSQLite:
				store, err := cache.NewSQLiteCache(cmd.Context(), cc.SQLitePath)
				if err != nil {
					return err
				}
				defer store.Close()
				count, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached entries", count)
				printDetail("Database: %s", cc.SQLitePath)
			case cache.BackendNone:
				printInfo("Caching is disabled")
			default:
				return errors.New(errors.ErrCodeUnsupported,
					"cache clear is not supported for the %s backend (entries expire on their own)", cc.Backend)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := c.cacheConfig()
			if err != nil {
				return err
			}
			switch strings.ToLower(cc.Backend) {
			case cache.BackendSQLite:
				fmt.Fprintln(cmd.OutOrStdout(), cc.SQLitePath)
			case cache.BackendRedis:
				fmt.Fprintln(cmd.OutOrStdout(), cc.RedisURL)
			case cache.BackendMongo:
				fmt.Fprintln(cmd.OutOrStdout(), cc.MongoURI)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), cc.Dir)
			}
			return nil
		},
	}
}
