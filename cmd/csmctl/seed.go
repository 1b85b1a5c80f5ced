package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/repository"
	"github.com/csmaviation/website-api/internal/service"
	"github.com/csmaviation/website-api/pkg/cache"
)

// seedFile is the YAML document accepted by `csmctl seed`.
type seedFile struct {
	Config map[string]string `yaml:"config"`
	SEO    []models.SEOPage  `yaml:"seo"`
	Fleet  []models.Aircraft `yaml:"fleet"`
}

func parseSeed(r io.Reader) (*seedFile, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, page := range seed.SEO {
		if page.Page == "" {
			return nil, fmt.Errorf("seo entry %d: page is required", i)
		}
	}
	for i, aircraft := range seed.Fleet {
		if aircraft.Name == "" {
			return nil, fmt.Errorf("fleet entry %d: name is required", i)
		}
		if aircraft.ID == "" {
			seed.Fleet[i].ID = fleetID(aircraft.Name)
		}
		if aircraft.SortOrder == 0 {
			seed.Fleet[i].SortOrder = i + 1
		}
	}
	return &seed, nil
}

// fleetID keeps re-seeding idempotent for entries that omit an id.
func fleetID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("csm-aviation:fleet:"+strings.ToLower(strings.TrimSpace(name)))).String()
}

func (s *seedFile) configurations(actor string, now time.Time) []models.Configuration {
	keys := make([]string, 0, len(s.Config))
	for key := range s.Config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	items := make([]models.Configuration, 0, len(keys))
	for _, key := range keys {
		items = append(items, models.Configuration{Key: key, Value: s.Config[key], UpdatedBy: &actor, UpdatedAt: now})
	}
	return items
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert site configuration, SEO pages and fleet from a YAML file",
		Long: `Upsert site content from a YAML file and drop the cached copies.

Example seed.yaml:
  config:
    header_color: "#004080"
  seo:
    - page: home
      title: CSM Aviation | Private Jet Charter
  fleet:
    - name: Citation CJ3
      category: Light Jet
      passengers: 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close() //nolint:errcheck

			seed, err := parseSeed(f)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			configs := repository.NewConfigurationRepository(rt.db)
			content := repository.NewContentRepository(rt.db)

			if items := seed.configurations("csmctl", time.Now().UTC()); len(items) > 0 {
				if err := configs.BulkUpsert(ctx, items); err != nil {
					return fmt.Errorf("seed configuration: %w", err)
				}
			}
			for i := range seed.SEO {
				if err := content.UpsertSEO(ctx, &seed.SEO[i]); err != nil {
					return fmt.Errorf("seed seo %s: %w", seed.SEO[i].Page, err)
				}
			}
			for i := range seed.Fleet {
				if err := content.UpsertAircraft(ctx, &seed.Fleet[i]); err != nil {
					return fmt.Errorf("seed aircraft %s: %w", seed.Fleet[i].Name, err)
				}
			}

			var cacheRepo service.CacheRepository
			if rt.cfg.Cache.Enabled {
				client, err := cache.NewRedis(ctx, rt.cfg.Redis)
				if err != nil {
					rt.logger.Sugar().Warnw("cache not invalidated", "error", err)
				} else {
					defer client.Close() //nolint:errcheck
					cacheRepo = repository.NewCacheRepository(client, rt.logger)
				}
			}
			cacheSvc := service.NewCacheService(cacheRepo, nil, rt.cfg.Cache.TTL, rt.logger, rt.cfg.Cache.Enabled)
			site := service.NewSiteService(configs, content, nil, cacheSvc, nil, validator.New(), rt.logger, service.SiteConfig{})
			site.InvalidateContent(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d config keys, %d SEO pages, %d aircraft\n", len(seed.Config), len(seed.SEO), len(seed.Fleet))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "path to the seed YAML file")
	return cmd
}
