// Package di assembles the infrastructure behind the wizard controller
// from the application configuration.
package di

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"

	"github.com/mizusawah/hatlink/internal/app/config"
	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/application/usecase/wizard"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/repository"
	"github.com/mizusawah/hatlink/internal/domain/service"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/ethereum"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/graph"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/guild"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/ipfs"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/metadata"
	"github.com/mizusawah/hatlink/internal/infrastructure/gateway/storage"
	sqlitestore "github.com/mizusawah/hatlink/internal/infrastructure/persistence/sqlite"
	filerepo "github.com/mizusawah/hatlink/internal/infrastructure/repository"
)

// Container holds the wired infrastructure for one configuration.
type Container struct {
	Config config.AppConfig

	Snapshots repository.SnapshotRepository
	Journal   repository.JournalRepository
	Signer    *ethereum.LocalSigner
	Gate      *service.OwnershipGate

	graph   output.HatGraphGateway
	docs    output.DocumentFetcher
	guilds  output.GuildGateway
	pinner  output.MetadataPinner
	chain   *ethereum.ChainClient
	archive output.DocumentArchiveGateway

	db *sql.DB
}

// Build wires all gateways and repositories from the configuration. The
// signing key is read from the environment variable the configuration
// names; everything else comes from the configuration itself.
func Build(cfg config.AppConfig) (*Container, error) {
	hexKey := os.Getenv(cfg.PrivateKeyEnv)
	if hexKey == "" {
		return nil, fmt.Errorf("no wallet connected: set %s to a hex private key", cfg.PrivateKeyEnv)
	}
	signer, err := ethereum.NewLocalSigner(hexKey)
	if err != nil {
		return nil, err
	}

	gate, err := service.NewOwnershipGate(model.OwnershipTarget(cfg.OwnershipTarget))
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Signer: signer,
		Gate:   gate,
	}

	if err := c.buildStore(); err != nil {
		return nil, err
	}
	if err := c.buildArchive(); err != nil {
		c.Close()
		return nil, err
	}

	fetcher, err := ipfs.NewFetcher(cfg.IPFSGateways)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.docs = fetcher
	c.graph = graph.NewSubgraphClient(cfg.SubgraphURL)
	c.guilds = guild.NewClient(cfg.GuildAPIBase)
	c.pinner = metadata.NewPinnerClient(cfg.PinnerURL)

	chain, err := ethereum.NewChainClient(cfg.RPCURL, hexKey, int64(cfg.ChainID), cfg.TokenAddress)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.chain = chain

	return c, nil
}

// buildStore selects the snapshot backend: flat JSON files under home, or
// a single SQLite database.
func (c *Container) buildStore() error {
	fs := afero.NewOsFs()
	home := c.Config.Home

	switch c.Config.StoreBackend {
	case "", "file":
		recordsDir := filepath.Join(home, "records")
		if err := fs.MkdirAll(recordsDir, 0755); err != nil {
			return fmt.Errorf("create records directory: %w", err)
		}
		c.Snapshots = filerepo.NewSnapshotRepositoryImpl(fs, recordsDir)
	case "sqlite":
		db, err := sql.Open("sqlite3", c.Config.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if err := sqlitestore.NewMigrator(db).Migrate(); err != nil {
			db.Close()
			return fmt.Errorf("migrate database: %w", err)
		}
		c.db = db
		c.Snapshots = sqlitestore.NewSnapshotRepository(db)
	default:
		return fmt.Errorf("unknown store backend: %s", c.Config.StoreBackend)
	}

	c.Journal = filerepo.NewJournalRepositoryImpl(fs, filepath.Join(home, "journal.ndjson"))
	return nil
}

// buildArchive selects the optional metadata archive backend
func (c *Container) buildArchive() error {
	switch c.Config.ArchiveBackend {
	case "", "none":
		return nil
	case "local":
		gw, err := storage.NewLocalArchiveGateway(afero.NewOsFs(), c.Config.ArchiveDir)
		if err != nil {
			return err
		}
		c.archive = gw
	case "s3":
		gw, err := storage.NewS3ArchiveGateway(storage.S3Config{
			BucketName: c.Config.S3Bucket,
			Prefix:     c.Config.S3Prefix,
			Region:     c.Config.S3Region,
		})
		if err != nil {
			return err
		}
		c.archive = gw
	case "mock":
		c.archive = storage.NewMockArchiveGateway()
	default:
		return fmt.Errorf("unknown archive backend: %s", c.Config.ArchiveBackend)
	}
	return nil
}

// Archive returns the configured archive gateway, nil when disabled
func (c *Container) Archive() output.DocumentArchiveGateway {
	return c.archive
}

// WizardDeps assembles the controller dependency bundle around a notifier
func (c *Container) WizardDeps(notifier output.Notifier) wizard.Deps {
	return wizard.Deps{
		Snapshots: c.Snapshots,
		Journal:   c.Journal,
		Graph:     c.graph,
		Documents: c.docs,
		Guilds:    c.guilds,
		Chain:     c.chain,
		Pinner:    c.pinner,
		Archive:   c.archive,
		Signer:    c.Signer,
		Notifier:  notifier,
		Gate:      c.Gate,
		Config: wizard.Config{
			ChainLabel:   c.Config.ChainLabel,
			TokenAddress: c.Config.TokenAddress,
		},
	}
}

// Close releases held connections
func (c *Container) Close() {
	if c.db != nil {
		c.db.Close()
		c.db = nil
	}
	if c.chain != nil {
		c.chain.Close()
		c.chain = nil
	}
}
