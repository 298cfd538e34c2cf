package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/liquiditylab/lcrsim/pkg/ports"
)

// Probe implements DatabaseProbe against MongoDB
type Probe struct {
	url     string
	name    string
	timeout time.Duration
	logger  *zap.Logger
}

// NewProbe creates a new MongoDB probe. The URL and database name may
// be empty; Check then reports the database as not configured.
func NewProbe(url, name string, timeout time.Duration, logger *zap.Logger) *Probe {
	return &Probe{
		url:     url,
		name:    name,
		timeout: timeout,
		logger:  logger,
	}
}

// Check dials the database, pings it and lists its collections
// (ports.DatabaseProbe interface). Each call opens and closes its own
// connection; the probe holds no client between checks.
func (p *Probe) Check(ctx context.Context) ports.CheckResult {
	if p.url == "" || p.name == "" {
		return ports.CheckResult{}
	}

	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(p.url).
		SetServerSelectionTimeout(p.timeout)

	client, err := mongo.Connect(checkCtx, opts)
	if err != nil {
		p.logger.Debug("database connect failed", zap.Error(err))
		return ports.CheckResult{Configured: true, Err: err}
	}
	defer func() {
		dctx, dcancel := context.WithTimeout(context.Background(), p.timeout)
		defer dcancel()
		if err := client.Disconnect(dctx); err != nil {
			p.logger.Debug("database disconnect failed", zap.Error(err))
		}
	}()

	if err := client.Ping(checkCtx, readpref.Primary()); err != nil {
		p.logger.Debug("database ping failed", zap.Error(err))
		return ports.CheckResult{Configured: true, Err: err}
	}

	result := ports.CheckResult{Configured: true, Connected: true}

	names, err := client.Database(p.name).ListCollectionNames(checkCtx, bson.D{})
	if err != nil {
		p.logger.Debug("collection listing failed", zap.Error(err))
		result.ListErr = err
		return result
	}

	result.Collections = names

	p.logger.Debug("database check succeeded",
		zap.String("database", p.name),
		zap.Int("collections", len(names)))

	return result
}
