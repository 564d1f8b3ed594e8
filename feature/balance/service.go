package balance

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"objmask-workaround/core/reconcile"
	"objmask-workaround/core/storage"
	"objmask-workaround/feature/balance/history"
	"objmask-workaround/feature/balance/models"
	"objmask-workaround/feature/balance/objmask"
	"objmask-workaround/feature/balance/table"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs rebuilds and the operations around them.
type Service struct {
	cfg     Config
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	history *history.Repository
	cache   *rulesCache
}

// NewService creates a new balance service. client and db may be nil, which
// disables publishing and run history respectively.
func NewService(cfg Config, client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	s := &Service{
		cfg:    cfg,
		client: client,
		bucket: bucket,
		logger: logger,
		cache:  newRulesCache(cfg.RulesCacheTTL()),
	}
	if db != nil {
		s.history = history.NewRepository(db)
	}
	return s
}

// Migrate prepares the history table. It is a no-op without a database.
func (s *Service) Migrate(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Migrate(ctx)
}

// FixFiles rebuilds the table from the files in p.
func (s *Service) FixFiles(ctx context.Context, p Paths) (*Result, error) {
	rs, err := s.loadRulesFile(p.Rules)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Processing "+filepath.Base(p.Balance), zap.String("path", p.Balance))
	f, err := openSource(p.Balance)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := Rebuild(rs, f, p.Balance)
	if err != nil {
		return nil, err
	}
	s.report(res)
	return res, nil
}

// FixUpload rebuilds the table from uploaded sources. A nil rulesR falls
// back to the configured rules file.
func (s *Service) FixUpload(ctx context.Context, balanceR io.Reader, balanceName string, rulesR io.Reader, rulesName string) (*Result, error) {
	var (
		rs  *Rules
		err error
	)
	if rulesR != nil {
		s.logger.Debug("Processing uploaded rules", zap.String("name", rulesName))
		rs, err = LoadRules(rulesR, rulesName, s.cfg.IgnoreUnits)
	} else {
		rs, err = s.DefaultRules(ctx)
	}
	if err != nil {
		return nil, err
	}

	res, err := Rebuild(rs, balanceR, balanceName)
	if err != nil {
		return nil, err
	}
	s.report(res)
	return res, nil
}

// DefaultRules returns the configured rules file, parsed once per cache TTL.
func (s *Service) DefaultRules(ctx context.Context) (*Rules, error) {
	if s.cfg.RulesObject != "" && s.client != nil {
		key := "s3://" + s.bucket + "/" + s.cfg.RulesObject
		return s.cache.GetOrLoad(ctx, key, s.loadRulesObject)
	}

	p := filepath.Join(s.cfg.DataDir, s.cfg.RulesFile)
	return s.cache.GetOrLoad(ctx, p, func(context.Context) (*Rules, error) {
		return s.loadRulesFile(p)
	})
}

func (s *Service) loadRulesFile(p string) (*Rules, error) {
	s.logger.Info("Processing "+filepath.Base(p), zap.String("path", p))
	f, err := openSource(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadRules(f, p, s.cfg.IgnoreUnits)
}

func (s *Service) loadRulesObject(ctx context.Context) (*Rules, error) {
	source := s.bucket + "/" + s.cfg.RulesObject
	s.logger.Info("Processing "+path.Base(s.cfg.RulesObject), zap.String("object", source))

	obj, err := s.client.GetObject(ctx, s.bucket, s.cfg.RulesObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, &models.SourceError{Source: source, Err: err}
	}
	defer obj.Close()

	return LoadRules(obj, source, s.cfg.IgnoreUnits)
}

// report replays the run's diagnostics as warnings.
func (s *Service) report(res *Result) {
	for _, w := range res.Diagnostics.Warnings {
		s.logger.Warn(w.Message, zap.String("kind", string(w.Kind)), zap.String("unit", w.Unit))
	}
}

// Render serializes the rebuilt table. sink names the destination in errors.
func (s *Service) Render(res *Result, sink string) ([]byte, error) {
	var buf bytes.Buffer
	if err := table.Write(&buf, sink, res.Table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Emit renders the table and writes it to w in one piece, so a render
// failure leaves the sink untouched. It returns the bytes written.
func (s *Service) Emit(w io.Writer, sink string, res *Result) ([]byte, error) {
	s.logger.Info("Writing new "+filepath.Base(res.BalanceSource), zap.String("sink", sink))

	data, err := s.Render(res, sink)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, &models.SourceError{
			Source: sink,
			Err:    fmt.Errorf("failed to write new balance table: %w", err),
		}
	}

	s.logger.Info("Complete", zap.Int("rows", res.Table.Len()), zap.Int("warnings", len(res.Diagnostics.Warnings)))
	return data, nil
}

// Diff compares the shipped table with the rebuilt one.
func (s *Service) Diff(res *Result) *reconcile.Plan {
	return reconcile.Compare(res.Shipped, res.Table)
}

// Categories returns the category code table.
func (s *Service) Categories() []models.Category {
	return objmask.All()
}

// Publish uploads data under the configured prefix and returns the object name.
func (s *Service) Publish(ctx context.Context, data []byte) (string, error) {
	if s.client == nil {
		return "", ErrPublishDisabled
	}

	object := path.Join(s.cfg.PublishPrefix, s.cfg.OutputFile)
	if err := upload(ctx, s.client, s.bucket, object, data); err != nil {
		return "", err
	}

	s.logger.Info("Published balance table", zap.String("bucket", s.bucket), zap.String("object", object))
	return object, nil
}

// Record stores a run in the history. It is a no-op without a database.
func (s *Service) Record(ctx context.Context, res *Result, data []byte, published string) (*history.Run, error) {
	if s.history == nil {
		return nil, nil
	}

	sum := sha256.Sum256(data)
	run := &history.Run{
		RulesSource:   res.RulesSource,
		BalanceSource: res.BalanceSource,
		Units:         res.Index.Len(),
		Entries:       res.Shipped.Len(),
		Rows:          res.Table.Len(),
		Warnings:      len(res.Diagnostics.Warnings),
		Checksum:      hex.EncodeToString(sum[:]),
		Published:     published,
	}
	if err := s.history.Record(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Runs lists the most recent runs.
func (s *Service) Runs(ctx context.Context, limit int) ([]history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}
