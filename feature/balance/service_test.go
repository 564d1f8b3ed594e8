package balance_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"objmask-workaround/core/storage/mocks"
	"objmask-workaround/feature/balance"
	"objmask-workaround/feature/balance/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestService_FixFiles(t *testing.T) {
	dir := writeSources(t)
	core, logs := observer.New(zapcore.DebugLevel)
	svc := balance.NewService(testConfig(dir), nil, "", zap.New(core), nil)

	paths, err := balance.ResolvePaths(dir, "", testConfig(dir))
	require.NoError(t, err)

	res, err := svc.FixFiles(context.Background(), paths)
	require.NoError(t, err)

	var out bytes.Buffer
	data, err := svc.Emit(&out, "stdout", res)
	require.NoError(t, err)
	assert.Equal(t, out.Bytes(), data)
	assert.True(t, strings.HasPrefix(out.String(), `<?xml version="1.0"?>`))

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{
		"Processing unitrules.xml",
		"Processing balance.xml",
		"unknown OBJ_MASK flag found '9'",
		"Writing new balance.xml",
		"Complete",
	}, messages)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestService_FixFiles_MissingRules(t *testing.T) {
	dir := writeSources(t)
	svc := balance.NewService(testConfig(dir), nil, "", zap.NewNop(), nil)

	_, err := svc.FixFiles(context.Background(), balance.Paths{
		Rules:   filepath.Join(dir, "missing.xml"),
		Balance: filepath.Join(dir, "balance.xml"),
	})
	assert.ErrorIs(t, err, models.ErrSourceNotFound)
	assert.Contains(t, err.Error(), "missing.xml")
}

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestService_Emit_SinkFailure(t *testing.T) {
	svc := balance.NewService(testConfig("."), nil, "", zap.NewNop(), nil)
	res, err := balance.Process(strings.NewReader(rulesXML), "unitrules.xml",
		strings.NewReader(balanceXML), "balance.xml", nil)
	require.NoError(t, err)

	_, err = svc.Emit(failingSink{}, "out.xml", res)
	var se *models.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "out.xml", se.Source)
	assert.ErrorContains(t, err, "disk full")
}

func TestService_FixUpload_DefaultRulesFromStorage(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.RulesObject = "data/unitrules.xml"

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "balance", "data/unitrules.xml", mock.Anything).
		Return(io.NopCloser(strings.NewReader(rulesXML)), nil).Once()

	svc := balance.NewService(cfg, mockClient, "balance", zap.NewNop(), nil)

	for i := 0; i < 3; i++ {
		res, err := svc.FixUpload(context.Background(), strings.NewReader(balanceXML), "upload.xml", nil, "")
		require.NoError(t, err)
		assert.Equal(t, "balance/data/unitrules.xml", res.RulesSource)
		assert.Equal(t, "upload.xml", res.BalanceSource)
	}

	// Parsed once, served from cache afterwards.
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestService_FixUpload_UploadedRules(t *testing.T) {
	svc := balance.NewService(testConfig(t.TempDir()), nil, "", zap.NewNop(), nil)

	res, err := svc.FixUpload(context.Background(), strings.NewReader(balanceXML), "b.xml",
		strings.NewReader(rulesXML), "r.xml")
	require.NoError(t, err)
	assert.Equal(t, "r.xml", res.RulesSource)
}

func TestService_Publish(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "balance").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "balance", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "balance", "balance/balance_out.xml", mock.Anything, int64(5),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/xml" })).
		Return(minio.UploadInfo{Key: "balance/balance_out.xml"}, nil)

	svc := balance.NewService(testConfig("."), mockClient, "balance", zap.NewNop(), nil)

	object, err := svc.Publish(context.Background(), []byte("<x/>\n"))
	require.NoError(t, err)
	assert.Equal(t, "balance/balance_out.xml", object)
	mockClient.AssertExpectations(t)
}

func TestService_Publish_Errors(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		svc := balance.NewService(testConfig("."), nil, "balance", zap.NewNop(), nil)
		_, err := svc.Publish(context.Background(), []byte("x"))
		assert.ErrorIs(t, err, balance.ErrPublishDisabled)
	})

	t.Run("BucketCheck", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "balance").Return(false, errors.New("connection refused"))

		svc := balance.NewService(testConfig("."), mockClient, "balance", zap.NewNop(), nil)
		_, err := svc.Publish(context.Background(), []byte("x"))
		assert.ErrorContains(t, err, "connection refused")
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Diff(t *testing.T) {
	svc := balance.NewService(testConfig("."), nil, "", zap.NewNop(), nil)
	res, err := balance.Process(strings.NewReader(rulesXML), "unitrules.xml",
		strings.NewReader(balanceXML), "balance.xml", nil)
	require.NoError(t, err)

	plan := svc.Diff(res)
	require.NotEmpty(t, plan.Results)

	tank := plan.Results[0]
	assert.Equal(t, "Tank", tank.Name)
	assert.True(t, tank.BeforePresent)
	assert.True(t, tank.AfterPresent)
	assert.Contains(t, tank.Changed, naval+": before=50 after=100")
	assert.Greater(t, tank.Added, 0)
	assert.Equal(t, res.Table.Len(), plan.Summary.TotalEntries)
	assert.Equal(t, 0, plan.Summary.MissingAfter)
}

func TestService_RecordAndRuns(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	svc := balance.NewService(testConfig("."), nil, "", zap.NewNop(), db)

	res, err := balance.Process(strings.NewReader(rulesXML), "unitrules.xml",
		strings.NewReader(balanceXML), "balance.xml", nil)
	require.NoError(t, err)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `balance_runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	run, err := svc.Record(context.Background(), res, []byte("abc"), "")
	require.NoError(t, err)
	require.NotNil(t, run)
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", run.Checksum)
	assert.Equal(t, res.Table.Len(), run.Rows)
	assert.Equal(t, 2, run.Entries)
	assert.Equal(t, 1, run.Warnings)

	sqlMock.ExpectQuery("SELECT \\* FROM `balance_runs`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "checksum"}).AddRow(run.ID, run.Checksum))

	runs, err := svc.Runs(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_HistoryDisabled(t *testing.T) {
	svc := balance.NewService(testConfig("."), nil, "", zap.NewNop(), nil)

	run, err := svc.Record(context.Background(), &balance.Result{}, nil, "")
	assert.NoError(t, err)
	assert.Nil(t, run)

	_, err = svc.Runs(context.Background(), 5)
	assert.ErrorIs(t, err, balance.ErrHistoryDisabled)
	assert.NoError(t, svc.Migrate(context.Background()))
}
