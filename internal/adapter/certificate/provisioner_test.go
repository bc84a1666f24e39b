//go:build unit

package certificate

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cadastro-rural/internal/adapter/infrastructure/file"
	"cadastro-rural/internal/adapter/infrastructure/openssl"
	"cadastro-rural/internal/adapter/infrastructure/x509gen"
	"cadastro-rural/internal/mock"
	"cadastro-rural/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var identity = types.NetworkIdentity{IPAddress: "192.168.0.12"}

func testOptions(dir string) Options {
	return Options{
		CertificatePath: filepath.Join(dir, "server.crt"),
		PrivateKeyPath:  filepath.Join(dir, "server.key"),
		ToolTimeout:     time.Minute,
	}
}

func TestProvisioner_Provision_ReusesExistingFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	tool := mock.NewMockCertificateTool(ctrl)
	generator := mock.NewMockCertificateGenerator(ctrl)
	opts := Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key"}

	fileMgr.EXPECT().FileExists("server.crt").Return(true)
	fileMgr.EXPECT().FileExists("server.key").Return(true)
	// No tool or generator calls are expected

	result := NewProvisioner(opts, fileMgr, tool, generator).Provision(context.Background(), identity)

	assert.Equal(t, types.OutcomeReused, result.Outcome)
	assert.True(t, result.Available())
	assert.NoError(t, result.Err)
	assert.Equal(t, &types.CertificateMaterial{CertificatePath: "server.crt", PrivateKeyPath: "server.key"}, result.Material)
}

func TestProvisioner_Provision_ReuseLeavesFilesUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opts := testOptions(t.TempDir())
	require.NoError(t, os.WriteFile(opts.CertificatePath, []byte("existing cert"), 0644))
	require.NoError(t, os.WriteFile(opts.PrivateKeyPath, []byte("existing key"), 0600))

	provisioner := NewProvisioner(opts, file.NewManagerAdapter(), mock.NewMockCertificateTool(ctrl), mock.NewMockCertificateGenerator(ctrl))

	for i := 0; i < 2; i++ {
		result := provisioner.Provision(context.Background(), identity)
		assert.Equal(t, types.OutcomeReused, result.Outcome)
	}

	cert, err := os.ReadFile(opts.CertificatePath)
	require.NoError(t, err)
	assert.Equal(t, "existing cert", string(cert))
}

func TestProvisioner_Provision_ToolSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	tool := mock.NewMockCertificateTool(ctrl)
	generator := mock.NewMockCertificateGenerator(ctrl)
	opts := Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key", ToolTimeout: time.Minute}

	fileMgr.EXPECT().FileExists("server.crt").Return(false)
	tool.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req types.CertificateRequest) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, "192.168.0.12", req.CommonName)
			assert.Equal(t, 4096, req.KeyBits)
			assert.Equal(t, 365*24*time.Hour, req.ValidFor)
			assert.Equal(t, "server.crt", req.CertificatePath)
			assert.Equal(t, "server.key", req.PrivateKeyPath)
			return nil
		})

	result := NewProvisioner(opts, fileMgr, tool, generator).Provision(context.Background(), identity)

	assert.Equal(t, types.OutcomeToolGenerated, result.Outcome)
	require.True(t, result.Available())
	assert.Equal(t, "server.crt", result.Material.CertificatePath)
}

func TestProvisioner_Provision_PartialFilesAreRegenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	tool := mock.NewMockCertificateTool(ctrl)
	opts := Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key"}

	fileMgr.EXPECT().FileExists("server.crt").Return(true)
	fileMgr.EXPECT().FileExists("server.key").Return(false)
	tool.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil)

	result := NewProvisioner(opts, fileMgr, tool, nil).Provision(context.Background(), identity)
	assert.Equal(t, types.OutcomeToolGenerated, result.Outcome)
}

func TestProvisioner_Provision_FallsBackToLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opts := testOptions(t.TempDir())
	opts.AdditionalIPs = []net.IP{net.ParseIP("10.1.2.3"), net.ParseIP("192.168.0.12")}

	fileMgr := file.NewManagerAdapter()
	tool := mock.NewMockCertificateTool(ctrl)
	tool.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	result := NewProvisioner(opts, fileMgr, tool, x509gen.NewGeneratorAdapter(fileMgr)).Provision(context.Background(), identity)

	require.Equal(t, types.OutcomeLibraryGenerated, result.Outcome)
	require.True(t, result.Available())

	data, err := os.ReadFile(result.Material.CertificatePath)
	require.NoError(t, err)
	block, _ := pem.Decode(data)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)

	assert.Equal(t, "192.168.0.12", cert.Subject.CommonName)
	assert.Contains(t, cert.DNSNames, "localhost")
	require.Len(t, cert.IPAddresses, 2)
	assert.True(t, cert.IPAddresses[0].Equal(net.ParseIP("192.168.0.12")))
	assert.True(t, cert.IPAddresses[1].Equal(net.ParseIP("10.1.2.3")))
	assert.FileExists(t, result.Material.PrivateKeyPath)
}

func TestProvisioner_Provision_ToolMissingFallsBackToLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opts := testOptions(t.TempDir())
	fileMgr := file.NewManagerAdapter()
	generator := mock.NewMockCertificateGenerator(ctrl)

	generator.EXPECT().
		Generate(gomock.Any()).
		DoAndReturn(func(req types.CertificateRequest) error {
			assert.Equal(t, 2048, req.KeyBits)
			assert.Equal(t, []string{"localhost"}, req.DNSNames)
			require.Len(t, req.IPAddresses, 1)
			assert.Equal(t, "192.168.0.12", req.IPAddresses[0].String())
			return nil
		})

	missingTool := openssl.NewToolAdapter(filepath.Join(t.TempDir(), "openssl-missing"))
	result := NewProvisioner(opts, fileMgr, missingTool, generator).Provision(context.Background(), identity)

	assert.Equal(t, types.OutcomeLibraryGenerated, result.Outcome)
}

func TestProvisioner_Provision_BothStrategiesUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	tool := mock.NewMockCertificateTool(ctrl)
	generator := mock.NewMockCertificateGenerator(ctrl)
	opts := Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key"}

	fileMgr.EXPECT().FileExists("server.crt").Return(false)
	tool.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(openssl.ErrToolNotFound)
	generator.EXPECT().Generate(gomock.Any()).Return(errors.New("read-only file system"))

	result := NewProvisioner(opts, fileMgr, tool, generator).Provision(context.Background(), identity)

	assert.Equal(t, types.OutcomeLibraryUnavailable, result.Outcome)
	assert.False(t, result.Available())
	assert.Nil(t, result.Material)
	assert.ErrorIs(t, result.Err, ErrLibraryUnavailable)
	assert.Contains(t, result.Err.Error(), "read-only file system")
}

func TestProvisioner_Provision_NoStrategiesConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	fileMgr.EXPECT().FileExists("server.crt").Return(false)

	result := NewProvisioner(Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key"}, fileMgr, nil, nil).
		Provision(context.Background(), identity)

	assert.Equal(t, types.OutcomeLibraryUnavailable, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrLibraryUnavailable)
}

func TestProvisioner_Provision_CancelledDuringToolSkipsLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileMgr := mock.NewMockFileManager(ctrl)
	tool := mock.NewMockCertificateTool(ctrl)
	generator := mock.NewMockCertificateGenerator(ctrl)
	opts := Options{CertificatePath: "server.crt", PrivateKeyPath: "server.key", ToolTimeout: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileMgr.EXPECT().FileExists("server.crt").Return(false)
	tool.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ types.CertificateRequest) error {
			// Interrupted while openssl runs
			cancel()
			return ctx.Err()
		})
	// No generator calls are expected

	result := NewProvisioner(opts, fileMgr, tool, generator).Provision(ctx, identity)

	assert.Equal(t, types.OutcomeLibraryUnavailable, result.Outcome)
	assert.False(t, result.Available())
	assert.ErrorIs(t, result.Err, ErrLibraryUnavailable)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestProvisioner_generateWithTool_WrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tool := mock.NewMockCertificateTool(ctrl)
	tool.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(openssl.ErrToolNotFound)

	result := NewProvisioner(Options{}, nil, tool, nil).generateWithTool(context.Background(), identity)

	assert.Equal(t, types.OutcomeToolUnavailable, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrToolUnavailable)
	assert.ErrorIs(t, result.Err, openssl.ErrToolNotFound)
}

func TestSubjectAltIPs(t *testing.T) {
	t.Run("LoopbackIdentity", func(t *testing.T) {
		ips := subjectAltIPs(types.NetworkIdentity{IPAddress: types.LoopbackAddress}, nil)
		require.Len(t, ips, 1)
		assert.Equal(t, "127.0.0.1", ips[0].String())
	})

	t.Run("InvalidIdentityKeepsExtras", func(t *testing.T) {
		ips := subjectAltIPs(types.NetworkIdentity{IPAddress: "bogus"}, []net.IP{net.ParseIP("10.0.0.1")})
		require.Len(t, ips, 1)
		assert.Equal(t, "10.0.0.1", ips[0].String())
	})
}
