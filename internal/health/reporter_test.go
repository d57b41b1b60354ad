package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/diegoclair/birthday-bot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReporter(t *testing.T, withPlatform, requirePlatform bool, file string) (*Reporter, *mocks.MockDataManager, *mocks.MockChatPlatform) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dm := mocks.NewMockDataManager(ctrl)
	platform := mocks.NewMockChatPlatform(ctrl)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	opts := Options{
		DataManager:      dm,
		Timezone:         "America/New_York",
		Location:         loc,
		NotificationHour: 10,
		File:             file,
		RequirePlatform:  requirePlatform,
	}
	if withPlatform {
		opts.Platform = platform
	}

	r := NewReporter(opts)
	r.started = time.Date(2025, time.June, 15, 13, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return time.Date(2025, time.June, 15, 14, 0, 0, 0, time.UTC) }

	return r, dm, platform
}

func TestReporter_Sample(t *testing.T) {
	connected := entity.PlatformStatus{Connected: true, User: "BirthdayBot#0001", Guilds: 1, Ping: 42 * time.Millisecond}

	tests := []struct {
		name          string
		platform      bool
		require       bool
		buildMock     func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform)
		wantStatus    string
		wantDBOk      bool
		wantConnected *bool
	}{
		{
			name:     "Should be healthy when connected and database reachable",
			platform: true, require: true,
			buildMock: func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform) {
				dm.EXPECT().Ping(gomock.Any()).Return(nil)
				platform.EXPECT().Status(gomock.Any()).Return(connected)
				platform.EXPECT().Name().Return(domain.PlatformDiscord)
			},
			wantStatus:    models.StatusHealthy,
			wantDBOk:      true,
			wantConnected: boolPtr(true),
		},
		{
			name:     "Should be unhealthy when disconnected",
			platform: true, require: true,
			buildMock: func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform) {
				dm.EXPECT().Ping(gomock.Any()).Return(nil)
				platform.EXPECT().Status(gomock.Any()).Return(entity.PlatformStatus{})
				platform.EXPECT().Name().Return(domain.PlatformDiscord)
			},
			wantStatus:    models.StatusUnhealthy,
			wantDBOk:      true,
			wantConnected: boolPtr(false),
		},
		{
			name:     "Should be unhealthy when database is unreachable",
			platform: true, require: true,
			buildMock: func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform) {
				dm.EXPECT().Ping(gomock.Any()).Return(domain.StorageError("ping database", assert.AnError))
				platform.EXPECT().Status(gomock.Any()).Return(connected)
				platform.EXPECT().Name().Return(domain.PlatformDiscord)
			},
			wantStatus:    models.StatusUnhealthy,
			wantDBOk:      false,
			wantConnected: boolPtr(true),
		},
		{
			name:     "Should be healthy for a probe with a reachable database",
			platform: false, require: false,
			buildMock: func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform) {
				dm.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			wantStatus: models.StatusHealthy,
			wantDBOk:   true,
		},
		{
			name:     "Should be unhealthy for a probe with a broken database",
			platform: false, require: false,
			buildMock: func(dm *mocks.MockDataManager, platform *mocks.MockChatPlatform) {
				dm.EXPECT().Ping(gomock.Any()).Return(assert.AnError)
			},
			wantStatus: models.StatusUnhealthy,
			wantDBOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dm, platform := newTestReporter(t, tt.platform, tt.require, "")
			tt.buildMock(dm, platform)

			record := r.Sample(context.Background())

			assert.Equal(t, tt.wantStatus, record.Status)
			assert.Equal(t, tt.wantDBOk, record.Database.Connected)
			assert.Equal(t, float64(3600), record.Uptime)
			assert.Equal(t, "America/New_York", record.Configuration.Timezone)
			assert.Equal(t, 10, record.Configuration.NotificationHour)
			assert.Equal(t, "6/15/2025, 10:00:00 AM", record.Timezone.Local)
			assert.NotEmpty(t, record.Version.GoVersion)

			if tt.wantConnected == nil {
				assert.Nil(t, record.Discord)
				return
			}
			require.NotNil(t, record.Discord)
			assert.Equal(t, *tt.wantConnected, record.Discord.Connected)
		})
	}
}

func TestReporter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "health.json")
	r, dm, platform := newTestReporter(t, true, true, path)

	dm.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	platform.EXPECT().Status(gomock.Any()).Return(entity.PlatformStatus{Connected: true, Guilds: 2, Ping: 80 * time.Millisecond}).Times(2)
	platform.EXPECT().Name().Return(domain.PlatformDiscord).Times(2)

	require.NoError(t, r.WriteFile(context.Background()))
	require.NoError(t, r.SampleAndWrite(context.Background()))

	record, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, record.Healthy())
	require.NotNil(t, record.Discord)
	assert.Equal(t, int64(80), record.Discord.Ping)
	assert.Equal(t, 2, record.Discord.Guilds)
	assert.Equal(t, domain.PlatformDiscord, record.Platform)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func boolPtr(v bool) *bool { return &v }
