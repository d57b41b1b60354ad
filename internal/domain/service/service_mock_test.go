package service

import (
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testChannelID = "C123456789"
	testGuildID   = "G123456789"
	testRoleID    = "R123456789"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockBirthdayRepo *mocks.MockBirthdayRepo
	mockPlatform     *mocks.MockChatPlatform
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	birthdayRepo := mocks.NewMockBirthdayRepo(ctrl)
	dm.EXPECT().Birthday().Return(birthdayRepo).AnyTimes()

	platform := mocks.NewMockChatPlatform(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockBirthdayRepo: birthdayRepo,
		mockPlatform:     platform,
	}

	// validate service creation
	instance := NewInstance(dm, platform, testConfig(testRoleID))
	require.NotNil(t, instance.Birthday)
	require.NotNil(t, instance.Reconciler)

	return
}

func testConfig(roleID string) Config {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return Config{
		ChannelID: testChannelID,
		RoleID:    roleID,
		Location:  loc,
	}
}

// fixedClock returns a clock stuck at the given wall time in loc
func fixedClock(loc *time.Location, year int, month time.Month, day, hour int) clock {
	return func() time.Time {
		return time.Date(year, month, day, hour, 0, 0, 0, loc)
	}
}

func intPtr(v int) *int { return &v }
