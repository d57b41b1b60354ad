package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_birthdayService_SetBirthday(t *testing.T) {
	type args struct {
		userID   string
		username string
		day      int
		month    int
		year     *int
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantRule  domain.ValidationRule
		wantErr   error
	}{
		{
			name: "Should store a valid birthday with year",
			args: args{userID: "U1", username: "alice", day: 15, month: 6, year: intPtr(1990)},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockBirthdayRepo.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *entity.Birthday) (bool, error) {
						require.Equal(t, args.userID, b.UserID)
						require.Equal(t, args.username, b.Username)
						require.Equal(t, 15, b.Day)
						require.Equal(t, 6, b.Month)
						require.Equal(t, 1990, *b.Year)
						return true, nil
					}).Times(1)
			},
		},
		{
			name: "Should store a valid birthday without year",
			args: args{userID: "U2", username: "bob", day: 29, month: 2},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockBirthdayRepo.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					Return(true, nil).Times(1)
			},
		},
		{
			name:     "Should reject Feb 30 without touching the store",
			args:     args{userID: "U1", username: "alice", day: 30, month: 2},
			wantRule: domain.RuleMonthLength,
		},
		{
			name:     "Should reject a year after the current local year",
			args:     args{userID: "U1", username: "alice", day: 1, month: 1, year: intPtr(2026)},
			wantRule: domain.RuleYearRange,
		},
		{
			name: "Should return storage error",
			args: args{userID: "U1", username: "alice", day: 1, month: 1},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockBirthdayRepo.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					Return(false, domain.StorageError("set birthday", assert.AnError)).Times(1)
			},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			cfg := testConfig(testRoleID)
			s := newBirthday(m.mockDataManager, m.mockPlatform, cfg)
			s.now = fixedClock(cfg.Location, 2025, time.June, 15, 10)

			got, err := s.SetBirthday(context.Background(), tt.args.userID, tt.args.username, tt.args.day, tt.args.month, tt.args.year)

			switch {
			case tt.wantRule != "":
				verr, ok := domain.AsValidationError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantRule, verr.Rule)
				assert.Nil(t, got)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.args.userID, got.UserID)
				assert.Equal(t, tt.args.year, got.Year)
			}
		})
	}
}

func Test_birthdayService_GetAndList(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newBirthday(m.mockDataManager, m.mockPlatform, testConfig(""))
	ctx := context.Background()

	alice := &entity.Birthday{UserID: "U1", Username: "alice", Day: 15, Month: 6}

	m.mockBirthdayRepo.EXPECT().GetByUserID(gomock.Any(), "U1").Return(alice, nil).Times(1)
	m.mockBirthdayRepo.EXPECT().GetByUserID(gomock.Any(), "U2").Return(nil, nil).Times(1)
	m.mockBirthdayRepo.EXPECT().List(gomock.Any()).Return([]*entity.Birthday{alice}, nil).Times(1)

	got, err := s.GetBirthday(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	none, err := s.GetBirthday(ctx, "U2")
	require.NoError(t, err)
	assert.Nil(t, none)

	all, err := s.ListBirthdays(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func Test_birthdayService_SendTestAnnouncement(t *testing.T) {
	channel := &entity.Channel{ID: testChannelID, GuildID: testGuildID, Name: "birthdays"}

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should send Ben Franklin announcement",
			buildMock: func(mocks allMocks) {
				mocks.mockPlatform.EXPECT().
					ResolveChannel(gomock.Any(), testChannelID).
					Return(channel, nil).Times(1)
				mocks.mockPlatform.EXPECT().
					SendAnnouncement(gomock.Any(), channel, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *entity.Channel, a entity.Announcement) error {
						require.Equal(t, domain.TestUsername, a.Username)
						require.True(t, a.Test)
						require.NotNil(t, a.Age)
						require.Equal(t, 2025-1706, *a.Age)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should fail when channel is not found",
			buildMock: func(mocks allMocks) {
				mocks.mockPlatform.EXPECT().
					ResolveChannel(gomock.Any(), testChannelID).
					Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrChannelNotFound,
		},
		{
			name: "Should return send error",
			buildMock: func(mocks allMocks) {
				mocks.mockPlatform.EXPECT().
					ResolveChannel(gomock.Any(), testChannelID).
					Return(channel, nil).Times(1)
				mocks.mockPlatform.EXPECT().
					SendAnnouncement(gomock.Any(), channel, gomock.Any()).
					Return(domain.ExternalError("send message", assert.AnError)).Times(1)
			},
			wantErr: domain.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			cfg := testConfig("")
			s := newBirthday(m.mockDataManager, m.mockPlatform, cfg)
			s.now = fixedClock(cfg.Location, 2025, time.March, 1, 12)

			got, err := s.SendTestAnnouncement(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Test)
		})
	}
}
